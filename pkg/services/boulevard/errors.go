package boulevard

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ConfigurationError reports missing or malformed credentials. Fatal,
// never retried.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("boulevard: configuration error: %s", e.Reason)
}

// TransportError reports a non-rate-limit HTTP failure. Propagated
// immediately, never retried.
type TransportError struct {
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("boulevard: upstream returned HTTP %d: %s", e.StatusCode, e.Body)
}

// RateLimitError reports an HTTP 429. WaitHint is the server-suggested
// wait duration parsed from the error message, 0 when absent.
type RateLimitError struct {
	Message  string
	WaitHint time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("boulevard: rate limited: %s", e.Message)
}

// NetworkError wraps a connection or timeout failure. Retried with the
// same exponential schedule as rate limits.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("boulevard: network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ProtocolError reports a malformed upstream response. Pagination halts
// on it and keeps whatever was gathered so far.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("boulevard: protocol error: %s", e.Reason)
}

// Rate-limit messages may embed a suggested wait, e.g. "Please wait 1500ms".
var waitHintPattern = regexp.MustCompile(`(\d+)\s*ms`)

func parseWaitHint(message string) time.Duration {
	m := waitHintPattern.FindStringSubmatch(message)
	if m == nil {
		return 0
	}
	ms, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}
