package boulevard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rella-labs/profitkit/pkg/models/domain"
	"github.com/rs/zerolog"
)

// DefaultEndpoint is the sandbox admin GraphQL endpoint, used when the
// credential profile does not name one.
const DefaultEndpoint = "https://sandbox.joinblvd.com/api/2020-01/admin"

// Response is one GraphQL response body. A 2xx reply with an embedded
// Errors array is still a Response, not a transport failure, so callers
// can tell protocol-level errors apart from transport ones.
type Response struct {
	Data   json.RawMessage `json:"data"`
	Errors []ResponseError `json:"errors"`
}

type ResponseError struct {
	Message string `json:"message"`
}

// Transport issues single authenticated GraphQL calls.
type Transport struct {
	creds      domain.Credentials
	endpoint   string
	httpClient *http.Client
	now        func() time.Time
}

func NewTransport(creds domain.Credentials, timeout time.Duration) (*Transport, error) {
	if err := validateCredentials(creds); err != nil {
		return nil, err
	}

	endpoint := creds.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	return &Transport{
		creds:      creds,
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
	}, nil
}

// Execute posts {query, variables} with a freshly signed credential and
// returns the decoded body. Exactly one network call per invocation.
func (t *Transport) Execute(ctx context.Context, query string, variables map[string]any) (*Response, error) {
	logger := zerolog.Ctx(ctx)

	authHeader, err := buildAuthHeader(t.creds, t.now())
	if err != nil {
		return nil, err
	}

	payload := map[string]any{"query": query}
	if len(variables) > 0 {
		payload["variables"] = variables
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Authorization", authHeader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	logger.Debug().
		Str("request_id", requestID).
		Str("endpoint", t.endpoint).
		Msg("executing upstream call")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		message := string(respBody)
		return nil, &RateLimitError{
			Message:  message,
			WaitHint: parseWaitHint(message),
		}
	case resp.StatusCode == http.StatusNoContent:
		return &Response{}, nil
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &TransportError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var decoded Response
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, &ProtocolError{Reason: fmt.Sprintf("undecodable response body: %v", err)}
	}

	if len(decoded.Errors) > 0 {
		logger.Warn().
			Str("request_id", requestID).
			Str("message", decoded.Errors[0].Message).
			Msg("upstream returned embedded errors")
	}

	return &decoded, nil
}
