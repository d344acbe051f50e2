package boulevard

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"github.com/rella-labs/profitkit/pkg/models/domain"
)

// tokenPrefix is the protocol prefix the admin API expects in the signed
// token payload.
const tokenPrefix = "blvd-admin-v1"

func validateCredentials(creds domain.Credentials) error {
	switch {
	case creds.KeyID == "":
		return &ConfigurationError{Reason: "missing API key id"}
	case creds.SigningSecret == "":
		return &ConfigurationError{Reason: "missing signing secret"}
	case creds.BusinessID == "":
		return &ConfigurationError{Reason: "missing business id"}
	}
	return nil
}

// buildAuthHeader derives the HTTP Basic credential for one request. The
// payload embeds the current unix timestamp, so every call produces a
// distinct token and nothing is ever reused across requests.
func buildAuthHeader(creds domain.Credentials, now time.Time) (string, error) {
	if err := validateCredentials(creds); err != nil {
		return "", err
	}

	rawKey, err := base64.StdEncoding.DecodeString(creds.SigningSecret)
	if err != nil {
		return "", &ConfigurationError{Reason: fmt.Sprintf("signing secret is not valid base64: %v", err)}
	}

	payload := tokenPrefix + creds.BusinessID + strconv.FormatInt(now.Unix(), 10)

	mac := hmac.New(sha256.New, rawKey)
	mac.Write([]byte(payload))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	token := signature + payload
	basic := base64.StdEncoding.EncodeToString([]byte(creds.KeyID + ":" + token))

	return "Basic " + basic, nil
}
