package boulevard

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/rella-labs/profitkit/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCredentials() domain.Credentials {
	return domain.Credentials{
		KeyID:         "key-123",
		SigningSecret: base64.StdEncoding.EncodeToString([]byte("super-secret")),
		BusinessID:    "biz-456",
	}
}

func TestBuildAuthHeader_Format(t *testing.T) {
	header, err := buildAuthHeader(testCredentials(), time.Unix(1700000000, 0))
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(header, "Basic "))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, "Basic "))
	require.NoError(t, err)

	parts := strings.SplitN(string(decoded), ":", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, "key-123", parts[0])
	assert.Contains(t, parts[1], "blvd-admin-v1biz-4561700000000")
}

func TestBuildAuthHeader_NonReplayable(t *testing.T) {
	creds := testCredentials()

	first, err := buildAuthHeader(creds, time.Unix(1700000000, 0))
	require.NoError(t, err)
	second, err := buildAuthHeader(creds, time.Unix(1700000001, 0))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBuildAuthHeader_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Credentials)
	}{
		{"missing key id", func(c *domain.Credentials) { c.KeyID = "" }},
		{"missing secret", func(c *domain.Credentials) { c.SigningSecret = "" }},
		{"missing business id", func(c *domain.Credentials) { c.BusinessID = "" }},
		{"secret not base64", func(c *domain.Credentials) { c.SigningSecret = "not base64!!!" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds := testCredentials()
			tt.mutate(&creds)

			_, err := buildAuthHeader(creds, time.Now())
			require.Error(t, err)

			var cfgErr *ConfigurationError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestParseWaitHint(t *testing.T) {
	tests := []struct {
		message string
		want    time.Duration
	}{
		{"Please wait 1500ms before retrying", 1500 * time.Millisecond},
		{"wait 250 ms", 250 * time.Millisecond},
		{"slow down", 0},
		{"", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseWaitHint(tt.message), tt.message)
	}
}
