package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-config-engine/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCaller = models.CallerContext{Subject: "ops-bot", Role: "admin", Environment: "production"}

func TestGenerateCallerToken_RoundTrip(t *testing.T) {
	token, err := GenerateCallerToken("test-issuer", testCaller, time.Hour, "secret-key")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	caller, err := ValidateAndParseCallerToken(token, "secret-key", "test-issuer")
	require.NoError(t, err)
	assert.Equal(t, testCaller, caller)
}

func TestGenerateCallerToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"negative duration", "iss", -time.Minute, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateCallerToken(tt.issuer, testCaller, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseCallerToken_Rejects(t *testing.T) {
	valid, err := GenerateCallerToken("iss", testCaller, time.Hour, "key")
	require.NoError(t, err)

	noRole, err := GenerateCallerToken("iss", models.CallerContext{Subject: "x"}, time.Hour, "key")
	require.NoError(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &CallerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "iss",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		Role: "admin",
	}).SignedString([]byte("key"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid, "other", "iss"},
		{"wrong issuer", valid, "key", "other"},
		{"garbage", "not-a-token", "key", "iss"},
		{"missing role", noRole, "key", "iss"},
		{"expired", expired, "key", "iss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseCallerToken(tt.token, tt.key, tt.issuer)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseCallerToken_ExpiredIsDetectable(t *testing.T) {
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &CallerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "iss",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		Role: "member",
	}).SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = ValidateAndParseCallerToken(expired, "key", "iss")
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ParseBearerToken("  bearer   xyz ")
	require.NoError(t, err)
	assert.Equal(t, "xyz", token)

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		_, err = ParseBearerToken(header)
		assert.Error(t, err, header)
	}
}
