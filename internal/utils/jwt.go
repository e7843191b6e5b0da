package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-config-engine/models"
	"github.com/golang-jwt/jwt/v5"
)

// CallerClaims are the JWT claims identifying an override caller. The
// subject names who the token was issued to; role and environment feed
// the per-field policy checks.
type CallerClaims struct {
	jwt.RegisteredClaims
	Role        string `json:"role"`
	Environment string `json:"env"`
}

// GenerateCallerToken creates a signed HMAC-SHA256 JWT for caller.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): caller.Subject
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// issuer, tokenDuration and signKey are required.
//
// Example usage:
//
//	token, err := utils.GenerateCallerToken("go-config-engine", caller, time.Hour, "secret")
func GenerateCallerToken(issuer string, caller models.CallerContext, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return "", errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &CallerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   caller.Subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role:        caller.Role,
		Environment: caller.Environment,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return signed, nil
}

// ValidateAndParseCallerToken validates tokenString and extracts the caller.
//
// Validation includes:
//   - Signature verification using the provided sign key (HMAC only)
//   - Issuer (iss) claim check against tokenIssuer
//   - Expiration (exp) claim check
//   - Role claim presence
//
// Example usage:
//
//	caller, err := utils.ValidateAndParseCallerToken(rawToken, "secret", "go-config-engine")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseCallerToken(tokenString, tokenSignKey, tokenIssuer string) (models.CallerContext, error) {
	claims := &CallerClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.CallerContext{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Role == "" {
		return models.CallerContext{}, errors.New("token has no role claim")
	}

	return models.CallerContext{
		Subject:     claims.Subject,
		Role:        claims.Role,
		Environment: claims.Environment,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
