// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package identity

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-config-engine/internal/config"
	"github.com/MKhiriev/go-config-engine/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver() *TokenResolver {
	return NewTokenResolver(config.App{
		TokenSignKey:  "sign-key",
		TokenIssuer:   "go-config-engine",
		TokenDuration: time.Hour,
	})
}

func TestTokenResolver_IssueAndResolve(t *testing.T) {
	r := newTestResolver()
	caller := models.CallerContext{Subject: "alice", Role: "member", Environment: "staging"}

	token, err := r.Issue(caller)
	require.NoError(t, err)

	got, err := r.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, caller, got)
}

func TestTokenResolver_Invalid(t *testing.T) {
	r := newTestResolver()

	_, err := r.Resolve(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewTokenResolver(config.App{TokenSignKey: "other-key", TokenIssuer: "go-config-engine", TokenDuration: time.Hour})
	token, err := other.Issue(models.CallerContext{Role: "admin"})
	require.NoError(t, err)

	_, err = r.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenResolver_Expired(t *testing.T) {
	r := newTestResolver()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":  "go-config-engine",
		"exp":  time.Now().Add(-time.Minute).Unix(),
		"role": "admin",
	}).SignedString([]byte("sign-key"))
	require.NoError(t, err)

	_, err = r.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestTokenResolver_IssueWithoutKey(t *testing.T) {
	r := NewTokenResolver(config.App{TokenIssuer: "go-config-engine", TokenDuration: time.Hour})

	_, err := r.Issue(models.CallerContext{Role: "admin"})
	assert.Error(t, err)
}
