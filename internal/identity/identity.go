// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package identity turns bearer tokens into the caller role and environment
// used by override policy checks.
package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-config-engine/internal/config"
	"github.com/MKhiriev/go-config-engine/internal/logger"
	"github.com/MKhiriev/go-config-engine/internal/utils"
	"github.com/MKhiriev/go-config-engine/models"
	"github.com/golang-jwt/jwt/v5"
)

//go:generate mockgen -source=identity.go -destination=../mock/identity_mock.go -package=mock

var (
	// ErrInvalidToken is returned for tokens that fail signature, issuer or
	// claim checks.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenIsExpired is returned for well-formed tokens past their exp.
	ErrTokenIsExpired = errors.New("token is expired")
)

// Resolver supplies the caller context of an override request.
type Resolver interface {
	Resolve(ctx context.Context, token string) (models.CallerContext, error)
}

// TokenResolver resolves and issues HMAC-signed caller tokens.
type TokenResolver struct {
	signKey  string
	issuer   string
	duration time.Duration
}

// NewTokenResolver builds a resolver from the application token settings.
func NewTokenResolver(cfg config.App) *TokenResolver {
	return &TokenResolver{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
	}
}

// Resolve validates token and returns the caller it was issued for.
func (r *TokenResolver) Resolve(ctx context.Context, token string) (models.CallerContext, error) {
	caller, err := utils.ValidateAndParseCallerToken(token, r.signKey, r.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*TokenResolver.Resolve").Msg("token rejected")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.CallerContext{}, ErrTokenIsExpired
		}
		return models.CallerContext{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return caller, nil
}

// Issue signs a token for caller valid for the configured duration.
func (r *TokenResolver) Issue(caller models.CallerContext) (string, error) {
	return utils.GenerateCallerToken(r.issuer, caller, r.duration, r.signKey)
}
