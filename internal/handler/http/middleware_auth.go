// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-config-engine/internal/identity"
	"github.com/MKhiriev/go-config-engine/internal/logger"
	"github.com/MKhiriev/go-config-engine/internal/utils"
)

// auth resolves the bearer token of the request into the caller context
// used by override policy checks and stores it with [utils.WithCaller].
// Requests without a valid token are rejected with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, "*Handler.auth", ErrEmptyAuthorizationHeader)
			return
		}

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, "*Handler.auth", ErrInvalidAuthorizationHeader)
			return
		}

		caller, err := h.identity.Resolve(r.Context(), token)
		if err != nil {
			if !errors.Is(err, identity.ErrTokenIsExpired) {
				err = identity.ErrInvalidToken
			}
			writeError(w, r, "*Handler.auth", err)
			return
		}

		log.Debug().
			Str("subject", caller.Subject).
			Str("role", caller.Role).
			Str("environment", caller.Environment).
			Msg("caller resolved")

		next.ServeHTTP(w, r.WithContext(utils.WithCaller(r.Context(), caller)))
	})
}
