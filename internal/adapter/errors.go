// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Errors mapped from HTTP status codes.
var (
	// ErrBadRequest wraps a 400 answer, typically a malformed document.
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized wraps a 401 answer from an override endpoint.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrNotFound wraps a 404 answer for a schema, organization or route.
	ErrNotFound = errors.New("not found")
	// ErrConflict wraps a 409 answer such as a duplicate version or slug.
	ErrConflict = errors.New("conflict")
	// ErrUnprocessable wraps a 422 answer. Callers that expect violations
	// get them as a typed error instead.
	ErrUnprocessable = errors.New("unprocessable entity")
	// ErrInternalServerError wraps a 500 answer.
	ErrInternalServerError = errors.New("internal server error")
	// ErrUnavailable wraps a 503 answer, returned by a degraded health check.
	ErrUnavailable = errors.New("service unavailable")
)
