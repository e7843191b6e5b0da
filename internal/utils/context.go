// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP request
// and response bodies, the REST client, caller token generation and
// validation, and organization slugs.
package utils

import (
	"context"

	"github.com/MKhiriev/go-config-engine/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CallerCtxKey is the key used to store the authenticated caller in the
// context. Used together with GetCallerFromContext for type-safe retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.CallerCtxKey, models.CallerContext{Role: "admin"})
var CallerCtxKey = contextKey("caller")

// GetCallerFromContext retrieves the caller identity from the context.
//
// Returns ok == false when no caller was stored or the value has an
// unexpected type.
func GetCallerFromContext(ctx context.Context) (models.CallerContext, bool) {
	caller, ok := ctx.Value(CallerCtxKey).(models.CallerContext)
	return caller, ok
}

// WithCaller returns a copy of ctx carrying caller.
func WithCaller(ctx context.Context, caller models.CallerContext) context.Context {
	return context.WithValue(ctx, CallerCtxKey, caller)
}
