// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the REST client of the config engine API used by
// configctl.
//
// HTTP status codes are mapped to the sentinel errors in errors.go so that
// callers can use [errors.Is] (for example [ErrConflict] for 409). Rejected
// documents come back as [models.SchemaViolations] or
// [models.OverrideViolations], the same types the server returns from its
// services.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-config-engine/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ConfigAPI talks to a running config engine server.
type ConfigAPI interface {
	// SetToken stores the bearer token attached to override writes and
	// previews.
	SetToken(token string)

	CreateSchema(ctx context.Context, doc models.SchemaDocument) (models.SchemaRecord, error)
	GetSchema(ctx context.Context, id int64) (models.SchemaRecord, error)
	ListSchemas(ctx context.Context, state models.SchemaState) ([]models.SchemaRecord, error)
	ActiveSchema(ctx context.Context) (models.SchemaRecord, error)

	// ValidateSchema returns [models.SchemaViolations] when the draft is
	// rejected.
	ValidateSchema(ctx context.Context, id int64) (models.SchemaRecord, error)
	ActivateSchema(ctx context.Context, id int64) (models.ActivationRecord, error)

	CreateOrganization(ctx context.Context, name string) (models.Organization, error)
	GetOrganization(ctx context.Context, ref string) (models.Organization, error)

	// ReplaceOverrides replaces the organization's whole override document.
	// It returns [models.OverrideViolations] when the document is rejected.
	ReplaceOverrides(ctx context.Context, ref string, overrides models.Overrides) (models.EffectiveConfig, error)
	EffectiveConfig(ctx context.Context, ref string) (models.EffectiveConfig, error)
	PreviewEffectiveConfig(ctx context.Context, ref string, user models.Overrides) (models.EffectiveConfig, error)

	Health(ctx context.Context) (models.HealthStatus, error)
}
