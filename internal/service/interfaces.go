// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the schema lifecycle and the organization
// override workflow on top of the validators, the resolver and the store.
package service

import (
	"context"

	"github.com/MKhiriev/go-config-engine/models"
)

// SchemaService manages schema versions through
// draft → validated → active → superseded.
type SchemaService interface {
	// CreateDraft stores doc as a new draft. Its version must be a valid
	// MAJOR.MINOR.PATCH tag greater than every stored version.
	CreateDraft(ctx context.Context, doc models.SchemaDocument) (models.SchemaRecord, error)

	// Validate runs the schema validator over a draft and marks it
	// validated. Violations are returned as [models.SchemaViolations].
	Validate(ctx context.Context, id int64) (models.SchemaRecord, error)

	// Activate makes a validated schema the single active one.
	Activate(ctx context.Context, id int64) (models.ActivationRecord, error)

	Get(ctx context.Context, id int64) (models.SchemaRecord, error)
	List(ctx context.Context, filter models.SchemaFilter) ([]models.SchemaRecord, error)

	// Active returns the active record together with its typed schema.
	Active(ctx context.Context) (models.SchemaRecord, models.Schema, error)
}

// OrganizationService manages organizations and their overrides.
type OrganizationService interface {
	Create(ctx context.Context, name string) (models.Organization, error)

	// Get looks an organization up by numeric id or by slug.
	Get(ctx context.Context, ref string) (models.Organization, error)
	List(ctx context.Context) ([]models.Organization, error)

	// ApplyOverrides validates proposed against the active schema and, if
	// every entry passes, replaces the stored override document with it.
	// Entries missing from proposed are removed. It returns the resulting
	// effective configuration.
	ApplyOverrides(ctx context.Context, ref string, proposed models.Overrides, caller models.CallerContext) (models.EffectiveConfig, error)

	// EffectiveConfig resolves the stored overrides against the active schema.
	EffectiveConfig(ctx context.Context, ref string) (models.EffectiveConfig, error)

	// PreviewEffectiveConfig validates a user layer with the caller's
	// context and resolves it on top of the stored overrides. Nothing is
	// stored.
	PreviewEffectiveConfig(ctx context.Context, ref string, user models.Overrides, caller models.CallerContext) (models.EffectiveConfig, error)

	// AuditStaleOverrides resolves every organization and reports the
	// overrides the active schema no longer accepts.
	AuditStaleOverrides(ctx context.Context) (models.StaleAuditReport, error)
}

// HealthService reports whether the server can reach its storage.
type HealthService interface {
	Check(ctx context.Context) models.HealthStatus
}

// Pinger is satisfied by [store.Storages].
type Pinger interface {
	Ping(ctx context.Context) error
}
