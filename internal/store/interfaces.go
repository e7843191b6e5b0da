// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists schemas and organizations. It ships an in-memory
// backend and SQL backends for PostgreSQL and SQLite that share one set of
// squirrel-built queries.
package store

import (
	"context"

	"github.com/MKhiriev/go-config-engine/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SchemaRepository stores schema versions and their lifecycle state.
type SchemaRepository interface {
	// CreateSchema stores a new record and returns it with its assigned ID
	// and timestamps. A duplicate version yields [ErrSchemaVersionExists].
	CreateSchema(ctx context.Context, record models.SchemaRecord) (models.SchemaRecord, error)

	// GetSchema returns the record with id or [ErrSchemaNotFound].
	GetSchema(ctx context.Context, id int64) (models.SchemaRecord, error)

	// GetActiveSchema returns the active record or [ErrNoActiveSchema].
	GetActiveSchema(ctx context.Context) (models.SchemaRecord, error)

	// ListSchemas returns the records matching filter ordered by ID.
	ListSchemas(ctx context.Context, filter models.SchemaFilter) ([]models.SchemaRecord, error)

	// ListVersions returns every stored version tag.
	ListVersions(ctx context.Context) ([]string, error)

	// MarkValidated moves a draft to validated. A record in any other state
	// yields [ErrSchemaStateConflict].
	MarkValidated(ctx context.Context, id int64) (models.SchemaRecord, error)

	// ActivateSchema atomically supersedes the current active schema, if
	// any, and activates id. It returns [ErrSchemaNotValidated] when id is
	// not validated and [ErrConcurrentActivationConflict] when another
	// activation won a race.
	ActivateSchema(ctx context.Context, id int64) (models.ActivationRecord, error)
}

// OrganizationRepository stores organizations and their overrides.
type OrganizationRepository interface {
	// CreateOrganization stores org. A taken name or slug yields
	// [ErrOrganizationExists].
	CreateOrganization(ctx context.Context, org models.Organization) (models.Organization, error)

	GetOrganization(ctx context.Context, id int64) (models.Organization, error)
	GetOrganizationBySlug(ctx context.Context, slug string) (models.Organization, error)
	ListOrganizations(ctx context.Context) ([]models.Organization, error)

	// ReplaceOverrides replaces the whole override document of orgID. The
	// write only happens while schemaID is still the active schema;
	// otherwise it returns [ErrActiveSchemaChanged] and stores nothing.
	ReplaceOverrides(ctx context.Context, orgID, schemaID int64, overrides models.Overrides) (models.Organization, error)
}

// ErrorClassificator maps driver errors to retry decisions and constraint
// kinds for one SQL dialect.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
