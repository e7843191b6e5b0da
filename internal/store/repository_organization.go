// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-config-engine/internal/logger"
	"github.com/MKhiriev/go-config-engine/models"
	sq "github.com/Masterminds/squirrel"
)

// organizationRepository is the SQL implementation of
// [OrganizationRepository].
type organizationRepository struct {
	*DB
	logger *logger.Logger
}

// NewOrganizationRepository constructs an [OrganizationRepository] backed by db.
func NewOrganizationRepository(db *DB, logger *logger.Logger) OrganizationRepository {
	return &organizationRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateOrganization inserts org and returns it with the generated ID and
// timestamps. Nil overrides are stored as an empty object.
//
// Error handling:
//   - unique violation on the name or slug → [ErrOrganizationExists].
//   - query build failure → wrapped [ErrBuildingSQLQuery].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *organizationRepository) CreateOrganization(ctx context.Context, org models.Organization) (models.Organization, error) {
	log := logger.FromContext(ctx)

	overrides := org.Overrides
	if overrides == nil {
		overrides = models.Overrides{}
	}
	encoded, err := encodeJSON(overrides)
	if err != nil {
		return models.Organization{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	now := time.Now().UTC()
	query, args, err := r.builder().
		Insert(organizationsTable).
		Columns("name", "slug", "overrides", "created_at", "updated_at").
		Values(org.Name, org.Slug, encoded, now, now).
		Suffix(returning(organizationColumns)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*organizationRepository.CreateOrganization").Msg("failed to build query")
		return models.Organization{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanOrganization(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if r.errorClassificator != nil && r.errorClassificator.IsUniqueViolation(err) {
			return models.Organization{}, ErrOrganizationExists
		}
		log.Err(err).
			Str("func", "*organizationRepository.CreateOrganization").
			Str("slug", org.Slug).
			Msg("failed to insert organization")
		return models.Organization{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// GetOrganization returns the organization with id or [ErrOrganizationNotFound].
func (r *organizationRepository) GetOrganization(ctx context.Context, id int64) (models.Organization, error) {
	return r.getOne(ctx, "*organizationRepository.GetOrganization", sq.Eq{"id": id})
}

// GetOrganizationBySlug returns the organization with slug or
// [ErrOrganizationNotFound].
func (r *organizationRepository) GetOrganizationBySlug(ctx context.Context, slug string) (models.Organization, error) {
	return r.getOne(ctx, "*organizationRepository.GetOrganizationBySlug", sq.Eq{"slug": slug})
}

func (r *organizationRepository) getOne(ctx context.Context, funcName string, where sq.Eq) (models.Organization, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Select(organizationColumns...).
		From(organizationsTable).
		Where(where).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return models.Organization{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	org, err := scanOrganization(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Organization{}, ErrOrganizationNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to read organization")
		return models.Organization{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return org, nil
}

// ListOrganizations returns every organization ordered by ID.
func (r *organizationRepository) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Select(organizationColumns...).
		From(organizationsTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*organizationRepository.ListOrganizations").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*organizationRepository.ListOrganizations").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	orgs := make([]models.Organization, 0)
	for rows.Next() {
		org, scanErr := scanOrganization(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*organizationRepository.ListOrganizations").Msg("failed to scan organization row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		orgs = append(orgs, org)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*organizationRepository.ListOrganizations").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return orgs, nil
}

// ReplaceOverrides stores overrides for orgID, tagged with schemaID, only
// while schemaID is still the active schema; otherwise it returns
// [ErrActiveSchemaChanged]. The schema row is read with a shared lock, so an
// activation cannot supersede it until the override write has committed.
func (r *organizationRepository) ReplaceOverrides(ctx context.Context, orgID, schemaID int64, overrides models.Overrides) (models.Organization, error) {
	log := logger.FromContext(ctx)

	if overrides == nil {
		overrides = models.Overrides{}
	}
	encoded, err := encodeJSON(overrides)
	if err != nil {
		return models.Organization{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*organizationRepository.ReplaceOverrides").Msg("failed to begin transaction")
		return models.Organization{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// still active?
	query, args, err := r.lockFor(r.builder().
		Select("id").
		From(schemasTable).
		Where(sq.Eq{"id": schemaID, "state": string(models.SchemaStateActive)}), "FOR SHARE").
		ToSql()
	if err != nil {
		return models.Organization{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	var activeID int64
	err = tx.QueryRowContext(ctx, query, args...).Scan(&activeID)
	if errors.Is(err, sql.ErrNoRows) {
		log.Warn().
			Str("func", "*organizationRepository.ReplaceOverrides").
			Int64("schema_id", schemaID).
			Msg("schema is no longer active")
		return models.Organization{}, ErrActiveSchemaChanged
	}
	if err != nil {
		return models.Organization{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err = r.builder().
		Update(organizationsTable).
		Set("overrides", encoded).
		Set("overrides_schema_id", schemaID).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": orgID}).
		Suffix(returning(organizationColumns)).
		ToSql()
	if err != nil {
		return models.Organization{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	org, err := scanOrganization(tx.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Organization{}, ErrOrganizationNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*organizationRepository.ReplaceOverrides").
			Int64("organization_id", orgID).
			Msg("failed to replace overrides")
		return models.Organization{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*organizationRepository.ReplaceOverrides").Msg("failed to commit transaction")
		return models.Organization{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return org, nil
}
