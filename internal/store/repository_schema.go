// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-config-engine/internal/logger"
	"github.com/MKhiriev/go-config-engine/models"
	sq "github.com/Masterminds/squirrel"
)

// schemaRepository is the SQL implementation of [SchemaRepository].
type schemaRepository struct {
	*DB
	logger *logger.Logger
}

// NewSchemaRepository constructs a [SchemaRepository] backed by db.
func NewSchemaRepository(db *DB, logger *logger.Logger) SchemaRepository {
	return &schemaRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateSchema inserts record and returns it with the generated ID and
// timestamps.
//
// Error handling:
//   - unique violation on the version → [ErrSchemaVersionExists].
//   - query build failure → wrapped [ErrBuildingSQLQuery].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *schemaRepository) CreateSchema(ctx context.Context, record models.SchemaRecord) (models.SchemaRecord, error) {
	log := logger.FromContext(ctx)

	document, err := encodeJSON(record.Document)
	if err != nil {
		log.Err(err).Str("func", "*schemaRepository.CreateSchema").Msg("failed to encode schema document")
		return models.SchemaRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	now := time.Now().UTC()
	query, args, err := r.builder().
		Insert(schemasTable).
		Columns("version", "state", "document", "created_at", "updated_at").
		Values(record.Version, string(record.State), document, now, now).
		Suffix(returning(schemaColumns)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*schemaRepository.CreateSchema").Msg("failed to build query")
		return models.SchemaRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanSchemaRecord(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if r.errorClassificator != nil && r.errorClassificator.IsUniqueViolation(err) {
			return models.SchemaRecord{}, ErrSchemaVersionExists
		}
		log.Err(err).
			Str("func", "*schemaRepository.CreateSchema").
			Str("version", record.Version).
			Msg("failed to insert schema")
		return models.SchemaRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().
		Str("func", "*schemaRepository.CreateSchema").
		Int64("schema_id", created.ID).
		Str("version", created.Version).
		Msg("schema stored")

	return created, nil
}

// GetSchema returns the schema with id or [ErrSchemaNotFound].
func (r *schemaRepository) GetSchema(ctx context.Context, id int64) (models.SchemaRecord, error) {
	return r.getOne(ctx, "*schemaRepository.GetSchema", sq.Eq{"id": id}, ErrSchemaNotFound)
}

// GetActiveSchema returns the single active schema or [ErrNoActiveSchema].
func (r *schemaRepository) GetActiveSchema(ctx context.Context) (models.SchemaRecord, error) {
	return r.getOne(ctx, "*schemaRepository.GetActiveSchema", sq.Eq{"state": string(models.SchemaStateActive)}, ErrNoActiveSchema)
}

func (r *schemaRepository) getOne(ctx context.Context, funcName string, where sq.Eq, notFound error) (models.SchemaRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Select(schemaColumns...).
		From(schemasTable).
		Where(where).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return models.SchemaRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := scanSchemaRecord(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.SchemaRecord{}, notFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to read schema")
		return models.SchemaRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

// ListSchemas returns the schemas ordered by ID, restricted to filter.State
// when it is set.
func (r *schemaRepository) ListSchemas(ctx context.Context, filter models.SchemaFilter) ([]models.SchemaRecord, error) {
	log := logger.FromContext(ctx)

	builder := r.builder().
		Select(schemaColumns...).
		From(schemasTable).
		OrderBy("id")
	if filter.State != "" {
		builder = builder.Where(sq.Eq{"state": string(filter.State)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*schemaRepository.ListSchemas").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*schemaRepository.ListSchemas").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.SchemaRecord, 0)
	for rows.Next() {
		record, scanErr := scanSchemaRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*schemaRepository.ListSchemas").Msg("failed to scan schema row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*schemaRepository.ListSchemas").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// ListVersions returns the version of every stored schema, whatever its
// state, in insertion order.
func (r *schemaRepository) ListVersions(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Select("version").
		From(schemasTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*schemaRepository.ListVersions").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*schemaRepository.ListVersions").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	versions := make([]string, 0)
	for rows.Next() {
		var version string
		if scanErr := rows.Scan(&version); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		versions = append(versions, version)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return versions, nil
}

// MarkValidated moves a draft to validated. A missing schema returns
// [ErrSchemaNotFound]; a schema in any other state returns
// [ErrSchemaStateConflict].
func (r *schemaRepository) MarkValidated(ctx context.Context, id int64) (models.SchemaRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Update(schemasTable).
		Set("state", string(models.SchemaStateValidated)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id, "state": string(models.SchemaStateDraft)}).
		Suffix(returning(schemaColumns)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*schemaRepository.MarkValidated").Msg("failed to build query")
		return models.SchemaRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := scanSchemaRecord(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		// either missing or not a draft
		if _, getErr := r.GetSchema(ctx, id); getErr != nil {
			return models.SchemaRecord{}, getErr
		}
		return models.SchemaRecord{}, ErrSchemaStateConflict
	}
	if err != nil {
		log.Err(err).Str("func", "*schemaRepository.MarkValidated").Int64("schema_id", id).Msg("failed to update schema state")
		return models.SchemaRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return record, nil
}

// ActivateSchema runs the whole transition in one transaction. On
// PostgreSQL the target and the current active row are locked with
// SELECT ... FOR UPDATE; the partial unique index on state catches any
// activation that slipped past the locks. On SQLite the transaction is
// opened with BEGIN IMMEDIATE, which serializes writers.
func (r *schemaRepository) ActivateSchema(ctx context.Context, id int64) (models.ActivationRecord, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		if r.isConflict(err) {
			return models.ActivationRecord{}, ErrConcurrentActivationConflict
		}
		log.Err(err).Str("func", "*schemaRepository.ActivateSchema").Msg("failed to begin transaction")
		return models.ActivationRecord{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	activation, err := r.activate(ctx, tx, id)
	if err != nil {
		if r.isConflict(err) {
			log.Warn().Err(err).Str("func", "*schemaRepository.ActivateSchema").Int64("schema_id", id).Msg("activation lost a race")
			return models.ActivationRecord{}, ErrConcurrentActivationConflict
		}
		return models.ActivationRecord{}, err
	}

	if err = tx.Commit(); err != nil {
		if r.isConflict(err) {
			return models.ActivationRecord{}, ErrConcurrentActivationConflict
		}
		log.Err(err).Str("func", "*schemaRepository.ActivateSchema").Msg("failed to commit transaction")
		return models.ActivationRecord{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "*schemaRepository.ActivateSchema").
		Int64("schema_id", activation.SchemaID).
		Str("version", activation.Version).
		Int64("previous_schema_id", activation.PreviousSchemaID).
		Msg("schema activated")

	return activation, nil
}

func (r *schemaRepository) activate(ctx context.Context, tx *sql.Tx, id int64) (models.ActivationRecord, error) {
	// lock target
	var (
		version string
		state   string
	)
	query, args, err := r.lockFor(r.builder().
		Select("version", "state").
		From(schemasTable).
		Where(sq.Eq{"id": id}), "FOR UPDATE").
		ToSql()
	if err != nil {
		return models.ActivationRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	err = tx.QueryRowContext(ctx, query, args...).Scan(&version, &state)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ActivationRecord{}, ErrSchemaNotFound
	}
	if err != nil {
		return models.ActivationRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if models.SchemaState(state) != models.SchemaStateValidated {
		return models.ActivationRecord{}, ErrSchemaNotValidated
	}

	// lock current active row
	activation := models.ActivationRecord{SchemaID: id, Version: version}
	query, args, err = r.lockFor(r.builder().
		Select("id", "version").
		From(schemasTable).
		Where(sq.Eq{"state": string(models.SchemaStateActive)}), "FOR UPDATE").
		ToSql()
	if err != nil {
		return models.ActivationRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	err = tx.QueryRowContext(ctx, query, args...).Scan(&activation.PreviousSchemaID, &activation.PreviousVersion)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return models.ActivationRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	now := time.Now().UTC()
	if activation.PreviousSchemaID != 0 {
		query, args, err = r.builder().
			Update(schemasTable).
			Set("state", string(models.SchemaStateSuperseded)).
			Set("updated_at", now).
			Where(sq.Eq{"id": activation.PreviousSchemaID, "state": string(models.SchemaStateActive)}).
			ToSql()
		if err != nil {
			return models.ActivationRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if err = execOne(ctx, tx, query, args); err != nil {
			return models.ActivationRecord{}, err
		}
	}

	query, args, err = r.builder().
		Update(schemasTable).
		Set("state", string(models.SchemaStateActive)).
		Set("updated_at", now).
		Set("activated_at", now).
		Where(sq.Eq{"id": id, "state": string(models.SchemaStateValidated)}).
		ToSql()
	if err != nil {
		return models.ActivationRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if err = execOne(ctx, tx, query, args); err != nil {
		return models.ActivationRecord{}, err
	}

	activation.ActivatedAt = now
	return activation, nil
}

// execOne runs a statement that must touch exactly one row. Zero rows
// means a concurrent writer changed the row first.
func execOne(ctx context.Context, tx *sql.Tx, query string, args []any) error {
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n != 1 {
		return ErrConcurrentActivationConflict
	}
	return nil
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}
