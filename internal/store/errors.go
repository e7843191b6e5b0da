// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSchemaNotFound is returned when no schema has the requested ID.
	ErrSchemaNotFound = errors.New("schema was not found")

	// ErrNoActiveSchema is returned when no schema has been activated yet.
	ErrNoActiveSchema = errors.New("no active schema")

	// ErrSchemaVersionExists is returned when a schema with the same version
	// tag is already stored.
	ErrSchemaVersionExists = errors.New("schema version already exists")

	// ErrSchemaStateConflict is returned when a lifecycle transition is
	// requested from a state that does not allow it.
	ErrSchemaStateConflict = errors.New("schema state does not allow this transition")

	// ErrOrganizationNotFound is returned when no organization matches.
	ErrOrganizationNotFound = errors.New("organization was not found")

	// ErrOrganizationExists is returned when the name or slug is taken.
	ErrOrganizationExists = errors.New("organization already exists")

	// ErrActiveSchemaChanged is returned when overrides validated against
	// one schema are written after another schema became active.
	ErrActiveSchemaChanged = errors.New("active schema changed during the write")
)

// Activation errors.
var (
	// ErrSchemaNotValidated is returned when activation targets a schema
	// that is not in the validated state.
	ErrSchemaNotValidated = errors.New("schema is not validated")

	// ErrConcurrentActivationConflict is returned when another activation
	// raced with this one and won. Resubmitting may succeed.
	ErrConcurrentActivationConflict = errors.New("concurrent schema activation conflict")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrDecodingDocument is returned when a stored JSON document cannot be
	// decoded.
	ErrDecodingDocument = errors.New("failed to decode stored document")
)
