// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/go-config-engine/internal/logger"
	"github.com/MKhiriev/go-config-engine/migrations"
	sq "github.com/Masterminds/squirrel"
)

// Dialect names a supported SQL backend.
type Dialect string

const (
	// DialectPostgres selects pgx and $n placeholders.
	DialectPostgres Dialect = migrations.DialectPostgres
	// DialectSQLite selects go-sqlite3 and ? placeholders.
	DialectSQLite Dialect = migrations.DialectSQLite
)

// DB is an open SQL connection together with its dialect-specific helpers.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Dialect returns the backend the connection talks to.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// builder returns a squirrel statement builder using the dialect's
// placeholder format.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// lockFor appends a row-locking clause such as FOR UPDATE. SQLite has no
// row locks; its write transactions are serialized instead.
func (db *DB) lockFor(b sq.SelectBuilder, mode string) sq.SelectBuilder {
	if db.dialect == DialectPostgres {
		return b.Suffix(mode)
	}
	return b
}

// isConflict reports whether err means a concurrent writer got in first.
func (db *DB) isConflict(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.IsUniqueViolation(err) || db.errorClassificator.Classify(err) == Retryable
}
