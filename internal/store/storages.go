// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-config-engine/internal/config"
	"github.com/MKhiriev/go-config-engine/internal/logger"
)

// MemoryDSN selects the in-process backend.
const MemoryDSN = "memory"

// Storages aggregates the repositories used by the service layer.
type Storages struct {
	SchemaRepository       SchemaRepository
	OrganizationRepository OrganizationRepository

	db *DB
}

// NewStorages opens the backend named by cfg.DSN and runs its migrations.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" || dsn == MemoryDSN {
		log.Info().Str("func", "NewStorages").Msg("using in-memory storage")
		return NewMemoryStorages(), nil
	}

	var (
		db  *DB
		err error
	)
	if IsSQLiteDSN(dsn) {
		db, err = NewConnectSQLite(ctx, config.DB{DSN: dsn}, log)
	} else {
		db, err = NewConnectPostgres(ctx, config.DB{DSN: dsn}, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Str("dialect", string(db.Dialect())).Msg("failed to apply migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return NewSQLStorages(db, log), nil
}

// NewSQLStorages wires the SQL repositories over an open connection.
func NewSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		SchemaRepository:       NewSchemaRepository(db, log),
		OrganizationRepository: NewOrganizationRepository(db, log),
		db:                     db,
	}
}

// NewMemoryStorages wires both repositories to one [MemoryStore].
func NewMemoryStorages() *Storages {
	mem := NewMemoryStore()
	return &Storages{
		SchemaRepository:       mem,
		OrganizationRepository: mem,
	}
}

// Ping checks the database connection. The in-memory backend is always up.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.PingContext(ctx)
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
