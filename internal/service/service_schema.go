// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-config-engine/internal/logger"
	"github.com/MKhiriev/go-config-engine/internal/metrics"
	"github.com/MKhiriev/go-config-engine/internal/store"
	"github.com/MKhiriev/go-config-engine/internal/validators"
	"github.com/MKhiriev/go-config-engine/models"
	"golang.org/x/mod/semver"
)

type schemaService struct {
	schemas store.SchemaRepository
	metrics *metrics.Metrics
	logger  *logger.Logger

	// typed form of the last active record seen, keyed by record ID
	mu     sync.RWMutex
	cached models.Schema
}

// NewSchemaService constructs a [SchemaService].
func NewSchemaService(schemas store.SchemaRepository, m *metrics.Metrics, logger *logger.Logger) SchemaService {
	return &schemaService{
		schemas: schemas,
		metrics: m,
		logger:  logger,
	}
}

// CreateDraft stores doc as a draft without validating its body. Only the
// version is checked here: it must be well formed and strictly greater than
// every stored version.
func (s *schemaService) CreateDraft(ctx context.Context, doc models.SchemaDocument) (models.SchemaRecord, error) {
	log := logger.FromContext(ctx)

	doc.Version = strings.TrimSpace(doc.Version)
	if !validators.ValidVersion(doc.Version) {
		return models.SchemaRecord{}, fmt.Errorf("%w: %q", ErrInvalidSchemaVersion, doc.Version)
	}

	versions, err := s.schemas.ListVersions(ctx)
	if err != nil {
		return models.SchemaRecord{}, err
	}
	for _, existing := range versions {
		switch cmp := semver.Compare("v"+doc.Version, "v"+existing); {
		case cmp == 0:
			return models.SchemaRecord{}, store.ErrSchemaVersionExists
		case cmp < 0:
			return models.SchemaRecord{}, fmt.Errorf("%w: %s is not after %s", ErrSchemaVersionNotIncreasing, doc.Version, existing)
		}
	}

	record, err := s.schemas.CreateSchema(ctx, models.SchemaRecord{
		Version:  doc.Version,
		State:    models.SchemaStateDraft,
		Document: doc,
	})
	if err != nil {
		return models.SchemaRecord{}, err
	}

	log.Info().
		Str("func", "*schemaService.CreateDraft").
		Int64("schema_id", record.ID).
		Str("version", record.Version).
		Msg("schema draft created")

	return record, nil
}

// Validate moves a draft to validated when its document passes
// [validators.ValidateSchema]. Validating an already validated schema is a
// no-op; active and superseded schemas answer [store.ErrSchemaStateConflict].
func (s *schemaService) Validate(ctx context.Context, id int64) (models.SchemaRecord, error) {
	log := logger.FromContext(ctx)

	record, err := s.schemas.GetSchema(ctx, id)
	if err != nil {
		return models.SchemaRecord{}, err
	}

	switch record.State {
	case models.SchemaStateValidated:
		return record, nil
	case models.SchemaStateDraft:
	default:
		return models.SchemaRecord{}, fmt.Errorf("%w: schema %d is %s", store.ErrSchemaStateConflict, id, record.State)
	}

	if _, err = validators.ValidateSchema(record.Document); err != nil {
		var violations models.SchemaViolations
		if errors.As(err, &violations) {
			s.metrics.RecordSchemaValidation(violations)
			log.Info().
				Str("func", "*schemaService.Validate").
				Int64("schema_id", id).
				Int("violations", len(violations)).
				Msg("schema rejected")
		}
		return models.SchemaRecord{}, err
	}
	s.metrics.RecordSchemaValidation(nil)

	return s.schemas.MarkValidated(ctx, id)
}

// Activate makes a validated schema the active one and supersedes the
// previous active schema in the same transaction.
func (s *schemaService) Activate(ctx context.Context, id int64) (models.ActivationRecord, error) {
	log := logger.FromContext(ctx)

	activation, err := s.schemas.ActivateSchema(ctx, id)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrConcurrentActivationConflict):
		s.metrics.RecordActivation(metrics.ResultConflict)
		return models.ActivationRecord{}, err
	case errors.Is(err, store.ErrSchemaNotValidated), errors.Is(err, store.ErrSchemaNotFound):
		s.metrics.RecordActivation(metrics.ResultRejected)
		return models.ActivationRecord{}, err
	default:
		s.metrics.RecordActivation(metrics.ResultError)
		return models.ActivationRecord{}, err
	}

	s.metrics.RecordActivation(metrics.ResultAccepted)
	s.metrics.SetActiveSchema(activation.SchemaID, activation.Version)

	log.Info().
		Str("func", "*schemaService.Activate").
		Int64("schema_id", activation.SchemaID).
		Str("version", activation.Version).
		Str("previous_version", activation.PreviousVersion).
		Msg("schema activated")

	return activation, nil
}

// Get returns the stored schema with id.
func (s *schemaService) Get(ctx context.Context, id int64) (models.SchemaRecord, error) {
	return s.schemas.GetSchema(ctx, id)
}

// List returns the stored schemas, filtered by state when filter.State is set.
func (s *schemaService) List(ctx context.Context, filter models.SchemaFilter) ([]models.SchemaRecord, error) {
	if filter.State != "" && !filter.State.IsKnown() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchemaState, filter.State)
	}
	return s.schemas.ListSchemas(ctx, filter)
}

// Active returns the active record together with its typed form. The typed
// schema is rebuilt only when the active record id changes.
func (s *schemaService) Active(ctx context.Context) (models.SchemaRecord, models.Schema, error) {
	record, err := s.schemas.GetActiveSchema(ctx)
	if err != nil {
		return models.SchemaRecord{}, models.Schema{}, err
	}

	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()
	if cached.ID == record.ID {
		return record, cached, nil
	}

	schema, err := validators.ValidateSchema(record.Document)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*schemaService.Active").
			Int64("schema_id", record.ID).
			Msg("stored active schema does not validate")
		return models.SchemaRecord{}, models.Schema{}, fmt.Errorf("%w: %w", ErrCorruptActiveSchema, err)
	}
	schema.ID = record.ID

	s.mu.Lock()
	s.cached = schema
	s.mu.Unlock()

	return record, schema, nil
}
