// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-config-engine/internal/logger"
	"github.com/MKhiriev/go-config-engine/internal/metrics"
	"github.com/MKhiriev/go-config-engine/internal/resolver"
	"github.com/MKhiriev/go-config-engine/internal/store"
	"github.com/MKhiriev/go-config-engine/internal/utils"
	"github.com/MKhiriev/go-config-engine/internal/validators"
	"github.com/MKhiriev/go-config-engine/models"
)

type organizationService struct {
	organizations store.OrganizationRepository
	schemas       SchemaService
	metrics       *metrics.Metrics
	logger        *logger.Logger
}

// NewOrganizationService constructs an [OrganizationService]. The active
// schema is read through schemas.
func NewOrganizationService(organizations store.OrganizationRepository, schemas SchemaService, m *metrics.Metrics, logger *logger.Logger) OrganizationService {
	return &organizationService{
		organizations: organizations,
		schemas:       schemas,
		metrics:       m,
		logger:        logger,
	}
}

// Create derives the slug from the trimmed name and stores an organization
// with no overrides. A name with no ASCII letters or digits is rejected with
// [ErrInvalidOrganizationName].
func (s *organizationService) Create(ctx context.Context, name string) (models.Organization, error) {
	name = strings.TrimSpace(name)
	slug := utils.Slugify(name)
	if slug == "" {
		return models.Organization{}, ErrInvalidOrganizationName
	}

	org, err := s.organizations.CreateOrganization(ctx, models.Organization{
		Name:      name,
		Slug:      slug,
		Overrides: models.Overrides{},
	})
	if err != nil {
		return models.Organization{}, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "*organizationService.Create").
		Int64("organization_id", org.ID).
		Str("slug", org.Slug).
		Msg("organization created")

	return org, nil
}

// Get resolves ref as a numeric id first and falls back to the slug.
func (s *organizationService) Get(ctx context.Context, ref string) (models.Organization, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil && id > 0 {
		org, err := s.organizations.GetOrganization(ctx, id)
		if !errors.Is(err, store.ErrOrganizationNotFound) {
			return org, err
		}
		// a purely numeric slug is still possible
	}
	return s.organizations.GetOrganizationBySlug(ctx, ref)
}

// List returns every organization.
func (s *organizationService) List(ctx context.Context) ([]models.Organization, error) {
	return s.organizations.ListOrganizations(ctx)
}

// ApplyOverrides validates proposed against the active schema on behalf of
// caller and, if every entry passes, replaces the organization's stored
// overrides with it. The document is all or nothing: a single violation
// rejects it with [models.OverrideViolations] and nothing is written.
//
// The stored overrides are tagged with the active schema id. If another
// activation happens between the read and the write, the repository
// returns [store.ErrActiveSchemaChanged].
func (s *organizationService) ApplyOverrides(ctx context.Context, ref string, proposed models.Overrides, caller models.CallerContext) (models.EffectiveConfig, error) {
	log := logger.FromContext(ctx)

	org, err := s.Get(ctx, ref)
	if err != nil {
		return models.EffectiveConfig{}, err
	}

	record, schema, err := s.schemas.Active(ctx)
	if err != nil {
		return models.EffectiveConfig{}, err
	}

	accepted, err := validators.ValidateOverrides(schema, proposed, caller)
	if err != nil {
		var violations models.OverrideViolations
		if errors.As(err, &violations) {
			s.metrics.RecordOverrideValidation(violations)
			log.Info().
				Str("func", "*organizationService.ApplyOverrides").
				Int64("organization_id", org.ID).
				Str("role", caller.Role).
				Str("environment", caller.Environment).
				Int("violations", len(violations)).
				Msg("override document rejected")
		}
		return models.EffectiveConfig{}, err
	}
	s.metrics.RecordOverrideValidation(nil)

	updated, err := s.organizations.ReplaceOverrides(ctx, org.ID, record.ID, accepted)
	if err != nil {
		return models.EffectiveConfig{}, err
	}

	log.Info().
		Str("func", "*organizationService.ApplyOverrides").
		Int64("organization_id", org.ID).
		Str("schema_version", record.Version).
		Str("subject", caller.Subject).
		Int("overrides", accepted.Len()).
		Msg("overrides replaced")

	return resolver.Resolve(schema, updated.Overrides), nil
}

// EffectiveConfig resolves the organization's stored overrides over the
// active schema defaults. Stale overrides are skipped, logged and counted.
func (s *organizationService) EffectiveConfig(ctx context.Context, ref string) (models.EffectiveConfig, error) {
	org, err := s.Get(ctx, ref)
	if err != nil {
		return models.EffectiveConfig{}, err
	}

	_, schema, err := s.schemas.Active(ctx)
	if err != nil {
		return models.EffectiveConfig{}, err
	}

	config := resolver.Resolve(schema, org.Overrides)
	s.reportStale(ctx, org, config.Diagnostics)

	return config, nil
}

// PreviewEffectiveConfig layers validated user overrides on top of the
// organization's and resolves both. Nothing is stored.
func (s *organizationService) PreviewEffectiveConfig(ctx context.Context, ref string, user models.Overrides, caller models.CallerContext) (models.EffectiveConfig, error) {
	org, err := s.Get(ctx, ref)
	if err != nil {
		return models.EffectiveConfig{}, err
	}

	_, schema, err := s.schemas.Active(ctx)
	if err != nil {
		return models.EffectiveConfig{}, err
	}

	accepted, err := validators.ValidateOverrides(schema, user, caller)
	if err != nil {
		return models.EffectiveConfig{}, err
	}

	config := resolver.ResolveLayers(schema,
		resolver.Layer{Name: resolver.LayerOrganization, Overrides: org.Overrides},
		resolver.Layer{Name: resolver.LayerUser, Overrides: accepted},
	)
	s.reportStale(ctx, org, config.Diagnostics)

	return config, nil
}

// AuditStaleOverrides resolves every organization against the active schema
// and reports those whose stored overrides no longer apply.
func (s *organizationService) AuditStaleOverrides(ctx context.Context) (models.StaleAuditReport, error) {
	log := logger.FromContext(ctx)

	record, schema, err := s.schemas.Active(ctx)
	if err != nil {
		s.metrics.RecordStaleAudit(models.StaleAuditReport{}, err)
		return models.StaleAuditReport{}, err
	}

	orgs, err := s.organizations.ListOrganizations(ctx)
	if err != nil {
		s.metrics.RecordStaleAudit(models.StaleAuditReport{}, err)
		return models.StaleAuditReport{}, err
	}

	report := models.StaleAuditReport{
		SchemaID:      record.ID,
		SchemaVersion: record.Version,
		Organizations: len(orgs),
	}
	for _, org := range orgs {
		config := resolver.Resolve(schema, org.Overrides)
		if len(config.Diagnostics) == 0 {
			continue
		}
		report.Findings = append(report.Findings, models.StaleAuditFinding{
			OrganizationID: org.ID,
			Slug:           org.Slug,
			Diagnostics:    config.Diagnostics,
		})
	}
	s.metrics.RecordStaleAudit(report, nil)

	log.Info().
		Str("func", "*organizationService.AuditStaleOverrides").
		Str("schema_version", report.SchemaVersion).
		Int("organizations", report.Organizations).
		Int("stale_organizations", len(report.Findings)).
		Msg("stale override audit finished")

	return report, nil
}

func (s *organizationService) reportStale(ctx context.Context, org models.Organization, diagnostics []models.Diagnostic) {
	if len(diagnostics) == 0 {
		return
	}
	s.metrics.RecordStaleDiagnostics(diagnostics)

	log := logger.FromContext(ctx)
	for _, d := range diagnostics {
		log.Warn().
			Str("func", "*organizationService.reportStale").
			Int64("organization_id", org.ID).
			Str("layer", d.Layer).
			Str("namespace", d.Namespace).
			Str("field", d.Field).
			Str("reason", d.Reason).
			Msg("stale override ignored")
	}
}
