// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-config-engine/models"
)

// MemoryStore keeps schemas and organizations in process. It implements
// both [SchemaRepository] and [OrganizationRepository]; a single mutex
// makes activation and override replacement atomic with respect to each
// other.
type MemoryStore struct {
	mu sync.RWMutex

	nextSchemaID int64
	schemas      map[int64]models.SchemaRecord

	nextOrgID     int64
	organizations map[int64]models.Organization

	now func() time.Time
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextSchemaID:  1,
		schemas:       make(map[int64]models.SchemaRecord),
		nextOrgID:     1,
		organizations: make(map[int64]models.Organization),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// CreateSchema implements [SchemaRepository]. A duplicate version returns
// [ErrSchemaVersionExists].
func (m *MemoryStore) CreateSchema(_ context.Context, record models.SchemaRecord) (models.SchemaRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.schemas {
		if existing.Version == record.Version {
			return models.SchemaRecord{}, ErrSchemaVersionExists
		}
	}

	now := m.now()
	record.ID = m.nextSchemaID
	record.Document = record.Document.Clone()
	record.CreatedAt = now
	record.UpdatedAt = now
	record.ActivatedAt = nil
	m.nextSchemaID++

	m.schemas[record.ID] = record
	return cloneRecord(record), nil
}

// GetSchema implements [SchemaRepository].
func (m *MemoryStore) GetSchema(_ context.Context, id int64) (models.SchemaRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.schemas[id]
	if !ok {
		return models.SchemaRecord{}, ErrSchemaNotFound
	}
	return cloneRecord(record), nil
}

// GetActiveSchema implements [SchemaRepository].
func (m *MemoryStore) GetActiveSchema(_ context.Context) (models.SchemaRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.activeLocked()
	if !ok {
		return models.SchemaRecord{}, ErrNoActiveSchema
	}
	return cloneRecord(record), nil
}

// ListSchemas implements [SchemaRepository]. Records are ordered by ID.
func (m *MemoryStore) ListSchemas(_ context.Context, filter models.SchemaFilter) ([]models.SchemaRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]models.SchemaRecord, 0, len(m.schemas))
	for _, record := range m.schemas {
		if filter.State != "" && record.State != filter.State {
			continue
		}
		records = append(records, cloneRecord(record))
	}
	slices.SortFunc(records, func(a, b models.SchemaRecord) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return records, nil
}

// ListVersions implements [SchemaRepository].
func (m *MemoryStore) ListVersions(ctx context.Context) ([]string, error) {
	records, err := m.ListSchemas(ctx, models.SchemaFilter{})
	if err != nil {
		return nil, err
	}
	versions := make([]string, 0, len(records))
	for _, record := range records {
		versions = append(versions, record.Version)
	}
	return versions, nil
}

// MarkValidated implements [SchemaRepository].
func (m *MemoryStore) MarkValidated(_ context.Context, id int64) (models.SchemaRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.schemas[id]
	if !ok {
		return models.SchemaRecord{}, ErrSchemaNotFound
	}
	if record.State != models.SchemaStateDraft {
		return models.SchemaRecord{}, ErrSchemaStateConflict
	}

	record.State = models.SchemaStateValidated
	record.UpdatedAt = m.now()
	m.schemas[id] = record
	return cloneRecord(record), nil
}

// ActivateSchema implements [SchemaRepository]. The previous active schema,
// if any, is superseded under the same lock.
func (m *MemoryStore) ActivateSchema(_ context.Context, id int64) (models.ActivationRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	target, ok := m.schemas[id]
	if !ok {
		return models.ActivationRecord{}, ErrSchemaNotFound
	}
	if target.State != models.SchemaStateValidated {
		return models.ActivationRecord{}, ErrSchemaNotValidated
	}

	now := m.now()
	activation := models.ActivationRecord{
		SchemaID:    id,
		Version:     target.Version,
		ActivatedAt: now,
	}

	if previous, found := m.activeLocked(); found {
		previous.State = models.SchemaStateSuperseded
		previous.UpdatedAt = now
		m.schemas[previous.ID] = previous
		activation.PreviousSchemaID = previous.ID
		activation.PreviousVersion = previous.Version
	}

	target.State = models.SchemaStateActive
	target.UpdatedAt = now
	target.ActivatedAt = &now
	m.schemas[id] = target

	return activation, nil
}

// activeLocked expects m.mu to be held.
func (m *MemoryStore) activeLocked() (models.SchemaRecord, bool) {
	for _, record := range m.schemas {
		if record.State == models.SchemaStateActive {
			return record, true
		}
	}
	return models.SchemaRecord{}, false
}

// CreateOrganization implements [OrganizationRepository]. Both the name and
// the slug must be unique.
func (m *MemoryStore) CreateOrganization(_ context.Context, org models.Organization) (models.Organization, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.organizations {
		if existing.Name == org.Name || existing.Slug == org.Slug {
			return models.Organization{}, ErrOrganizationExists
		}
	}

	now := m.now()
	org.ID = m.nextOrgID
	org.Overrides = org.Overrides.Clone()
	if org.Overrides == nil {
		org.Overrides = models.Overrides{}
	}
	org.OverridesSchemaID = 0
	org.CreatedAt = now
	org.UpdatedAt = now
	m.nextOrgID++

	m.organizations[org.ID] = org
	return cloneOrganization(org), nil
}

// GetOrganization implements [OrganizationRepository].
func (m *MemoryStore) GetOrganization(_ context.Context, id int64) (models.Organization, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	org, ok := m.organizations[id]
	if !ok {
		return models.Organization{}, ErrOrganizationNotFound
	}
	return cloneOrganization(org), nil
}

// GetOrganizationBySlug implements [OrganizationRepository].
func (m *MemoryStore) GetOrganizationBySlug(_ context.Context, slug string) (models.Organization, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, org := range m.organizations {
		if org.Slug == slug {
			return cloneOrganization(org), nil
		}
	}
	return models.Organization{}, ErrOrganizationNotFound
}

// ListOrganizations implements [OrganizationRepository].
func (m *MemoryStore) ListOrganizations(_ context.Context) ([]models.Organization, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	orgs := make([]models.Organization, 0, len(m.organizations))
	for _, org := range m.organizations {
		orgs = append(orgs, cloneOrganization(org))
	}
	slices.SortFunc(orgs, func(a, b models.Organization) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return orgs, nil
}

// ReplaceOverrides implements [OrganizationRepository]. It fails with
// [ErrActiveSchemaChanged] unless schemaID is the active schema.
func (m *MemoryStore) ReplaceOverrides(_ context.Context, orgID, schemaID int64, overrides models.Overrides) (models.Organization, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	active, ok := m.activeLocked()
	if !ok || active.ID != schemaID {
		return models.Organization{}, ErrActiveSchemaChanged
	}

	org, ok := m.organizations[orgID]
	if !ok {
		return models.Organization{}, ErrOrganizationNotFound
	}

	org.Overrides = overrides.Clone()
	if org.Overrides == nil {
		org.Overrides = models.Overrides{}
	}
	org.OverridesSchemaID = schemaID
	org.UpdatedAt = m.now()
	m.organizations[orgID] = org

	return cloneOrganization(org), nil
}

func cloneRecord(record models.SchemaRecord) models.SchemaRecord {
	record.Document = record.Document.Clone()
	if record.ActivatedAt != nil {
		at := *record.ActivatedAt
		record.ActivatedAt = &at
	}
	return record
}

func cloneOrganization(org models.Organization) models.Organization {
	org.Overrides = org.Overrides.Clone()
	return org
}
