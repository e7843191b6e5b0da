// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-config-engine/internal/logger"
	"github.com/MKhiriev/go-config-engine/internal/metrics"
	"github.com/MKhiriev/go-config-engine/internal/mock"
	"github.com/MKhiriev/go-config-engine/internal/store"
	"github.com/MKhiriev/go-config-engine/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func limitsDocument(version string) models.SchemaDocument {
	return models.SchemaDocument{
		Version: version,
		Namespaces: []models.NamespaceDocument{{
			Name: "limits",
			Fields: []models.FieldDocument{
				{Name: "max_users", Type: models.FieldTypeInteger, Default: 100, Min: 1, Max: 1000},
				{Name: "max_projects", Type: models.FieldTypeInteger, Default: 10, Min: 1},
			},
		}, {
			Name: "ui",
			Fields: []models.FieldDocument{
				{Name: "theme", Type: models.FieldTypeEnum, Default: "light", Choices: []any{"light", "dark"}},
			},
		}},
	}
}

func newTestSchemaSvc(t *testing.T) (*schemaService, *mock.MockSchemaRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSchemaRepository(ctrl)

	svc := NewSchemaService(repo, metrics.New(prometheus.NewRegistry()), logger.Nop()).(*schemaService)
	return svc, repo
}

// ── CreateDraft ──────────────────────────────────────────────────────────────

func TestSchemaService_CreateDraft_Success(t *testing.T) {
	svc, repo := newTestSchemaSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().ListVersions(ctx).Return([]string{"1.0.0", "1.9.3"}, nil),
		repo.EXPECT().CreateSchema(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, r models.SchemaRecord) (models.SchemaRecord, error) {
				assert.Equal(t, "1.10.0", r.Version)
				assert.Equal(t, models.SchemaStateDraft, r.State)
				r.ID = 3
				return r, nil
			},
		),
	)

	record, err := svc.CreateDraft(ctx, limitsDocument(" 1.10.0 "))
	require.NoError(t, err)
	assert.Equal(t, int64(3), record.ID)
}

func TestSchemaService_CreateDraft_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		existing []string
		wantErr  error
	}{
		{name: "malformed", version: "v1.0", wantErr: ErrInvalidSchemaVersion},
		{name: "prerelease", version: "1.0.0-rc1", wantErr: ErrInvalidSchemaVersion},
		{name: "leading zero", version: "09.0.0", wantErr: ErrInvalidSchemaVersion},
		{name: "leading zero after existing", version: "010.0.0", wantErr: ErrInvalidSchemaVersion},
		{name: "duplicate", version: "1.0.0", existing: []string{"1.0.0"}, wantErr: store.ErrSchemaVersionExists},
		{name: "older", version: "1.2.0", existing: []string{"1.0.0", "1.10.0"}, wantErr: ErrSchemaVersionNotIncreasing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestSchemaSvc(t)
			if tt.existing != nil {
				repo.EXPECT().ListVersions(gomock.Any()).Return(tt.existing, nil)
			}

			_, err := svc.CreateDraft(context.Background(), limitsDocument(tt.version))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Validate ─────────────────────────────────────────────────────────────────

func TestSchemaService_Validate_Draft(t *testing.T) {
	svc, repo := newTestSchemaSvc(t)
	ctx := context.Background()
	draft := models.SchemaRecord{ID: 1, Version: "1.0.0", State: models.SchemaStateDraft, Document: limitsDocument("1.0.0")}

	repo.EXPECT().GetSchema(ctx, int64(1)).Return(draft, nil)
	repo.EXPECT().MarkValidated(ctx, int64(1)).DoAndReturn(
		func(_ context.Context, _ int64) (models.SchemaRecord, error) {
			draft.State = models.SchemaStateValidated
			return draft, nil
		},
	)

	record, err := svc.Validate(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.SchemaStateValidated, record.State)
}

func TestSchemaService_Validate_Violations(t *testing.T) {
	svc, repo := newTestSchemaSvc(t)
	ctx := context.Background()

	doc := limitsDocument("1.0.0")
	doc.Namespaces[0].Fields[0].Default = 5000
	doc.Namespaces[1].Fields = append(doc.Namespaces[1].Fields, doc.Namespaces[1].Fields[0])

	repo.EXPECT().GetSchema(ctx, int64(1)).Return(models.SchemaRecord{ID: 1, State: models.SchemaStateDraft, Document: doc}, nil)
	// MarkValidated must not be called

	_, err := svc.Validate(ctx, 1)
	require.Error(t, err)

	var violations models.SchemaViolations
	require.True(t, errors.As(err, &violations))
	assert.True(t, violations.Has(models.CodeInvalidDefault))
	assert.True(t, violations.Has(models.CodeDuplicateName))
}

func TestSchemaService_Validate_AlreadyValidated(t *testing.T) {
	svc, repo := newTestSchemaSvc(t)
	validated := models.SchemaRecord{ID: 1, State: models.SchemaStateValidated}

	repo.EXPECT().GetSchema(gomock.Any(), int64(1)).Return(validated, nil)

	record, err := svc.Validate(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, validated, record)
}

func TestSchemaService_Validate_WrongState(t *testing.T) {
	for _, state := range []models.SchemaState{models.SchemaStateActive, models.SchemaStateSuperseded} {
		t.Run(string(state), func(t *testing.T) {
			svc, repo := newTestSchemaSvc(t)
			repo.EXPECT().GetSchema(gomock.Any(), int64(1)).Return(models.SchemaRecord{ID: 1, State: state}, nil)

			_, err := svc.Validate(context.Background(), 1)
			assert.ErrorIs(t, err, store.ErrSchemaStateConflict)
		})
	}
}

// ── Activate ─────────────────────────────────────────────────────────────────

func TestSchemaService_Activate(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
	}{
		{name: "success"},
		{name: "not validated", repoErr: store.ErrSchemaNotValidated},
		{name: "concurrent conflict", repoErr: store.ErrConcurrentActivationConflict},
		{name: "storage failure", repoErr: store.ErrCommitingTransaction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestSchemaSvc(t)
			activation := models.ActivationRecord{SchemaID: 2, Version: "2.0.0", PreviousSchemaID: 1, PreviousVersion: "1.0.0"}

			if tt.repoErr != nil {
				repo.EXPECT().ActivateSchema(gomock.Any(), int64(2)).Return(models.ActivationRecord{}, tt.repoErr)
			} else {
				repo.EXPECT().ActivateSchema(gomock.Any(), int64(2)).Return(activation, nil)
			}

			got, err := svc.Activate(context.Background(), 2)
			if tt.repoErr != nil {
				assert.ErrorIs(t, err, tt.repoErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, activation, got)
		})
	}
}

// ── Active ───────────────────────────────────────────────────────────────────

func TestSchemaService_Active_TypedAndCached(t *testing.T) {
	svc, repo := newTestSchemaSvc(t)
	record := models.SchemaRecord{ID: 4, Version: "1.0.0", State: models.SchemaStateActive, Document: limitsDocument("1.0.0")}

	repo.EXPECT().GetActiveSchema(gomock.Any()).Return(record, nil).Times(2)

	_, schema, err := svc.Active(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), schema.ID)
	field, ok := schema.Lookup("limits", "max_users")
	require.True(t, ok)
	assert.Equal(t, int64(100), field.Default())

	_, again, err := svc.Active(context.Background())
	require.NoError(t, err)
	assert.Equal(t, schema, again)
}

func TestSchemaService_Active_None(t *testing.T) {
	svc, repo := newTestSchemaSvc(t)
	repo.EXPECT().GetActiveSchema(gomock.Any()).Return(models.SchemaRecord{}, store.ErrNoActiveSchema)

	_, _, err := svc.Active(context.Background())
	assert.ErrorIs(t, err, store.ErrNoActiveSchema)
}

func TestSchemaService_Active_Corrupt(t *testing.T) {
	svc, repo := newTestSchemaSvc(t)
	repo.EXPECT().GetActiveSchema(gomock.Any()).Return(models.SchemaRecord{ID: 9, State: models.SchemaStateActive}, nil)

	_, _, err := svc.Active(context.Background())
	assert.ErrorIs(t, err, ErrCorruptActiveSchema)
}

func TestSchemaService_List_UnknownState(t *testing.T) {
	svc, _ := newTestSchemaSvc(t)

	_, err := svc.List(context.Background(), models.SchemaFilter{State: "archived"})
	assert.ErrorIs(t, err, ErrUnknownSchemaState)
}
