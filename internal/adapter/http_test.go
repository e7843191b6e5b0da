// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-config-engine/internal/config"
	"github.com/MKhiriev/go-config-engine/internal/logger"
	"github.com/MKhiriev/go-config-engine/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T, handler http.HandlerFunc) ConfigAPI {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	api, err := NewHTTPConfigAPI(config.ClientAdapter{
		HTTPAddress:    server.URL,
		RequestTimeout: 5 * time.Second,
		Token:          " secret-token ",
	}, logger.Nop())
	require.NoError(t, err)
	return api
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "https://config.example.com/", want: "https://config.example.com"},
		{raw: "  ", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateSchema(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/schemas", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var doc models.SchemaDocument
		require.NoError(t, json.NewDecoder(r.Body).Decode(&doc))
		writeJSON(w, http.StatusCreated, models.SchemaRecord{ID: 4, Version: doc.Version, State: models.SchemaStateDraft})
	})

	record, err := api.CreateSchema(context.Background(), models.SchemaDocument{Version: "1.2.0"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), record.ID)
	assert.Equal(t, "1.2.0", record.Version)
}

func TestListSchemas_StateQuery(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "superseded", r.URL.Query().Get("state"))
		writeJSON(w, http.StatusOK, []models.SchemaRecord{{ID: 1}, {ID: 2}})
	})

	records, err := api.ListSchemas(context.Background(), models.SchemaStateSuperseded)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestValidateSchema_Violations(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/schemas/3/validate", r.URL.Path)
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": []models.Violation{
			{Code: models.CodeInvalidDefault, Namespace: "limits", Field: "max_users", Message: "default out of range"},
		}})
	})

	_, err := api.ValidateSchema(context.Background(), 3)

	var violations models.SchemaViolations
	require.True(t, errors.As(err, &violations))
	assert.True(t, violations.Has(models.CodeInvalidDefault))
}

func TestActivateSchema_ErrorMapping(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{http.StatusConflict, ErrConflict},
		{http.StatusUnprocessableEntity, ErrUnprocessable},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			api := newTestAPI(t, func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, tt.status, map[string]string{"error": "schema is not validated"})
			})

			_, err := api.ActivateSchema(context.Background(), 1)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "schema is not validated")
		})
	}
}

func TestReplaceOverrides(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/organizations/acme-corp/config", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"limits": {"max_users": 500}}`, string(body))

		writeJSON(w, http.StatusOK, models.EffectiveConfig{
			SchemaVersion: "1.0.0",
			Values:        map[string]map[string]any{"limits": {"max_users": 500}},
		})
	})

	config, err := api.ReplaceOverrides(context.Background(), "acme-corp", models.Overrides{"limits": {"max_users": 500}})
	require.NoError(t, err)
	value, ok := config.Value("limits", "max_users")
	require.True(t, ok)
	assert.Equal(t, json.Number("500"), value)
}

func TestReplaceOverrides_Rejected(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": []models.Violation{
			{Code: models.CodeOutOfRange, Namespace: "limits", Field: "max_users"},
			{Code: models.CodeInvalidChoice, Namespace: "ui", Field: "theme"},
		}})
	})

	_, err := api.ReplaceOverrides(context.Background(), "acme-corp", nil)

	var violations models.OverrideViolations
	require.True(t, errors.As(err, &violations))
	assert.Len(t, violations, 2)
}

func TestReplaceOverrides_Unauthorized(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "token is expired"})
	})

	_, err := api.ReplaceOverrides(context.Background(), "acme-corp", models.Overrides{})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestEffectiveConfig_EscapesRef(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/organizations/a%2Fb/effective-config", r.URL.EscapedPath())
		writeJSON(w, http.StatusOK, models.EffectiveConfig{SchemaVersion: "1.0.0"})
	})

	config, err := api.EffectiveConfig(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", config.SchemaVersion)
}

func TestHealth_Degraded(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusServiceUnavailable, models.HealthStatus{Status: models.HealthDegraded, Storage: "connection refused"})
	})

	status, err := api.Health(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, models.HealthDegraded, status.Status)
	assert.Equal(t, "connection refused", status.Storage)
}

func TestTransportError(t *testing.T) {
	api, err := NewHTTPConfigAPI(config.ClientAdapter{HTTPAddress: "127.0.0.1:1", RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	_, err = api.ValidateSchema(context.Background(), 1)
	assert.Error(t, err)
}
