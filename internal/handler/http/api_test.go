// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-config-engine/internal/config"
	"github.com/MKhiriev/go-config-engine/internal/identity"
	"github.com/MKhiriev/go-config-engine/internal/logger"
	"github.com/MKhiriev/go-config-engine/internal/metrics"
	"github.com/MKhiriev/go-config-engine/internal/service"
	"github.com/MKhiriev/go-config-engine/internal/store"
	"github.com/MKhiriev/go-config-engine/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schemaV1 = `{
  "version": "1.0.0",
  "namespaces": [
    {"name": "limits", "fields": [
      {"name": "max_users", "type": "integer", "default": 100, "min": 1, "max": 1000}
    ]},
    {"name": "ui", "fields": [
      {"name": "theme", "type": "enum", "default": "light", "choices": ["light", "dark"]}
    ]}
  ]
}`

const schemaV2YAML = `
version: 2.0.0
namespaces:
  - name: limits
    fields:
      - name: max_users
        type: integer
        default: 100
        min: 1
        max: 200
`

type testAPI struct {
	t      *testing.T
	server *httptest.Server
	token  string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	services := service.NewServices(store.NewMemoryStorages(), models.NewBuildInfo("test", "", ""), m, logger.Nop())

	tokens := identity.NewTokenResolver(config.App{
		TokenSignKey:  "test-key",
		TokenIssuer:   "go-config-engine",
		TokenDuration: time.Hour,
	})
	token, err := tokens.Issue(models.CallerContext{Subject: "ops", Role: "admin", Environment: "production"})
	require.NoError(t, err)

	h := NewHandler(services, tokens, m, reg, logger.Nop())
	server := httptest.NewServer(h.Init())
	t.Cleanup(server.Close)

	return &testAPI{t: t, server: server, token: token}
}

func (a *testAPI) do(method, path, contentType, body string, authorized bool) (*http.Response, []byte) {
	a.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(a.t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if authorized {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.server.Client().Do(req)
	require.NoError(a.t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)
	return resp, data
}

func (a *testAPI) publish(body, contentType string) models.SchemaRecord {
	a.t.Helper()

	resp, data := a.do(http.MethodPost, "/api/schemas", contentType, body, false)
	require.Equal(a.t, http.StatusCreated, resp.StatusCode, string(data))
	var record models.SchemaRecord
	require.NoError(a.t, json.Unmarshal(data, &record))

	id := jsonID(record.ID)
	resp, data = a.do(http.MethodPost, "/api/schemas/"+id+"/validate", "", "", false)
	require.Equal(a.t, http.StatusOK, resp.StatusCode, string(data))
	resp, data = a.do(http.MethodPost, "/api/schemas/"+id+"/activate", "", "", false)
	require.Equal(a.t, http.StatusOK, resp.StatusCode, string(data))

	return record
}

func jsonID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func decodeViolations(t *testing.T, data []byte) []models.Violation {
	t.Helper()
	var body violationsResponse
	require.NoError(t, json.Unmarshal(data, &body))
	return body.Errors
}

func TestAPI_SchemaLifecycle(t *testing.T) {
	api := newTestAPI(t)

	resp, _ := api.do(http.MethodGet, "/api/schemas/active", "", "", false)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, data := api.do(http.MethodPost, "/api/schemas", "application/json", schemaV1, false)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var draft models.SchemaRecord
	require.NoError(t, json.Unmarshal(data, &draft))
	assert.Equal(t, models.SchemaStateDraft, draft.State)

	// drafts cannot be activated
	resp, _ = api.do(http.MethodPost, "/api/schemas/"+jsonID(draft.ID)+"/activate", "", "", false)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = api.do(http.MethodPost, "/api/schemas/"+jsonID(draft.ID)+"/validate", "", "", false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, data = api.do(http.MethodPost, "/api/schemas/"+jsonID(draft.ID)+"/activate", "", "", false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var activation models.ActivationRecord
	require.NoError(t, json.Unmarshal(data, &activation))
	assert.Equal(t, "1.0.0", activation.Version)
	assert.Zero(t, activation.PreviousSchemaID)

	// same version again
	resp, _ = api.do(http.MethodPost, "/api/schemas", "application/json", schemaV1, false)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	v2 := api.publish(schemaV2YAML, "application/yaml")

	resp, data = api.do(http.MethodGet, "/api/schemas?state=superseded", "", "", false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var superseded []models.SchemaRecord
	require.NoError(t, json.Unmarshal(data, &superseded))
	require.Len(t, superseded, 1)
	assert.Equal(t, draft.ID, superseded[0].ID)

	resp, data = api.do(http.MethodGet, "/api/schemas/active", "", "", false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var active models.SchemaRecord
	require.NoError(t, json.Unmarshal(data, &active))
	assert.Equal(t, v2.ID, active.ID)

	resp, _ = api.do(http.MethodGet, "/api/schemas?state=archived", "", "", false)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp, _ = api.do(http.MethodGet, "/api/schemas/abc", "", "", false)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp, _ = api.do(http.MethodGet, "/api/schemas/404", "", "", false)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_InvalidSchemaListsEveryViolation(t *testing.T) {
	api := newTestAPI(t)

	invalid := `{"version": "3.0.0", "namespaces": [
	  {"name": "limits", "fields": [
	    {"name": "max_users", "type": "integer", "default": 5000, "min": 1, "max": 1000},
	    {"name": "max_users", "type": "string", "default": "x"}
	  ]}
	]}`
	resp, data := api.do(http.MethodPost, "/api/schemas", "application/json", invalid, false)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var draft models.SchemaRecord
	require.NoError(t, json.Unmarshal(data, &draft))

	resp, data = api.do(http.MethodPost, "/api/schemas/"+jsonID(draft.ID)+"/validate", "", "", false)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	codes := map[models.ViolationCode]bool{}
	for _, v := range decodeViolations(t, data) {
		codes[v.Code] = true
	}
	assert.True(t, codes[models.CodeInvalidDefault])
	assert.True(t, codes[models.CodeDuplicateName])
}

func TestAPI_Overrides(t *testing.T) {
	api := newTestAPI(t)
	api.publish(schemaV1, "application/json")

	resp, data := api.do(http.MethodPost, "/api/organizations", "application/json", `{"name": "Acme Corp"}`, false)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var org models.Organization
	require.NoError(t, json.Unmarshal(data, &org))
	assert.Equal(t, "acme-corp", org.Slug)

	resp, _ = api.do(http.MethodPost, "/api/organizations", "application/json", `{"name": "Acme Corp"}`, false)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// caller required
	resp, _ = api.do(http.MethodPut, "/api/organizations/acme-corp/config", "application/json", `{}`, false)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, data = api.do(http.MethodPut, "/api/organizations/acme-corp/config", "application/json",
		`{"limits": {"max_users": 5000}, "ui": {"theme": "blue"}}`, true)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "replace", resp.Header.Get(overrideSemanticsHeader))
	assert.Len(t, decodeViolations(t, data), 2)

	resp, data = api.do(http.MethodPut, "/api/organizations/acme-corp/config", "application/json",
		`{"limits": {"max_users": 500}}`, true)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))
	assert.JSONEq(t, `{"limits": {"max_users": 500}, "ui": {"theme": "light"}}`, valuesJSON(t, data))

	// numeric ref resolves by id
	resp, data = api.do(http.MethodGet, "/api/organizations/"+jsonID(org.ID)+"/effective-config", "", "", false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"limits": {"max_users": 500}, "ui": {"theme": "light"}}`, valuesJSON(t, data))

	resp, data = api.do(http.MethodPost, "/api/organizations/acme-corp/effective-config/preview", "application/json",
		`{"ui": {"theme": "dark"}}`, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"limits": {"max_users": 500}, "ui": {"theme": "dark"}}`, valuesJSON(t, data))

	// a 2.0.0 schema with a tighter bound makes the stored value stale
	api.publish(schemaV2YAML, "application/yaml")
	resp, data = api.do(http.MethodGet, "/api/organizations/acme-corp/effective-config", "", "", false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var config models.EffectiveConfig
	require.NoError(t, json.NewDecoder(bytes.NewReader(data)).Decode(&config))
	assert.Equal(t, "2.0.0", config.SchemaVersion)
	assert.EqualValues(t, 100, config.Values["limits"]["max_users"])
	require.Len(t, config.Diagnostics, 1)
	assert.Equal(t, models.CodeStaleOverrideIgnored, config.Diagnostics[0].Code)

	resp, _ = api.do(http.MethodGet, "/api/organizations/unknown", "", "", false)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = api.do(http.MethodPut, "/api/organizations/acme-corp/config", "application/json", `{"limits": 5}`, true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_OverridesAsYAML(t *testing.T) {
	api := newTestAPI(t)
	api.publish(schemaV1, "application/json")

	resp, _ := api.do(http.MethodPost, "/api/organizations", "application/json", `{"name": "Acme"}`, false)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	for _, contentType := range []string{"application/yaml", "application/x-yaml", "text/yaml; charset=utf-8"} {
		t.Run(contentType, func(t *testing.T) {
			resp, data := api.do(http.MethodPut, "/api/organizations/acme/config", contentType,
				"limits:\n  max_users: 500\n", true)
			require.Equal(t, http.StatusOK, resp.StatusCode, string(data))
			assert.JSONEq(t, `{"limits": {"max_users": 500}, "ui": {"theme": "light"}}`, valuesJSON(t, data))
		})
	}

	resp, data := api.do(http.MethodPut, "/api/organizations/acme/config", "application/yaml",
		"limits:\n  max_users: 5000\n", true)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	violations := decodeViolations(t, data)
	require.Len(t, violations, 1)
	assert.Equal(t, models.CodeOutOfRange, violations[0].Code)

	resp, data = api.do(http.MethodPost, "/api/organizations/acme/effective-config/preview", "application/yaml",
		"ui:\n  theme: dark\n", true)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))
	assert.JSONEq(t, `{"limits": {"max_users": 500}, "ui": {"theme": "dark"}}`, valuesJSON(t, data))

	resp, _ = api.do(http.MethodPut, "/api/organizations/acme/config", "application/yaml", "limits: 5\n", true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_SchemaRejectsUnknownKeys(t *testing.T) {
	api := newTestAPI(t)

	misspelled := `{"version": "1.0.0", "namespaces": [
	  {"name": "billing", "fields": [
	    {"name": "plan", "type": "string", "default": "free", "mutabel": false}
	  ]}
	]}`
	resp, data := api.do(http.MethodPost, "/api/schemas", "application/json", misspelled, false)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(data), "mutabel")

	misspelledYAML := "version: 1.0.0\nnamespaces:\n  - name: billing\n    fields:\n      - name: plan\n        type: string\n        default: free\n        mutabel: false\n"
	resp, _ = api.do(http.MethodPost, "/api/schemas", "application/yaml", misspelledYAML, false)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, data = api.do(http.MethodGet, "/api/schemas", "", "", false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(data))
}

func TestAPI_UnsupportedMethodIsNotFound(t *testing.T) {
	api := newTestAPI(t)

	for _, path := range []string{"/health", "/api/schemas", "/api/schemas/active", "/api/organizations/acme/config"} {
		t.Run(path, func(t *testing.T) {
			resp, _ := api.do(http.MethodDelete, path, "", "", true)
			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}

func valuesJSON(t *testing.T, data []byte) string {
	t.Helper()
	var body struct {
		Values json.RawMessage `json:"values"`
	}
	require.NoError(t, json.Unmarshal(data, &body))
	return string(body.Values)
}

func TestAPI_HealthAndMetrics(t *testing.T) {
	api := newTestAPI(t)

	resp, data := api.do(http.MethodGet, "/health", "", "", false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var health models.HealthStatus
	require.NoError(t, json.Unmarshal(data, &health))
	assert.Equal(t, models.HealthOK, health.Status)
	assert.Equal(t, "test", health.Build.Version)

	resp, data = api.do(http.MethodGet, "/metrics", "", "", false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(data), "config_engine_http_request_duration_seconds")

	resp, _ = api.do(http.MethodDelete, "/health", "", "", false)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
