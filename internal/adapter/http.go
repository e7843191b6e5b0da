// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-config-engine/internal/config"
	"github.com/MKhiriev/go-config-engine/internal/logger"
	"github.com/MKhiriev/go-config-engine/internal/utils"
	"github.com/MKhiriev/go-config-engine/models"
	"github.com/go-resty/resty/v2"
)

type httpConfigAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPConfigAPI constructs the REST implementation of [ConfigAPI]. The
// address may omit the scheme, in which case http is assumed.
func NewHTTPConfigAPI(cfg config.ClientAdapter, logger *logger.Logger) (ConfigAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	api := &httpConfigAPI{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	api.SetToken(cfg.Token)

	return api, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ConfigAPI]. It stores token (whitespace-trimmed) for
// the Authorization header of the override endpoints.
func (h *httpConfigAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpConfigAPI) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

// authorized is request plus the bearer token, when one is set.
func (h *httpConfigAPI) authorized(ctx context.Context) *resty.Request {
	req := h.request(ctx)

	h.mu.RLock()
	token := h.token
	h.mu.RUnlock()

	if token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// send executes req and maps non-2xx answers to errors.
func (h *httpConfigAPI) send(req *resty.Request, method, path string) (*resty.Response, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	h.logger.Debug().
		Str("func", "*httpConfigAPI.send").
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Send()

	return resp, mapHTTPError(resp)
}

// CreateSchema implements [ConfigAPI]. It POSTs doc as JSON to
// POST /api/schemas and returns the stored draft.
func (h *httpConfigAPI) CreateSchema(ctx context.Context, doc models.SchemaDocument) (models.SchemaRecord, error) {
	var record models.SchemaRecord
	req := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(doc).
		SetResult(&record)

	if _, err := h.send(req, http.MethodPost, "/api/schemas"); err != nil {
		return models.SchemaRecord{}, err
	}
	return record, nil
}

// GetSchema implements [ConfigAPI]. It fetches GET /api/schemas/{id}.
func (h *httpConfigAPI) GetSchema(ctx context.Context, id int64) (models.SchemaRecord, error) {
	var record models.SchemaRecord
	req := h.request(ctx).SetResult(&record)

	if _, err := h.send(req, http.MethodGet, "/api/schemas/"+strconv.FormatInt(id, 10)); err != nil {
		return models.SchemaRecord{}, err
	}
	return record, nil
}

// ListSchemas implements [ConfigAPI]. It fetches GET /api/schemas, filtered
// by ?state= when state is not empty.
func (h *httpConfigAPI) ListSchemas(ctx context.Context, state models.SchemaState) ([]models.SchemaRecord, error) {
	var records []models.SchemaRecord
	req := h.request(ctx).SetResult(&records)
	if state != "" {
		req.SetQueryParam("state", string(state))
	}

	if _, err := h.send(req, http.MethodGet, "/api/schemas"); err != nil {
		return nil, err
	}
	return records, nil
}

// ActiveSchema implements [ConfigAPI]. It fetches GET /api/schemas/active
// and returns an error wrapping [ErrNotFound] while nothing is active.
func (h *httpConfigAPI) ActiveSchema(ctx context.Context) (models.SchemaRecord, error) {
	var record models.SchemaRecord
	req := h.request(ctx).SetResult(&record)

	if _, err := h.send(req, http.MethodGet, "/api/schemas/active"); err != nil {
		return models.SchemaRecord{}, err
	}
	return record, nil
}

// ValidateSchema implements [ConfigAPI]. It POSTs to
// POST /api/schemas/{id}/validate. A 422 answer is returned as
// [models.SchemaViolations] so callers can list every problem.
func (h *httpConfigAPI) ValidateSchema(ctx context.Context, id int64) (models.SchemaRecord, error) {
	var record models.SchemaRecord
	req := h.request(ctx).SetResult(&record)

	resp, err := h.send(req, http.MethodPost, "/api/schemas/"+strconv.FormatInt(id, 10)+"/validate")
	if err != nil {
		if violations := violationsFrom(resp); len(violations) > 0 {
			return models.SchemaRecord{}, models.SchemaViolations(violations)
		}
		return models.SchemaRecord{}, err
	}
	return record, nil
}

// ActivateSchema implements [ConfigAPI]. It POSTs to
// POST /api/schemas/{id}/activate and returns the activation record.
func (h *httpConfigAPI) ActivateSchema(ctx context.Context, id int64) (models.ActivationRecord, error) {
	var activation models.ActivationRecord
	req := h.request(ctx).SetResult(&activation)

	if _, err := h.send(req, http.MethodPost, "/api/schemas/"+strconv.FormatInt(id, 10)+"/activate"); err != nil {
		return models.ActivationRecord{}, err
	}
	return activation, nil
}

// CreateOrganization implements [ConfigAPI]. It POSTs {"name": name} to
// POST /api/organizations. The server derives the slug.
func (h *httpConfigAPI) CreateOrganization(ctx context.Context, name string) (models.Organization, error) {
	var org models.Organization
	req := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"name": name}).
		SetResult(&org)

	if _, err := h.send(req, http.MethodPost, "/api/organizations"); err != nil {
		return models.Organization{}, err
	}
	return org, nil
}

// GetOrganization implements [ConfigAPI]. ref is either the numeric id or
// the slug.
func (h *httpConfigAPI) GetOrganization(ctx context.Context, ref string) (models.Organization, error) {
	var org models.Organization
	req := h.request(ctx).SetPathParam("ref", ref).SetResult(&org)

	if _, err := h.send(req, http.MethodGet, "/api/organizations/{ref}"); err != nil {
		return models.Organization{}, err
	}
	return org, nil
}

// ReplaceOverrides implements [ConfigAPI]. It PUTs the full override
// document to PUT /api/organizations/{ref}/config with the bearer token.
// Violations come back as [models.OverrideViolations].
func (h *httpConfigAPI) ReplaceOverrides(ctx context.Context, ref string, overrides models.Overrides) (models.EffectiveConfig, error) {
	return h.sendOverrides(ctx, http.MethodPut, "/api/organizations/{ref}/config", ref, overrides)
}

// PreviewEffectiveConfig implements [ConfigAPI]. It POSTs user-level
// overrides to the preview endpoint. Nothing is stored on the server.
func (h *httpConfigAPI) PreviewEffectiveConfig(ctx context.Context, ref string, user models.Overrides) (models.EffectiveConfig, error) {
	return h.sendOverrides(ctx, http.MethodPost, "/api/organizations/{ref}/effective-config/preview", ref, user)
}

// sendOverrides sends an authorized override document and decodes the
// resulting effective config.
func (h *httpConfigAPI) sendOverrides(ctx context.Context, method, path, ref string, overrides models.Overrides) (models.EffectiveConfig, error) {
	if overrides == nil {
		overrides = models.Overrides{}
	}

	var effective models.EffectiveConfig
	req := h.authorized(ctx).
		SetPathParam("ref", ref).
		SetHeader("Content-Type", "application/json").
		SetBody(overrides).
		SetResult(&effective)

	resp, err := h.send(req, method, path)
	if err != nil {
		if violations := violationsFrom(resp); len(violations) > 0 {
			return models.EffectiveConfig{}, models.OverrideViolations(violations)
		}
		return models.EffectiveConfig{}, err
	}
	return effective, nil
}

// EffectiveConfig implements [ConfigAPI]. It fetches
// GET /api/organizations/{ref}/effective-config.
func (h *httpConfigAPI) EffectiveConfig(ctx context.Context, ref string) (models.EffectiveConfig, error) {
	var effective models.EffectiveConfig
	req := h.request(ctx).SetPathParam("ref", ref).SetResult(&effective)

	if _, err := h.send(req, http.MethodGet, "/api/organizations/{ref}/effective-config"); err != nil {
		return models.EffectiveConfig{}, err
	}
	return effective, nil
}

// Health implements [ConfigAPI]. It returns the reported status even when
// the server answers 503, together with [ErrUnavailable].
func (h *httpConfigAPI) Health(ctx context.Context) (models.HealthStatus, error) {
	var status models.HealthStatus
	req := h.request(ctx).SetResult(&status)

	resp, err := h.send(req, http.MethodGet, "/health")
	if errors.Is(err, ErrUnavailable) {
		_ = json.Unmarshal(resp.Body(), &status)
	}
	return status, err
}
