// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-config-engine/internal/utils"
	"github.com/MKhiriev/go-config-engine/models"
	"github.com/go-chi/chi/v5"
)

// overrideSemanticsHeader tells clients how PUT .../config treats the body.
const overrideSemanticsHeader = "X-Override-Semantics"

type createOrganizationRequest struct {
	Name string `json:"name"`
}

func (h *Handler) createOrganization(w http.ResponseWriter, r *http.Request) {
	var request createOrganizationRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		writeError(w, r, "*Handler.createOrganization", fmt.Errorf("%w: %w", ErrInvalidBody, err))
		return
	}

	org, err := h.services.OrganizationService.Create(r.Context(), request.Name)
	if err != nil {
		writeError(w, r, "*Handler.createOrganization", err)
		return
	}

	utils.WriteJSON(w, org, http.StatusCreated)
}

func (h *Handler) listOrganizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.services.OrganizationService.List(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listOrganizations", err)
		return
	}
	if orgs == nil {
		orgs = []models.Organization{}
	}

	utils.WriteJSON(w, orgs, http.StatusOK)
}

func (h *Handler) getOrganization(w http.ResponseWriter, r *http.Request) {
	org, err := h.services.OrganizationService.Get(r.Context(), chi.URLParam(r, "ref"))
	if err != nil {
		writeError(w, r, "*Handler.getOrganization", err)
		return
	}

	utils.WriteJSON(w, org, http.StatusOK)
}

// replaceOverrides stores the body as the organization's complete override
// document. It is a full replace: any namespace or field absent from the
// body goes back to the schema default. One invalid entry rejects the whole
// document with 422 and nothing is stored.
func (h *Handler) replaceOverrides(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(overrideSemanticsHeader, "replace")

	proposed, err := decodeOverrides(r)
	if err != nil {
		writeError(w, r, "*Handler.replaceOverrides", err)
		return
	}

	caller, _ := utils.GetCallerFromContext(r.Context())
	config, err := h.services.OrganizationService.ApplyOverrides(r.Context(), chi.URLParam(r, "ref"), proposed, caller)
	if err != nil {
		writeError(w, r, "*Handler.replaceOverrides", err)
		return
	}

	utils.WriteJSON(w, config, http.StatusOK)
}

func (h *Handler) effectiveConfig(w http.ResponseWriter, r *http.Request) {
	config, err := h.services.OrganizationService.EffectiveConfig(r.Context(), chi.URLParam(r, "ref"))
	if err != nil {
		writeError(w, r, "*Handler.effectiveConfig", err)
		return
	}

	utils.WriteJSON(w, config, http.StatusOK)
}

// previewEffectiveConfig resolves the body as a user layer on top of the
// stored overrides. Nothing is stored.
func (h *Handler) previewEffectiveConfig(w http.ResponseWriter, r *http.Request) {
	user, err := decodeOverrides(r)
	if err != nil {
		writeError(w, r, "*Handler.previewEffectiveConfig", err)
		return
	}

	caller, _ := utils.GetCallerFromContext(r.Context())
	config, err := h.services.OrganizationService.PreviewEffectiveConfig(r.Context(), chi.URLParam(r, "ref"), user, caller)
	if err != nil {
		writeError(w, r, "*Handler.previewEffectiveConfig", err)
		return
	}

	utils.WriteJSON(w, config, http.StatusOK)
}

// decodeOverrides accepts a YAML or JSON override document. An empty YAML
// body is an empty document.
func decodeOverrides(r *http.Request) (models.Overrides, error) {
	if isYAMLBody(r) {
		data, err := readBody(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
		overrides, err := models.ParseOverrides(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
		return overrides, nil
	}

	var overrides models.Overrides
	if err := utils.DecodeJSON(r, &overrides); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	if overrides == nil {
		overrides = models.Overrides{}
	}
	return overrides, nil
}
