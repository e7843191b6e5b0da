// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-config-engine/internal/utils"
	"github.com/MKhiriev/go-config-engine/models"
	"github.com/go-chi/chi/v5"
)

// maxRequestBody bounds YAML request bodies.
const maxRequestBody = 1 << 20

// createSchema stores the body as a new draft. JSON bodies are decoded
// directly; application/yaml bodies go through the schema file parser.
func (h *Handler) createSchema(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeSchemaDocument(r)
	if err != nil {
		writeError(w, r, "*Handler.createSchema", err)
		return
	}

	record, err := h.services.SchemaService.CreateDraft(r.Context(), doc)
	if err != nil {
		writeError(w, r, "*Handler.createSchema", err)
		return
	}

	utils.WriteJSON(w, record, http.StatusCreated)
}

func (h *Handler) listSchemas(w http.ResponseWriter, r *http.Request) {
	filter := models.SchemaFilter{State: models.SchemaState(r.URL.Query().Get("state"))}

	records, err := h.services.SchemaService.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, "*Handler.listSchemas", err)
		return
	}
	if records == nil {
		records = []models.SchemaRecord{}
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) activeSchema(w http.ResponseWriter, r *http.Request) {
	record, _, err := h.services.SchemaService.Active(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.activeSchema", err)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) getSchema(w http.ResponseWriter, r *http.Request) {
	id, err := schemaID(r)
	if err != nil {
		writeError(w, r, "*Handler.getSchema", err)
		return
	}

	record, err := h.services.SchemaService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.getSchema", err)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) validateSchema(w http.ResponseWriter, r *http.Request) {
	id, err := schemaID(r)
	if err != nil {
		writeError(w, r, "*Handler.validateSchema", err)
		return
	}

	record, err := h.services.SchemaService.Validate(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.validateSchema", err)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) activateSchema(w http.ResponseWriter, r *http.Request) {
	id, err := schemaID(r)
	if err != nil {
		writeError(w, r, "*Handler.activateSchema", err)
		return
	}

	activation, err := h.services.SchemaService.Activate(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.activateSchema", err)
		return
	}

	utils.WriteJSON(w, activation, http.StatusOK)
}

func schemaID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidSchemaID
	}
	return id, nil
}

// isYAMLBody reports whether the request declares a YAML body.
func isYAMLBody(r *http.Request) bool {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/yaml", "application/x-yaml", "text/yaml":
		return true
	default:
		return false
	}
}

func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	return io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
}

// decodeSchemaDocument accepts YAML or JSON. Both reject keys that are not
// part of the schema document so that a misspelled attribute such as
// "mutabel" fails instead of being dropped.
func decodeSchemaDocument(r *http.Request) (models.SchemaDocument, error) {
	if isYAMLBody(r) {
		data, err := readBody(r)
		if err != nil {
			return models.SchemaDocument{}, fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
		doc, err := models.ParseSchemaDocument(data)
		if err != nil {
			return models.SchemaDocument{}, fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
		return doc, nil
	}

	var doc models.SchemaDocument
	if err := utils.DecodeJSONStrict(r, &doc); err != nil {
		return models.SchemaDocument{}, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	return doc, nil
}
