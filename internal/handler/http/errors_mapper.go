// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-config-engine/internal/identity"
	"github.com/MKhiriev/go-config-engine/internal/logger"
	"github.com/MKhiriev/go-config-engine/internal/service"
	"github.com/MKhiriev/go-config-engine/internal/store"
	"github.com/MKhiriev/go-config-engine/internal/utils"
	"github.com/MKhiriev/go-config-engine/models"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidSchemaID:            http.StatusBadRequest,
	ErrInvalidBody:                http.StatusBadRequest,
	utils.ErrEmptyBody:            http.StatusBadRequest,

	identity.ErrInvalidToken:   http.StatusUnauthorized,
	identity.ErrTokenIsExpired: http.StatusUnauthorized,

	service.ErrInvalidSchemaVersion:       http.StatusBadRequest,
	service.ErrSchemaVersionNotIncreasing: http.StatusConflict,
	service.ErrUnknownSchemaState:         http.StatusBadRequest,
	service.ErrInvalidOrganizationName:    http.StatusBadRequest,
	service.ErrCorruptActiveSchema:        http.StatusInternalServerError,

	store.ErrSchemaNotFound:               http.StatusNotFound,
	store.ErrNoActiveSchema:               http.StatusNotFound,
	store.ErrSchemaVersionExists:          http.StatusConflict,
	store.ErrSchemaStateConflict:          http.StatusConflict,
	store.ErrOrganizationNotFound:         http.StatusNotFound,
	store.ErrOrganizationExists:           http.StatusConflict,
	store.ErrActiveSchemaChanged:          http.StatusConflict,
	store.ErrSchemaNotValidated:           http.StatusUnprocessableEntity,
	store.ErrConcurrentActivationConflict: http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrDecodingDocument:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse is the body of every non-2xx response except violations.
type errorResponse struct {
	Error string `json:"error"`
}

// violationsResponse is the 422 body for rejected schema or override
// documents. Every violation found is listed.
type violationsResponse struct {
	Errors []models.Violation `json:"errors"`
}

// writeError answers with the status mapped from err. Validation failures
// become 422 with the full violation list; internal failures hide their
// message from the caller.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)

	var schemaViolations models.SchemaViolations
	if errors.As(err, &schemaViolations) {
		log.Info().Str("func", funcName).Int("violations", len(schemaViolations)).Msg("schema document rejected")
		utils.WriteJSON(w, violationsResponse{Errors: schemaViolations}, http.StatusUnprocessableEntity)
		return
	}

	var overrideViolations models.OverrideViolations
	if errors.As(err, &overrideViolations) {
		log.Info().Str("func", funcName).Int("violations", len(overrideViolations)).Msg("override document rejected")
		utils.WriteJSON(w, violationsResponse{Errors: overrideViolations}, http.StatusUnprocessableEntity)
		return
	}

	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Msg("request failed")
		message = http.StatusText(http.StatusInternalServerError)
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, errorResponse{Error: message}, status)
}
