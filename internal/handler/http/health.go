// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-config-engine/internal/utils"
	"github.com/MKhiriev/go-config-engine/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status := h.services.HealthService.Check(r.Context())

	code := http.StatusOK
	if status.Status != models.HealthOK {
		code = http.StatusServiceUnavailable
	}
	utils.WriteJSON(w, status, code)
}
