// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-config-engine/internal/logger"
	"github.com/MKhiriev/go-config-engine/models"
)

type healthService struct {
	storage Pinger
	build   models.BuildInfo
}

// NewHealthService constructs a [HealthService] reporting build.
func NewHealthService(storage Pinger, build models.BuildInfo) HealthService {
	return &healthService{
		storage: storage,
		build:   build,
	}
}

// Check pings storage. A failed ping degrades the status and puts the
// error text in Storage instead of returning an error.
func (h *healthService) Check(ctx context.Context) models.HealthStatus {
	status := models.HealthStatus{
		Status:  models.HealthOK,
		Storage: models.HealthOK,
		Build:   h.build,
	}

	if err := h.storage.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*healthService.Check").Msg("storage ping failed")
		status.Status = models.HealthDegraded
		status.Storage = err.Error()
	}

	return status
}
