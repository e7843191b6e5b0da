// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-config-engine/internal/logger"
	"github.com/MKhiriev/go-config-engine/internal/metrics"
	"github.com/MKhiriev/go-config-engine/internal/store"
	"github.com/MKhiriev/go-config-engine/models"
)

// Services aggregates the services used by the transport layer.
type Services struct {
	SchemaService       SchemaService
	OrganizationService OrganizationService
	HealthService       HealthService
}

// NewServices wires every service over storages.
func NewServices(storages *store.Storages, build models.BuildInfo, m *metrics.Metrics, logger *logger.Logger) *Services {
	schemas := NewSchemaService(storages.SchemaRepository, m, logger)

	return &Services{
		SchemaService:       schemas,
		OrganizationService: NewOrganizationService(storages.OrganizationRepository, schemas, m, logger),
		HealthService:       NewHealthService(storages, build),
	}
}
