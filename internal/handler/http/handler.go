// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-config-engine/internal/identity"
	"github.com/MKhiriev/go-config-engine/internal/logger"
	"github.com/MKhiriev/go-config-engine/internal/metrics"
	"github.com/MKhiriev/go-config-engine/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

// Handler serves the REST API on top of [service.Services].
type Handler struct {
	services *service.Services
	identity identity.Resolver

	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer

	logger *logger.Logger
}

// NewHandler creates a Handler. identity resolves the bearer tokens of
// override writes; gatherer backs GET /metrics and may be nil to disable
// the endpoint.
func NewHandler(services *service.Services, identity identity.Resolver, m *metrics.Metrics, gatherer prometheus.Gatherer, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		identity: identity,
		metrics:  m,
		gatherer: gatherer,
		logger:   logger,
	}
}
