// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles the transport handlers of the server.
package handler

import (
	"github.com/MKhiriev/go-config-engine/internal/config"
	"github.com/MKhiriev/go-config-engine/internal/handler/http"
	"github.com/MKhiriev/go-config-engine/internal/identity"
	"github.com/MKhiriev/go-config-engine/internal/logger"
	"github.com/MKhiriev/go-config-engine/internal/metrics"
	"github.com/MKhiriev/go-config-engine/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

// Handlers holds one handler per configured transport.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the handlers enabled by cfg.
func NewHandlers(services *service.Services, resolver identity.Resolver, m *metrics.Metrics, gatherer prometheus.Gatherer, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, resolver, m, gatherer, logger),
	}, nil
}
