// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Init builds the router with every REST route of the engine.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/health", h.health)
	if h.gatherer != nil {
		router.Method("GET", "/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	}

	router.Route("/api/schemas", func(r chi.Router) {
		r.Post("/", h.createSchema)
		r.Get("/", h.listSchemas)
		r.Get("/active", h.activeSchema)
		r.Get("/{id}", h.getSchema)
		r.Post("/{id}/validate", h.validateSchema)
		r.Post("/{id}/activate", h.activateSchema)
	})

	router.Route("/api/organizations", func(r chi.Router) {
		r.Post("/", h.createOrganization)
		r.Get("/", h.listOrganizations)
		r.Get("/{ref}", h.getOrganization)
		r.Get("/{ref}/effective-config", h.effectiveConfig)

		// routes acting on behalf of a caller
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Put("/{ref}/config", h.replaceOverrides)
			r.Post("/{ref}/effective-config/preview", h.previewEffectiveConfig)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
