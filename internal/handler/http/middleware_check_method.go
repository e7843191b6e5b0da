// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant to be registered as the router's
// MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 Method Not Allowed when a path matches a route but the
// method is not handled. This handler answers 404 Not Found instead, so a
// caller using an unsupported method cannot tell the route exists. Chi
// passes the handler down to sub-routers that have none of their own, so
// the rule holds under /api as well.
//
// If the method is registered for the matched route, the request is
// forwarded to the router's normal ServeHTTP pipeline.
//
// The lookup compares each top-level route pattern with the raw request
// path ([http.Request.URL.Path]). Only exact matches count: parametrized
// segments and mounted sub-routers ("/api/*") are not expanded, so a wrong
// method on those paths always gets 404.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		// exact pattern match only
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
