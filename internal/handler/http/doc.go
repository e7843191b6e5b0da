// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the config engine.
//
// It wires chi routes for schema lifecycle, organization overrides and
// effective configuration reads. Request tracing, access logging, caller
// authentication and request metrics are handled by middleware before
// requests reach the service layer.
package http
