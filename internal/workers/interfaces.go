// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the server.
package workers

import (
	"context"

	"github.com/MKhiriev/go-config-engine/models"
)

// Worker is a background job with an explicit lifecycle. Start must not
// block; Stop waits for in-flight work to finish.
type Worker interface {
	Start(ctx context.Context) error
	Stop()
}

// StaleAuditor resolves every organization against the active schema and
// reports stale overrides. It is satisfied by service.OrganizationService.
type StaleAuditor interface {
	AuditStaleOverrides(ctx context.Context) (models.StaleAuditReport, error)
}
