// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-config-engine/internal/logger"
	"github.com/MKhiriev/go-config-engine/internal/store"
	"github.com/robfig/cron/v3"
)

// StaleAuditWorker periodically resolves every organization against the
// active schema and logs the overrides the schema no longer accepts. The
// audit result feeds the stale override metrics through the auditor.
type StaleAuditWorker struct {
	auditor  StaleAuditor
	schedule string

	mu      sync.Mutex
	cron    *cron.Cron
	running bool

	logger *logger.Logger
}

// NewStaleAuditWorker creates a worker running auditor on schedule, a
// standard five-field cron expression. An empty schedule disables it.
func NewStaleAuditWorker(auditor StaleAuditor, schedule string, logger *logger.Logger) *StaleAuditWorker {
	return &StaleAuditWorker{
		auditor:  auditor,
		schedule: schedule,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger,
	}
}

// Start schedules the audit. Runs are skipped while a previous one is
// still in progress. The worker stops on its own when ctx is done.
func (w *StaleAuditWorker) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.schedule == "" {
		w.logger.Info().Str("func", "*StaleAuditWorker.Start").Msg("stale audit schedule not configured, skipping")
		return nil
	}

	if _, err := cron.ParseStandard(w.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", w.schedule, err)
	}

	if _, err := w.cron.AddFunc(w.schedule, func() { w.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule stale audit: %w", err)
	}

	w.cron.Start()
	w.running = true

	w.logger.Info().
		Str("func", "*StaleAuditWorker.Start").
		Str("schedule", w.schedule).
		Msg("stale audit scheduled")

	go func() {
		<-ctx.Done()
		w.Stop()
	}()

	return nil
}

// RunOnce performs one audit pass.
func (w *StaleAuditWorker) RunOnce(ctx context.Context) {
	log := w.logger.GetChildLogger()
	ctx = log.WithContext(ctx)

	report, err := w.auditor.AuditStaleOverrides(ctx)
	switch {
	case errors.Is(err, store.ErrNoActiveSchema):
		log.Debug().Str("func", "*StaleAuditWorker.RunOnce").Msg("no active schema, nothing to audit")
		return
	case err != nil:
		log.Err(err).Str("func", "*StaleAuditWorker.RunOnce").Msg("stale audit failed")
		return
	}

	for _, finding := range report.Findings {
		log.Warn().
			Str("func", "*StaleAuditWorker.RunOnce").
			Str("schema_version", report.SchemaVersion).
			Int64("organization_id", finding.OrganizationID).
			Str("slug", finding.Slug).
			Int("stale_overrides", len(finding.Diagnostics)).
			Msg("organization has stale overrides")
	}
}

// Stop stops scheduling and waits for a running audit to finish.
func (w *StaleAuditWorker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	<-w.cron.Stop().Done()
	w.running = false

	w.logger.Info().Str("func", "*StaleAuditWorker.Stop").Msg("stale audit stopped")
}

// IsRunning reports whether the audit is scheduled.
func (w *StaleAuditWorker) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// NextRun returns the next scheduled audit, or nil when not scheduled.
func (w *StaleAuditWorker) NextRun() *time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()

	entries := w.cron.Entries()
	if !w.running || len(entries) == 0 {
		return nil
	}
	next := entries[0].Next
	return &next
}
