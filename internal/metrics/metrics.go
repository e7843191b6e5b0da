// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the config engine.
package metrics

import (
	"strconv"
	"time"

	"github.com/MKhiriev/go-config-engine/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "config_engine"

// Result label values.
const (
	// ResultAccepted marks a document that passed or an operation that completed.
	ResultAccepted = "accepted"
	// ResultRejected marks a refused document or activation.
	ResultRejected = "rejected"
	// ResultConflict marks an activation that lost to a concurrent one.
	ResultConflict = "conflict"
	// ResultError marks a storage or other unexpected failure.
	ResultError = "error"
)

// Metrics contains the Prometheus collectors. A nil *Metrics records
// nothing.
type Metrics struct {
	overrideValidations *prometheus.CounterVec
	overrideViolations  *prometheus.CounterVec

	schemaValidations *prometheus.CounterVec
	schemaViolations  *prometheus.CounterVec

	activations  *prometheus.CounterVec
	activeSchema *prometheus.GaugeVec

	staleOverrides     *prometheus.CounterVec
	staleOrganizations prometheus.Gauge
	staleAuditRuns     *prometheus.CounterVec

	httpRequests *prometheus.HistogramVec
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		overrideValidations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "override_validations_total",
				Help:      "Total number of override documents validated",
			},
			[]string{"result"},
		),

		overrideViolations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "override_violations_total",
				Help:      "Total number of override violations by kind",
			},
			[]string{"code"},
		),

		schemaValidations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "schema_validations_total",
				Help:      "Total number of schema drafts validated",
			},
			[]string{"result"},
		),

		schemaViolations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "schema_violations_total",
				Help:      "Total number of schema violations by kind",
			},
			[]string{"code"},
		),

		activations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "schema_activations_total",
				Help:      "Total number of schema activation attempts",
			},
			[]string{"result"},
		),

		activeSchema: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "active_schema_info",
				Help:      "Set to 1 for the currently active schema version",
			},
			[]string{"version", "schema_id"},
		),

		staleOverrides: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "stale_overrides_total",
				Help:      "Total number of stored overrides ignored during resolution",
			},
			[]string{"layer"},
		),

		staleOrganizations: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "stale_organizations",
				Help:      "Organizations with stale overrides found by the last audit",
			},
		),

		staleAuditRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "stale_audit_runs_total",
				Help:      "Total number of stale override audit runs",
			},
			[]string{"result"},
		),

		httpRequests: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
}

// RecordOverrideValidation records one override validation and, when it
// was rejected, one increment per violation code.
func (m *Metrics) RecordOverrideValidation(violations models.OverrideViolations) {
	if m == nil {
		return
	}
	if len(violations) == 0 {
		m.overrideValidations.WithLabelValues(ResultAccepted).Inc()
		return
	}
	m.overrideValidations.WithLabelValues(ResultRejected).Inc()
	for _, v := range violations {
		m.overrideViolations.WithLabelValues(string(v.Code)).Inc()
	}
}

// RecordSchemaValidation records one schema validation.
func (m *Metrics) RecordSchemaValidation(violations models.SchemaViolations) {
	if m == nil {
		return
	}
	if len(violations) == 0 {
		m.schemaValidations.WithLabelValues(ResultAccepted).Inc()
		return
	}
	m.schemaValidations.WithLabelValues(ResultRejected).Inc()
	for _, v := range violations {
		m.schemaViolations.WithLabelValues(string(v.Code)).Inc()
	}
}

// RecordActivation records an activation attempt with one of the Result
// label values.
func (m *Metrics) RecordActivation(result string) {
	if m == nil {
		return
	}
	m.activations.WithLabelValues(result).Inc()
}

// SetActiveSchema points the active schema gauge at record.
func (m *Metrics) SetActiveSchema(id int64, version string) {
	if m == nil {
		return
	}
	m.activeSchema.Reset()
	m.activeSchema.WithLabelValues(version, strconv.FormatInt(id, 10)).Set(1)
}

// RecordStaleDiagnostics counts stale override diagnostics per layer.
func (m *Metrics) RecordStaleDiagnostics(diagnostics []models.Diagnostic) {
	if m == nil {
		return
	}
	for _, d := range diagnostics {
		if d.Code == models.CodeStaleOverrideIgnored {
			m.staleOverrides.WithLabelValues(d.Layer).Inc()
		}
	}
}

// RecordStaleAudit records the outcome of one audit run.
func (m *Metrics) RecordStaleAudit(report models.StaleAuditReport, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.staleAuditRuns.WithLabelValues(ResultError).Inc()
		return
	}
	m.staleAuditRuns.WithLabelValues(ResultAccepted).Inc()
	m.staleOrganizations.Set(float64(len(report.Findings)))
}

// ObserveHTTPRequest records the duration of one HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
