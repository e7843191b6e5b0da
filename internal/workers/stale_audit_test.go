// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-config-engine/internal/logger"
	"github.com/MKhiriev/go-config-engine/internal/store"
	"github.com/MKhiriev/go-config-engine/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuditor struct {
	calls  atomic.Int32
	report models.StaleAuditReport
	err    error
}

func (f *fakeAuditor) AuditStaleOverrides(context.Context) (models.StaleAuditReport, error) {
	f.calls.Add(1)
	return f.report, f.err
}

func TestStaleAuditWorker_Start(t *testing.T) {
	tests := []struct {
		name        string
		schedule    string
		wantRunning bool
		wantErr     bool
	}{
		{name: "hourly", schedule: "0 * * * *", wantRunning: true},
		{name: "every five minutes", schedule: "*/5 * * * *", wantRunning: true},
		{name: "disabled", schedule: ""},
		{name: "invalid", schedule: "every tuesday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewStaleAuditWorker(&fakeAuditor{}, tt.schedule, logger.Nop())

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			err := w.Start(ctx)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantRunning, w.IsRunning())
			if tt.wantRunning {
				assert.NotNil(t, w.NextRun())
			} else {
				assert.Nil(t, w.NextRun())
			}

			w.Stop()
			assert.False(t, w.IsRunning())
		})
	}
}

func TestStaleAuditWorker_StopsWithContext(t *testing.T) {
	w := NewStaleAuditWorker(&fakeAuditor{}, "0 * * * *", logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	cancel()

	assert.Eventually(t, func() bool { return !w.IsRunning() }, time.Second, 10*time.Millisecond)
}

func TestStaleAuditWorker_RunOnce(t *testing.T) {
	tests := []struct {
		name     string
		auditor  *fakeAuditor
		wantLogs []string
	}{
		{
			name: "findings are logged per organization",
			auditor: &fakeAuditor{report: models.StaleAuditReport{
				SchemaVersion: "2.0.0",
				Organizations: 2,
				Findings: []models.StaleAuditFinding{{
					OrganizationID: 7,
					Slug:           "acme",
					Diagnostics:    []models.Diagnostic{{Code: models.CodeStaleOverrideIgnored, Namespace: "limits", Field: "max_users"}},
				}},
			}},
			wantLogs: []string{`"slug":"acme"`, `"stale_overrides":1`},
		},
		{
			name:     "no active schema is not an error",
			auditor:  &fakeAuditor{err: store.ErrNoActiveSchema},
			wantLogs: []string{"no active schema"},
		},
		{
			name:     "failure is logged",
			auditor:  &fakeAuditor{err: errors.New("database is down")},
			wantLogs: []string{`"level":"error"`, "database is down"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := &logger.Logger{Logger: zerolog.New(&buf)}

			NewStaleAuditWorker(tt.auditor, "", log).RunOnce(context.Background())

			assert.Equal(t, int32(1), tt.auditor.calls.Load())
			for _, want := range tt.wantLogs {
				assert.True(t, strings.Contains(buf.String(), want), "log %q does not contain %q", buf.String(), want)
			}
		})
	}
}
