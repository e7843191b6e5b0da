// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the config engine. The server logs JSON
// to stdout; configctl logs human-readable lines to stderr. Request-scoped
// loggers travel in the context and are recovered with [FromContext] or
// [FromRequest].
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so the whole zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns the JSON server logger. Every entry carries role, a
// timestamp and the calling function name under "func". Use [Logger.Leveled]
// to raise the minimum level.
func NewLogger(role string) *Logger {
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{
		zerolog.New(os.Stdout).
			Level(zerolog.DebugLevel).
			With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// NewConsoleLogger returns a human-readable logger writing to w. Debug
// entries are dropped unless verbose is set.
func NewConsoleLogger(role string, w io.Writer, verbose bool) *Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return &Logger{
		zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
			Level(level).
			With().
			Str("role", role).
			Timestamp().
			Logger(),
	}
}

// Leveled returns a copy of l that drops entries below level ("debug",
// "info", "warn", ...). An empty level keeps l's level.
func (l *Logger) Leveled(level string) (*Logger, error) {
	if level == "" {
		return l, nil
	}
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return &Logger{l.Level(parsed)}, nil
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a logger sharing l's fields that can be extended
// without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx with zerolog's
// WithContext, or zerolog's default logger when none is attached.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
