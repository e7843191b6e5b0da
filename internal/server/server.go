// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-config-engine/internal/config"
	"github.com/MKhiriev/go-config-engine/internal/handler"
	"github.com/MKhiriev/go-config-engine/internal/logger"
)

type server struct {
	httpServer *httpServer
	workers    Runner
	logger     *logger.Logger
}

// NewServer creates the HTTP server for handlers. workers may be nil.
func NewServer(handlers *handler.Handlers, workers Runner, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoHTTPListener
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    workers,
		logger:     logger,
	}, nil
}

// RunServer starts the background workers and the HTTP listener, then
// blocks until ctx is cancelled, a termination signal arrives or the
// listener fails. On a signal it shuts down gracefully and returns nil.
func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if s.workers != nil {
		if err := s.workers.Start(ctx); err != nil {
			return fmt.Errorf("error starting workers: %w", err)
		}
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-serveErr
		s.logger.Info().Msg("server shutdown gracefully")
		return nil
	case err := <-serveErr:
		s.stopWorkers()
		if err != nil {
			return fmt.Errorf("HTTP server stopped: %w", err)
		}
		return nil
	}
}

// Shutdown stops the HTTP listener first and the workers after it.
func (s *server) Shutdown() {
	s.httpServer.Shutdown()
	s.stopWorkers()
}

func (s *server) stopWorkers() {
	if s.workers != nil {
		s.workers.Stop()
	}
}
