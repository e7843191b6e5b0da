package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-config-engine/internal/config"
	"github.com/MKhiriev/go-config-engine/internal/handler"
	"github.com/MKhiriev/go-config-engine/internal/identity"
	"github.com/MKhiriev/go-config-engine/internal/logger"
	"github.com/MKhiriev/go-config-engine/internal/metrics"
	"github.com/MKhiriev/go-config-engine/internal/server"
	"github.com/MKhiriev/go-config-engine/internal/service"
	"github.com/MKhiriev/go-config-engine/internal/store"
	"github.com/MKhiriev/go-config-engine/internal/workers"
	"github.com/MKhiriev/go-config-engine/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	log := logger.NewLogger("config-engine-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	leveled, err := log.Leveled(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled
	if cfg.App.Version != "" {
		build.Version = cfg.App.Version
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("error closing storages")
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	services := service.NewServices(storages, build, m, log)

	if record, _, activeErr := services.SchemaService.Active(ctx); activeErr == nil {
		m.SetActiveSchema(record.ID, record.Version)
		log.Info().Int64("schema_id", record.ID).Str("version", record.Version).Msg("active schema loaded")
	} else if !errors.Is(activeErr, store.ErrNoActiveSchema) {
		log.Fatal().Err(activeErr).Msg("error loading active schema")
	}

	handlers, err := handler.NewHandlers(services, identity.NewTokenResolver(cfg.App), m, reg, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	background := workers.NewWorkers(
		workers.NewStaleAuditWorker(services.OrganizationService, cfg.Workers.StaleAuditSchedule, log),
	)

	srv, err := server.NewServer(handlers, background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(build models.BuildInfo) {
	fmt.Printf("Build version: %s\n", build.Version)
	fmt.Printf("Build date: %s\n", build.Date)
	fmt.Printf("Build commit: %s\n", build.Commit)
}
