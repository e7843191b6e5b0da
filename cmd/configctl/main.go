package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-config-engine/internal/adapter"
	"github.com/MKhiriev/go-config-engine/internal/client"
	"github.com/MKhiriev/go-config-engine/internal/config"
	"github.com/MKhiriev/go-config-engine/internal/identity"
	"github.com/MKhiriev/go-config-engine/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	addr := flag.String("addr", "", "server address (overrides ADAPTER_ADDRESS)")
	token := flag.String("token", "", "bearer token (overrides ADAPTER_TOKEN)")
	timeout := flag.Duration("timeout", 0, "request timeout (overrides ADAPTER_REQUEST_TIMEOUT)")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, client.Usage)
		fmt.Fprintln(os.Stderr, "\nglobal flags:")
		flag.PrintDefaults()
	}
	flag.Parse()

	log := logger.NewConsoleLogger("configctl", os.Stderr, *verbose)

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return 1
	}
	if *addr != "" {
		cfg.Adapter.HTTPAddress = *addr
	}
	if *token != "" {
		cfg.Adapter.Token = *token
	}
	if *timeout > 0 {
		cfg.Adapter.RequestTimeout = *timeout
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = 10 * time.Second
	}

	var api adapter.ConfigAPI
	if cfg.Adapter.HTTPAddress != "" {
		api, err = adapter.NewHTTPConfigAPI(cfg.Adapter, log)
		if err != nil {
			log.Error().Err(err).Msg("error creating server adapter")
			return 1
		}
	}

	var tokens client.TokenIssuer
	if cfg.App.TokenSignKey != "" {
		tokens = identity.NewTokenResolver(cfg.App)
	}

	app := client.NewApp(api, tokens, os.Stdout, log)
	if err = app.Run(context.Background(), flag.Args()); err != nil {
		if errors.Is(err, client.ErrUsage) {
			fmt.Fprintf(os.Stderr, "%v\n\n", err)
			flag.Usage()
			return 2
		}
		fmt.Fprintf(os.Stderr, "configctl: %v\n", err)
		return 1
	}
	return 0
}
