// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the configctl REST client.
type ClientAdapter struct {
	// HTTPAddress is the base address of the server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// Token is the bearer token sent with authenticated requests.
	Token string
}

// ClientConfig is the configuration of the configctl command line tool.
type ClientConfig struct {
	Adapter ClientAdapter

	// App carries the token settings used by "configctl token".
	App App
}

// GetClientConfig builds the client configuration from the environment and
// the optional JSON file named by CONFIG. Flags are left to the caller
// because configctl parses them per subcommand.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return clientConfigFrom(cfg), nil
}

func clientConfigFrom(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
		App: cfg.App,
	}
}

// Validate checks that the client can reach a server.
func (cfg *ClientConfig) Validate() error {
	return cfg.validate()
}
