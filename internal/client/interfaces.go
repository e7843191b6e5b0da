// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-config-engine/models"
)

// Client is a runnable command line application.
type Client interface {
	// Run executes the subcommand named by args[0].
	Run(ctx context.Context, args []string) error
}

// TokenIssuer signs caller tokens. It is satisfied by
// *identity.TokenResolver.
type TokenIssuer interface {
	Issue(caller models.CallerContext) (string, error)
}
