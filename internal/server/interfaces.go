// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle of the process.
type Server interface {
	// RunServer serves until ctx is done or a stop signal arrives.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops serving and frees associated resources.
	Shutdown()
}

// Runner is a background job set started together with the server.
// It is satisfied by *workers.Workers.
type Runner interface {
	Start(ctx context.Context) error
	Stop()
}
