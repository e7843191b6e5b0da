// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrUsage is returned for unknown subcommands or bad arguments.
	ErrUsage = errors.New("usage error")

	// ErrNoServer is returned when a remote subcommand runs without a
	// server address.
	ErrNoServer = errors.New("no server address configured (ADAPTER_ADDRESS or -addr)")

	// ErrNoSignKey is returned by "token" without APP_TOKEN_SIGN_KEY.
	ErrNoSignKey = errors.New("no token sign key configured (APP_TOKEN_SIGN_KEY)")
)
