// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the settings of the config engine server and of
// configctl.
//
// Sources are merged in order, later non-zero fields winning: environment
// variables (APP_*, STORAGE_DB_*, SERVER_*, ADAPTER_*, WORKERS_*), then
// command-line flags, then the JSON file named by CONFIG or -c.
//
// [GetStructuredConfig] serves the server and validates the result;
// [GetClientConfig] serves configctl, which parses its own flags.
package config
