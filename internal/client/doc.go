// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the configctl command line tool: offline
// schema file checks, and schema or organization operations against a
// running server through the REST adapter.
package client
