// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the pure validation rules of the configuration
// engine: authored schema documents are checked and turned into typed
// schemas, and proposed organization overrides are checked against the
// active schema and the caller's role and environment.
//
// Nothing here keeps state between calls, so every function is safe for
// concurrent use. Violations are collected exhaustively and returned as
// [models.SchemaViolations] or [models.OverrideViolations].
package validators
