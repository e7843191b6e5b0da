// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoHTTPListener is returned when there is no HTTP handler or listen
// address to serve.
var errNoHTTPListener = errors.New("no HTTP handler or listen address configured")
