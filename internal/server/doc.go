// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of the staff portal.
//
// It owns the http.Server lifecycle: startup, signal handling and graceful
// shutdown bounded by the configured request timeout.
package server
