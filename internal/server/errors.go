// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errHTTPNotConfigured means the portal has no handler or no listen address.
	errHTTPNotConfigured = errors.New("portal server needs an HTTP handler and address")
	errNotStarted        = errors.New("portal server was not built by NewServer")
)
