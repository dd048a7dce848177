// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTML transport layer of the staff portal.
//
// It wires the chi routes, renders the embedded html/template views and
// runs the middleware chain: request tracing, access logging, the session
// gate and the admin gate. Handlers never return errors to the client:
// every outcome is a redirect or a rendered page carrying flash messages
// chosen by the error mapper.
package http
