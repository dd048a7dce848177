// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// errNoSessionInContext is logged when a session-gated handler runs without
// the state requireSession stores in the request context.
var errNoSessionInContext = errors.New("no session state in request context")
