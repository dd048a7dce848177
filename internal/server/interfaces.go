// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract for transport servers managed by
// this package.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is done, a
	// termination signal arrives or the listener fails.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server. In-flight requests get until ctx
	// is done to finish.
	Shutdown(ctx context.Context) error
}
