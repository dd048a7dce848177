// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the background jobs of the portal server and a
// Workers aggregate that starts and stops them together with the server.
package workers

import "context"

// Worker is a background job bound to the lifetime of a context.
//
// Start must not block: implementations spawn their goroutines internally
// and return. Stop cancels them and waits until they have exited.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    ctx, w.cancel = context.WithCancel(ctx)
//	    go loop(ctx)
//	}
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
