// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/staff-portal/internal/config"
	"github.com/MKhiriev/staff-portal/internal/logger"
	"github.com/MKhiriev/staff-portal/internal/session"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the workers enabled by cfg. The session sweeper is
// only added for stores that do not expire entries on their own.
func NewWorkers(cfg config.Workers, store session.Store, logger *logger.Logger) *Workers {
	w := &Workers{}

	if sweeper, ok := store.(session.Sweeper); ok && cfg.SessionSweepInterval > 0 {
		w.workers = append(w.workers, NewSessionSweeper(sweeper, cfg.SessionSweepInterval, logger))
	}

	return w
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
