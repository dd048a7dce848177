// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/staff-portal/internal/logger"
	"github.com/MKhiriev/staff-portal/internal/session"
)

type sessionSweeper struct {
	sweeper  session.Sweeper
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionSweeper creates a Worker that removes expired sessions from
// sweeper every interval. The worker is idle until Start is called.
func NewSessionSweeper(sweeper session.Sweeper, interval time.Duration, logger *logger.Logger) Worker {
	return &sessionSweeper{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

// Start implements Worker. A previously started sweep loop is stopped first.
// The loop exits when ctx is cancelled or Stop is called.
func (s *sessionSweeper) Start(ctx context.Context) {
	s.Stop()

	s.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		t := time.NewTicker(s.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				s.sweep(jobCtx)
			}
		}
	}()
}

// Stop implements Worker. Safe to call when the sweeper is not running.
func (s *sessionSweeper) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

func (s *sessionSweeper) sweep(ctx context.Context) {
	removed, err := s.sweeper.Sweep(ctx)
	if err != nil {
		s.logger.Err(err).Msg("error sweeping expired sessions")
		return
	}

	if removed > 0 {
		s.logger.Debug().Int64("removed", removed).Msg("expired sessions swept")
	}
}
