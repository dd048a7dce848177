// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"fmt"

	"github.com/MKhiriev/staff-portal/internal/config"
)

// NewStore builds the [Store] selected by cfg.Backend.
func NewStore(ctx context.Context, cfg config.Session) (Store, error) {
	switch cfg.Backend {
	case config.SessionBackendMemory, "":
		return NewMemoryStore(), nil
	case config.SessionBackendRedis:
		return NewRedisStore(ctx, cfg.Redis)
	case config.SessionBackendSQLite:
		return NewSQLiteStore(ctx, cfg.SQLite)
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Backend)
	}
}
