// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The backend URL and key are mandatory. The session backend must be one of
// the known ones and carry its connection settings.
func (cfg *StructuredConfig) validate() error {
	if cfg.Backend.URL == "" || cfg.Backend.Key == "" {
		return ErrInvalidBackendConfigs
	}
	if u, err := url.Parse(cfg.Backend.URL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: malformed url %q", ErrInvalidBackendConfigs, cfg.Backend.URL)
	}

	switch cfg.Session.Backend {
	case SessionBackendMemory:
	case SessionBackendRedis:
		if cfg.Session.Redis.Addr == "" {
			return fmt.Errorf("%w: redis address is required", ErrInvalidSessionConfigs)
		}
	case SessionBackendSQLite:
		if cfg.Session.SQLite.DSN == "" {
			return fmt.Errorf("%w: sqlite dsn is required", ErrInvalidSessionConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidSessionConfigs, cfg.Session.Backend)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
