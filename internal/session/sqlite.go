// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/staff-portal/internal/config"
	"github.com/MKhiriev/staff-portal/migrations"
	"github.com/MKhiriev/staff-portal/models"
	_ "github.com/mattn/go-sqlite3"
)

const (
	loadSession = `SELECT state FROM sessions
		WHERE key = ? AND expires_at > ?;`

	saveSession = `INSERT INTO sessions (key, state, expires_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET state = excluded.state, expires_at = excluded.expires_at;`

	clearSession = `DELETE FROM sessions WHERE key = ?;`

	sweepSessions = `DELETE FROM sessions WHERE expires_at <= ?;`
)

// sqliteStore keeps JSON-encoded sessions in a sqlite database file, so
// sessions survive restarts of a single-instance deployment.
type sqliteStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteStore opens (creating if needed) the sqlite database at cfg.DSN
// and applies the sessions migrations.
func NewSQLiteStore(ctx context.Context, cfg config.SQLite) (Store, error) {
	db, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("error opening session database: %w", err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error connecting session database (ping): %w", err)
	}

	if err = migrations.MigrateSessions(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &sqliteStore{db: db, now: time.Now}, nil
}

func (s *sqliteStore) Load(ctx context.Context, key string) (models.SessionState, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, loadSession, key, s.now().UnixNano()).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SessionState{}, ErrSessionNotFound
	}
	if err != nil {
		return models.SessionState{}, fmt.Errorf("load session: %w", err)
	}

	var state models.SessionState
	if err = json.Unmarshal([]byte(raw), &state); err != nil {
		return models.SessionState{}, fmt.Errorf("decode session: %w", err)
	}

	return state, nil
}

func (s *sqliteStore) Save(ctx context.Context, key string, state models.SessionState, ttl time.Duration) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, saveSession, key, string(raw), s.now().Add(ttl).UnixNano()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

func (s *sqliteStore) Clear(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, clearSession, key); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

// Sweep implements [Sweeper].
func (s *sqliteStore) Sweep(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, sweepSessions, s.now().UnixNano())
	if err != nil {
		return 0, fmt.Errorf("sweep sessions: %w", err)
	}

	return res.RowsAffected()
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
