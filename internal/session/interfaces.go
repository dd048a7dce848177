// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session keeps the server-side [models.SessionState] of logged-in
// users and the signed cookie that points at it.
//
// The cookie (gorilla/sessions) carries only an opaque random token and the
// pending flash messages. The state itself lives in a [Store]: in process
// memory, in redis or in a sqlite file, selected by configuration. Store
// keys are HMACs of the token, never the token itself.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/staff-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_store_mock.go -package=mock

// ErrSessionNotFound is returned by [Store.Load] for unknown or expired keys.
var ErrSessionNotFound = errors.New("session not found")

// Store persists session states by key.
type Store interface {
	// Load returns the state saved under key or [ErrSessionNotFound].
	Load(ctx context.Context, key string) (models.SessionState, error)

	// Save stores state under key, replacing any previous value. The entry
	// expires after ttl.
	Save(ctx context.Context, key string, state models.SessionState, ttl time.Duration) error

	// Clear removes the entry under key. Clearing a missing key is not an
	// error.
	Clear(ctx context.Context, key string) error

	// Close releases the resources held by the store.
	Close() error
}

// Sweeper is implemented by stores that do not expire entries on their own.
type Sweeper interface {
	// Sweep deletes expired entries and returns how many were removed.
	Sweep(ctx context.Context) (int64, error)
}
