// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/staff-portal/models"
)

type memoryEntry struct {
	state     models.SessionState
	expiresAt time.Time
}

// memoryStore keeps sessions in a map guarded by a mutex. Sessions do not
// survive a restart and are not shared between processes.
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore returns an empty in-process [Store] that also implements
// [Sweeper].
func NewMemoryStore() Store {
	return &memoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *memoryStore) Load(_ context.Context, key string) (models.SessionState, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || !m.now().Before(entry.expiresAt) {
		return models.SessionState{}, ErrSessionNotFound
	}

	return entry.state, nil
}

func (m *memoryStore) Save(_ context.Context, key string, state models.SessionState, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = memoryEntry{state: state, expiresAt: m.now().Add(ttl)}
	return nil
}

func (m *memoryStore) Clear(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}

// Sweep implements [Sweeper].
func (m *memoryStore) Sweep(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	var removed int64
	for key, entry := range m.entries {
		if !now.Before(entry.expiresAt) {
			delete(m.entries, key)
			removed++
		}
	}

	return removed, nil
}

func (m *memoryStore) Close() error {
	return nil
}
