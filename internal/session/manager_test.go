// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/MKhiriev/staff-portal/internal/config"
	"github.com/MKhiriev/staff-portal/internal/logger"
	"github.com/MKhiriev/staff-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sequenceTokens struct {
	next int
}

func (s *sequenceTokens) Generate() string {
	s.next++
	return "token-" + strconv.Itoa(s.next)
}

func newTestManager(store Store) *Manager {
	m := NewManager(store, config.Session{MaxAge: time.Hour}, "test-secret", logger.Nop())
	m.tokens = &sequenceTokens{}
	return m
}

// requestWith builds a request carrying the cookies set by a previous
// response. When a cookie was written more than once the last value wins,
// as in a browser.
func requestWith(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()

	latest := make(map[string]*http.Cookie)
	for _, c := range rec.Result().Cookies() {
		latest[c.Name] = c
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range latest {
		req.AddCookie(c)
	}
	return req
}

func TestManager_CurrentWithoutCookie(t *testing.T) {
	m := newTestManager(NewMemoryStore())

	_, ok := m.Current(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
}

func TestManager_StartAndCurrent(t *testing.T) {
	store := NewMemoryStore()
	m := newTestManager(store)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Start(rec, httptest.NewRequest(http.MethodPost, "/login", nil), testState()))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.NotContains(t, cookies[0].Value, "token-1")

	got, ok := m.Current(requestWith(t, rec))
	require.True(t, ok)
	assert.Equal(t, testState(), got)

	// the store never sees the raw token
	_, err := store.Load(context.Background(), "token-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_StartRotatesToken(t *testing.T) {
	store := NewMemoryStore().(*memoryStore)
	m := newTestManager(store)

	first := httptest.NewRecorder()
	require.NoError(t, m.Start(first, httptest.NewRequest(http.MethodPost, "/login", nil), testState()))

	second := httptest.NewRecorder()
	require.NoError(t, m.Start(second, requestWith(t, first), testState()))

	assert.Len(t, store.entries, 1)

	_, ok := m.Current(requestWith(t, first))
	assert.False(t, ok)
	_, ok = m.Current(requestWith(t, second))
	assert.True(t, ok)
}

func TestManager_Update(t *testing.T) {
	m := newTestManager(NewMemoryStore())

	rec := httptest.NewRecorder()
	require.NoError(t, m.Start(rec, httptest.NewRequest(http.MethodPost, "/login", nil), testState()))

	updated := testState()
	updated.Name = "Ana Maria"
	require.NoError(t, m.Update(requestWith(t, rec), updated))

	got, ok := m.Current(requestWith(t, rec))
	require.True(t, ok)
	assert.Equal(t, "Ana Maria", got.Name)

	err := m.Update(httptest.NewRequest(http.MethodPost, "/panel", nil), updated)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_Destroy(t *testing.T) {
	store := NewMemoryStore().(*memoryStore)
	m := newTestManager(store)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Start(rec, httptest.NewRequest(http.MethodPost, "/login", nil), testState()))

	out := httptest.NewRecorder()
	m.Destroy(out, requestWith(t, rec))

	assert.Empty(t, store.entries)

	cookies := out.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)

	// the old cookie no longer resolves even if a client keeps sending it
	_, ok := m.Current(requestWith(t, rec))
	assert.False(t, ok)
}

func TestManager_DestroyWithoutSession(t *testing.T) {
	m := newTestManager(NewMemoryStore())

	rec := httptest.NewRecorder()
	m.Destroy(rec, httptest.NewRequest(http.MethodGet, "/logout", nil))

	assert.Len(t, rec.Result().Cookies(), 1)
}

func TestManager_Flashes(t *testing.T) {
	m := newTestManager(NewMemoryStore())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	m.AddFlash(rec, req, "first")
	m.AddFlash(rec, req, "second")

	next := requestWith(t, rec)
	out := httptest.NewRecorder()
	assert.Equal(t, []string{"first", "second"}, m.Flashes(out, next))

	// popped flashes are gone from the rewritten cookie
	assert.Empty(t, m.Flashes(httptest.NewRecorder(), requestWith(t, out)))
}

func TestManager_TamperedCookie(t *testing.T) {
	m := newTestManager(NewMemoryStore())

	req := httptest.NewRequest(http.MethodGet, "/panel", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "forged"})

	_, ok := m.Current(req)
	assert.False(t, ok)
}

func TestManager_EmptySecret(t *testing.T) {
	m := NewManager(NewMemoryStore(), config.Session{MaxAge: time.Hour}, "", logger.Nop())
	assert.NotEmpty(t, m.secret)

	rec := httptest.NewRecorder()
	state := models.SessionState{ID: "user-2"}
	require.NoError(t, m.Start(rec, httptest.NewRequest(http.MethodPost, "/login", nil), state))

	got, ok := m.Current(requestWith(t, rec))
	require.True(t, ok)
	assert.Equal(t, "user-2", got.ID)
}
