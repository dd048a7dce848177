// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"crypto/sha256"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/staff-portal/internal/config"
	"github.com/MKhiriev/staff-portal/internal/logger"
	"github.com/MKhiriev/staff-portal/internal/utils"
	"github.com/MKhiriev/staff-portal/models"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

const (
	// CookieName is the name of the signed session cookie.
	CookieName = "portal_session"

	tokenValueKey = "token"
)

type tokenGenerator interface {
	Generate() string
}

// Manager ties the signed cookie to the server-side [Store].
type Manager struct {
	cookies *sessions.CookieStore
	store   Store
	tokens  tokenGenerator
	secret  string
	ttl     time.Duration
	logger  *logger.Logger
}

// NewManager creates a Manager. An empty secret is replaced with a random
// key, in which case sessions and pending flashes do not survive a restart.
func NewManager(store Store, cfg config.Session, secret string, logger *logger.Logger) *Manager {
	if secret == "" {
		logger.Warn().Msg("session secret is not configured, using a random key")
		secret = string(securecookie.GenerateRandomKey(32))
	}

	blockKey := sha256.Sum256([]byte(secret))
	cookies := sessions.NewCookieStore([]byte(secret), blockKey[:])
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   cfg.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		cookies: cookies,
		store:   store,
		tokens:  utils.NewUUIDGenerator(),
		secret:  secret,
		ttl:     cfg.MaxAge,
		logger:  logger,
	}
}

// Current returns the SessionState bound to the request cookie. A missing,
// tampered or expired session yields false.
func (m *Manager) Current(r *http.Request) (models.SessionState, bool) {
	token := m.token(r)
	if token == "" {
		return models.SessionState{}, false
	}

	state, err := m.store.Load(r.Context(), m.storageKey(token))
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			logger.FromRequest(r).Err(err).Msg("error loading session")
		}
		return models.SessionState{}, false
	}

	return state, !state.IsEmpty()
}

// Start saves state under a freshly generated token and writes the cookie.
// A previous session bound to the request is discarded.
func (m *Manager) Start(w http.ResponseWriter, r *http.Request, state models.SessionState) error {
	sess := m.cookie(r)

	if old, ok := sess.Values[tokenValueKey].(string); ok && old != "" {
		if err := m.store.Clear(r.Context(), m.storageKey(old)); err != nil {
			logger.FromRequest(r).Err(err).Msg("error clearing previous session")
		}
	}

	token := m.tokens.Generate()
	if err := m.store.Save(r.Context(), m.storageKey(token), state, m.ttl); err != nil {
		return err
	}

	sess.Values[tokenValueKey] = token
	return sess.Save(r, w)
}

// Update replaces the state of the current session in place. The token and
// the cookie stay unchanged.
func (m *Manager) Update(r *http.Request, state models.SessionState) error {
	token := m.token(r)
	if token == "" {
		return ErrSessionNotFound
	}

	return m.store.Save(r.Context(), m.storageKey(token), state, m.ttl)
}

// Destroy clears the stored state and expires the cookie. It never fails:
// store errors are only logged.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	sess := m.cookie(r)

	if token, ok := sess.Values[tokenValueKey].(string); ok && token != "" {
		if err := m.store.Clear(r.Context(), m.storageKey(token)); err != nil {
			log.Err(err).Msg("error clearing session")
		}
	}

	sess.Values = make(map[any]any)
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		log.Err(err).Msg("error expiring session cookie")
	}
}

// AddFlash queues a message for the next rendered page.
func (m *Manager) AddFlash(w http.ResponseWriter, r *http.Request, message string) {
	sess := m.cookie(r)
	sess.AddFlash(message)
	if err := sess.Save(r, w); err != nil {
		logger.FromRequest(r).Err(err).Msg("error saving flash message")
	}
}

// Flashes pops the pending messages.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []string {
	sess := m.cookie(r)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}

	if err := sess.Save(r, w); err != nil {
		logger.FromRequest(r).Err(err).Msg("error saving session cookie")
	}

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}

	return messages
}

// cookie returns the request's cookie session. A cookie that fails to
// decode is replaced by a new empty one.
func (m *Manager) cookie(r *http.Request) *sessions.Session {
	sess, err := m.cookies.Get(r, CookieName)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("discarding undecodable session cookie")
	}

	return sess
}

func (m *Manager) token(r *http.Request) string {
	token, _ := m.cookie(r).Values[tokenValueKey].(string)
	return token
}

func (m *Manager) storageKey(token string) string {
	return utils.HashString(token, m.secret)
}
