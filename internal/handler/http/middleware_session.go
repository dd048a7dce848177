// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/staff-portal/internal/app"
	"github.com/MKhiriev/staff-portal/internal/logger"
	"github.com/MKhiriev/staff-portal/internal/service"
	"github.com/MKhiriev/staff-portal/internal/utils"
)

// requireSession loads the SessionState bound to the session cookie and
// stores it in the request context under [utils.SessionCtxKey]. Requests
// without a session are redirected to /login before any handler runs.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state, ok := h.sessions.Current(r)
		if !ok {
			logger.FromRequest(r).Debug().Str("uri", r.RequestURI).Msg("no session, redirecting to login")
			redirect(w, r, "/login")
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(r.Context(), state)))
	})
}

// adminGate describes where a refused admin request goes and what it is
// told.
type adminGate struct {
	redirectTo    string
	deniedMessage string
}

// requireAdmin re-reads the admin flag of the session owner from the store.
// The flag cached in the session is ignored. Must run after requireSession.
func (h *Handler) requireAdmin(gate adminGate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			state, ok := utils.GetSessionFromContext(r.Context())
			if !ok {
				log.Err(errNoSessionInContext).Msg("admin gate without session")
				redirect(w, r, "/login")
				return
			}

			if err := h.services.AdminService.RequireAdmin(r.Context(), state.ID); err != nil {
				message := app.MsgPermissionCheckFailed
				if !errors.Is(err, service.ErrPermissionCheck) {
					message = gate.deniedMessage
				}

				h.flashAndRedirect(w, r, message, gate.redirectTo)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
