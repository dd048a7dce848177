// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/staff-portal/internal/app"
	"github.com/MKhiriev/staff-portal/internal/logger"
	"github.com/MKhiriev/staff-portal/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	redirect(w, r, "/login")
}

// register creates the account and its profile. Every outcome ends on the
// login page with a flash message.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid registration form")
		h.flashAndRedirect(w, r, app.MsgRegistrationFailed, "/login")
		return
	}

	form := models.RegistrationForm{
		Name:       strings.TrimSpace(r.PostForm.Get("name")),
		NationalID: strings.TrimSpace(r.PostForm.Get("national_id")),
		Email:      strings.TrimSpace(r.PostForm.Get("email")),
		Password:   r.PostForm.Get("password"),
	}

	if err := h.services.AuthService.Register(r.Context(), form); err != nil {
		h.flashAndRedirect(w, r, messageFromError(err, app.MsgRegistrationFailed), "/login")
		return
	}

	log.Info().Str("email", form.Email).Msg("account registered")
	h.flashAndRedirect(w, r, app.MsgRegistrationSuccess, "/login")
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pageLogin, nil)
}

func (h *Handler) adminLoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pageAdminLogin, nil)
}

// login signs the user in. Administrators land on /admin, everybody else
// on /panel. The choice uses the admin flag read at login time.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	credentials, ok := h.credentialsFromForm(w, r, "/login")
	if !ok {
		return
	}

	state, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		h.flashAndRedirect(w, r, messageFromError(err, app.MsgLoginFailed), "/login")
		return
	}

	if !h.startSession(w, r, state, "/login") {
		return
	}

	if state.IsAdmin {
		redirect(w, r, "/admin")
		return
	}
	redirect(w, r, "/panel")
}

// adminLogin is login for the admin panel. Accounts without the admin
// capability are refused before any session exists.
func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	credentials, ok := h.credentialsFromForm(w, r, "/admin/login")
	if !ok {
		return
	}

	state, err := h.services.AuthService.AdminLogin(r.Context(), credentials)
	if err != nil {
		h.flashAndRedirect(w, r, messageFromError(err, app.MsgLoginFailed), "/admin/login")
		return
	}

	if !h.startSession(w, r, state, "/admin/login") {
		return
	}

	redirect(w, r, "/admin")
}

func (h *Handler) credentialsFromForm(w http.ResponseWriter, r *http.Request, failTo string) (models.Credentials, bool) {
	if err := r.ParseForm(); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid login form")
		h.flashAndRedirect(w, r, app.MsgLoginFailed, failTo)
		return models.Credentials{}, false
	}

	return models.Credentials{
		Email:    strings.TrimSpace(r.PostForm.Get("email")),
		Password: r.PostForm.Get("password"),
	}, true
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, state models.SessionState, failTo string) bool {
	if err := h.sessions.Start(w, r, state); err != nil {
		logger.FromRequest(r).Err(err).Str("id", state.ID).Msg("error starting session")
		h.flashAndRedirect(w, r, app.MsgLoginFailed, failTo)
		return false
	}

	return true
}

// confirmEmail takes the whole remainder of the path as the address, so
// addresses containing a slash are accepted.
func (h *Handler) confirmEmail(w http.ResponseWriter, r *http.Request) {
	email, err := url.PathUnescape(chi.URLParam(r, "*"))
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid email in confirmation link")
		h.flashAndRedirect(w, r, app.MsgEmailConfirmationFailed, "/login")
		return
	}

	if email == "" {
		h.flashAndRedirect(w, r, app.MsgEmailConfirmationFailed, "/login")
		return
	}

	if err = h.services.AuthService.ConfirmEmail(r.Context(), email, r.URL.Query().Get("token")); err != nil {
		h.flashAndRedirect(w, r, messageFromError(err, app.MsgEmailConfirmationFailed), "/login")
		return
	}

	h.flashAndRedirect(w, r, app.MsgEmailConfirmed, "/login")
}

// logout signs out of the identity provider on a best-effort basis and
// always tears the local session down.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if state, ok := h.sessions.Current(r); ok {
		h.services.AuthService.Logout(r.Context(), state)
	}

	h.sessions.Destroy(w, r)
	redirect(w, r, "/login")
}
