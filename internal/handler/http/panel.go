// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/staff-portal/internal/app"
	"github.com/MKhiriev/staff-portal/internal/logger"
	"github.com/MKhiriev/staff-portal/internal/utils"
	"github.com/MKhiriev/staff-portal/models"
)

type panelPage struct {
	Session      models.SessionState
	Professional *models.ProfessionalRecord
}

// panel renders the session owner's data. A failed record lookup renders
// the page without professional data.
func (h *Handler) panel(w http.ResponseWriter, r *http.Request) {
	state, ok := h.sessionFromContext(w, r)
	if !ok {
		return
	}

	record, err := h.services.ProfileService.GetOwnProfessional(r.Context(), state.ID)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("id", state.ID).Msg("rendering panel without professional data")
		record = nil
	}

	h.render(w, r, pagePanel, panelPage{Session: state, Professional: record})
}

// updateProfile writes name and national id. The session snapshot is only
// refreshed when the store write succeeded.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	state, ok := h.sessionFromContext(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid profile form")
		h.flashAndRedirect(w, r, app.MsgProfileUpdateFailed, "/panel")
		return
	}

	updated, err := h.services.ProfileService.UpdateOwnProfile(r.Context(), state, models.ProfileForm{
		Name:       strings.TrimSpace(r.PostForm.Get("name")),
		NationalID: strings.TrimSpace(r.PostForm.Get("national_id")),
	})
	if err != nil {
		h.flashAndRedirect(w, r, messageFromError(err, app.MsgProfileUpdateFailed), "/panel")
		return
	}

	if err = h.sessions.Update(r, updated); err != nil {
		log.Err(err).Str("id", state.ID).Msg("profile saved but session not refreshed")
	}

	h.flashAndRedirect(w, r, app.MsgProfileUpdated, "/panel")
}

func (h *Handler) saveProfessional(w http.ResponseWriter, r *http.Request) {
	state, ok := h.sessionFromContext(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid professional form")
		h.flashAndRedirect(w, r, app.MsgProfessionalSaveFailed, "/panel")
		return
	}

	inserted, err := h.services.ProfileService.SaveProfessional(r.Context(), state.ID, professionalFormFrom(r))
	if err != nil {
		h.flashAndRedirect(w, r, messageFromError(err, app.MsgProfessionalSaveFailed), "/panel")
		return
	}

	message := app.MsgProfessionalUpdated
	if inserted {
		message = app.MsgProfessionalSaved
	}
	h.flashAndRedirect(w, r, message, "/panel")
}

// professionalFormFrom reads the professional fields of a parsed form.
func professionalFormFrom(r *http.Request) models.ProfessionalForm {
	return models.ProfessionalForm{
		Profession: strings.TrimSpace(r.PostForm.Get("profession")),
		StartTime:  strings.TrimSpace(r.PostForm.Get("start_time")),
		EndTime:    strings.TrimSpace(r.PostForm.Get("end_time")),
		Salary:     strings.TrimSpace(r.PostForm.Get("salary")),
		Status:     strings.TrimSpace(r.PostForm.Get("status")),
	}
}

// sessionFromContext returns the state stored by requireSession. Its
// absence is a wiring error; the user is sent to the login page.
func (h *Handler) sessionFromContext(w http.ResponseWriter, r *http.Request) (models.SessionState, bool) {
	state, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Err(errNoSessionInContext).Send()
		redirect(w, r, "/login")
	}
	return state, ok
}
