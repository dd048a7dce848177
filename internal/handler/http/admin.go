// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/staff-portal/internal/app"
	"github.com/MKhiriev/staff-portal/internal/logger"
	"github.com/MKhiriev/staff-portal/models"
	"github.com/go-chi/chi/v5"
)

type adminPage struct {
	Session       models.SessionState
	Professionals []models.ProfessionalView
}

func (h *Handler) adminList(w http.ResponseWriter, r *http.Request) {
	state, ok := h.sessionFromContext(w, r)
	if !ok {
		return
	}

	h.render(w, r, pageAdmin, adminPage{
		Session:       state,
		Professionals: h.services.AdminService.ListProfessionals(r.Context()),
	})
}

// adminEdit overwrites profile and professional fields of the account in
// the URL.
func (h *Handler) adminEdit(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid admin edit form")
		h.flashAndRedirect(w, r, app.MsgAdminProfessionalUpdateFailed, "/admin")
		return
	}

	form := models.AdminEditForm{
		Name:             strings.TrimSpace(r.PostForm.Get("name")),
		Email:            strings.TrimSpace(r.PostForm.Get("email")),
		NationalID:       strings.TrimSpace(r.PostForm.Get("national_id")),
		ProfessionalForm: professionalFormFrom(r),
	}

	if err := h.services.AdminService.EditProfessional(r.Context(), targetID, form); err != nil {
		h.flashAndRedirect(w, r, messageFromError(err, app.MsgAdminProfessionalUpdateFailed), "/admin")
		return
	}

	h.flashAndRedirect(w, r, app.MsgAdminProfessionalUpdated, "/admin")
}

func (h *Handler) adminDelete(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "id")

	if err := h.services.AdminService.DeleteProfessional(r.Context(), targetID); err != nil {
		h.flashAndRedirect(w, r, messageFromError(err, app.MsgAdminProfessionalDeleteFailed), "/admin")
		return
	}

	h.flashAndRedirect(w, r, app.MsgAdminProfessionalDeleted, "/admin")
}
