// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/staff-portal/internal/app"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// routes without session
	router.Group(func(r chi.Router) {
		r.Get("/", h.index)
		r.Post("/", h.register)
		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)
		r.Get("/admin/login", h.adminLoginPage)
		r.Post("/admin/login", h.adminLogin)
		r.Get("/confirm/*", h.confirmEmail)
		r.Get("/logout", h.logout)
		r.Get("/version", h.getServerVersion)
	})

	// self-service panel
	router.Group(func(r chi.Router) {
		r.Use(h.requireSession)

		r.Get("/panel", h.panel)
		r.Post("/panel", h.updateProfile)
		r.Post("/panel/professional", h.saveProfessional)
	})

	// administration: the admin flag is re-read from the store on every request
	router.Group(func(r chi.Router) {
		r.Use(h.requireSession)

		r.With(h.requireAdmin(adminGate{redirectTo: "/panel", deniedMessage: app.MsgAdminOnly})).
			Get("/admin", h.adminList)
		r.With(h.requireAdmin(adminGate{redirectTo: "/panel", deniedMessage: app.MsgAdminOnly})).
			Post("/admin", h.adminList)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin(adminGate{redirectTo: "/admin", deniedMessage: app.MsgAccessDenied}))

			r.Post("/admin/edit/{id}", h.adminEdit)
			r.Post("/admin/delete/{id}", h.adminDelete)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
