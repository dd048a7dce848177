// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/MKhiriev/staff-portal/internal/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names accepted by views.render.
const (
	pageLogin      = "login.html"
	pageAdminLogin = "admin_login.html"
	pagePanel      = "panel.html"
	pageAdmin      = "admin.html"
)

// views holds one template set per page, each parsed together with the
// shared layout.
type views struct {
	pages map[string]*template.Template
}

var defaultViews = mustParseViews(pageLogin, pageAdminLogin, pagePanel, pageAdmin)

func mustParseViews(pages ...string) *views {
	v := &views{pages: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		v.pages[page] = template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/"+page))
	}
	return v
}

// pageData is the value every page template is executed with.
type pageData struct {
	Flashes []string
	Data    any
}

// render pops the pending flashes and writes page with data. The page is
// executed into a buffer first so a template error still yields a clean
// 500 response.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, data any) {
	log := logger.FromRequest(r)

	tmpl, ok := h.views.pages[page]
	if !ok {
		log.Error().Str("page", page).Msg("unknown page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	flashes := h.sessions.Flashes(w, r)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", pageData{Flashes: flashes, Data: data}); err != nil {
		log.Err(fmt.Errorf("render %s: %w", page, err)).Send()
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
