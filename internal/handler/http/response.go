// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

func redirect(w http.ResponseWriter, r *http.Request, to string) {
	http.Redirect(w, r, to, http.StatusFound)
}

// flashAndRedirect queues message for the next page and redirects to to.
// The flash is written into the session cookie, so it must happen before
// any header is sent.
func (h *Handler) flashAndRedirect(w http.ResponseWriter, r *http.Request, message, to string) {
	h.sessions.AddFlash(w, r, message)
	redirect(w, r, to)
}
