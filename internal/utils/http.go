// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
)

// WriteText writes text as a text/plain response with the given status code.
//
// Returns the number of bytes written and any write error.
//
// Example usage:
//
//	utils.WriteText(w, "1.4.0", http.StatusOK)
func WriteText(w http.ResponseWriter, text string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)

	return w.Write([]byte(text))
}
