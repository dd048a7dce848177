// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteText_Success(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteText(w, "1.2.3", http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n != len("1.2.3") {
		t.Errorf("expected %d bytes written, got %d", len("1.2.3"), n)
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("expected text/plain content type, got '%s'", ct)
	}
	if w.Body.String() != "1.2.3" {
		t.Errorf("expected body '1.2.3', got '%s'", w.Body.String())
	}
}

func TestWriteText_CustomStatus(t *testing.T) {
	w := httptest.NewRecorder()

	_, _ = WriteText(w, "not found", http.StatusNotFound)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}
