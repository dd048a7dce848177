// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/staff-portal/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID(t *testing.T) {
	t.Run("echoes incoming id", func(t *testing.T) {
		b := newTestPortal(t).browser(t)

		req := httptest.NewRequest(http.MethodGet, "/version", nil)
		req.Header.Set(traceIDHeader, "trace-42")
		rec := httptest.NewRecorder()
		b.portal.router.ServeHTTP(rec, req)

		assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
	})

	t.Run("generates missing id", func(t *testing.T) {
		b := newTestPortal(t).browser(t)

		rec := b.get("/version")

		assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
	})
}

func TestWithLogging_RecordsRequest(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		redirect(w, r, "/login")
	})
	handler := h.withTraceID(h.withLogging(next))

	req := httptest.NewRequest(http.MethodGet, "/panel", nil)
	req.Header.Set(traceIDHeader, "trace-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "trace-1", entry["trace_id"])
	assert.Equal(t, "/panel", entry["uri"])
	assert.Equal(t, http.MethodGet, entry["method"])
	assert.Equal(t, float64(http.StatusFound), entry["status"])
	assert.Equal(t, "/login", entry["location"])
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	w.WriteHeader(http.StatusTeapot)

	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCheckHTTPMethod(t *testing.T) {
	tests := []struct {
		method string
		target string
	}{
		{http.MethodPut, "/login"},
		{http.MethodDelete, "/panel"},
		{http.MethodPatch, "/admin"},
		{http.MethodPost, "/version"},
		{http.MethodGet, "/admin/edit/user-1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			b := newTestPortal(t).browser(t)

			rec := b.do(tt.method, tt.target, nil)

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	b := newTestPortal(t).browser(t)

	rec := b.get("/nowhere")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
