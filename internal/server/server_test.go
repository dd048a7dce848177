// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/staff-portal/internal/config"
	"github.com/MKhiriev/staff-portal/internal/handler"
	"github.com/MKhiriev/staff-portal/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.Handler, address string) *server {
	t.Helper()

	cfg := config.Server{HTTPAddress: address, RequestTimeout: time.Second}

	return &server{
		httpServer:      newHTTPServer(handler, cfg, logger.Nop()),
		shutdownTimeout: time.Second,
		logger:          logger.Nop(),
	}
}

func TestNewServer_NoHandlers(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
	}{
		{name: "nil handlers", cfg: config.Server{HTTPAddress: ":8080"}},
		{name: "no http handler", handlers: &handler.Handlers{}, cfg: config.Server{HTTPAddress: ":8080"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServer(tt.handlers, tt.cfg, logger.Nop())

			require.ErrorIs(t, err, errHTTPNotConfigured)
			assert.Nil(t, s)
		})
	}
}

func TestServeUntilDone_StopsOnContextDone(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	s := newTestServer(t, handler, "127.0.0.1:0")

	listener, err := s.httpServer.listen()
	require.NoError(t, err)
	addr := listener.Addr()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.serveUntilDone(ctx, listener) }()

	resp, err := http.Get("http://" + addr.String() + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))

	cancel()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunServer_ListenError(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	s := newTestServer(t, http.NotFoundHandler(), occupied.Addr().String())

	err = s.RunServer(context.Background())

	assert.Error(t, err)
}

func TestRunServer_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	err := s.RunServer(context.Background())

	assert.ErrorIs(t, err, errNotStarted)
	assert.NoError(t, s.Shutdown(context.Background()))
}

func TestServeUntilDone_ServeError(t *testing.T) {
	s := newTestServer(t, http.NotFoundHandler(), "127.0.0.1:0")

	listener, err := s.httpServer.listen()
	require.NoError(t, err)
	require.NoError(t, listener.Close())

	err = s.serveUntilDone(context.Background(), listener)

	assert.Error(t, err)
}
