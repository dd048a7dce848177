// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/staff-portal/internal/config"
	"github.com/MKhiriev/staff-portal/internal/handler/http"
	"github.com/MKhiriev/staff-portal/internal/logger"
	"github.com/MKhiriev/staff-portal/internal/service"
	"github.com/MKhiriev/staff-portal/internal/session"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, sessions *session.Manager, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, sessions, logger),
	}, nil
}
