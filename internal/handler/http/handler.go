// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/staff-portal/internal/logger"
	"github.com/MKhiriev/staff-portal/internal/service"
	"github.com/MKhiriev/staff-portal/internal/session"
)

type Handler struct {
	services *service.Services
	sessions *session.Manager
	views    *views

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Manager, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		sessions: sessions,
		views:    defaultViews,
		logger:   logger,
	}
}
