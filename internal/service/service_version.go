// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/staff-portal/internal/config"
)

type versionService struct {
	version string
}

// NewVersionService serves the configured portal version. A blank version
// is a wiring mistake and fails startup.
func NewVersionService(cfg config.App) (VersionService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &versionService{version: version}, nil
}

func (s *versionService) Version(context.Context) string {
	return s.version
}
