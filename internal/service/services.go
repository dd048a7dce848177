// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/staff-portal/internal/adapter"
	"github.com/MKhiriev/staff-portal/internal/config"
	"github.com/MKhiriev/staff-portal/internal/logger"
	"github.com/MKhiriev/staff-portal/internal/store"
)

type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
	AdminService   AdminService
	VersionService VersionService
}

func NewServices(storages *store.Storages, identity adapter.IdentityProvider, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	versionService, err := NewVersionService(cfg.App)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(identity, storages.ProfileRepository, logger),
		ProfileService: NewProfileService(storages.ProfileRepository, storages.ProfessionalRepository, logger),
		AdminService:   NewAdminService(storages.ProfileRepository, storages.ProfessionalRepository, logger),
		VersionService: versionService,
	}, nil
}
