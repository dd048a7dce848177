// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/staff-portal/internal/config"
	"github.com/MKhiriev/staff-portal/internal/logger"
	"github.com/MKhiriev/staff-portal/internal/utils"
)

// Storages aggregates the repositories handed to the service layer.
type Storages struct {
	ProfileRepository      ProfileRepository
	ProfessionalRepository ProfessionalRepository

	// db is set when the SQL backend is in use.
	db *DB
}

// NewStorages builds the repositories for the configured backend.
//
// When cfg.Storage.DB.DSN is set the tables are reached directly over
// PostgreSQL (applying migrations first if cfg.Storage.DB.Migrate is set);
// otherwise every call goes through the hosted REST data API at
// cfg.Backend.URL authorised with cfg.Backend.Key.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, logger *logger.Logger) (*Storages, error) {
	if cfg.Storage.DB.DSN != "" {
		db, err := NewConnectPostgres(ctx, cfg.Storage.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("error connecting to database: %w", err)
		}

		logger.Info().Msg("using sql storage backend")
		return &Storages{
			ProfileRepository:      NewProfileRepository(db, logger),
			ProfessionalRepository: NewProfessionalRepository(db, logger),
			db:                     db,
		}, nil
	}

	client, err := utils.NewBackendClient(cfg.Backend.URL, cfg.Backend.Key, cfg.Backend.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("error creating data api client: %w", err)
	}

	logger.Info().Msg("using rest storage backend")
	return &Storages{
		ProfileRepository:      NewRESTProfileRepository(client, logger),
		ProfessionalRepository: NewRESTProfessionalRepository(client, logger),
	}, nil
}

// Close releases the database connection of the SQL backend.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
