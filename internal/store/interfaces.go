// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store provides typed repositories for the two tables of the
// portal: profiles and professional_records.
//
// Two backends implement the same contracts. The REST backend talks to the
// hosted PostgREST-compatible data API with resty; the SQL backend talks to
// PostgreSQL directly through the pgx stdlib driver with squirrel-built
// queries. [NewStorages] picks the SQL backend whenever a database DSN is
// configured.
package store

import (
	"context"

	"github.com/MKhiriev/staff-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ProfileRepository reads and writes rows of the profiles table.
type ProfileRepository interface {
	// FindProfile returns the profile with the given id or [ErrProfileNotFound].
	FindProfile(ctx context.Context, id string) (models.Profile, error)

	// FindProfiles returns the profiles whose id is among ids, in no
	// particular order. Unknown ids are skipped. No ids yields no profiles.
	FindProfiles(ctx context.Context, ids ...string) ([]models.Profile, error)

	// CreateProfile inserts profile. A row with the same id yields
	// [ErrProfileAlreadyExists].
	CreateProfile(ctx context.Context, profile models.Profile) error

	// UpdateProfile applies the non-nil fields of update to the row with the
	// given id and returns the number of affected rows. Zero rows is not an
	// error.
	UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (int64, error)
}

// ProfessionalRepository reads and writes rows of the professional_records
// table.
type ProfessionalRepository interface {
	// FindProfessional returns the record with the given id or
	// [ErrProfessionalNotFound].
	FindProfessional(ctx context.Context, id string) (models.ProfessionalRecord, error)

	// ListProfessionals returns every professional record.
	ListProfessionals(ctx context.Context) ([]models.ProfessionalRecord, error)

	// CreateProfessional inserts record. A row with the same id yields
	// [ErrProfessionalAlreadyExists].
	CreateProfessional(ctx context.Context, record models.ProfessionalRecord) error

	// UpdateProfessional overwrites every mutable column of the row with the
	// given id and returns the number of affected rows.
	UpdateProfessional(ctx context.Context, id string, update models.ProfessionalUpdate) (int64, error)

	// DeleteProfessional removes the row with the given id and returns the
	// number of affected rows.
	DeleteProfessional(ctx context.Context, id string) (int64, error)
}
