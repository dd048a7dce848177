// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/staff-portal/internal/logger"
	"github.com/MKhiriev/staff-portal/models"
)

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository] over the "profiles" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type profileRepository struct {
	*DB
	logger *logger.Logger
}

// NewProfileRepository constructs a [ProfileRepository] backed by the
// provided database connection and logger.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		DB:     db,
		logger: logger,
	}
}

// FindProfile selects the profile row with the given id.
//
// Error handling:
//   - no row → [ErrProfileNotFound].
//   - driver-level error → wrapped [ErrExecutingQuery].
func (r *profileRepository) FindProfile(ctx context.Context, id string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindProfileQuery(id)
	if err != nil {
		return models.Profile{}, wrapBuildError(err)
	}

	var p models.Profile
	err = r.DB.QueryRowContext(ctx, query, args...).
		Scan(&p.ID, &p.Name, &p.NationalID, &p.Email, &p.IsAdmin)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.FindProfile").Str("id", id).Msg("error finding profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return p, nil
}

// FindProfiles selects every profile whose id is in ids with a single
// IN-query.
func (r *profileRepository) FindProfiles(ctx context.Context, ids ...string) ([]models.Profile, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return []models.Profile{}, nil
	}

	query, args, err := buildFindProfilesQuery(ids)
	if err != nil {
		return nil, wrapBuildError(err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.FindProfiles").Int("ids", len(ids)).Msg("error finding profiles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	profiles := make([]models.Profile, 0, len(ids))
	for rows.Next() {
		var p models.Profile
		if err = rows.Scan(&p.ID, &p.Name, &p.NationalID, &p.Email, &p.IsAdmin); err != nil {
			log.Err(err).Str("func", "*profileRepository.FindProfiles").Msg("error scanning profile row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		profiles = append(profiles, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return profiles, nil
}

// CreateProfile inserts profile.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrProfileAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *profileRepository) CreateProfile(ctx context.Context, profile models.Profile) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertProfileQuery(profile)
	if err != nil {
		return wrapBuildError(err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*profileRepository.CreateProfile").Str("id", profile.ID).Msg("error inserting profile")
		if isUniqueViolation(err) {
			return ErrProfileAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// UpdateProfile applies update to the row with the given id.
func (r *profileRepository) UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProfileQuery(id, update)
	if err != nil {
		return 0, wrapBuildError(err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.UpdateProfile").Str("id", id).Msg("error updating profile")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res.RowsAffected()
}
