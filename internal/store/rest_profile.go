// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/staff-portal/internal/logger"
	"github.com/MKhiriev/staff-portal/internal/utils"
	"github.com/MKhiriev/staff-portal/models"
)

// restProfileRepository implements [ProfileRepository] over the hosted
// PostgREST-compatible data API.
type restProfileRepository struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewRESTProfileRepository constructs a [ProfileRepository] that issues
// requests through client, which must already carry the base URL and API
// key (see [utils.NewBackendClient]).
func NewRESTProfileRepository(client *utils.HTTPClient, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating rest profile repository")
	return &restProfileRepository{
		client: client,
		logger: logger,
	}
}

func (r *restProfileRepository) FindProfile(ctx context.Context, id string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	var profiles []models.Profile
	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("id", eqFilter(id)).
		SetResult(&profiles).
		Get(restPath(profileTable))
	if err != nil {
		log.Err(err).Str("func", "*restProfileRepository.FindProfile").Str("id", id).Msg("request failed")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if err = mapRESTError(resp); err != nil {
		log.Err(err).Str("func", "*restProfileRepository.FindProfile").Str("id", id).Msg("data api error")
		return models.Profile{}, err
	}

	if len(profiles) == 0 {
		return models.Profile{}, ErrProfileNotFound
	}

	return profiles[0], nil
}

func (r *restProfileRepository) FindProfiles(ctx context.Context, ids ...string) ([]models.Profile, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return []models.Profile{}, nil
	}

	profiles := make([]models.Profile, 0, len(ids))
	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("id", inFilter(ids)).
		SetResult(&profiles).
		Get(restPath(profileTable))
	if err != nil {
		log.Err(err).Str("func", "*restProfileRepository.FindProfiles").Int("ids", len(ids)).Msg("request failed")
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if err = mapRESTError(resp); err != nil {
		log.Err(err).Str("func", "*restProfileRepository.FindProfiles").Int("ids", len(ids)).Msg("data api error")
		return nil, err
	}

	return profiles, nil
}

func (r *restProfileRepository) CreateProfile(ctx context.Context, profile models.Profile) error {
	log := logger.FromContext(ctx)

	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(headerPrefer, preferMinimal).
		SetBody(profile).
		Post(restPath(profileTable))
	if err != nil {
		log.Err(err).Str("func", "*restProfileRepository.CreateProfile").Str("id", profile.ID).Msg("request failed")
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if isConflict(resp) {
		return ErrProfileAlreadyExists
	}
	if err = mapRESTError(resp); err != nil {
		log.Err(err).Str("func", "*restProfileRepository.CreateProfile").Str("id", profile.ID).Msg("data api error")
		return err
	}

	return nil
}

func (r *restProfileRepository) UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (int64, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return 0, ErrEmptyUpdate
	}

	var updated []models.Profile
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(headerPrefer, preferRepresentation).
		SetQueryParam("id", eqFilter(id)).
		SetBody(update).
		SetResult(&updated).
		Patch(restPath(profileTable))
	if err != nil {
		log.Err(err).Str("func", "*restProfileRepository.UpdateProfile").Str("id", id).Msg("request failed")
		return 0, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if err = mapRESTError(resp); err != nil {
		log.Err(err).Str("func", "*restProfileRepository.UpdateProfile").Str("id", id).Msg("data api error")
		return 0, err
	}

	return int64(len(updated)), nil
}
