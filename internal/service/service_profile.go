// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/staff-portal/internal/logger"
	"github.com/MKhiriev/staff-portal/internal/store"
	"github.com/MKhiriev/staff-portal/internal/validators"
	"github.com/MKhiriev/staff-portal/models"
)

type profileService struct {
	profiles      store.ProfileRepository
	professionals store.ProfessionalRepository

	// saveLocks serialises SaveProfessional per account id.
	saveLocks *keyedMutex
	validator validators.Validator

	logger *logger.Logger
}

func NewProfileService(profiles store.ProfileRepository, professionals store.ProfessionalRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		profiles:      profiles,
		professionals: professionals,
		saveLocks:     newKeyedMutex(),
		validator:     validators.NewFormValidator(),
		logger:        logger,
	}
}

func (p *profileService) GetOwnProfessional(ctx context.Context, id string) (*models.ProfessionalRecord, error) {
	record, err := p.professionals.FindProfessional(ctx, id)
	if errors.Is(err, store.ErrProfessionalNotFound) {
		return nil, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", id).Msg("professional record lookup failed")
		return nil, err
	}

	return &record, nil
}

// UpdateOwnProfile writes the merged name and national id of the session
// owner. A non-empty submitted value replaces the current one, an empty
// value keeps it. On failure state is returned unchanged.
func (p *profileService) UpdateOwnProfile(ctx context.Context, state models.SessionState, form models.ProfileForm) (models.SessionState, error) {
	merged := state
	if form.Name != "" {
		merged.Name = form.Name
	}
	if form.NationalID != "" {
		merged.NationalID = form.NationalID
	}

	profile := models.Profile{ID: merged.ID, Name: merged.Name, NationalID: merged.NationalID}
	if err := p.validator.Validate(ctx, profile); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("id", state.ID).Msg("invalid profile data provided")
		return state, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	_, err := p.profiles.UpdateProfile(ctx, state.ID, models.ProfileUpdate{
		Name:       &merged.Name,
		NationalID: &merged.NationalID,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", state.ID).Msg("profile update failed")
		return state, fmt.Errorf("%w: %w", ErrProfileUpdateFailed, err)
	}

	return merged, nil
}

// SaveProfessional is a check-then-act upsert. Saves for the same id are
// serialised inside the process; an insert that still collides with a row
// written by another process falls back to an update.
func (p *profileService) SaveProfessional(ctx context.Context, id string, form models.ProfessionalForm) (bool, error) {
	log := logger.FromContext(ctx)

	record := form.Record(id)
	if err := p.validator.Validate(ctx, record); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	unlock := p.saveLocks.Lock(id)
	defer unlock()

	_, err := p.professionals.FindProfessional(ctx, id)
	switch {
	case err == nil:
		return false, p.updateProfessional(ctx, record)
	case !errors.Is(err, store.ErrProfessionalNotFound):
		log.Err(err).Str("id", id).Msg("professional record lookup failed")
		return false, fmt.Errorf("%w: %w", ErrProfessionalSaveFailed, err)
	}

	err = p.professionals.CreateProfessional(ctx, record)
	if errors.Is(err, store.ErrProfessionalAlreadyExists) {
		log.Warn().Str("id", id).Msg("professional record appeared concurrently, updating instead")
		return false, p.updateProfessional(ctx, record)
	}
	if err != nil {
		log.Err(err).Str("id", id).Msg("professional record insert failed")
		return false, fmt.Errorf("%w: %w", ErrProfessionalSaveFailed, err)
	}

	return true, nil
}

func (p *profileService) updateProfessional(ctx context.Context, record models.ProfessionalRecord) error {
	if _, err := p.professionals.UpdateProfessional(ctx, record.ID, record.Update()); err != nil {
		logger.FromContext(ctx).Err(err).Str("id", record.ID).Msg("professional record update failed")
		return fmt.Errorf("%w: %w", ErrProfessionalSaveFailed, err)
	}

	return nil
}
