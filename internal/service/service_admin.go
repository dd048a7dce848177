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

// adminService implements AdminService. Every privileged operation is
// expected to be preceded by RequireAdmin, which always reads the flag from
// the store and never from the session snapshot.
type adminService struct {
	profiles      store.ProfileRepository
	professionals store.ProfessionalRepository
	validator     validators.Validator

	logger *logger.Logger
}

func NewAdminService(profiles store.ProfileRepository, professionals store.ProfessionalRepository, logger *logger.Logger) AdminService {
	return &adminService{
		profiles:      profiles,
		professionals: professionals,
		validator:     validators.NewFormValidator(),
		logger:        logger,
	}
}

// RequireAdmin returns nil when the profile of id is flagged as
// administrator, ErrAccessDenied when it is not or does not exist, and
// ErrPermissionCheck when the store cannot be read.
func (a *adminService) RequireAdmin(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	profile, err := a.profiles.FindProfile(ctx, id)
	if errors.Is(err, store.ErrProfileNotFound) {
		log.Warn().Str("id", id).Msg("admin check for account without profile")
		return ErrAccessDenied
	}
	if err != nil {
		log.Err(err).Str("id", id).Msg("admin check failed")
		return fmt.Errorf("%w: %w", ErrPermissionCheck, err)
	}

	if !profile.IsAdmin {
		log.Warn().Str("id", id).Msg("admin operation refused")
		return ErrAccessDenied
	}

	return nil
}

// ListProfessionals joins every professional record with its profile using
// one batched profile lookup. A record without profile gets the zero
// Profile. Any failure is logged and yields an empty list.
func (a *adminService) ListProfessionals(ctx context.Context) []models.ProfessionalView {
	log := logger.FromContext(ctx)

	records, err := a.professionals.ListProfessionals(ctx)
	if err != nil {
		log.Err(err).Msg("professional records listing failed")
		return []models.ProfessionalView{}
	}
	if len(records) == 0 {
		return []models.ProfessionalView{}
	}

	ids := make([]string, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
	}

	profiles, err := a.profiles.FindProfiles(ctx, ids...)
	if err != nil {
		log.Err(err).Int("count", len(ids)).Msg("profiles lookup for professional records failed")
		return []models.ProfessionalView{}
	}

	byID := make(map[string]models.Profile, len(profiles))
	for _, profile := range profiles {
		byID[profile.ID] = profile
	}

	views := make([]models.ProfessionalView, 0, len(records))
	for _, record := range records {
		views = append(views, models.ProfessionalView{
			ProfessionalRecord: record,
			Profile:            byID[record.ID],
		})
	}

	return views
}

// EditProfessional overwrites the profile fields and the professional
// fields of targetID without checking that the rows exist. The profile
// fields pass the same checks as a self-service edit. Rows that do
// not exist are reported in the log only.
func (a *adminService) EditProfessional(ctx context.Context, targetID string, form models.AdminEditForm) error {
	log := logger.FromContext(ctx)

	target := models.Profile{ID: targetID, Name: form.Name, Email: form.Email, NationalID: form.NationalID}
	if err := a.validator.Validate(ctx, target); err != nil {
		log.Warn().Err(err).Str("target", targetID).Msg("invalid admin edit data provided")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	profileRows, err := a.profiles.UpdateProfile(ctx, targetID, models.ProfileUpdate{
		Name:       &form.Name,
		Email:      &form.Email,
		NationalID: &form.NationalID,
	})
	if err != nil {
		log.Err(err).Str("target", targetID).Msg("admin profile update failed")
		return fmt.Errorf("%w: %w", ErrAdminUpdateFailed, err)
	}

	record := form.ProfessionalForm.Record(targetID)
	recordRows, err := a.professionals.UpdateProfessional(ctx, targetID, record.Update())
	if err != nil {
		log.Err(err).Str("target", targetID).Msg("admin professional update failed")
		return fmt.Errorf("%w: %w", ErrAdminUpdateFailed, err)
	}

	if profileRows == 0 || recordRows == 0 {
		log.Warn().
			Str("target", targetID).
			Int64("profile_rows", profileRows).
			Int64("professional_rows", recordRows).
			Msg("admin edit matched no rows")
	}

	return nil
}

// DeleteProfessional removes only the professional record of targetID.
// The profile and the account stay.
func (a *adminService) DeleteProfessional(ctx context.Context, targetID string) error {
	log := logger.FromContext(ctx)

	rows, err := a.professionals.DeleteProfessional(ctx, targetID)
	if err != nil {
		log.Err(err).Str("target", targetID).Msg("admin professional delete failed")
		return fmt.Errorf("%w: %w", ErrAdminDeleteFailed, err)
	}

	if rows == 0 {
		log.Warn().Str("target", targetID).Msg("admin delete matched no rows")
	}

	return nil
}

func (a *adminService) SetAdmin(ctx context.Context, id string, isAdmin bool) error {
	if err := a.validator.Validate(ctx, models.Profile{ID: id}, validators.FieldAccountID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	rows, err := a.profiles.UpdateProfile(ctx, id, models.ProfileUpdate{IsAdmin: &isAdmin})
	if err != nil {
		a.logger.Err(err).Str("id", id).Msg("admin flag update failed")
		return fmt.Errorf("%w: %w", ErrAdminGrantFailed, err)
	}

	if rows == 0 {
		return fmt.Errorf("%w: %w", ErrAdminGrantFailed, ErrProfileNotFound)
	}

	a.logger.Info().Str("id", id).Bool("is_admin", isAdmin).Msg("admin flag updated")
	return nil
}
