// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/staff-portal/internal/adapter"
	"github.com/MKhiriev/staff-portal/internal/logger"
	"github.com/MKhiriev/staff-portal/internal/store"
	"github.com/MKhiriev/staff-portal/internal/validators"
	"github.com/MKhiriev/staff-portal/models"
)

// authService is the concrete implementation of AuthService.
// Credentials never reach the portal's own tables: passwords, tokens and
// email confirmation are handled by the identity provider, and the service
// only keeps the profiles table in step with the accounts it creates.
type authService struct {
	// identity is the remote identity provider.
	identity adapter.IdentityProvider

	// profiles is the data-access layer for the profiles table.
	profiles store.ProfileRepository

	// validator checks forms before they reach the identity provider.
	validator validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(identity adapter.IdentityProvider, profiles store.ProfileRepository, logger *logger.Logger) AuthService {
	return &authService{
		identity:  identity,
		profiles:  profiles,
		validator: validators.NewFormValidator(),
		logger:    logger,
	}
}

// Register creates a new account.
//
// The account is created by the identity provider with name and national id
// attached as metadata. The same data is then inserted into the profiles
// table with the admin flag cleared. When the insert fails (for example a
// database trigger already created a stub row) the row is updated instead.
//
// Returns nil on success or:
//   - ErrInvalidDataProvided if the form fails validation.
//   - ErrRegistrationFailed if the identity provider call fails.
//   - ErrRegistrationRejected if the provider answered without an account.
//   - ErrProfileNotSaved if the account exists but both profile writes
//     failed, or the fallback update found no row. The account is not
//     rolled back.
func (a *authService) Register(ctx context.Context, form models.RegistrationForm) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, form); err != nil {
		log.Error().Err(err).Str("email", form.Email).Msg("invalid registration data provided")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	account, err := a.identity.SignUp(ctx, form.Email, form.Password, models.AccountMetadata{
		Name:       form.Name,
		NationalID: form.NationalID,
	})
	if err != nil {
		log.Err(err).Str("email", form.Email).Msg("sign up failed")
		return fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	if account.IsEmpty() {
		log.Warn().Str("email", form.Email).Msg("identity provider returned no account")
		return ErrRegistrationRejected
	}

	profile := models.Profile{
		ID:         account.ID,
		Name:       form.Name,
		NationalID: form.NationalID,
		Email:      form.Email,
		IsAdmin:    false,
	}

	err = a.profiles.CreateProfile(ctx, profile)
	if err == nil {
		return nil
	}
	log.Err(err).Str("id", profile.ID).Msg("profile insert failed, updating instead")

	rows, err := a.profiles.UpdateProfile(ctx, profile.ID, models.FullProfileUpdate(profile))
	if err != nil {
		log.Err(err).Str("id", profile.ID).Msg("profile update failed")
		return fmt.Errorf("%w: %w", ErrProfileNotSaved, err)
	}
	if rows == 0 {
		log.Error().Str("id", profile.ID).Msg("profile update matched no rows")
		return fmt.Errorf("%w: %w", ErrProfileNotSaved, store.ErrProfileNotFound)
	}

	return nil
}

// Login authenticates the credentials and builds the session snapshot.
//
// Returns:
//   - ErrLoginFailed if the identity provider or the profile lookup fails.
//     Wrong passwords are reported by the provider as errors and land here.
//   - ErrInvalidCredentials if the provider answered without an account.
//   - ErrProfileNotFound if the account has no profile row.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.SessionState, error) {
	auth, profile, err := a.signIn(ctx, credentials)
	if err != nil {
		return models.SessionState{}, err
	}

	return models.NewSessionState(auth, profile), nil
}

// AdminLogin behaves like Login but refuses accounts whose profile is
// missing or not flagged as administrator with ErrAdminLoginDenied. The
// credentials are still verified by the provider first.
func (a *authService) AdminLogin(ctx context.Context, credentials models.Credentials) (models.SessionState, error) {
	auth, profile, err := a.signIn(ctx, credentials)
	if errors.Is(err, ErrProfileNotFound) {
		return models.SessionState{}, ErrAdminLoginDenied
	}
	if err != nil {
		return models.SessionState{}, err
	}

	if !profile.IsAdmin {
		logger.FromContext(ctx).Warn().Str("id", profile.ID).Msg("admin login refused for non-admin account")
		return models.SessionState{}, ErrAdminLoginDenied
	}

	return models.NewSessionState(auth, profile), nil
}

func (a *authService) signIn(ctx context.Context, credentials models.Credentials) (models.AuthSession, models.Profile, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.AuthSession{}, models.Profile{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	auth, err := a.identity.SignIn(ctx, credentials.Email, credentials.Password)
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("sign in failed")
		return models.AuthSession{}, models.Profile{}, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	if auth.User.IsEmpty() {
		log.Warn().Str("email", credentials.Email).Msg("identity provider returned no account")
		return models.AuthSession{}, models.Profile{}, ErrInvalidCredentials
	}

	profile, err := a.profiles.FindProfile(ctx, auth.User.ID)
	if errors.Is(err, store.ErrProfileNotFound) {
		log.Warn().Str("id", auth.User.ID).Msg("account has no profile")
		return models.AuthSession{}, models.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		log.Err(err).Str("id", auth.User.ID).Msg("profile lookup failed")
		return models.AuthSession{}, models.Profile{}, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	return auth, profile, nil
}

// ConfirmEmail verifies the email confirmation token.
func (a *authService) ConfirmEmail(ctx context.Context, email, token string) error {
	if err := a.identity.VerifyOTP(ctx, email, token, adapter.OTPTypeEmail); err != nil {
		logger.FromContext(ctx).Err(err).Str("email", email).Msg("email confirmation failed")
		return fmt.Errorf("%w: %w", ErrConfirmationFailed, err)
	}

	return nil
}

// Logout revokes the access token of the session. Failures are ignored:
// the caller tears the local session down regardless.
func (a *authService) Logout(ctx context.Context, state models.SessionState) {
	if state.AccessToken == "" {
		return
	}

	_ = a.identity.SignOut(ctx, state.AccessToken)
}
