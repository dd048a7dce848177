// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of the staff portal: account
// registration and login, the self-service panel and the administrator
// record management. Services return the sentinel errors declared in
// errors.go, wrapped with the cause; the HTTP layer picks the user-facing
// message from the sentinel.
package service

import (
	"context"

	"github.com/MKhiriev/staff-portal/models"
)

type AuthService interface {
	// Register creates the account and mirrors its metadata into a profile
	// row. ErrProfileNotSaved reports an account that exists without a
	// profile.
	Register(ctx context.Context, form models.RegistrationForm) error

	// Login signs in and returns the session snapshot of the account.
	Login(ctx context.Context, credentials models.Credentials) (models.SessionState, error)

	// AdminLogin is Login restricted to accounts whose profile is flagged
	// as administrator.
	AdminLogin(ctx context.Context, credentials models.Credentials) (models.SessionState, error)

	ConfirmEmail(ctx context.Context, email, token string) error

	// Logout signs the session out of the identity provider. It never
	// fails.
	Logout(ctx context.Context, state models.SessionState)
}

type ProfileService interface {
	// GetOwnProfessional returns the professional record of id, or nil
	// when the account has none.
	GetOwnProfessional(ctx context.Context, id string) (*models.ProfessionalRecord, error)

	// UpdateOwnProfile merges form over state, writes the result to the
	// profile row and returns the refreshed snapshot.
	UpdateOwnProfile(ctx context.Context, state models.SessionState, form models.ProfileForm) (models.SessionState, error)

	// SaveProfessional updates the professional record of id or inserts it
	// when missing. inserted reports which branch was taken.
	SaveProfessional(ctx context.Context, id string, form models.ProfessionalForm) (inserted bool, err error)
}

type AdminService interface {
	// RequireAdmin re-reads the admin flag of id from the store.
	RequireAdmin(ctx context.Context, id string) error

	// ListProfessionals returns every professional record joined with its
	// profile. Failures yield an empty list.
	ListProfessionals(ctx context.Context) []models.ProfessionalView

	EditProfessional(ctx context.Context, targetID string, form models.AdminEditForm) error
	DeleteProfessional(ctx context.Context, targetID string) error

	// SetAdmin grants or revokes the admin capability. It is only reachable
	// from the maintenance command, never from HTTP.
	SetAdmin(ctx context.Context, id string, isAdmin bool) error
}

// VersionService reports the running portal version.
type VersionService interface {
	Version(ctx context.Context) string
}
