// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client for the hosted identity provider.
//
// The primary abstraction is [IdentityProvider], which decouples the service
// layer from the provider's REST API. The package ships a GoTrue-compatible
// implementation ([NewIdentityProvider]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrBadRequest] for
// rejected credentials, [ErrUnprocessable] for a refused sign-up).
package adapter

import (
	"context"

	"github.com/MKhiriev/staff-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/identity_provider_mock.go -package=mock

// IdentityProvider is the set of account operations the portal delegates to
// the hosted identity service. Password storage, token issuance and OTP
// verification all happen on the provider side.
type IdentityProvider interface {
	// SignUp creates an account with the given credentials and metadata.
	// A provider that accepts the request but returns no user yields an
	// empty [models.Account] and a nil error.
	SignUp(ctx context.Context, email, password string, metadata models.AccountMetadata) (models.Account, error)

	// SignIn exchanges email and password for an [models.AuthSession].
	// The returned session always carries a non-empty User.ID or an error.
	SignIn(ctx context.Context, email, password string) (models.AuthSession, error)

	// SignOut revokes the refresh tokens behind accessToken.
	SignOut(ctx context.Context, accessToken string) error

	// VerifyOTP confirms a one-time token sent to email. otpType is the
	// provider verification type, "email" for sign-up confirmation.
	VerifyOTP(ctx context.Context, email, token, otpType string) error
}
