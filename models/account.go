// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account is the identity-provider record behind every portal user.
// The portal never writes it directly: it is created by sign-up and
// mutated by the provider on email confirmation.
type Account struct {
	// ID is the opaque, provider-assigned account identifier. It is also the
	// primary key of the matching Profile and ProfessionalRecord rows.
	ID string `json:"id"`

	// Email is the address the account was registered with.
	Email string `json:"email"`

	// EmailConfirmedAt is set by the provider once the confirmation token
	// was verified. Nil means the address is still unconfirmed.
	EmailConfirmedAt *time.Time `json:"email_confirmed_at,omitempty"`
}

// Confirmed reports whether the account's email address was confirmed.
func (a Account) Confirmed() bool {
	return a.EmailConfirmedAt != nil
}

// IsEmpty reports whether the provider returned no usable account.
func (a Account) IsEmpty() bool {
	return a.ID == ""
}

// AuthSession is the result of a successful password sign-in.
type AuthSession struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	User         Account `json:"user"`
}

// AccountMetadata is attached to the account at sign-up and mirrored into
// the Profile row by the portal.
type AccountMetadata struct {
	Name       string `json:"name"`
	NationalID string `json:"national_id"`
}
