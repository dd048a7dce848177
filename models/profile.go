// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Profile is the application-level record of a registered person.
// There is at most one Profile per Account: ID is both the primary key and
// the account identifier.
type Profile struct {
	ID         string `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	NationalID string `json:"national_id" db:"national_id"`
	Email      string `json:"email" db:"email"`

	// IsAdmin grants access to the admin operations. It is false on creation
	// and can only be changed out-of-band (see cmd/portal-admin).
	IsAdmin bool `json:"is_admin" db:"is_admin"`
}

// TableName returns the name of the table that stores profiles.
func (p Profile) TableName() string {
	return "profiles"
}

// IsEmpty reports whether p is the zero Profile used for a missing join.
func (p Profile) IsEmpty() bool {
	return p.ID == ""
}

// ProfileUpdate is a partial update of a Profile row. Nil fields are left
// untouched.
type ProfileUpdate struct {
	Name       *string `json:"name,omitempty"`
	NationalID *string `json:"national_id,omitempty"`
	Email      *string `json:"email,omitempty"`
	IsAdmin    *bool   `json:"is_admin,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Name == nil && u.NationalID == nil && u.Email == nil && u.IsAdmin == nil
}

// FullProfileUpdate builds an update that overwrites every column of p
// except the primary key.
func FullProfileUpdate(p Profile) ProfileUpdate {
	return ProfileUpdate{
		Name:       &p.Name,
		NationalID: &p.NationalID,
		Email:      &p.Email,
		IsAdmin:    &p.IsAdmin,
	}
}
