// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SessionState is the server-side snapshot of an Account and its Profile
// taken at login time.
//
// It is not reloaded from the store on every request and can therefore go
// stale: a revoked admin flag stays set here until the next login. Admin
// operations never trust IsAdmin from the snapshot and re-read the store.
type SessionState struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	NationalID string `json:"national_id"`
	Confirmed  bool   `json:"confirmed"`
	IsAdmin    bool   `json:"is_admin"`

	// AccessToken is the identity-provider token issued at sign-in. It is
	// only used for the best-effort sign-out and never rendered.
	AccessToken string `json:"access_token,omitempty"`
}

// NewSessionState builds the login snapshot from a signed-in account and
// its profile.
func NewSessionState(auth AuthSession, profile Profile) SessionState {
	return SessionState{
		ID:          auth.User.ID,
		Email:       auth.User.Email,
		Name:        profile.Name,
		NationalID:  profile.NationalID,
		Confirmed:   auth.User.Confirmed(),
		IsAdmin:     profile.IsAdmin,
		AccessToken: auth.AccessToken,
	}
}

// IsEmpty reports whether the state carries no account.
func (s SessionState) IsEmpty() bool {
	return s.ID == ""
}
