// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps an identity-provider access token with accessors for the
// claims the portal relies on.
//
// It embeds [jwt.Token] for low-level parsing and [jwt.RegisteredClaims] for
// standard claim access (subject, expiry, etc.). The portal never signs
// tokens: they are issued by the identity provider and only inspected here.
type Token struct {
	// Token is the underlying parsed JWT.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation received from the
	// identity provider.
	SignedString string `json:"-"`
}

// GetAccountID returns the account identifier carried in the "sub" claim.
//
// Returns an error if the subject claim is missing or empty.
func (t *Token) GetAccountID() (string, error) {
	accountID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting account id from token: %w", err)
	}
	if accountID == "" {
		return "", fmt.Errorf("error extracting account id from token: empty subject")
	}

	return accountID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
