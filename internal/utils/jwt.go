// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/staff-portal/models"
	"github.com/golang-jwt/jwt/v5"
)

// ParseAccessToken decodes an identity-provider access token without
// verifying its signature.
//
// The portal does not hold the provider's signing key; the token was
// received directly from the provider over TLS and is only inspected for its
// registered claims (most importantly the "sub" claim carrying the account
// id).
//
// Returns an error if tokenString is empty or is not a well-formed JWT.
//
// Example usage:
//
//	token, err := utils.ParseAccessToken(session.AccessToken)
//	accountID, err := token.GetAccountID()
func ParseAccessToken(tokenString string) (models.Token, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return models.Token{}, errors.New("empty access token")
	}

	claims := &models.Token{}
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred parsing access token: %w", err)
	}

	claims.Token = token
	claims.SignedString = tokenString

	return *claims, nil
}

// AccountIDFromAccessToken returns the "sub" claim of an access token.
func AccountIDFromAccessToken(tokenString string) (string, error) {
	token, err := ParseAccessToken(tokenString)
	if err != nil {
		return "", err
	}

	return token.GetAccountID()
}
