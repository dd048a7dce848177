// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, access token parsing
// and unique identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/staff-portal/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key used to store the caller's [models.SessionState]
// in the request context. It is set by the session middleware for protected
// routes only.
//
// Example of writing a value to the context:
//
//	ctx := utils.WithSession(ctx, state)
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying state.
func WithSession(ctx context.Context, state models.SessionState) context.Context {
	return context.WithValue(ctx, SessionCtxKey, state)
}

// GetSessionFromContext retrieves the caller's session state from the context.
//
// Returns the state and an ok flag:
//   - ok == true:  a non-empty state is present
//   - ok == false: value is missing, has an unexpected type or carries no account
//
// Example usage:
//
//	state, ok := utils.GetSessionFromContext(ctx)
//	if !ok {
//	    // redirect to the login page
//	}
func GetSessionFromContext(ctx context.Context) (models.SessionState, bool) {
	state, ok := ctx.Value(SessionCtxKey).(models.SessionState)
	if !ok || state.IsEmpty() {
		return models.SessionState{}, false
	}

	return state, true
}
