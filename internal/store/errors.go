// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrProfileNotFound is returned when no profile row has the requested id.
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrProfileAlreadyExists is returned when a profile insert collides with
	// an existing row of the same id (e.g. one created by a sign-up trigger).
	ErrProfileAlreadyExists = errors.New("profile already exists")

	// ErrProfessionalNotFound is returned when no professional record has the
	// requested id.
	ErrProfessionalNotFound = errors.New("professional record was not found")

	// ErrProfessionalAlreadyExists is returned when a professional record
	// insert collides with an existing row of the same id.
	ErrProfessionalAlreadyExists = errors.New("professional record already exists")
)

// Low-level operation errors. These are returned (or wrapped) by repository
// methods when a backend operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrRequestFailed is returned when the hosted REST data API cannot be
	// reached or answers with a non-2xx status.
	ErrRequestFailed = errors.New("data api request failed")

	// ErrEmptyUpdate is returned when an update carries no column to change.
	ErrEmptyUpdate = errors.New("nothing to update")
)
