// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the identity
// provider or the store.
//
// A Validator dispatches on the type of the value and optionally restricts
// the check to named fields. Services own their validator and translate its
// errors into their own sentinels.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
