// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidBackendConfigs indicates a missing backend URL or key.
	ErrInvalidBackendConfigs = errors.New("invalid backend configuration: url and key are required")
	// ErrInvalidSessionConfigs indicates an unknown session backend or
	// missing settings for the selected one.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidServerConfigs indicates a missing HTTP address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
