// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/staff-portal/internal/app"
	"github.com/MKhiriev/staff-portal/internal/service"
	"github.com/MKhiriev/staff-portal/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMessageFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback string
		want     string
	}{
		{
			name:     "plain sentinel",
			err:      service.ErrAccessDenied,
			fallback: "fallback",
			want:     app.MsgAccessDenied,
		},
		{
			name:     "wrapped with cause",
			err:      fmt.Errorf("%w: %w", service.ErrProfileNotSaved, store.ErrProfileAlreadyExists),
			fallback: "fallback",
			want:     app.MsgRegistrationProfileNotSaved,
		},
		{
			name:     "store error is not shown",
			err:      store.ErrProfileNotFound,
			fallback: app.MsgLoginFailed,
			want:     app.MsgLoginFailed,
		},
		{
			name:     "unknown error",
			err:      errors.New("boom"),
			fallback: app.MsgProfileUpdateFailed,
			want:     app.MsgProfileUpdateFailed,
		},
		{
			name:     "nil error",
			fallback: "fallback",
			want:     "fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, messageFromError(tt.err, tt.fallback))
		})
	}
}
