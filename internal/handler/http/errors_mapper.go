// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/staff-portal/internal/app"
	"github.com/MKhiriev/staff-portal/internal/service"
)

type errorMessage struct {
	err     error
	message string
}

// errorMessages maps service errors to the flash message shown to the
// user. Causes wrapped inside the service errors are only logged. The first
// match wins.
var errorMessages = []errorMessage{
	{service.ErrInvalidDataProvided, app.MsgInvalidDataProvided},

	{service.ErrRegistrationRejected, app.MsgRegistrationRejected},
	{service.ErrRegistrationFailed, app.MsgRegistrationFailed},
	{service.ErrProfileNotSaved, app.MsgRegistrationProfileNotSaved},

	{service.ErrInvalidCredentials, app.MsgInvalidCredentials},
	{service.ErrLoginFailed, app.MsgLoginFailed},
	{service.ErrProfileNotFound, app.MsgProfileNotFound},
	{service.ErrAdminLoginDenied, app.MsgAdminLoginDenied},
	{service.ErrConfirmationFailed, app.MsgEmailConfirmationFailed},

	{service.ErrProfileUpdateFailed, app.MsgProfileUpdateFailed},
	{service.ErrProfessionalSaveFailed, app.MsgProfessionalSaveFailed},

	{service.ErrAccessDenied, app.MsgAccessDenied},
	{service.ErrPermissionCheck, app.MsgPermissionCheckFailed},
	{service.ErrAdminUpdateFailed, app.MsgAdminProfessionalUpdateFailed},
	{service.ErrAdminDeleteFailed, app.MsgAdminProfessionalDeleteFailed},
}

// messageFromError returns the flash message for err, or fallback when err
// carries no known service error.
func messageFromError(err error, fallback string) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			return m.message
		}
	}
	return fallback
}
