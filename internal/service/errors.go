// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("portal version is empty")
	ErrInvalidDataProvided   = errors.New("invalid data provided")
)

var (
	ErrRegistrationRejected = errors.New("registration rejected")
	ErrRegistrationFailed   = errors.New("registration failed")
	ErrProfileNotSaved      = errors.New("account registered, profile not saved")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginFailed        = errors.New("login failed")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrAdminLoginDenied   = errors.New("account is not an administrator")

	ErrConfirmationFailed = errors.New("email confirmation failed")
)

var (
	ErrProfileUpdateFailed    = errors.New("profile update failed")
	ErrProfessionalSaveFailed = errors.New("professional record save failed")
)

var (
	ErrAccessDenied      = errors.New("access denied")
	ErrPermissionCheck   = errors.New("could not verify permissions")
	ErrAdminUpdateFailed = errors.New("professional update failed")
	ErrAdminDeleteFailed = errors.New("professional delete failed")
	ErrAdminGrantFailed  = errors.New("admin capability change failed")
)
