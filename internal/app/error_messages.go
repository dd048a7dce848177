// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing flash messages of the staff portal.
//
// Every page the portal renders after a redirect shows one of these
// strings. Keeping them in one place keeps the wording consistent between
// the handlers and the error mapper.
package app

// Registration.
const (
	MsgRegistrationSuccess         = "Registration successful! Check your email to confirm."
	MsgRegistrationProfileNotSaved = "Registered, but error saving extra data."
	MsgRegistrationRejected        = "Registration error. Try again."
	MsgRegistrationFailed          = "Registration error. Check the data and try again."
)

// Login and email confirmation.
const (
	MsgProfileNotFound    = "Profile not found."
	MsgInvalidCredentials = "Incorrect email or password."
	MsgLoginFailed        = "Login error. Check the data and try again."

	// MsgAdminLoginDenied is shown when valid credentials belong to an
	// account without the admin capability.
	MsgAdminLoginDenied = "Access denied. Only administrators can access this panel."

	MsgEmailConfirmed          = "Email confirmed! Now log in."
	MsgEmailConfirmationFailed = "Email confirmation error."
)

// Self-service panel.
const (
	MsgProfileUpdated         = "Data updated successfully."
	MsgProfileUpdateFailed    = "Error updating data."
	MsgProfessionalUpdated    = "Professional data updated successfully!"
	MsgProfessionalSaved      = "Professional data saved successfully!"
	MsgProfessionalSaveFailed = "Error saving professional data."
)

// Administration.
const (
	// MsgAdminOnly is shown when the admin list is requested without the
	// admin capability.
	MsgAdminOnly = "Access denied. Administrators only."

	// MsgAccessDenied is shown when an admin edit or delete is refused.
	MsgAccessDenied = "Access denied."

	MsgPermissionCheckFailed = "Error verifying permissions."

	MsgAdminProfessionalUpdated      = "Professional updated successfully!"
	MsgAdminProfessionalUpdateFailed = "Error updating professional."
	MsgAdminProfessionalDeleted      = "Professional deleted successfully!"
	MsgAdminProfessionalDeleteFailed = "Error deleting professional."
)

// MsgInvalidDataProvided is shown when a form misses a required field.
const MsgInvalidDataProvided = "Invalid data provided."
