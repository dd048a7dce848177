// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/staff-portal/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldAccountID  = "account_id"
	FieldName       = "name"
	FieldNationalID = "national_id"
)

// maxTextLength bounds the free-text profile fields.
const maxTextLength = 255

type FormValidator struct{}

func NewFormValidator() Validator {
	return &FormValidator{}
}

func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegistrationForm:
		return v.validateRegistration(value, fields...)
	case *models.RegistrationForm:
		return v.validateRegistration(*value, fields...)

	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.ProfessionalRecord:
		return v.validateProfessional(value, fields...)
	case *models.ProfessionalRecord:
		return v.validateProfessional(*value, fields...)

	case models.Profile:
		return v.validateProfile(value, fields...)
	case *models.Profile:
		return v.validateProfile(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FormValidator) validateRegistration(form models.RegistrationForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldName, FieldNationalID}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldEmail:
			err = checkEmail(form.Email)
		case FieldPassword:
			err = checkPassword(form.Password)
		case FieldName:
			err = checkLength(FieldName, form.Name)
		case FieldNationalID:
			err = checkLength(FieldNationalID, form.NationalID)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// validateCredentials only checks presence: a malformed address is left
// to the identity provider to reject.
func (v *FormValidator) validateCredentials(credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(credentials.Email) == "" {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if err := checkPassword(credentials.Password); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateProfessional checks the owner id only. Profession, hours and
// salary are stored as submitted.
func (v *FormValidator) validateProfessional(record models.ProfessionalRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAccountID}
	}

	for _, f := range fields {
		switch f {
		case FieldAccountID:
			if strings.TrimSpace(record.ID) == "" {
				return ErrInvalidAccountID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateProfile(profile models.Profile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAccountID, FieldName, FieldNationalID, FieldEmail}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldAccountID:
			if strings.TrimSpace(profile.ID) == "" {
				err = ErrInvalidAccountID
			}
		case FieldEmail:
			err = checkLength(FieldEmail, profile.Email)
		case FieldName:
			err = checkLength(FieldName, profile.Name)
		case FieldNationalID:
			err = checkLength(FieldNationalID, profile.NationalID)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func checkEmail(email string) error {
	email = strings.TrimSpace(email)
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return ErrInvalidEmail
	}
	return nil
}

func checkPassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	return nil
}

func checkLength(field, value string) error {
	if len(value) > maxTextLength {
		return fmt.Errorf("%w: %s", ErrFieldTooLong, field)
	}
	return nil
}
