// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegistrationForm is the input of the registration operation.
type RegistrationForm struct {
	Name       string
	NationalID string
	Email      string
	Password   string
}

// Credentials is the input of both login variants.
type Credentials struct {
	Email    string
	Password string
}

// ProfileForm carries the self-service profile fields. Empty values mean
// "keep the current value".
type ProfileForm struct {
	Name       string
	NationalID string
}

// ProfessionalForm carries the professional fields submitted by the owner
// of the record.
type ProfessionalForm struct {
	Profession string
	StartTime  string
	EndTime    string
	Salary     string
	Status     string
}

// Record builds the professional record of account id from the form,
// applying the default status.
func (f ProfessionalForm) Record(id string) ProfessionalRecord {
	status := f.Status
	if status == "" {
		status = StatusActive
	}

	return ProfessionalRecord{
		ID:         id,
		Profession: f.Profession,
		StartTime:  f.StartTime,
		EndTime:    f.EndTime,
		Salary:     f.Salary,
		Status:     status,
	}
}

// AdminEditForm carries every field an administrator overwrites on a target
// account: profile fields and professional fields.
type AdminEditForm struct {
	Name       string
	Email      string
	NationalID string
	ProfessionalForm
}
