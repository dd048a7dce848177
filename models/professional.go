// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StatusActive is the status a professional record gets when the form does
// not submit one.
const StatusActive = "ACTIVE"

// ProfessionalRecord holds the optional employment attributes of an account.
// There is at most one record per account id.
type ProfessionalRecord struct {
	ID         string `json:"id" db:"id"`
	Profession string `json:"profession" db:"profession"`
	StartTime  string `json:"start_time" db:"start_time"`
	EndTime    string `json:"end_time" db:"end_time"`

	// Salary is kept as submitted; it is not validated or parsed.
	Salary string `json:"salary" db:"salary"`
	Status string `json:"status" db:"status"`
}

// TableName returns the name of the table that stores professional records.
func (r ProfessionalRecord) TableName() string {
	return "professional_records"
}

// ProfessionalUpdate overwrites the mutable columns of a professional record.
type ProfessionalUpdate struct {
	Profession string `json:"profession"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Salary     string `json:"salary"`
	Status     string `json:"status"`
}

// Update returns the mutable part of r.
func (r ProfessionalRecord) Update() ProfessionalUpdate {
	return ProfessionalUpdate{
		Profession: r.Profession,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Salary:     r.Salary,
		Status:     r.Status,
	}
}

// ProfessionalView is a professional record joined with the profile of the
// same id, as listed on the admin page. Profile is the zero value when the
// profile row is missing.
type ProfessionalView struct {
	ProfessionalRecord
	Profile Profile `json:"profile"`
}
