// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/staff-portal/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	profileTable      = models.Profile{}.TableName()
	professionalTable = models.ProfessionalRecord{}.TableName()

	profileColumns      = []string{"id", "name", "national_id", "email", "is_admin"}
	professionalColumns = []string{"id", "profession", "start_time", "end_time", "salary", "status"}
)

func buildFindProfileQuery(id string) (string, []any, error) {
	return psql.Select(profileColumns...).
		From(profileTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildFindProfilesQuery(ids []string) (string, []any, error) {
	return psql.Select(profileColumns...).
		From(profileTable).
		Where(sq.Eq{"id": ids}).
		ToSql()
}

func buildInsertProfileQuery(p models.Profile) (string, []any, error) {
	return psql.Insert(profileTable).
		Columns(profileColumns...).
		Values(p.ID, p.Name, p.NationalID, p.Email, p.IsAdmin).
		ToSql()
}

// buildUpdateProfileQuery sets only the non-nil fields of u, in column order.
func buildUpdateProfileQuery(id string, u models.ProfileUpdate) (string, []any, error) {
	if u.IsEmpty() {
		return "", nil, ErrEmptyUpdate
	}

	builder := psql.Update(profileTable)
	if u.Name != nil {
		builder = builder.Set("name", *u.Name)
	}
	if u.NationalID != nil {
		builder = builder.Set("national_id", *u.NationalID)
	}
	if u.Email != nil {
		builder = builder.Set("email", *u.Email)
	}
	if u.IsAdmin != nil {
		builder = builder.Set("is_admin", *u.IsAdmin)
	}

	return builder.Where(sq.Eq{"id": id}).ToSql()
}

func buildFindProfessionalQuery(id string) (string, []any, error) {
	return psql.Select(professionalColumns...).
		From(professionalTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildListProfessionalsQuery() (string, []any, error) {
	return psql.Select(professionalColumns...).
		From(professionalTable).
		OrderBy("id").
		ToSql()
}

func buildInsertProfessionalQuery(r models.ProfessionalRecord) (string, []any, error) {
	return psql.Insert(professionalTable).
		Columns(professionalColumns...).
		Values(r.ID, r.Profession, r.StartTime, r.EndTime, r.Salary, r.Status).
		ToSql()
}

func buildUpdateProfessionalQuery(id string, u models.ProfessionalUpdate) (string, []any, error) {
	return psql.Update(professionalTable).
		Set("profession", u.Profession).
		Set("start_time", u.StartTime).
		Set("end_time", u.EndTime).
		Set("salary", u.Salary).
		Set("status", u.Status).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteProfessionalQuery(id string) (string, []any, error) {
	return psql.Delete(professionalTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func wrapBuildError(err error) error {
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}
