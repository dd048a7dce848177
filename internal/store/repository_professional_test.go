// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/staff-portal/internal/logger"
	"github.com/MKhiriev/staff-portal/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProfessionalRepo(t *testing.T) (*professionalRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewProfessionalRepository(db, logger.Nop()).(*professionalRepository), mock
}

var professionalRowColumns = []string{"id", "profession", "start_time", "end_time", "salary", "status"}

func TestFindProfessional_Success(t *testing.T) {
	repo, mock := newTestProfessionalRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM professional_records WHERE id = \\$1").
		WithArgs("acc-1").
		WillReturnRows(sqlmock.NewRows(professionalRowColumns).
			AddRow("acc-1", "Engineer", "08:00", "17:00", "1000", "ACTIVE"))

	got, err := repo.FindProfessional(context.Background(), "acc-1")

	require.NoError(t, err)
	assert.Equal(t, models.ProfessionalRecord{
		ID: "acc-1", Profession: "Engineer", StartTime: "08:00", EndTime: "17:00", Salary: "1000", Status: "ACTIVE",
	}, got)
}

func TestFindProfessional_NotFound(t *testing.T) {
	repo, mock := newTestProfessionalRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM professional_records").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindProfessional(context.Background(), "acc-1")

	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestListProfessionals_Success(t *testing.T) {
	repo, mock := newTestProfessionalRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM professional_records ORDER BY id").
		WillReturnRows(sqlmock.NewRows(professionalRowColumns).
			AddRow("a", "Engineer", "", "", "1", "ACTIVE").
			AddRow("b", "Nurse", "", "", "2", "INACTIVE"))

	got, err := repo.ListProfessionals(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Nurse", got[1].Profession)
}

func TestListProfessionals_Empty(t *testing.T) {
	repo, mock := newTestProfessionalRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM professional_records").
		WillReturnRows(sqlmock.NewRows(professionalRowColumns))

	got, err := repo.ListProfessionals(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListProfessionals_DBError(t *testing.T) {
	repo, mock := newTestProfessionalRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM professional_records").
		WillReturnError(errors.New("timeout"))

	_, err := repo.ListProfessionals(context.Background())

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCreateProfessional_UniqueViolation(t *testing.T) {
	repo, mock := newTestProfessionalRepo(t)

	mock.ExpectExec("INSERT INTO professional_records").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.CreateProfessional(context.Background(), models.ProfessionalRecord{ID: "acc-1"})

	assert.ErrorIs(t, err, ErrProfessionalAlreadyExists)
}

func TestCreateProfessional_Success(t *testing.T) {
	repo, mock := newTestProfessionalRepo(t)
	rec := models.ProfessionalRecord{ID: "acc-1", Profession: "Engineer", Status: "ACTIVE"}

	mock.ExpectExec("INSERT INTO professional_records").
		WithArgs("acc-1", "Engineer", "", "", "", "ACTIVE").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateProfessional(context.Background(), rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProfessional_RowsAffected(t *testing.T) {
	repo, mock := newTestProfessionalRepo(t)

	mock.ExpectExec("UPDATE professional_records SET").
		WithArgs("Engineer", "08:00", "17:00", "1000", "ACTIVE", "acc-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := repo.UpdateProfessional(context.Background(), "acc-1", models.ProfessionalUpdate{
		Profession: "Engineer", StartTime: "08:00", EndTime: "17:00", Salary: "1000", Status: "ACTIVE",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestDeleteProfessional_ZeroRows(t *testing.T) {
	repo, mock := newTestProfessionalRepo(t)

	mock.ExpectExec("DELETE FROM professional_records WHERE id = \\$1").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := repo.DeleteProfessional(context.Background(), "missing")

	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDeleteProfessional_DBError(t *testing.T) {
	repo, mock := newTestProfessionalRepo(t)

	mock.ExpectExec("DELETE FROM professional_records").
		WillReturnError(errors.New("broken pipe"))

	_, err := repo.DeleteProfessional(context.Background(), "acc-1")

	assert.ErrorIs(t, err, ErrExecutingStatement)
}
