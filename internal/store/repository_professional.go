// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/staff-portal/internal/logger"
	"github.com/MKhiriev/staff-portal/models"
)

// professionalRepository is the PostgreSQL-backed implementation of
// [ProfessionalRepository] over the "professional_records" table.
type professionalRepository struct {
	*DB
	logger *logger.Logger
}

// NewProfessionalRepository constructs a [ProfessionalRepository] backed by
// the provided database connection and logger.
func NewProfessionalRepository(db *DB, logger *logger.Logger) ProfessionalRepository {
	logger.Debug().Msg("creating professional repository")
	return &professionalRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *professionalRepository) FindProfessional(ctx context.Context, id string) (models.ProfessionalRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindProfessionalQuery(id)
	if err != nil {
		return models.ProfessionalRecord{}, wrapBuildError(err)
	}

	var rec models.ProfessionalRecord
	err = r.DB.QueryRowContext(ctx, query, args...).
		Scan(&rec.ID, &rec.Profession, &rec.StartTime, &rec.EndTime, &rec.Salary, &rec.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ProfessionalRecord{}, ErrProfessionalNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*professionalRepository.FindProfessional").Str("id", id).Msg("error finding professional record")
		return models.ProfessionalRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return rec, nil
}

func (r *professionalRepository) ListProfessionals(ctx context.Context) ([]models.ProfessionalRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListProfessionalsQuery()
	if err != nil {
		return nil, wrapBuildError(err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*professionalRepository.ListProfessionals").Msg("error listing professional records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.ProfessionalRecord, 0, 50)
	for rows.Next() {
		var rec models.ProfessionalRecord
		if err = rows.Scan(&rec.ID, &rec.Profession, &rec.StartTime, &rec.EndTime, &rec.Salary, &rec.Status); err != nil {
			log.Err(err).Str("func", "*professionalRepository.ListProfessionals").Msg("error scanning professional row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (r *professionalRepository) CreateProfessional(ctx context.Context, record models.ProfessionalRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertProfessionalQuery(record)
	if err != nil {
		return wrapBuildError(err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*professionalRepository.CreateProfessional").Str("id", record.ID).Msg("error inserting professional record")
		if isUniqueViolation(err) {
			return ErrProfessionalAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *professionalRepository) UpdateProfessional(ctx context.Context, id string, update models.ProfessionalUpdate) (int64, error) {
	query, args, err := buildUpdateProfessionalQuery(id, update)
	if err != nil {
		return 0, wrapBuildError(err)
	}

	return r.exec(ctx, "*professionalRepository.UpdateProfessional", id, query, args)
}

func (r *professionalRepository) DeleteProfessional(ctx context.Context, id string) (int64, error) {
	query, args, err := buildDeleteProfessionalQuery(id)
	if err != nil {
		return 0, wrapBuildError(err)
	}

	return r.exec(ctx, "*professionalRepository.DeleteProfessional", id, query, args)
}

// exec runs a DML statement and returns the number of affected rows.
func (r *professionalRepository) exec(ctx context.Context, fn, id, query string, args []any) (int64, error) {
	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Str("id", id).Msg("error executing statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res.RowsAffected()
}
