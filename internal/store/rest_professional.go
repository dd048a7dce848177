// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/staff-portal/internal/logger"
	"github.com/MKhiriev/staff-portal/internal/utils"
	"github.com/MKhiriev/staff-portal/models"
	"github.com/go-resty/resty/v2"
)

// restProfessionalRepository implements [ProfessionalRepository] over the
// hosted PostgREST-compatible data API.
type restProfessionalRepository struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

func NewRESTProfessionalRepository(client *utils.HTTPClient, logger *logger.Logger) ProfessionalRepository {
	logger.Debug().Msg("creating rest professional repository")
	return &restProfessionalRepository{
		client: client,
		logger: logger,
	}
}

func (r *restProfessionalRepository) FindProfessional(ctx context.Context, id string) (models.ProfessionalRecord, error) {
	var records []models.ProfessionalRecord
	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("id", eqFilter(id)).
		SetResult(&records).
		Get(restPath(professionalTable))
	if err = r.check(ctx, "FindProfessional", id, resp, err); err != nil {
		return models.ProfessionalRecord{}, err
	}

	if len(records) == 0 {
		return models.ProfessionalRecord{}, ErrProfessionalNotFound
	}

	return records[0], nil
}

func (r *restProfessionalRepository) ListProfessionals(ctx context.Context) ([]models.ProfessionalRecord, error) {
	records := make([]models.ProfessionalRecord, 0)
	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("order", "id").
		SetResult(&records).
		Get(restPath(professionalTable))
	if err = r.check(ctx, "ListProfessionals", "", resp, err); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *restProfessionalRepository) CreateProfessional(ctx context.Context, record models.ProfessionalRecord) error {
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(headerPrefer, preferMinimal).
		SetBody(record).
		Post(restPath(professionalTable))
	if err == nil && isConflict(resp) {
		return ErrProfessionalAlreadyExists
	}

	return r.check(ctx, "CreateProfessional", record.ID, resp, err)
}

func (r *restProfessionalRepository) UpdateProfessional(ctx context.Context, id string, update models.ProfessionalUpdate) (int64, error) {
	var updated []models.ProfessionalRecord
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(headerPrefer, preferRepresentation).
		SetQueryParam("id", eqFilter(id)).
		SetBody(update).
		SetResult(&updated).
		Patch(restPath(professionalTable))
	if err = r.check(ctx, "UpdateProfessional", id, resp, err); err != nil {
		return 0, err
	}

	return int64(len(updated)), nil
}

func (r *restProfessionalRepository) DeleteProfessional(ctx context.Context, id string) (int64, error) {
	var deleted []models.ProfessionalRecord
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader(headerPrefer, preferRepresentation).
		SetQueryParam("id", eqFilter(id)).
		SetResult(&deleted).
		Delete(restPath(professionalTable))
	if err = r.check(ctx, "DeleteProfessional", id, resp, err); err != nil {
		return 0, err
	}

	return int64(len(deleted)), nil
}

// check logs and wraps a transport error or a non-2xx response.
func (r *restProfessionalRepository) check(ctx context.Context, op, id string, resp *resty.Response, err error) error {
	log := logger.FromContext(ctx)

	if err != nil {
		log.Err(err).Str("func", "*restProfessionalRepository."+op).Str("id", id).Msg("request failed")
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if err = mapRESTError(resp); err != nil {
		log.Err(err).Str("func", "*restProfessionalRepository."+op).Str("id", id).Msg("data api error")
		return err
	}

	return nil
}
