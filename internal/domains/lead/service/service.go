package service

import (
	"bizdesk/infras/otel"
	"bizdesk/internal/domains/lead/model/dto"
	"bizdesk/internal/domains/lead/repository"
	"bizdesk/shared/constant"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Lead interface {
	Create(ctx context.Context, req dto.CreateLeadRequest) (dto.LeadResponse, error)
	GetAll(ctx context.Context) (dto.GetLeadsResponse, error)
}

type serviceImpl struct {
	repo repository.Lead
	otel otel.Otel
}

func New(repo repository.Lead, otl otel.Otel) Lead {
	return &serviceImpl{
		repo: repo,
		otel: otl,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateLeadRequest) (res dto.LeadResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".lead.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	lead := req.ToModel()

	if err = s.repo.Insert(ctx, lead); err != nil {
		log.Error().Err(err).Msg("failed to create lead")

		return res, fmt.Errorf("failed to create lead: %w", err)
	}

	res.FromModel(lead)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetLeadsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".lead.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get leads")

		return res, fmt.Errorf("failed to get leads: %w", err)
	}

	res.FromModels(models)

	return res, nil
}
