package service

import (
	"bizdesk/config"
	"bizdesk/infras/otel"
	"bizdesk/internal/domains/faq/model"
	"bizdesk/internal/domains/faq/model/dto"
	"bizdesk/internal/domains/faq/repository"
	"bizdesk/shared"
	"bizdesk/shared/cache"
	"bizdesk/shared/constant"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type FAQ interface {
	Create(ctx context.Context, req dto.CreateFAQRequest) (dto.FAQResponse, error)
	GetAll(ctx context.Context) (dto.GetFAQsResponse, error)
}

type serviceImpl struct {
	repo  repository.FAQEntry
	cache cache.RedisCache
	cfg   *config.Config
	otel  otel.Otel
}

func New(repo repository.FAQEntry, redisCache cache.RedisCache, cfg *config.Config, otl otel.Otel) FAQ {
	return &serviceImpl{
		repo:  repo,
		cache: redisCache,
		cfg:   cfg,
		otel:  otl,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateFAQRequest) (res dto.FAQResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".faq.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	faq := req.ToModel()

	if err = s.repo.Insert(ctx, faq); err != nil {
		log.Error().Err(err).Msg("failed to create faq")

		return res, fmt.Errorf("failed to create faq: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.TableName)

	res.FromModel(faq)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetFAQsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".faq.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(model.TableName, "all")

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		return res, nil
	}

	models, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get faqs")

		return res, fmt.Errorf("failed to get faqs: %w", err)
	}

	res.FromModels(models)

	if cacheErr := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); cacheErr != nil {
		log.Error().Err(cacheErr).Str("key", cacheKey).Msg("failed to cache faqs")
	}

	return res, nil
}
