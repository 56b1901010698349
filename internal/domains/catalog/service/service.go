package service

import (
	"bizdesk/config"
	"bizdesk/infras/otel"
	"bizdesk/internal/domains/catalog/model"
	"bizdesk/internal/domains/catalog/model/dto"
	"bizdesk/internal/domains/catalog/repository"
	"bizdesk/shared"
	"bizdesk/shared/cache"
	"bizdesk/shared/constant"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Catalog interface {
	Create(ctx context.Context, req dto.CreateServiceRequest) (dto.ServiceResponse, error)
	GetAll(ctx context.Context) (dto.GetServicesResponse, error)
}

type serviceImpl struct {
	repo  repository.CatalogService
	cache cache.RedisCache
	cfg   *config.Config
	otel  otel.Otel
}

func New(repo repository.CatalogService, redisCache cache.RedisCache, cfg *config.Config, otl otel.Otel) Catalog {
	return &serviceImpl{
		repo:  repo,
		cache: redisCache,
		cfg:   cfg,
		otel:  otl,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateServiceRequest) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".catalog.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	svc := req.ToModel()

	if err = s.repo.Insert(ctx, svc); err != nil {
		log.Error().Err(err).Msg("failed to create service")

		return res, fmt.Errorf("failed to create service: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.TableName)

	res.FromModel(svc)

	return res, nil
}

// GetAll reads through the cache. The catalog changes rarely, so unlike the
// record collections it is worth caching for public-page traffic.
func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".catalog.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(model.TableName, "all")

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		return res, nil
	}

	models, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get services")

		return res, fmt.Errorf("failed to get services: %w", err)
	}

	res.FromModels(models)

	if cacheErr := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); cacheErr != nil {
		log.Error().Err(cacheErr).Str("key", cacheKey).Msg("failed to cache services")
	}

	return res, nil
}
