package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bizdesk/config"
	otelMocks "bizdesk/infras/otel/mocks"
	"bizdesk/internal/domains/catalog/model/dto"
	"bizdesk/internal/domains/catalog/repository"
	"bizdesk/internal/domains/catalog/service"
	cacheMocks "bizdesk/shared/cache/mocks"
)

func newService(t *testing.T) (service.Catalog, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	repo := repository.NewMemory(otelMocks.NewOtel())

	return service.New(repo, redisCache, cfg, otelMocks.NewOtel()), redisCache
}

func TestCatalogService_GetAllSeededOnCacheMiss(t *testing.T) {
	svc, redisCache := newService(t)

	redisCache.EXPECT().Get(gomock.Any(), "services:all", gomock.Any()).Return(errors.New("cache miss"))
	redisCache.EXPECT().Save(gomock.Any(), "services:all", gomock.Any(), 60).Return(nil)

	res, err := svc.GetAll(context.Background())
	require.NoError(t, err)

	require.Equal(t, 4, res.TotalData)
	assert.Equal(t, "CCTV Surveillance", res.Services[0].Title)
	assert.Equal(t, "Biometric Access Control", res.Services[3].Title)
}

func TestCatalogService_GetAllCacheHitSkipsRepository(t *testing.T) {
	svc, redisCache := newService(t)

	redisCache.EXPECT().Get(gomock.Any(), "services:all", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, value any) error {
			res, ok := value.(*dto.GetServicesResponse)
			require.True(t, ok)

			res.TotalData = 1
			res.Services = []dto.ServiceResponse{{Title: "Cached"}}

			return nil
		},
	)

	res, err := svc.GetAll(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, res.TotalData)
	assert.Equal(t, "Cached", res.Services[0].Title)
}

func TestCatalogService_CreateInvalidatesCache(t *testing.T) {
	svc, redisCache := newService(t)

	redisCache.EXPECT().Clear(gomock.Any(), "services*").Return(nil)

	res, err := svc.Create(context.Background(), dto.CreateServiceRequest{
		Title:       "Solar Panels",
		Description: "Rooftop solar installation",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "general", res.Category)
}

func TestCatalogService_CreateKeepsWorkingWhenCacheClearFails(t *testing.T) {
	svc, redisCache := newService(t)

	redisCache.EXPECT().Clear(gomock.Any(), "services*").Return(errors.New("redis down"))

	_, err := svc.Create(context.Background(), dto.CreateServiceRequest{
		Title:       "Solar Panels",
		Description: "Rooftop solar installation",
	})
	require.NoError(t, err)
}
