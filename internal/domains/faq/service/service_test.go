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
	"bizdesk/internal/domains/faq/model"
	"bizdesk/internal/domains/faq/model/dto"
	"bizdesk/internal/domains/faq/repository"
	"bizdesk/internal/domains/faq/service"
	cacheMocks "bizdesk/shared/cache/mocks"
)

func newService(t *testing.T) (service.FAQ, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	repo := repository.NewMemory(otelMocks.NewOtel())

	return service.New(repo, redisCache, cfg, otelMocks.NewOtel()), redisCache
}

func TestFAQService_GetAllSeededInDisplayOrder(t *testing.T) {
	svc, redisCache := newService(t)

	redisCache.EXPECT().Get(gomock.Any(), "faqs:all", gomock.Any()).Return(errors.New("cache miss"))
	redisCache.EXPECT().Save(gomock.Any(), "faqs:all", gomock.Any(), 60).Return(nil)

	res, err := svc.GetAll(context.Background())
	require.NoError(t, err)

	require.Equal(t, 5, res.TotalData)
	assert.Equal(t, "What services do you provide?", res.FAQs[0].Question)
	assert.Equal(t, "Do you provide warranty?", res.FAQs[4].Question)

	for i, faq := range res.FAQs {
		assert.Equal(t, i+1, faq.DisplayOrder)
	}
}

func TestFAQService_CreateDefaultsAndInvalidates(t *testing.T) {
	svc, redisCache := newService(t)

	redisCache.EXPECT().Clear(gomock.Any(), "faqs*").Return(nil)

	res, err := svc.Create(context.Background(), dto.CreateFAQRequest{
		Question: "Do you work weekends?",
		Answer:   "Yes, with prior booking.",
	})
	require.NoError(t, err)

	assert.Equal(t, model.DefaultCategory, res.Category)
	assert.Equal(t, model.DefaultDisplayOrder, res.DisplayOrder)
}

func TestFAQService_CreatedEntrySortsAmongSeeds(t *testing.T) {
	svc, redisCache := newService(t)

	redisCache.EXPECT().Clear(gomock.Any(), "faqs*").Return(nil)
	redisCache.EXPECT().Get(gomock.Any(), "faqs:all", gomock.Any()).Return(errors.New("cache miss"))
	redisCache.EXPECT().Save(gomock.Any(), "faqs:all", gomock.Any(), 60).Return(nil)

	created, err := svc.Create(context.Background(), dto.CreateFAQRequest{
		Question:     "Is there an emergency line?",
		Answer:       "Yes, 24/7.",
		DisplayOrder: 2,
	})
	require.NoError(t, err)

	res, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 6, res.TotalData)

	// Same display_order as the second seed; later creation time sorts after it.
	assert.Equal(t, "Do you offer maintenance services?", res.FAQs[1].Question)
	assert.Equal(t, created.ID, res.FAQs[2].ID)
}
