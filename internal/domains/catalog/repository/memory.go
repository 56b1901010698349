package repository

import (
	"bizdesk/infras/otel"
	"bizdesk/internal/domains/catalog/model"
	"bizdesk/shared/constant"
	"bizdesk/shared/memstore"
	"bizdesk/shared/timezone"
	"context"
	"time"

	"github.com/google/uuid"
)

type memoryImpl struct {
	col  *memstore.Collection[model.Service]
	otel otel.Otel
}

func newMemory(otl otel.Otel) *memoryImpl {
	repo := &memoryImpl{
		col: memstore.New(
			func(svc model.Service) string { return svc.ID },
			func(svc model.Service) time.Time { return svc.CreatedAt },
		),
		otel: otl,
	}

	for _, svc := range model.Seed(timezone.Now(), uuid.NewString) {
		repo.col.Insert(svc)
	}

	return repo
}

func (repo *memoryImpl) Insert(ctx context.Context, svc model.Service) error {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Insert")
	defer scope.End()

	repo.col.Insert(svc)

	return nil
}

func (repo *memoryImpl) GetAll(ctx context.Context) ([]model.Service, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetAll")
	defer scope.End()

	return repo.col.List(), nil
}

// NewMemory exposes the memory backend directly for tests.
func NewMemory(otl otel.Otel) CatalogService {
	return newMemory(otl)
}
