package repository

import (
	"bizdesk/infras/otel"
	"bizdesk/internal/domains/lead/model"
	"bizdesk/shared/constant"
	"bizdesk/shared/memstore"
	"context"
	"time"
)

type memoryImpl struct {
	col  *memstore.Collection[model.Lead]
	otel otel.Otel
}

func newMemory(otl otel.Otel) *memoryImpl {
	return &memoryImpl{
		col: memstore.New(
			func(lead model.Lead) string { return lead.ID },
			func(lead model.Lead) time.Time { return lead.CreatedAt },
		),
		otel: otl,
	}
}

func (repo *memoryImpl) Insert(ctx context.Context, lead model.Lead) error {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Insert")
	defer scope.End()

	repo.col.Insert(lead)

	return nil
}

func (repo *memoryImpl) GetAll(ctx context.Context) ([]model.Lead, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetAll")
	defer scope.End()

	return repo.col.List(), nil
}

func (repo *memoryImpl) Count(ctx context.Context) (int, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Count")
	defer scope.End()

	return repo.col.Len(), nil
}

// NewMemory exposes the memory backend directly for tests.
func NewMemory(otl otel.Otel) Lead {
	return newMemory(otl)
}
