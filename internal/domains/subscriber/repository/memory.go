package repository

import (
	"bizdesk/infras/otel"
	"bizdesk/internal/domains/subscriber/model"
	"bizdesk/shared/constant"
	"bizdesk/shared/memstore"
	"context"
	"time"
)

type memoryImpl struct {
	col  *memstore.Collection[model.Subscriber]
	otel otel.Otel
}

func newMemory(otl otel.Otel) *memoryImpl {
	return &memoryImpl{
		col: memstore.New(
			func(sub model.Subscriber) string { return sub.ID },
			func(sub model.Subscriber) time.Time { return sub.SubscribedAt },
		),
		otel: otl,
	}
}

func (repo *memoryImpl) FindOrInsert(ctx context.Context, sub model.Subscriber) (model.Subscriber, bool, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".FindOrInsert")
	defer scope.End()

	stored, created := repo.col.FindOrInsert(
		func(existing model.Subscriber) bool { return existing.Email == sub.Email },
		sub,
	)

	return stored, created, nil
}

func (repo *memoryImpl) GetAll(ctx context.Context) ([]model.Subscriber, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetAll")
	defer scope.End()

	return repo.col.List(), nil
}

func (repo *memoryImpl) Count(ctx context.Context) (int, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Count")
	defer scope.End()

	return repo.col.Len(), nil
}

func (repo *memoryImpl) CountActive(ctx context.Context) (int, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".CountActive")
	defer scope.End()

	return repo.col.Count(func(sub model.Subscriber) bool { return sub.Active }), nil
}

// NewMemory exposes the memory backend directly for tests.
func NewMemory(otl otel.Otel) Subscriber {
	return newMemory(otl)
}
