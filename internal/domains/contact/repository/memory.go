package repository

import (
	"bizdesk/infras/otel"
	"bizdesk/internal/domains/contact/model"
	"bizdesk/shared/constant"
	"bizdesk/shared/memstore"
	"context"
	"time"
)

type memoryImpl struct {
	col  *memstore.Collection[model.Contact]
	otel otel.Otel
}

func newMemory(otl otel.Otel) *memoryImpl {
	return &memoryImpl{
		col: memstore.New(
			func(contact model.Contact) string { return contact.ID },
			func(contact model.Contact) time.Time { return contact.CreatedAt },
		),
		otel: otl,
	}
}

func (repo *memoryImpl) Insert(ctx context.Context, contact model.Contact) error {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Insert")
	defer scope.End()

	repo.col.Insert(contact)

	return nil
}

func (repo *memoryImpl) GetAll(ctx context.Context) ([]model.Contact, error) {
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
func NewMemory(otl otel.Otel) Contact {
	return newMemory(otl)
}
