package repository

import (
	"bizdesk/infras/otel"
	"bizdesk/internal/domains/faq/model"
	"bizdesk/shared/constant"
	"bizdesk/shared/memstore"
	"bizdesk/shared/timezone"
	"context"
	"time"

	"github.com/google/uuid"
)

type memoryImpl struct {
	col  *memstore.Collection[model.FAQ]
	otel otel.Otel
}

func newMemory(otl otel.Otel) *memoryImpl {
	repo := &memoryImpl{
		col: memstore.New(
			func(faq model.FAQ) string { return faq.ID },
			func(faq model.FAQ) time.Time { return faq.CreatedAt },
		),
		otel: otl,
	}

	for _, faq := range model.Seed(timezone.Now(), uuid.NewString) {
		repo.col.Insert(faq)
	}

	return repo
}

func (repo *memoryImpl) Insert(ctx context.Context, faq model.FAQ) error {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Insert")
	defer scope.End()

	repo.col.Insert(faq)

	return nil
}

func (repo *memoryImpl) GetAll(ctx context.Context) ([]model.FAQ, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetAll")
	defer scope.End()

	faqs := repo.col.List()
	sortByDisplayOrder(faqs)

	return faqs, nil
}

// NewMemory exposes the memory backend directly for tests.
func NewMemory(otl otel.Otel) FAQEntry {
	return newMemory(otl)
}
