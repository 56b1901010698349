package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"bizdesk/config"
	"bizdesk/infras/otel"
	"bizdesk/infras/postgres"
	"bizdesk/internal/domains/catalog/model"
	"bizdesk/shared/constant"
	gDto "bizdesk/shared/dto"
	gRepo "bizdesk/shared/repository"
	"context"
)

// CatalogService is the storage contract for the service catalog. The postgres
// backend is seeded by migration; the memory backend seeds itself on startup.
type CatalogService interface {
	Insert(ctx context.Context, svc model.Service) error
	GetAll(ctx context.Context) ([]model.Service, error)
}

func New(cfg *config.Config, db *postgres.Connection, otl otel.Otel) CatalogService {
	if cfg.Storage.Driver == constant.StorageDriverPostgres {
		return newPostgres(db, otl)
	}

	return newMemory(otl)
}

type postgresImpl struct {
	gRepo.Repository[model.Service]
	otel otel.Otel
}

func newPostgres(db *postgres.Connection, otl otel.Otel) *postgresImpl {
	return &postgresImpl{
		Repository: gRepo.NewRepository[model.Service](model.EntityName, model.TableName, model.FieldID, db, otl),
		otel:       otl,
	}
}

func (repo *postgresImpl) GetAll(ctx context.Context) ([]model.Service, error) {
	return repo.Repository.GetAll(ctx, gDto.NewestFirst(0), gDto.FilterGroup{}) //nolint:wrapcheck
}
