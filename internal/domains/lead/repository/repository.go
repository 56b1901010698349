package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"bizdesk/config"
	"bizdesk/infras/otel"
	"bizdesk/infras/postgres"
	"bizdesk/internal/domains/lead/model"
	"bizdesk/shared/constant"
	gDto "bizdesk/shared/dto"
	gRepo "bizdesk/shared/repository"
	"context"
)

// Lead is the storage contract for callback requests.
type Lead interface {
	Insert(ctx context.Context, lead model.Lead) error
	GetAll(ctx context.Context) ([]model.Lead, error)
	Count(ctx context.Context) (int, error)
}

func New(cfg *config.Config, db *postgres.Connection, otl otel.Otel) Lead {
	if cfg.Storage.Driver == constant.StorageDriverPostgres {
		return newPostgres(db, otl)
	}

	return newMemory(otl)
}

type postgresImpl struct {
	gRepo.Repository[model.Lead]
	otel otel.Otel
}

func newPostgres(db *postgres.Connection, otl otel.Otel) *postgresImpl {
	return &postgresImpl{
		Repository: gRepo.NewRepository[model.Lead](model.EntityName, model.TableName, model.FieldID, db, otl),
		otel:       otl,
	}
}

func (repo *postgresImpl) GetAll(ctx context.Context) ([]model.Lead, error) {
	return repo.Repository.GetAll(ctx, gDto.NewestFirst(0), gDto.FilterGroup{}) //nolint:wrapcheck
}

func (repo *postgresImpl) Count(ctx context.Context) (int, error) {
	return repo.Repository.Count(ctx, gDto.FilterGroup{}) //nolint:wrapcheck
}
