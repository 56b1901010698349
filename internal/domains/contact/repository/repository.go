package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"bizdesk/config"
	"bizdesk/infras/otel"
	"bizdesk/infras/postgres"
	"bizdesk/internal/domains/contact/model"
	"bizdesk/shared/constant"
	gDto "bizdesk/shared/dto"
	gRepo "bizdesk/shared/repository"
	"context"
)

// Contact is the storage contract for contact-form submissions.
type Contact interface {
	Insert(ctx context.Context, contact model.Contact) error
	GetAll(ctx context.Context) ([]model.Contact, error)
	Count(ctx context.Context) (int, error)
}

func New(cfg *config.Config, db *postgres.Connection, otl otel.Otel) Contact {
	if cfg.Storage.Driver == constant.StorageDriverPostgres {
		return newPostgres(db, otl)
	}

	return newMemory(otl)
}

type postgresImpl struct {
	gRepo.Repository[model.Contact]
	otel otel.Otel
}

func newPostgres(db *postgres.Connection, otl otel.Otel) *postgresImpl {
	return &postgresImpl{
		Repository: gRepo.NewRepository[model.Contact](model.EntityName, model.TableName, model.FieldID, db, otl),
		otel:       otl,
	}
}

func (repo *postgresImpl) GetAll(ctx context.Context) ([]model.Contact, error) {
	return repo.Repository.GetAll(ctx, gDto.NewestFirst(0), gDto.FilterGroup{}) //nolint:wrapcheck
}

func (repo *postgresImpl) Count(ctx context.Context) (int, error) {
	return repo.Repository.Count(ctx, gDto.FilterGroup{}) //nolint:wrapcheck
}
