package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"bizdesk/config"
	"bizdesk/infras/otel"
	"bizdesk/infras/postgres"
	"bizdesk/internal/domains/faq/model"
	"bizdesk/shared/constant"
	gDto "bizdesk/shared/dto"
	gRepo "bizdesk/shared/repository"
	"context"
	"sort"
)

// FAQEntry is the storage contract for FAQ entries. GetAll orders by
// display_order ascending with creation time breaking ties.
type FAQEntry interface {
	Insert(ctx context.Context, faq model.FAQ) error
	GetAll(ctx context.Context) ([]model.FAQ, error)
}

func New(cfg *config.Config, db *postgres.Connection, otl otel.Otel) FAQEntry {
	if cfg.Storage.Driver == constant.StorageDriverPostgres {
		return newPostgres(db, otl)
	}

	return newMemory(otl)
}

type postgresImpl struct {
	gRepo.Repository[model.FAQ]
	otel otel.Otel
}

func newPostgres(db *postgres.Connection, otl otel.Otel) *postgresImpl {
	return &postgresImpl{
		Repository: gRepo.NewRepository[model.FAQ](model.EntityName, model.TableName, model.FieldID, db, otl),
		otel:       otl,
	}
}

func (repo *postgresImpl) GetAll(ctx context.Context) ([]model.FAQ, error) {
	faqs, err := repo.Repository.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.FieldDisplayOrder,
		SortDir: constant.SortDirAsc,
	}, gDto.FilterGroup{})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	sortByDisplayOrder(faqs)

	return faqs, nil
}

func sortByDisplayOrder(faqs []model.FAQ) {
	sort.SliceStable(faqs, func(i, j int) bool {
		if faqs[i].DisplayOrder != faqs[j].DisplayOrder {
			return faqs[i].DisplayOrder < faqs[j].DisplayOrder
		}

		return faqs[i].CreatedAt.Before(faqs[j].CreatedAt)
	})
}
