package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"bizdesk/config"
	"bizdesk/infras/otel"
	"bizdesk/infras/postgres"
	"bizdesk/internal/domains/subscriber/model"
	"bizdesk/shared"
	"bizdesk/shared/constant"
	gDto "bizdesk/shared/dto"
	gRepo "bizdesk/shared/repository"
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Subscriber is the storage contract for mailing-list entries. FindOrInsert
// enforces the one-record-per-email invariant: the first writer creates, every
// later caller for the same email observes the record the first writer stored.
type Subscriber interface {
	FindOrInsert(ctx context.Context, sub model.Subscriber) (model.Subscriber, bool, error)
	GetAll(ctx context.Context) ([]model.Subscriber, error)
	Count(ctx context.Context) (int, error)
	CountActive(ctx context.Context) (int, error)
}

func New(cfg *config.Config, db *postgres.Connection, otl otel.Otel) Subscriber {
	if cfg.Storage.Driver == constant.StorageDriverPostgres {
		return newPostgres(db, otl)
	}

	return newMemory(otl)
}

type postgresImpl struct {
	gRepo.Repository[model.Subscriber]
	otel otel.Otel
}

func newPostgres(db *postgres.Connection, otl otel.Otel) *postgresImpl {
	return &postgresImpl{
		Repository: gRepo.NewRepository[model.Subscriber](model.EntityName, model.TableName, model.FieldID, db, otl),
		otel:       otl,
	}
}

// FindOrInsert relies on the unique index on email: a concurrent insert that
// loses the race gets a unique violation and reads back the winner's row.
func (repo *postgresImpl) FindOrInsert(ctx context.Context, sub model.Subscriber) (model.Subscriber, bool, error) {
	filter := shared.FilterByField(model.FieldEmail, model.TableName, sub.Email)

	existing, found, err := repo.Repository.Get(ctx, filter)
	if err != nil {
		return model.Subscriber{}, false, err //nolint:wrapcheck
	}

	if found {
		return existing, false, nil
	}

	err = repo.Repository.Insert(ctx, sub)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			existing, found, err = repo.Repository.Get(ctx, filter)
			if err != nil {
				return model.Subscriber{}, false, err //nolint:wrapcheck
			}

			if !found {
				return model.Subscriber{}, false, fmt.Errorf("subscriber with email %s vanished after unique violation", sub.Email)
			}

			return existing, false, nil
		}

		return model.Subscriber{}, false, err //nolint:wrapcheck
	}

	return sub, true, nil
}

func (repo *postgresImpl) GetAll(ctx context.Context) ([]model.Subscriber, error) {
	return repo.Repository.GetAll(ctx, gDto.NewestFirst(0), gDto.FilterGroup{}) //nolint:wrapcheck
}

func (repo *postgresImpl) Count(ctx context.Context) (int, error) {
	return repo.Repository.Count(ctx, gDto.FilterGroup{}) //nolint:wrapcheck
}

func (repo *postgresImpl) CountActive(ctx context.Context) (int, error) {
	return repo.Repository.Count(ctx, shared.FilterByField(model.FieldActive, model.TableName, true)) //nolint:wrapcheck
}
