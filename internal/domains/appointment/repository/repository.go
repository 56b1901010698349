package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"bizdesk/config"
	"bizdesk/infras/otel"
	"bizdesk/infras/postgres"
	"bizdesk/internal/domains/appointment/model"
	"bizdesk/shared"
	"bizdesk/shared/constant"
	gDto "bizdesk/shared/dto"
	gRepo "bizdesk/shared/repository"
	"context"
	"time"
)

// Appointment is the storage contract for appointment records. Two backends
// satisfy it: a process-local memory store and a postgres store, selected by
// the storage driver in config.
type Appointment interface {
	Insert(ctx context.Context, appt model.Appointment) error
	GetAll(ctx context.Context) ([]model.Appointment, error)
	GetByID(ctx context.Context, id string) (model.Appointment, bool, error)
	UpdateStatus(ctx context.Context, id, status string, at time.Time) (model.Appointment, bool, error)
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}

func New(cfg *config.Config, db *postgres.Connection, otl otel.Otel) Appointment {
	if cfg.Storage.Driver == constant.StorageDriverPostgres {
		return newPostgres(db, otl)
	}

	return newMemory(otl)
}

type postgresImpl struct {
	gRepo.Repository[model.Appointment]
	otel otel.Otel
}

func newPostgres(db *postgres.Connection, otl otel.Otel) *postgresImpl {
	return &postgresImpl{
		Repository: gRepo.NewRepository[model.Appointment](model.EntityName, model.TableName, model.FieldID, db, otl),
		otel:       otl,
	}
}

func (repo *postgresImpl) GetAll(ctx context.Context) ([]model.Appointment, error) {
	return repo.Repository.GetAll(ctx, gDto.NewestFirst(0), gDto.FilterGroup{}) //nolint:wrapcheck
}

func (repo *postgresImpl) GetByID(ctx context.Context, id string) (model.Appointment, bool, error) {
	return repo.Repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (repo *postgresImpl) UpdateStatus(ctx context.Context, id, status string, at time.Time) (model.Appointment, bool, error) {
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := repo.Repository.Exist(ctx, filter)
	if err != nil {
		return model.Appointment{}, false, err //nolint:wrapcheck
	}

	if !exist {
		return model.Appointment{}, false, nil
	}

	err = repo.Repository.Update(ctx, map[string]any{
		model.FieldStatus:    status,
		model.FieldUpdatedAt: at,
	}, filter)
	if err != nil {
		return model.Appointment{}, false, err //nolint:wrapcheck
	}

	return repo.Repository.Get(ctx, filter) //nolint:wrapcheck
}

func (repo *postgresImpl) Count(ctx context.Context) (int, error) {
	return repo.Repository.Count(ctx, gDto.FilterGroup{}) //nolint:wrapcheck
}

func (repo *postgresImpl) CountByStatus(ctx context.Context, status string) (int, error) {
	return repo.Repository.Count(ctx, shared.FilterByField(model.FieldStatus, model.TableName, status)) //nolint:wrapcheck
}
