package repository

import (
	"bizdesk/infras/otel"
	"bizdesk/internal/domains/appointment/model"
	"bizdesk/shared/constant"
	"bizdesk/shared/memstore"
	"context"
	"time"
)

// memoryImpl keeps appointments in process memory for the lifetime of the
// process. It never returns an error; the error returns exist to satisfy the
// shared storage contract with the postgres backend.
type memoryImpl struct {
	col  *memstore.Collection[model.Appointment]
	otel otel.Otel
}

func newMemory(otl otel.Otel) *memoryImpl {
	return &memoryImpl{
		col: memstore.New(
			func(appt model.Appointment) string { return appt.ID },
			func(appt model.Appointment) time.Time { return appt.CreatedAt },
		),
		otel: otl,
	}
}

func (repo *memoryImpl) Insert(ctx context.Context, appt model.Appointment) error {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Insert")
	defer scope.End()

	repo.col.Insert(appt)

	return nil
}

func (repo *memoryImpl) GetAll(ctx context.Context) ([]model.Appointment, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetAll")
	defer scope.End()

	return repo.col.List(), nil
}

func (repo *memoryImpl) GetByID(ctx context.Context, id string) (model.Appointment, bool, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetByID")
	defer scope.End()

	appt, ok := repo.col.Get(id)

	return appt, ok, nil
}

func (repo *memoryImpl) UpdateStatus(ctx context.Context, id, status string, at time.Time) (model.Appointment, bool, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".UpdateStatus")
	defer scope.End()

	appt, ok := repo.col.Update(id, func(current model.Appointment) model.Appointment {
		current.Status = status
		current.UpdatedAt = at

		return current
	})

	return appt, ok, nil
}

func (repo *memoryImpl) Count(ctx context.Context) (int, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Count")
	defer scope.End()

	return repo.col.Len(), nil
}

func (repo *memoryImpl) CountByStatus(ctx context.Context, status string) (int, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".CountByStatus")
	defer scope.End()

	return repo.col.Count(func(appt model.Appointment) bool { return appt.Status == status }), nil
}

// NewMemory exposes the memory backend directly; tests exercise services
// against it since it is a first-class storage implementation.
func NewMemory(otl otel.Otel) Appointment {
	return newMemory(otl)
}
