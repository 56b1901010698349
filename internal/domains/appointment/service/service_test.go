package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizdesk/config"
	otelMocks "bizdesk/infras/otel/mocks"
	"bizdesk/internal/domains/appointment/model"
	"bizdesk/internal/domains/appointment/model/dto"
	"bizdesk/internal/domains/appointment/repository"
	"bizdesk/internal/domains/appointment/service"
	"bizdesk/internal/notifier"
	"bizdesk/shared/failure"
)

type stubNotifier struct {
	outcome notifier.Outcome
	mails   []notifier.Mail
}

func (s *stubNotifier) Notify(_ context.Context, mails ...notifier.Mail) notifier.Outcome {
	s.mails = append(s.mails, mails...)

	return s.outcome
}

func newService(outcome notifier.Outcome) (service.Appointment, *stubNotifier) {
	cfg := &config.Config{}
	cfg.App.Name = "Aravind & Co"
	cfg.SMTP.NotifyEmail = "owner@x.com"

	notif := &stubNotifier{outcome: outcome}
	repo := repository.NewMemory(otelMocks.NewOtel())

	return service.New(repo, notif, cfg, otelMocks.NewOtel()), notif
}

func validRequest() dto.CreateAppointmentRequest {
	return dto.CreateAppointmentRequest{
		Service: "CCTV",
		Date:    "2025-01-01",
		Time:    "10:00",
		Name:    "A",
		Email:   "a@x.com",
		Phone:   "123",
	}
}

func TestAppointmentService_Create(t *testing.T) {
	svc, notif := newService(notifier.OutcomeSent)

	res, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, res.Appointment.ID)
	assert.Equal(t, model.StatusPending, res.Appointment.Status)
	assert.Equal(t, res.Appointment.CreatedAt, res.Appointment.UpdatedAt)
	assert.Equal(t, notifier.OutcomeSent, res.Notification)

	// Owner notification plus customer acknowledgement.
	require.Len(t, notif.mails, 2)
	assert.Equal(t, "owner@x.com", notif.mails[0].To)
	assert.Equal(t, "a@x.com", notif.mails[1].To)
}

func TestAppointmentService_CreateNotificationFailureDoesNotBlockStorage(t *testing.T) {
	svc, _ := newService(notifier.OutcomeFailed)

	res, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, notifier.OutcomeFailed, res.Notification)

	list, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, list.TotalData)
}

func TestAppointmentService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name       string
		id         func(created dto.CreateAppointmentResponse) string
		status     string
		wantStatus string
		wantCode   int
	}{
		{
			name:       "valid transition",
			id:         func(created dto.CreateAppointmentResponse) string { return created.Appointment.ID },
			status:     model.StatusConfirmed,
			wantStatus: model.StatusConfirmed,
		},
		{
			name:     "unknown id",
			id:       func(dto.CreateAppointmentResponse) string { return "missing" },
			status:   model.StatusConfirmed,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "invalid status",
			id:       func(created dto.CreateAppointmentResponse) string { return created.Appointment.ID },
			status:   "archived",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(notifier.OutcomeNotConfigured)

			created, err := svc.Create(context.Background(), validRequest())
			require.NoError(t, err)

			res, err := svc.UpdateStatus(context.Background(), tt.id(created), dto.UpdateAppointmentStatusRequest{Status: tt.status})

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				// A failed update must not mutate the stored record.
				list, listErr := svc.GetAll(context.Background())
				require.NoError(t, listErr)
				assert.Equal(t, model.StatusPending, list.Appointments[0].Status)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
		})
	}
}

func TestAppointmentService_UpdateStatusOutOfTerminalState(t *testing.T) {
	svc, _ := newService(notifier.OutcomeNotConfigured)

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), created.Appointment.ID, dto.UpdateAppointmentStatusRequest{Status: model.StatusCancelled})
	require.NoError(t, err)

	// No terminal enforcement: cancelled appointments may still be moved.
	res, err := svc.UpdateStatus(context.Background(), created.Appointment.ID, dto.UpdateAppointmentStatusRequest{Status: model.StatusConfirmed})
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, res.Status)
}

func TestAppointmentRepository_UpdateStatusAdvancesUpdatedAt(t *testing.T) {
	repo := repository.NewMemory(otelMocks.NewOtel())

	req := validRequest()
	appt := req.ToModel()
	require.NoError(t, repo.Insert(context.Background(), appt))

	updated, found, err := repo.UpdateStatus(context.Background(), appt.ID, model.StatusCompleted, appt.UpdatedAt.Add(time.Second))
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, appt.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(appt.UpdatedAt))
	assert.True(t, !updated.CreatedAt.After(updated.UpdatedAt))
}

func TestAppointmentService_GetAllNewestFirst(t *testing.T) {
	svc, _ := newService(notifier.OutcomeNotConfigured)

	names := []string{"first", "second", "third"}
	for _, name := range names {
		req := validRequest()
		req.Name = name

		_, err := svc.Create(context.Background(), req)
		require.NoError(t, err)

		time.Sleep(2 * time.Millisecond)
	}

	res, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, res.TotalData)

	assert.Equal(t, "third", res.Appointments[0].Name)
	assert.Equal(t, "second", res.Appointments[1].Name)
	assert.Equal(t, "first", res.Appointments[2].Name)
}

func TestAppointmentService_BookThenConfirmScenario(t *testing.T) {
	svc, _ := newService(notifier.OutcomeNotConfigured)

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, created.Appointment.Status)

	updated, err := svc.UpdateStatus(context.Background(), created.Appointment.ID, dto.UpdateAppointmentStatusRequest{Status: model.StatusConfirmed})
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, updated.Status)

	list, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, list.TotalData)
	assert.Equal(t, model.StatusConfirmed, list.Appointments[0].Status)
}
