package service

import (
	"bizdesk/config"
	"bizdesk/infras/otel"
	"bizdesk/internal/domains/appointment/model"
	"bizdesk/internal/domains/appointment/model/dto"
	"bizdesk/internal/domains/appointment/repository"
	"bizdesk/internal/notifier"
	"bizdesk/shared/constant"
	"bizdesk/shared/failure"
	"bizdesk/shared/timezone"
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

type Appointment interface {
	Create(ctx context.Context, req dto.CreateAppointmentRequest) (dto.CreateAppointmentResponse, error)
	GetAll(ctx context.Context) (dto.GetAppointmentsResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateAppointmentStatusRequest) (dto.AppointmentResponse, error)
}

type serviceImpl struct {
	repo     repository.Appointment
	notifier notifier.Notifier
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Appointment, notif notifier.Notifier, cfg *config.Config, otl otel.Otel) Appointment {
	return &serviceImpl{
		repo:     repo,
		notifier: notif,
		cfg:      cfg,
		otel:     otl,
	}
}

// Create stores the booking and then notifies best-effort. The record is
// already durable for the process lifetime by the time the notifier runs, so
// a relay outage shows up as a notification outcome, never as a lost booking.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAppointmentRequest) (res dto.CreateAppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	appt := req.ToModel()

	if err = s.repo.Insert(ctx, appt); err != nil {
		log.Error().Err(err).Msg("failed to create appointment")

		return res, fmt.Errorf("failed to create appointment: %w", err)
	}

	outcome := s.notifier.Notify(ctx, s.bookingMails(appt)...)

	scope.AddEvent("Appointment created with notification outcome " + string(outcome))

	res.Appointment.FromModel(appt)
	res.Notification = outcome

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetAppointmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointments")

		return res, fmt.Errorf("failed to get appointments: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateAppointmentStatusRequest) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !model.ValidStatus(req.Status) {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid status %q, must be one of %s", req.Status, strings.Join(model.Statuses(), ", "))) //nolint:wrapcheck
	}

	appt, found, err := s.repo.UpdateStatus(ctx, id, req.Status, timezone.Now())
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update appointment status")

		return res, fmt.Errorf("failed to update appointment status: %w", err)
	}

	if !found {
		return res, failure.NotFound("appointment not found") //nolint:wrapcheck
	}

	scope.AddEvent("Appointment status updated to " + req.Status)

	res.FromModel(appt)

	return res, nil
}

func (s *serviceImpl) bookingMails(appt model.Appointment) []notifier.Mail {
	ownerBody := fmt.Sprintf(
		"New appointment request.\n\nService: %s\nDate: %s\nTime: %s\nName: %s\nEmail: %s\nPhone: %s\nAddress: %s\nMessage: %s\n",
		appt.Service,
		appt.Date,
		appt.Time,
		appt.Name,
		appt.Email,
		appt.Phone,
		orNone(appt.Address),
		orNone(appt.Message),
	)

	customerBody := fmt.Sprintf(
		"Dear %s,\n\nYour appointment for %s on %s at %s has been received.\nWe will contact you 24 hours before to reconfirm.\n\nThanks,\n%s\n",
		appt.Name,
		appt.Service,
		appt.Date,
		appt.Time,
		s.cfg.App.Name,
	)

	return []notifier.Mail{
		{
			To:      s.cfg.SMTP.NotifyEmail,
			Subject: "New Appointment - " + appt.Name,
			Body:    ownerBody,
		},
		{
			To:      appt.Email,
			Subject: "Appointment Received - " + s.cfg.App.Name,
			Body:    customerBody,
		},
	}
}

func orNone(value string) string {
	if value == "" {
		return "None"
	}

	return value
}
