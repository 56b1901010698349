package service

import (
	"bizdesk/infras/otel"
	"bizdesk/internal/domains/admin/model/dto"
	apptModel "bizdesk/internal/domains/appointment/model"
	apptDto "bizdesk/internal/domains/appointment/model/dto"
	apptRepo "bizdesk/internal/domains/appointment/repository"
	contactDto "bizdesk/internal/domains/contact/model/dto"
	contactRepo "bizdesk/internal/domains/contact/repository"
	leadRepo "bizdesk/internal/domains/lead/repository"
	subscriberRepo "bizdesk/internal/domains/subscriber/repository"
	"bizdesk/shared/constant"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Admin serves the dashboard: aggregate counts, recent activity, and CSV
// exports. All operations are reads recomputed per call; the dataset is small
// enough that caching would only risk staleness.
type Admin interface {
	DashboardStats(ctx context.Context) (dto.DashboardStatsResponse, error)
	RecentAppointments(ctx context.Context, limit int) (apptDto.GetAppointmentsResponse, error)
	RecentContacts(ctx context.Context, limit int) (contactDto.GetContactsResponse, error)
	ExportAppointmentsCSV(ctx context.Context) ([]byte, error)
	ExportContactsCSV(ctx context.Context) ([]byte, error)
}

type serviceImpl struct {
	appointments apptRepo.Appointment
	contacts     contactRepo.Contact
	subscribers  subscriberRepo.Subscriber
	leads        leadRepo.Lead
	otel         otel.Otel
}

func New(
	appointments apptRepo.Appointment,
	contacts contactRepo.Contact,
	subscribers subscriberRepo.Subscriber,
	leads leadRepo.Lead,
	otl otel.Otel,
) Admin {
	return &serviceImpl{
		appointments: appointments,
		contacts:     contacts,
		subscribers:  subscribers,
		leads:        leads,
		otel:         otl,
	}
}

func (s *serviceImpl) DashboardStats(ctx context.Context) (res dto.DashboardStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.DashboardStats")
	defer scope.End()
	defer scope.TraceIfError(err)

	if res.TotalAppointments, err = s.appointments.Count(ctx); err != nil {
		return res, s.statsError(err)
	}

	res.AppointmentsByStatus = make(map[string]int, len(apptModel.Statuses()))
	for _, status := range apptModel.Statuses() {
		if res.AppointmentsByStatus[status], err = s.appointments.CountByStatus(ctx, status); err != nil {
			return res, s.statsError(err)
		}
	}

	if res.TotalContacts, err = s.contacts.Count(ctx); err != nil {
		return res, s.statsError(err)
	}

	if res.TotalSubscribers, err = s.subscribers.Count(ctx); err != nil {
		return res, s.statsError(err)
	}

	if res.ActiveSubscribers, err = s.subscribers.CountActive(ctx); err != nil {
		return res, s.statsError(err)
	}

	if res.TotalLeads, err = s.leads.Count(ctx); err != nil {
		return res, s.statsError(err)
	}

	return res, nil
}

func (s *serviceImpl) RecentAppointments(ctx context.Context, limit int) (res apptDto.GetAppointmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.RecentAppointments")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.appointments.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent appointments")

		return res, fmt.Errorf("failed to get recent appointments: %w", err)
	}

	res.FromModels(models[:clampLimit(limit, len(models))])

	return res, nil
}

func (s *serviceImpl) RecentContacts(ctx context.Context, limit int) (res contactDto.GetContactsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.RecentContacts")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.contacts.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent contacts")

		return res, fmt.Errorf("failed to get recent contacts: %w", err)
	}

	res.FromModels(models[:clampLimit(limit, len(models))])

	return res, nil
}

func (s *serviceImpl) statsError(err error) error {
	log.Error().Err(err).Msg("failed to compute dashboard stats")

	return fmt.Errorf("failed to compute dashboard stats: %w", err)
}

// clampLimit maps a non-positive limit to the default recent-view size and
// caps at the collection length. GetAll returns newest first, so the first n
// entries are the n most recent.
func clampLimit(limit, total int) int {
	if limit <= 0 {
		limit = constant.DefaultRecentLimit
	}

	if limit > total {
		return total
	}

	return limit
}
