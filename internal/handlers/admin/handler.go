package admin

import (
	"bizdesk/infras/otel"
	adminService "bizdesk/internal/domains/admin/service"
	apptDto "bizdesk/internal/domains/appointment/model/dto"
	apptService "bizdesk/internal/domains/appointment/service"
	"bizdesk/shared/constant"
	"bizdesk/shared/validator"
	"bizdesk/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	admin        adminService.Admin
	appointments apptService.Appointment
	otel         otel.Otel
}

func New(admin adminService.Admin, appointments apptService.Appointment, otl otel.Otel) Handler {
	return Handler{
		admin:        admin,
		appointments: appointments,
		otel:         otl,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Get("/stats", handler.DashboardStats)
		routerGroup.Get("/appointments/recent", handler.RecentAppointments)
		routerGroup.Get("/contacts/recent", handler.RecentContacts)
		routerGroup.Patch("/appointments/{id}/status", handler.UpdateAppointmentStatus)
		routerGroup.Get("/export/appointments.csv", handler.ExportAppointmentsCSV)
		routerGroup.Get("/export/contacts.csv", handler.ExportContactsCSV)
	})
}

func (handler *Handler) DashboardStats(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DashboardStats")
	defer scope.End()

	res, err := handler.admin.DashboardStats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard stats")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) RecentAppointments(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecentAppointments")
	defer scope.End()

	res, err := handler.admin.RecentAppointments(ctx, limitParam(request))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get recent appointments")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) RecentContacts(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecentContacts")
	defer scope.End()

	res, err := handler.admin.RecentContacts(ctx, limitParam(request))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get recent contacts")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) UpdateAppointmentStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAppointmentStatus")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := apptDto.UpdateAppointmentStatusRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.appointments.UpdateStatus(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update appointment status")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Appointment status updated successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) ExportAppointmentsCSV(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportAppointmentsCSV")
	defer scope.End()

	out, err := handler.admin.ExportAppointmentsCSV(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export appointments")

		response.WithError(writer, err)

		return
	}

	response.WithCSV(writer, "appointments.csv", out)
}

func (handler *Handler) ExportContactsCSV(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportContactsCSV")
	defer scope.End()

	out, err := handler.admin.ExportContactsCSV(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export contacts")

		response.WithError(writer, err)

		return
	}

	response.WithCSV(writer, "contacts.csv", out)
}

// limitParam reads the optional ?limit query value; non-numeric or missing
// values fall back to the service default.
func limitParam(request *http.Request) int {
	raw := request.URL.Query().Get(constant.RequestParamLimit)
	if raw == constant.Empty {
		return 0
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}

	return limit
}
