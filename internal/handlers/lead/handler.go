package lead

import (
	"bizdesk/infras/otel"
	"bizdesk/internal/domains/lead/model/dto"
	"bizdesk/internal/domains/lead/service"
	"bizdesk/shared/constant"
	"bizdesk/shared/validator"
	"bizdesk/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Lead
	otel    otel.Otel
}

func New(service service.Lead, otl otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otl,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/leads", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateLead)
		routerGroup.Get("/", handler.GetLeads)
	})
}

func (handler *Handler) CreateLead(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateLead")
	defer scope.End()

	req := dto.CreateLeadRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create lead")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Lead created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

func (handler *Handler) GetLeads(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLeads")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get leads")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
