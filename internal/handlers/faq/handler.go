package faq

import (
	"bizdesk/infras/otel"
	"bizdesk/internal/domains/faq/model/dto"
	"bizdesk/internal/domains/faq/service"
	"bizdesk/shared/constant"
	"bizdesk/shared/validator"
	"bizdesk/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.FAQ
	otel    otel.Otel
}

func New(service service.FAQ, otl otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otl,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/faq", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetFAQs)
		routerGroup.Post("/", handler.CreateFAQ)
	})
}

func (handler *Handler) GetFAQs(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFAQs")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get faqs")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) CreateFAQ(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFAQ")
	defer scope.End()

	req := dto.CreateFAQRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create faq")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("FAQ created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}
