package blog

import (
	"bizdesk/infras/otel"
	"bizdesk/internal/domains/subscriber/model/dto"
	"bizdesk/internal/domains/subscriber/service"
	"bizdesk/shared/constant"
	"bizdesk/shared/validator"
	"bizdesk/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Subscriber
	otel    otel.Otel
}

func New(service service.Subscriber, otl otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otl,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/blog", func(routerGroup chi.Router) {
		routerGroup.Get("/subscribe", handler.SubscriptionStatus)
		routerGroup.Post("/subscribe", handler.Subscribe)
		routerGroup.Get("/subscribers", handler.GetSubscribers)
	})
}

// SubscriptionStatus is a liveness message for the subscription form.
func (handler *Handler) SubscriptionStatus(writer http.ResponseWriter, _ *http.Request) {
	response.WithMessage(writer, http.StatusOK, "Blog subscription endpoint is live")
}

// Subscribe is idempotent: posting an already-subscribed email succeeds and
// returns the existing record.
func (handler *Handler) Subscribe(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Subscribe")
	defer scope.End()

	req := dto.CreateSubscriberRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Subscribe(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to subscribe")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Subscription processed successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

func (handler *Handler) GetSubscribers(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSubscribers")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get subscribers")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
