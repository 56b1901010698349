package health

import (
	"bizdesk/config"
	"bizdesk/shared/constant"
	"bizdesk/shared/timezone"
	"bizdesk/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	config *config.Config
}

func New(cfg *config.Config) Handler {
	return Handler{
		config: cfg,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Health)
}

// Health reports that the service is up, with the current server time.
func (handler *Handler) Health(writer http.ResponseWriter, _ *http.Request) {
	response.WithJSON(writer, http.StatusOK, map[string]string{
		"service": handler.config.App.Name,
		"status":  "live",
		"time":    timezone.Format(timezone.Now(), constant.DateFormat),
	})
}
