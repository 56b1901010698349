package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bizdesk/config"
	otelMocks "bizdesk/infras/otel/mocks"
	appointmentRepository "bizdesk/internal/domains/appointment/repository"
	appointmentService "bizdesk/internal/domains/appointment/service"
	contactRepository "bizdesk/internal/domains/contact/repository"
	contactService "bizdesk/internal/domains/contact/service"
	adminService "bizdesk/internal/domains/admin/service"
	leadRepository "bizdesk/internal/domains/lead/repository"
	subscriberRepository "bizdesk/internal/domains/subscriber/repository"
	subscriberService "bizdesk/internal/domains/subscriber/service"
	adminHandler "bizdesk/internal/handlers/admin"
	appointmentHandler "bizdesk/internal/handlers/appointment"
	blogHandler "bizdesk/internal/handlers/blog"
	contactHandler "bizdesk/internal/handlers/contact"
	healthHandler "bizdesk/internal/handlers/health"
	"bizdesk/internal/notifier"
	cacheMocks "bizdesk/shared/cache/mocks"
	transport "bizdesk/transport/http"
	"bizdesk/transport/http/middleware"
	"bizdesk/transport/http/router"
)

type stubNotifier struct{}

func (stubNotifier) Notify(context.Context, ...notifier.Mail) notifier.Outcome {
	return notifier.OutcomeNotConfigured
}

func newHandler(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Name = "Aravind & Co"

	otl := otelMocks.NewOtel()
	notif := stubNotifier{}

	apptRepo := appointmentRepository.NewMemory(otl)
	contactRepo := contactRepository.NewMemory(otl)
	subscriberRepo := subscriberRepository.NewMemory(otl)
	leadRepo := leadRepository.NewMemory(otl)

	apptSvc := appointmentService.New(apptRepo, notif, cfg, otl)
	contactSvc := contactService.New(contactRepo, notif, cfg, otl)
	subscriberSvc := subscriberService.New(subscriberRepo, notif, cfg, otl)
	adminSvc := adminService.New(apptRepo, contactRepo, subscriberRepo, leadRepo, otl)

	domainHandlers := router.DomainHandlers{
		Health:      healthHandler.New(cfg),
		Appointment: appointmentHandler.New(apptSvc, otl),
		Contact:     contactHandler.New(contactSvc, otl),
		Blog:        blogHandler.New(subscriberSvc, otl),
		Admin:       adminHandler.New(adminSvc, apptSvc, otl),
	}

	// CORS and the rate limiter are disabled by the zero config, so the cache
	// mock never sees a call.
	mw := middleware.NewAppMiddleware(otl, cfg, cacheMocks.NewMockRedisCache(gomock.NewController(t)))

	server := transport.New(cfg, router.New(domainHandlers), mw)

	return server.Handler()
}

func TestHTTP_Health(t *testing.T) {
	handler := newHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"live"`)
}

func TestHTTP_BookThenConfirm(t *testing.T) {
	handler := newHandler(t)

	body := `{"service":"CCTV","date":"2025-01-01","time":"10:00","name":"A","email":"a@x.com","phone":"123"}`

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Data struct {
			Appointment struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"appointment"`
			Notification string `json:"notification"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "pending", created.Data.Appointment.Status)
	assert.Equal(t, "not_configured", created.Data.Notification)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(
		http.MethodPatch,
		"/api/admin/appointments/"+created.Data.Appointment.ID+"/status",
		strings.NewReader(`{"status":"confirmed"}`),
	))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"confirmed"`)
}

func TestHTTP_CreateAppointmentValidation(t *testing.T) {
	handler := newHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(`{"date":"2025-01-01"}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "required")
}

func TestHTTP_UpdateStatusUnknownID(t *testing.T) {
	handler := newHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(
		http.MethodPatch,
		"/api/admin/appointments/missing/status",
		strings.NewReader(`{"status":"confirmed"}`),
	))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTP_SubscribeIdempotent(t *testing.T) {
	handler := newHandler(t)

	for range 2 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/blog/subscribe", strings.NewReader(`{"email":"a@x.com"}`)))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/blog/subscribers", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_data":1`)
}

func TestHTTP_ExportAppointmentsCSV(t *testing.T) {
	handler := newHandler(t)

	body := `{"service":"CCTV","date":"2025-01-01","time":"10:00","name":"A","email":"a@x.com","phone":"123"}`
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/export/appointments.csv", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "id,service,date,time,name"))
}
