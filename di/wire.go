//go:build wireinject
// +build wireinject

package di

import (
	"bizdesk/config"
	"bizdesk/infras/otel"
	"bizdesk/infras/postgres"
	"bizdesk/infras/redis"
	"bizdesk/infras/smtp"
	"bizdesk/internal/notifier"
	"bizdesk/shared/cache"
	"bizdesk/transport/http"
	"bizdesk/transport/http/middleware"
	"bizdesk/transport/http/router"

	adminService "bizdesk/internal/domains/admin/service"
	appointmentRepository "bizdesk/internal/domains/appointment/repository"
	appointmentService "bizdesk/internal/domains/appointment/service"
	catalogRepository "bizdesk/internal/domains/catalog/repository"
	catalogService "bizdesk/internal/domains/catalog/service"
	contactRepository "bizdesk/internal/domains/contact/repository"
	contactService "bizdesk/internal/domains/contact/service"
	faqRepository "bizdesk/internal/domains/faq/repository"
	faqService "bizdesk/internal/domains/faq/service"
	leadRepository "bizdesk/internal/domains/lead/repository"
	leadService "bizdesk/internal/domains/lead/service"
	subscriberRepository "bizdesk/internal/domains/subscriber/repository"
	subscriberService "bizdesk/internal/domains/subscriber/service"

	adminHandler "bizdesk/internal/handlers/admin"
	appointmentHandler "bizdesk/internal/handlers/appointment"
	blogHandler "bizdesk/internal/handlers/blog"
	catalogHandler "bizdesk/internal/handlers/catalog"
	contactHandler "bizdesk/internal/handlers/contact"
	faqHandler "bizdesk/internal/handlers/faq"
	healthHandler "bizdesk/internal/handlers/health"
	leadHandler "bizdesk/internal/handlers/lead"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	smtp.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	notifier.New,
)

var appointmentDomain = wire.NewSet(
	appointmentRepository.New,
	appointmentService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var subscriberDomain = wire.NewSet(
	subscriberRepository.New,
	subscriberService.New,
)

var leadDomain = wire.NewSet(
	leadRepository.New,
	leadService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var faqDomain = wire.NewSet(
	faqRepository.New,
	faqService.New,
)

var adminDomain = wire.NewSet(
	adminService.New,
)

var domains = wire.NewSet(
	appointmentDomain,
	contactDomain,
	subscriberDomain,
	leadDomain,
	catalogDomain,
	faqDomain,
	adminDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	appointmentHandler.New,
	contactHandler.New,
	blogHandler.New,
	leadHandler.New,
	catalogHandler.New,
	faqHandler.New,
	adminHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
