package router

import (
	"bizdesk/internal/handlers/admin"
	"bizdesk/internal/handlers/appointment"
	"bizdesk/internal/handlers/blog"
	"bizdesk/internal/handlers/catalog"
	"bizdesk/internal/handlers/contact"
	"bizdesk/internal/handlers/faq"
	"bizdesk/internal/handlers/health"
	"bizdesk/internal/handlers/lead"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Health      health.Handler
	Appointment appointment.Handler
	Contact     contact.Handler
	Blog        blog.Handler
	Lead        lead.Handler
	Catalog     catalog.Handler
	FAQ         faq.Handler
	Admin       admin.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)

	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Appointment.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)
		r.DomainHandlers.Blog.Router(routerGroup)
		r.DomainHandlers.Lead.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.FAQ.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
