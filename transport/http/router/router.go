package router

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"frigate/internal/handlers/admin"
	"frigate/internal/handlers/auth"
	"frigate/internal/handlers/booking"
	"frigate/internal/handlers/health"
	"frigate/internal/handlers/payment"
	"frigate/internal/handlers/room"
)

type DomainHandlers struct {
	Health  health.Handler
	Auth    auth.Handler
	Room    room.Handler
	Booking booking.Handler
	Payment payment.Handler
	Admin   admin.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)

	router.Get("/swagger/*", httpSwagger.Handler())

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
