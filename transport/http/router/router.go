package router

import (
	"kwagala/internal/handlers/admin"
	"kwagala/internal/handlers/booking"

	"github.com/go-chi/chi/v5"
)

const bookingsPrefix = "/api/bookings"

type DomainHandlers struct {
	Booking booking.Handler
	Admin   admin.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route(bookingsPrefix, func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
