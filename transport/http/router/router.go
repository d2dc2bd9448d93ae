package router

import (
	"lodge/internal/handlers/auth"
	"lodge/internal/handlers/blacklist"
	"lodge/internal/handlers/booking"
	"lodge/internal/handlers/catalog"
	"lodge/internal/handlers/customer"
	"lodge/internal/handlers/invoice"
	"lodge/internal/handlers/room"
	"lodge/internal/handlers/user"
	"lodge/internal/handlers/vip"
	"lodge/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth      auth.Handler
	User      user.Handler
	Customer  customer.Handler
	Room      room.Handler
	Booking   booking.Handler
	Blacklist blacklist.Handler
	VIP       vip.Handler
	Catalog   catalog.Handler
	Invoice   invoice.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.APIKey)
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Blacklist.Router(routerGroup)
		r.DomainHandlers.VIP.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Invoice.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}
