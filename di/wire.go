//go:build wireinject
// +build wireinject

package di

import (
	"lodge/config"
	"lodge/infras/jwt"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/infras/redis"
	"lodge/infras/s3"
	"lodge/permissions"
	"lodge/shared/cache"
	"lodge/shared/clock"
	"lodge/transport/http"
	"lodge/transport/http/middleware"
	"lodge/transport/http/router"

	"github.com/google/wire"

	authService "lodge/internal/domains/auth/service"
	blacklistRepository "lodge/internal/domains/blacklist/repository"
	blacklistService "lodge/internal/domains/blacklist/service"
	bookingRepository "lodge/internal/domains/booking/repository"
	bookingService "lodge/internal/domains/booking/service"
	catalogRepository "lodge/internal/domains/catalog/repository"
	catalogService "lodge/internal/domains/catalog/service"
	customerRepository "lodge/internal/domains/customer/repository"
	customerService "lodge/internal/domains/customer/service"
	invoiceRepository "lodge/internal/domains/invoice/repository"
	invoiceService "lodge/internal/domains/invoice/service"
	roomRepository "lodge/internal/domains/room/repository"
	roomService "lodge/internal/domains/room/service"
	userRepository "lodge/internal/domains/user/repository"
	userService "lodge/internal/domains/user/service"
	vipRepository "lodge/internal/domains/vip/repository"
	vipService "lodge/internal/domains/vip/service"

	authHandler "lodge/internal/handlers/auth"
	blacklistHandler "lodge/internal/handlers/blacklist"
	bookingHandler "lodge/internal/handlers/booking"
	catalogHandler "lodge/internal/handlers/catalog"
	customerHandler "lodge/internal/handlers/customer"
	invoiceHandler "lodge/internal/handlers/invoice"
	roomHandler "lodge/internal/handlers/room"
	userHandler "lodge/internal/handlers/user"
	vipHandler "lodge/internal/handlers/vip"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	clock.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomRepository.NewRoomType,
	roomService.New,
	roomService.NewRoomType,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var blacklistDomain = wire.NewSet(
	blacklistRepository.New,
	blacklistService.New,
)

var vipDomain = wire.NewSet(
	vipRepository.New,
	vipService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogRepository.NewServiceUsage,
	catalogService.New,
)

var invoiceDomain = wire.NewSet(
	invoiceRepository.New,
	invoiceRepository.NewLineItem,
	invoiceService.New,
)

var domains = wire.NewSet(
	authDomain,
	customerDomain,
	roomDomain,
	bookingDomain,
	blacklistDomain,
	vipDomain,
	catalogDomain,
	invoiceDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	customerHandler.New,
	roomHandler.New,
	bookingHandler.New,
	blacklistHandler.New,
	vipHandler.New,
	catalogHandler.New,
	invoiceHandler.New,
	router.New,
)

func InitializeService() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
