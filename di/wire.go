//go:build wireinject
// +build wireinject

package di

import (
	"frigate/config"
	"frigate/infras/jwt"
	"frigate/infras/kafka"
	"frigate/infras/mailer"
	"frigate/infras/otel"
	"frigate/infras/payment"
	"frigate/infras/postgres"
	"frigate/infras/redis"
	"frigate/permissions"
	"frigate/shared/cache"
	"frigate/transport/http"
	"frigate/transport/http/middleware"
	"frigate/transport/http/router"

	authRepository "frigate/internal/domains/auth/repository"
	authService "frigate/internal/domains/auth/service"
	bookingRepository "frigate/internal/domains/booking/repository"
	bookingService "frigate/internal/domains/booking/service"
	paymentService "frigate/internal/domains/payment/service"
	roomRepository "frigate/internal/domains/room/repository"
	roomService "frigate/internal/domains/room/service"

	adminHandler "frigate/internal/handlers/admin"
	authHandler "frigate/internal/handlers/auth"
	bookingHandler "frigate/internal/handlers/booking"
	healthHandler "frigate/internal/handlers/health"
	paymentHandler "frigate/internal/handlers/payment"
	roomHandler "frigate/internal/handlers/room"

	"github.com/google/wire"
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
	mailer.New,
	payment.NewProviders,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentService.New,
)

var authDomain = wire.NewSet(
	authRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	paymentDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	authHandler.New,
	roomHandler.New,
	bookingHandler.New,
	paymentHandler.New,
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
