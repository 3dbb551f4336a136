//go:build wireinject
// +build wireinject

package di

import (
	"kwagala/config"
	"kwagala/infras/mail"
	"kwagala/infras/otel"
	"kwagala/infras/postgres"
	"kwagala/infras/redis"
	"kwagala/permissions"
	"kwagala/shared/cache"
	"kwagala/shared/metrics"
	"kwagala/transport/http"
	"kwagala/transport/http/middleware"
	"kwagala/transport/http/router"

	adminService "kwagala/internal/domains/admin/service"
	bookingRepository "kwagala/internal/domains/booking/repository"
	bookingService "kwagala/internal/domains/booking/service"
	notificationService "kwagala/internal/domains/notification/service"
	adminHandler "kwagala/internal/handlers/admin"
	bookingHandler "kwagala/internal/handlers/booking"

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
	mail.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAdminGate,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	metrics.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var notificationDomain = wire.NewSet(
	notificationService.New,
)

var adminDomain = wire.NewSet(
	adminService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	notificationDomain,
	adminDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
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
