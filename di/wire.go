//go:build wireinject
// +build wireinject

package di

import (
	"popflea/config"
	"popflea/infras/mailer"
	"popflea/infras/otel"
	"popflea/infras/redis"
	"popflea/infras/s3"
	"popflea/infras/sheets"
	bookingHandler "popflea/internal/handlers/booking"
	"popflea/shared/cache"
	"popflea/transport/http"
	"popflea/transport/http/middleware"
	"popflea/transport/http/router"

	bookingNotifier "popflea/internal/domains/booking/notifier"
	bookingRepository "popflea/internal/domains/booking/repository"
	bookingService "popflea/internal/domains/booking/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	sheets.New,
	s3.New,
	mailer.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingNotifier.New,
	bookingService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		bookingDomain,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
