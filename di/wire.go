//go:build wireinject
// +build wireinject

package di

import (
	"todomac/config"
	"todomac/infras/jwt"
	"todomac/infras/otel"
	"todomac/infras/postgres"
	"todomac/infras/redis"
	todoHandler "todomac/internal/handlers/todo"
	"todomac/shared/cache"
	"todomac/shared/security"
	"todomac/transport/http"
	"todomac/transport/http/middleware"
	"todomac/transport/http/router"

	todoRepository "todomac/internal/domains/todo/repository"
	todoService "todomac/internal/domains/todo/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	security.NewResolver,
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var domains = wire.NewSet(
	todoDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	todoHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
