package router

import (
	"net/http"
	"todomac/internal/handlers/todo"
	"todomac/transport/http/middleware"
	"todomac/transport/http/response"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

type DomainHandlers struct {
	Todo todo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
}

// SetupRoutes mounts every domain under /v1. The health route sits outside the auth group.
func (r *Router) SetupRoutes(router chi.Router, health http.HandlerFunc) {
	router.Use(
		chiMiddleware.Recoverer,
		r.App.RealIP,
		r.App.RequestID,
		r.App.AccessLog,
		r.App.Tracing,
		r.App.CORS(),
		r.App.RateLimit(),
	)

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Get("/health", health)

		r.DomainHandlers.Todo.Router(routerGroup)
	})

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.WithMessage(w, http.StatusNotFound, "route not found")
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
	}
}
