package handler

import (
	"net/http"
	"sync"
	"todomac/config"
	"todomac/di"
	"todomac/shared/logger"
	transport "todomac/transport/http"
	"todomac/transport/http/response"

	"github.com/rs/zerolog/log"
)

var (
	server  *transport.HTTP
	initErr error
	once    sync.Once
)

// Handler is the serverless entry point. The dependency graph is built on the first request.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		logger.Setup(config.Get())

		server, initErr = di.InitializeService()
		if initErr != nil {
			log.Error().Err(initErr).Msg("Failed to initialize service")
		}
	})

	if initErr != nil {
		response.WithMessage(w, http.StatusServiceUnavailable, "service unavailable")

		return
	}

	r.RequestURI = r.URL.String()

	server.ServeHTTP(w, r)
}
