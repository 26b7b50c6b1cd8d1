package main

import (
	"context"
	"todomac/config"
	"todomac/di"
	"todomac/helper"
	"todomac/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.Setup(cfg)

	if cfg.DB.Postgres.AutoBootstrap {
		if cfg.IsProduction() {
			log.Fatal().Msg("Database bootstrap recreates the database and is not allowed in production")
		}

		if err := helper.Bootstrap(context.Background(), cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to bootstrap database")
		}
	}

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	http.Serve()
}
