package main

import (
	"kwagala/config"
	"kwagala/di"
	"kwagala/helper"
	"kwagala/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Kwagala Homes Booking API
// @version 1.0
// @description Stay requests for Kwagala Homes and the admin page behind a shared pass.
// @BasePath /
func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.Configure(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
