package main

import (
	"academy/backend/config"
	"academy/backend/mailer"
	"academy/backend/routes"
	"academy/backend/utils"
	"os"

	"github.com/rs/zerolog/log"
)

// @title Academy API
// @version 1.0
// @BasePath /api
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name academy_session
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	logger := utils.InitLogger(utils.LoggerConfig{
		Format: cfg.LogFormat,
		Level:  cfg.LogLevel,
		Output: os.Stdout,
	})

	db, err := utils.InitDB(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("initialize database")
	}
	if err := utils.SeedAdmin(db, cfg.AdminUsername, cfg.AdminPassword, logger); err != nil {
		logger.Fatal().Err(err).Msg("seed admin")
	}

	sender := mailer.New(cfg.ResendAPIKey, cfg.MailFrom, logger)

	app := routes.NewApp(cfg, logger)
	routes.SetupRoutes(app, db, cfg, logger, sender)

	logger.Info().Str("port", cfg.ServerPort).Msg("server starting")
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
