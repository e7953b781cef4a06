package main

import (
	"hope-backend/internal/api"
	"hope-backend/internal/config"
	"hope-backend/internal/database"
	"hope-backend/internal/logging"
	"hope-backend/internal/notify"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewLogger(cfg.Environment)

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}
	if err := database.SeedCampaigns(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed campaigns")
	}

	mailer := notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom)
	discord := notify.NewDiscordClient(cfg.DiscordWebhookURL)
	notifier := notify.NewNotifier(mailer, discord, cfg.MailTo, logger)

	r := api.NewRouter(db, cfg, notifier, logger)

	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("failed to run server")
	}
}
