package main

import (
	"errors"

	"faris/internal/ai"
	"faris/internal/config"
	"faris/internal/database"
	"faris/internal/server"
)

func main() {
	cfg := config.Load()
	logger := cfg.SetupLogger()

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		logger.Warn().Err(err).Msg("Database connection failed")
		logger.Info().Msg("Starting server without database connection")
	} else {
		logger.Info().Msg("Database connection established successfully")
		if err := database.CreateTables(db); err != nil {
			logger.Warn().Err(err).Msg("Schema bootstrap failed")
		}
	}

	aiClient, err := ai.NewClient(cfg)
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			logger.Warn().Msg("OPENAI_API_KEY not set, AI endpoints disabled")
		} else {
			logger.Warn().Err(err).Msg("AI client initialization failed, AI endpoints disabled")
		}
		aiClient = nil
	}

	srv := server.New(cfg, db, logger, aiClient)
	srv.Initialize()

	if err := srv.Start(); err != nil {
		logger.Fatal().Err(err).Msg("Server failed to start")
	}
}
