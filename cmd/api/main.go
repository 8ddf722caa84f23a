package main

import (
	"os"
	"time"

	_ "ocorrencias_logistica/docs"
	"ocorrencias_logistica/internal/adapter/http/routes"
	"ocorrencias_logistica/internal/config"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title           Controle de Ocorrências API
// @version         1.0
// @description     Logistics occurrences, expedição workflow and stock lookup backed by a spreadsheet.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /api

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogger(cfg)

	if err := routes.Run(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to startup the application")
	}
}

// setupLogger uses a console writer in development and JSON in production.
func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.IsProduction() {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}
