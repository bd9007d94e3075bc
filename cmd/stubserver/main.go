package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"stocklink-lite/internal/config"
	"stocklink-lite/internal/stub"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Config load failed")
	}

	db, err := stub.Open(cfg.StubDatabaseURL, "stub.db")
	if err != nil {
		log.Fatal().Err(err).Msg("Database connection failed")
	}
	if err := stub.Seed(db); err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}

	app := stub.NewApp(db)
	log.Info().Str("port", cfg.StubPort).Msg("Stub backend listening")
	if err := app.Listen(":" + cfg.StubPort); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
