package main

import (
	"fmt"
	"os"
	"time"

	"go-posting-cleaner/internal/api"
	"go-posting-cleaner/internal/config"
	"go-posting-cleaner/internal/pipeline"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})

	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to load config")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	driver := pipeline.New(pipeline.WithLogger(log.Logger))
	r := api.NewRouter(driver)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info().Str("addr", addr).Msg("🚀 Server listening")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to start server")
	}
}
