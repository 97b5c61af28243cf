package main

import (
	"github.com/rs/zerolog/log"

	"github.com/stratus-hq/site/config"
	"github.com/stratus-hq/site/logger"
	"github.com/stratus-hq/site/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if err := logger.Setup(cfg.LogLevel, cfg.LogPretty); err != nil {
		log.Fatal().Err(err).Msg("failed to set up logging")
	}

	s, err := server.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create server")
	}

	if err := s.Start(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
