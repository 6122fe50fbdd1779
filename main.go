package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := loadConfig()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	// Diagnostics go to stderr so stdout stays clean for the protocol.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) > 1 && os.Args[1] == "play" {
		playLoop(os.Stdin, os.Stdout, cfg)
		return
	}

	if err := uciLoop(os.Stdin, os.Stdout, cfg); err != nil {
		log.Fatal().Err(err).Msg("protocol loop failed")
	}
}
