package main

import (
	"os"
	"strconv"
	"time"

	// this will automatically load your .env file:
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"

	"github.com/SNKLP03/chessV3/engine"
)

type Config struct {
	// Depth and MoveTime drive the protocol loop's "go" command.
	Depth    int
	MoveTime time.Duration
	// PlayDepth and PlayMoveTime drive the console game.
	PlayDepth    int
	PlayMoveTime time.Duration
	LogLevel     string
}

func loadConfig() Config {
	return Config{
		Depth:        engine.Clamp(envInt("ENGINE_DEPTH", 3), 1, engine.MaxDepth),
		MoveTime:     time.Duration(envInt("ENGINE_MOVE_TIME", 2000)) * time.Millisecond,
		PlayDepth:    engine.Clamp(envInt("PLAY_DEPTH", 5), 1, engine.MaxDepth),
		PlayMoveTime: time.Duration(envInt("PLAY_MOVE_TIME", 3000)) * time.Millisecond,
		LogLevel:     envString("LOG_LEVEL", "info"),
	}
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatal().Err(err).Str("key", key).Msg("error converting string to int")
	}
	return v
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
