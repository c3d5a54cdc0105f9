// Package config reads service configuration from environment variables.
// cmd/server loads a .env file first via godotenv's autoload import, so local
// development works with a checked-out .env and production with real env vars.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything the server needs at startup.
type Config struct {
	// Addr is the listen address for the HTTP/WebSocket server.
	Addr string
	// Origins is the list of allowed WebSocket origin patterns.
	Origins []string
	// RoomRetention is how long rooms live after creation before the janitor
	// removes them.
	RoomRetention time.Duration
	// SweepInterval is how often the expiry sweep runs.
	SweepInterval time.Duration
	// StatsInterval is how often aggregate stats are logged.
	StatsInterval time.Duration
}

// Load builds a Config from the environment, falling back to defaults that
// match local development.
func Load() Config {
	return Config{
		Addr:          ":" + getEnv("PORT", "3001"),
		Origins:       []string{getEnv("ORIGIN", "*")},
		RoomRetention: time.Duration(getEnvInt("ROOM_TTL_HOURS", 24)) * time.Hour,
		SweepInterval: time.Duration(getEnvInt("SWEEP_INTERVAL_MINUTES", 60)) * time.Minute,
		StatsInterval: time.Duration(getEnvInt("STATS_INTERVAL_MINUTES", 10)) * time.Minute,
	}
}

// getEnv is a helper to read an environment variable or return a default value.
func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// getEnvInt is a helper to parse an environment variable as integer, else a default value.
func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
