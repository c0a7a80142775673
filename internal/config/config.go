// Package config loads runtime configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the server.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string
	// DBPath is the path to the SQLite database file.
	DBPath string
}

// Load reads an optional .env file and resolves settings from the
// environment, falling back to development defaults. A missing .env file is
// not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:   getEnv("PORT", "8080"),
		DBPath: getEnv("DB_PATH", "./data/daily-diet.db"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
