package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// loadEnvFile loads a .env file from the working directory when present so
// local development can supply NATS credentials and AI endpoints without
// exporting them. Missing files are silently ignored.
func loadEnvFile() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		slog.Debug("Failed to load .env file", "error", err)
	}
}
