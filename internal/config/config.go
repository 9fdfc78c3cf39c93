package config

import (
	"os"
	"path/filepath"

	"mainstack/revenue/internal/logging"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file in the working
// directory or its parent, if one exists. Variables already set win.
func LoadEnv(logger logging.Logger) string {
	if logger == nil {
		logger = logging.Nop()
	}
	for _, envFile := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			logger.WithError(err).Warn("Error loading .env file")
			return ""
		}
		logger.Debug("Loaded environment variables", logging.F("file", envFile))
		return envFile
	}
	logger.Debug("No .env file found, using environment variables")
	return ""
}

// NewLogger builds the logrus-backed application logger from the log
// section.
func (c *Config) NewLogger() logging.Logger {
	return logging.NewLogrusAdapter(c.Log.Level, c.Log.Format)
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
