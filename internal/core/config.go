package core

import (
	"os"
)

// Config holds the application configuration.
type Config struct {
	LogLevel      string // DEBUG, INFO, WARN, ERROR
	DatasetPath   string // YAML file with the raw school dataset
	RecordLogPath string // YAML file finalized records are appended to
	IDScheme      string // "nanoid" or "uuid"
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	logLevel := getEnvOrDefault("LOG_LEVEL", "info")

	// DEBUG flag overrides log level
	if os.Getenv("DEBUG") == "1" {
		logLevel = "debug"
	}

	cfg := &Config{
		LogLevel:      logLevel,
		DatasetPath:   getEnvOrDefault("UNIRATE_DATASET", "data/schools.yaml"),
		RecordLogPath: getEnvOrDefault("UNIRATE_RECORD_LOG", ".unirate/records.yaml"),
		IDScheme:      getEnvOrDefault("UNIRATE_ID_SCHEME", "nanoid"),
	}

	return cfg, nil
}

// getEnvOrDefault returns the value of an environment variable or a default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
