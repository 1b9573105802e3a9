package config

import (
	"os"
	"strconv"

	"github.com/kevin07696/checkgen/internal/adapters/pdf"
)

// Config holds all application configuration
type Config struct {
	Logger  LoggerConfig
	Fonts   pdf.FontSet
	Output  OutputConfig
	Metrics MetricsConfig
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level       string // debug, info, warn, error
	Development bool
}

// OutputConfig holds defaults applied when the job file leaves them out
type OutputConfig struct {
	StartingCheckNumber int
}

// MetricsConfig holds the Prometheus textfile destination (empty disables it)
type MetricsConfig struct {
	TextfilePath string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	return &Config{
		Logger: LoggerConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: getEnvAsBool("LOG_DEVELOPMENT", false),
		},
		Fonts: pdf.FontSet{
			Regular:     getEnv("CHECKGEN_FONT_REGULAR", ""),
			Handwriting: getEnv("CHECKGEN_FONT_HANDWRITING", ""),
			MICR:        getEnv("CHECKGEN_FONT_MICR", ""),
			Metadata:    getEnv("CHECKGEN_FONT_METADATA", ""),
		},
		Output: OutputConfig{
			StartingCheckNumber: getEnvAsInt("CHECKGEN_STARTING_CHECK", 1001),
		},
		Metrics: MetricsConfig{
			TextfilePath: getEnv("CHECKGEN_METRICS_FILE", ""),
		},
	}
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
