// Package config loads application configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	AppName    string
	LogLevel   string
	PrettyLogs bool

	// Rule configuration file. Empty means the built-in default rules.
	RulesPath string
	// Watchlist file consumed by the file backed entry provider.
	WatchlistPath string

	// Scoring thresholds
	AlertThreshold  float64
	ReviewThreshold float64

	// Matching strategy tuning
	JaroWinklerThreshold float64
	NGramSize            int
	NGramThreshold       float64
	KoreanThreshold      float64
	CompositeThreshold   float64

	// Screening concurrency
	ScreeningWorkers int
}

// Load reads configuration from the environment, consulting a local .env
// file when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppName:    getEnv("APP_NAME", "briar"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		PrettyLogs: getEnvBool("PRETTY_LOGS", false),

		RulesPath:     getEnv("RULES_PATH", ""),
		WatchlistPath: getEnv("WATCHLIST_PATH", ""),

		AlertThreshold:  getEnvFloat("ALERT_THRESHOLD", 70),
		ReviewThreshold: getEnvFloat("REVIEW_THRESHOLD", 50),

		JaroWinklerThreshold: getEnvFloat("JARO_WINKLER_THRESHOLD", 0.85),
		NGramSize:            getEnvInt("NGRAM_SIZE", 2),
		NGramThreshold:       getEnvFloat("NGRAM_THRESHOLD", 0.5),
		KoreanThreshold:      getEnvFloat("KOREAN_THRESHOLD", 0.7),
		CompositeThreshold:   getEnvFloat("COMPOSITE_THRESHOLD", 0.75),

		ScreeningWorkers: getEnvInt("SCREENING_WORKERS", 4),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := cast.ToIntE(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := cast.ToFloat64E(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := cast.ToBoolE(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
