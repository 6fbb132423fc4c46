package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// SSOT: every environment variable is read here and nowhere else
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Pipeline
	Timezone string // business date timezone for as_of_date

	// Output artifact
	Output OutputConfig

	// Universe (ticker list)
	Universe UniverseConfig

	// Fundamentals provider
	Yahoo YahooConfig

	// Strategy thresholds
	StrategyFile string // optional YAML; empty means compiled-in defaults

	// Scheduler
	ValuationCron string

	// Logging
	LogLevel  string
	LogFormat string
}

// OutputConfig holds report artifact settings
type OutputConfig struct {
	Dir            string
	Basename       string // name of the "latest" CSV
	WriteDatedCopy bool
	DatedPrefix    string // prefix for the dated copy, e.g. nasdaq100_valuations
}

// UniverseConfig holds ticker list acquisition settings
type UniverseConfig struct {
	UseWikipedia bool
	WikipediaURL string
	FallbackFile string // local CSV constituents list
}

// YahooConfig holds Yahoo Finance client configuration
type YahooConfig struct {
	BaseURL        string
	Timeout        time.Duration
	RequestsPerSec float64
	Burst          int
}

// Load reads configuration from environment variables
// SSOT: only this function calls os.Getenv()
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "8090"),
		Env:  getEnv("ENV", "development"),

		// Pipeline
		Timezone: getEnv("PIPELINE_TIMEZONE", "Asia/Bangkok"),

		// Output artifact
		Output: OutputConfig{
			Dir:            getEnv("OUTPUT_DIR", "data"),
			Basename:       getEnv("OUTPUT_BASENAME", "nasdaq100_latest.csv"),
			WriteDatedCopy: getEnvAsBool("WRITE_DATED_COPY", true),
			DatedPrefix:    getEnv("OUTPUT_DATED_PREFIX", "nasdaq100_valuations"),
		},

		// Universe
		Universe: UniverseConfig{
			UseWikipedia: getEnvAsBool("USE_WIKIPEDIA_TICKERS", true),
			WikipediaURL: getEnv("WIKIPEDIA_URL", "https://en.wikipedia.org/wiki/Nasdaq-100"),
			FallbackFile: getEnv("TICKER_FALLBACK_FILE", "data/nasdaq100_tickers.csv"),
		},

		// Fundamentals provider
		Yahoo: YahooConfig{
			BaseURL:        getEnv("YAHOO_BASE_URL", "https://query1.finance.yahoo.com"),
			Timeout:        getEnvAsDuration("YAHOO_TIMEOUT", "15s"),
			RequestsPerSec: getEnvAsFloat("YAHOO_REQUESTS_PER_SEC", 4.0),
			Burst:          getEnvAsInt("YAHOO_BURST", 2),
		},

		// Strategy thresholds
		StrategyFile: getEnv("STRATEGY_FILE", ""),

		// Scheduler: 5 PM on weekdays (with seconds field)
		ValuationCron: getEnv("VALUATION_CRON", "0 0 17 * * MON-FRI"),

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Output.Dir == "" {
		return fmt.Errorf("OUTPUT_DIR is required")
	}
	if c.Output.Basename == "" {
		return fmt.Errorf("OUTPUT_BASENAME is required")
	}

	if c.Yahoo.RequestsPerSec <= 0 {
		return fmt.Errorf("YAHOO_REQUESTS_PER_SEC must be > 0")
	}
	if c.Yahoo.Burst < 1 {
		return fmt.Errorf("YAHOO_BURST must be >= 1")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",
		"config/.env",
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

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

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
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

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
