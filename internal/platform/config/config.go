package config

import (
	"log"
	"log/slog"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

const (
	defaultPort               = "8080"
	defaultLogLevel           = "info"
	defaultRateLimit          = "120-M"
	defaultCORSOrigins        = "http://localhost:3000"
	defaultMinRunwayMonths    = 6
	defaultHistoryMonths      = 6
	defaultForecastMonths     = 6
	defaultSurvivalCategories = "rent,salary,utilities,legal"
	defaultGrowthCategories   = "marketing,software,equipment"
)

// Config holds application configuration.
type Config struct {
	Port               string
	IsProduction       bool
	LogLevel           slog.Level
	RateLimit          string   // ulule formatted rate, e.g. "120-M"
	CORSAllowedOrigins []string

	// Analysis defaults, overridable per request where the API allows it.
	MinRunwayMonths    int
	HistoryMonths      int
	ForecastMonths     int
	SurvivalCategories []string
	GrowthCategories   []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", defaultPort)
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("RATE_LIMIT", defaultRateLimit)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)
	viper.SetDefault("MIN_RUNWAY_MONTHS", strconv.Itoa(defaultMinRunwayMonths))
	viper.SetDefault("HISTORY_MONTHS", strconv.Itoa(defaultHistoryMonths))
	viper.SetDefault("FORECAST_MONTHS", strconv.Itoa(defaultForecastMonths))
	viper.SetDefault("SURVIVAL_CATEGORIES", defaultSurvivalCategories)
	viper.SetDefault("GROWTH_CATEGORIES", defaultGrowthCategories)

	// Environment variables override .env values, which override defaults.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	logLevelStr := viper.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", logLevelStr, defaultLogLevel)
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if _, err := limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
		log.Printf("Warning: Invalid value for RATE_LIMIT ('%s'). Defaulting to %s.\n", cfg.RateLimit, defaultRateLimit)
		cfg.RateLimit = defaultRateLimit
	}

	cfg.CORSAllowedOrigins = parseList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	if len(cfg.CORSAllowedOrigins) == 0 {
		log.Printf("Warning: CORS_ALLOWED_ORIGINS is empty. Defaulting to %s.\n", defaultCORSOrigins)
		cfg.CORSAllowedOrigins = parseList(defaultCORSOrigins)
	}

	cfg.MinRunwayMonths = parseMonths("MIN_RUNWAY_MONTHS", 0, defaultMinRunwayMonths)
	cfg.HistoryMonths = parseMonths("HISTORY_MONTHS", 1, defaultHistoryMonths)
	cfg.ForecastMonths = parseMonths("FORECAST_MONTHS", 1, defaultForecastMonths)

	cfg.SurvivalCategories = parseList(viper.GetString("SURVIVAL_CATEGORIES"))
	cfg.GrowthCategories = parseList(viper.GetString("GROWTH_CATEGORIES"))

	return cfg, nil
}

// parseMonths reads an integer month count, falling back to def when the
// value is not a number or is below minimum.
func parseMonths(key string, minimum, def int) int {
	raw := viper.GetString(key)
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < minimum {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %d.\n", key, raw, def)
		return def
	}
	return n
}

// parseList splits a comma separated value, dropping blanks.
func parseList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
