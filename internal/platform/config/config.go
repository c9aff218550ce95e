package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

const (
	defaultPort            = "8080"
	defaultFrontendBaseURL = "http://localhost:5173"
	defaultRateLimit       = "100-M"
	defaultTimezone        = "America/Havana"
	defaultLowStock        = 5
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	RunMigrations bool

	// Bearer tokens are issued by the identity provider and only verified here.
	JWTSecret string
	JWTIssuer string

	FrontendBaseURL string
	RateLimit       string

	LogLevel  slog.Level
	LogFormat string // "text" or "json"

	// Month boundaries of summaries and dashboard stats are computed in Location.
	Location *time.Location

	LowStockDefault int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "")
	v.SetDefault("FRONTEND_BASE_URL", defaultFrontendBaseURL)
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("TIMEZONE", defaultTimezone)
	v.SetDefault("LOW_STOCK_DEFAULT", defaultLowStock)
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:     v.GetString("PGSQL_URL"),
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:   v.GetBool("RUN_MIGRATIONS"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTIssuer:       v.GetString("JWT_ISSUER"),
		FrontendBaseURL: v.GetString("FRONTEND_BASE_URL"),
		RateLimit:       v.GetString("RATE_LIMIT"),
		LogFormat:       strings.ToLower(v.GetString("LOG_FORMAT")),
		LowStockDefault: v.GetInt("LOW_STOCK_DEFAULT"),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set")
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET not set; every authenticated request will be rejected")
	}

	if _, err := limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
		slog.Warn("Invalid RATE_LIMIT, using default", slog.String("value", cfg.RateLimit), slog.String("default", defaultRateLimit))
		cfg.RateLimit = defaultRateLimit
	}

	level, ok := parseLevel(v.GetString("LOG_LEVEL"))
	if !ok {
		slog.Warn("Invalid LOG_LEVEL, using info", slog.String("value", v.GetString("LOG_LEVEL")))
	}
	cfg.LogLevel = level

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		slog.Warn("Invalid LOG_FORMAT, using text", slog.String("value", cfg.LogFormat))
		cfg.LogFormat = "text"
	}

	if cfg.LowStockDefault <= 0 {
		slog.Warn("Invalid LOW_STOCK_DEFAULT, using default", slog.Int("value", cfg.LowStockDefault), slog.Int("default", defaultLowStock))
		cfg.LowStockDefault = defaultLowStock
	}

	tz := v.GetString("TIMEZONE")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", tz, err)
	}
	cfg.Location = loc

	return cfg, nil
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}
