package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	DBDriver    string
	DatabaseURL string
	AutoMigrate bool

	JWTSecret    string
	SessionTTL   time.Duration
	CookieSecure bool

	CORSOrigins []string

	LoginRatePerSecond float64
	LoginBurst         int

	Currency string
	LogLevel string
}

func Load() (*Config, error) {
	// Load .env file if it exists (useful for local dev)
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		DBDriver:     strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		CORSOrigins:  splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		Currency:     getEnv("CURRENCY", "PKR"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		AutoMigrate:  true,
		CookieSecure: false,
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set")
	}
	if cfg.DBDriver != DriverPostgres && cfg.DBDriver != DriverSQLite {
		return nil, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, cfg.DBDriver)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	var err error
	if cfg.SessionTTL, err = time.ParseDuration(getEnv("SESSION_TTL", "168h")); err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive")
	}
	if cfg.CookieSecure, err = parseBool("COOKIE_SECURE", false); err != nil {
		return nil, err
	}
	if cfg.AutoMigrate, err = parseBool("DB_AUTO_MIGRATE", true); err != nil {
		return nil, err
	}
	if cfg.LoginRatePerSecond, err = strconv.ParseFloat(getEnv("LOGIN_RATE_PER_SECOND", "1"), 64); err != nil {
		return nil, fmt.Errorf("invalid LOGIN_RATE_PER_SECOND: %w", err)
	}
	if cfg.LoginBurst, err = strconv.Atoi(getEnv("LOGIN_BURST", "5")); err != nil {
		return nil, fmt.Errorf("invalid LOGIN_BURST: %w", err)
	}
	if cfg.LoginRatePerSecond <= 0 || math.IsNaN(cfg.LoginRatePerSecond) {
		return nil, fmt.Errorf("LOGIN_RATE_PER_SECOND must be positive")
	}
	if cfg.LoginBurst <= 0 {
		return nil, fmt.Errorf("LOGIN_BURST must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseBool(key string, fallback bool) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "":
		return fallback, nil
	case "1", "true", "yes":
		return true, nil
	case "0", "false", "no":
		return false, nil
	}
	return false, fmt.Errorf("invalid %s: %q", key, v)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
