package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv             string
	Port               string
	StoreDriver        string
	DBPath             string
	RedisURL           string
	RedisTTL           time.Duration
	SessionKey         string
	StaticPath         string
	LogLevel           string
	Currency           string
	Locale             string
	ConsistencyEpsilon float64
	CORSAllowedOrigins []string
	MetricsEnabled     bool
}

// Load reads configuration from environment variables and optional .env files.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:             valueOrDefault(k.String("APP_ENV"), "development"),
		Port:               valueOrDefault(k.String("PORT"), "8080"),
		StoreDriver:        strings.ToLower(valueOrDefault(k.String("STORE_DRIVER"), StoreSQLite)),
		DBPath:             valueOrDefault(k.String("DB_PATH"), "./data/bills.db"),
		RedisURL:           strings.TrimSpace(k.String("REDIS_URL")),
		SessionKey:         valueOrDefault(k.String("SESSION_KEY"), "bill-splitter-storage"),
		StaticPath:         strings.TrimSpace(k.String("STATIC_PATH")),
		LogLevel:           valueOrDefault(k.String("LOG_LEVEL"), "info"),
		Currency:           strings.ToUpper(valueOrDefault(k.String("CURRENCY"), "USD")),
		Locale:             valueOrDefault(k.String("LOCALE"), "en-US"),
		CORSAllowedOrigins: splitAndTrim(k.String("CORS_ALLOWED_ORIGINS")),
		MetricsEnabled:     parseBool(valueOrDefault(k.String("METRICS_ENABLED"), "true")),
	}

	ttl, err := parseDuration(k.String("REDIS_TTL"), 0)
	if err != nil {
		return nil, fmt.Errorf("REDIS_TTL: %w", err)
	}
	if ttl < 0 {
		return nil, errors.New("REDIS_TTL must not be negative")
	}
	cfg.RedisTTL = ttl

	epsilon, err := parseFloat(k.String("CONSISTENCY_EPSILON"), 0.01)
	if err != nil {
		return nil, fmt.Errorf("CONSISTENCY_EPSILON: %w", err)
	}
	if epsilon <= 0 {
		return nil, errors.New("CONSISTENCY_EPSILON must be positive")
	}
	cfg.ConsistencyEpsilon = epsilon

	switch cfg.StoreDriver {
	case StoreSQLite:
	case StoreRedis:
		if cfg.RedisURL == "" {
			return nil, errors.New("REDIS_URL is required when STORE_DRIVER=redis")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	if _, err := currency.ParseISO(cfg.Currency); err != nil {
		return nil, fmt.Errorf("CURRENCY: %w", err)
	}
	if _, err := language.Parse(cfg.Locale); err != nil {
		return nil, fmt.Errorf("LOCALE: %w", err)
	}

	return cfg, nil
}

// HTTPAddr returns the address the HTTP server should bind to.
func (c *Config) HTTPAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

// AllowsOrigin reports whether origin may call the API from a browser. An
// empty allow list admits every origin.
func (c *Config) AllowsOrigin(origin string) bool {
	if len(c.CORSAllowedOrigins) == 0 {
		return true
	}
	for _, o := range c.CORSAllowedOrigins {
		if o == "*" || strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}

func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	return time.ParseDuration(value)
}

func parseFloat(value string, fallback float64) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(value, 64)
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
