package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"capacity/internal/adapters/out/postgres"
	"capacity/internal/adapters/out/technologyclient"
)

// Defaults applied to keys that are absent from the environment.
const (
	DefaultHTTPPort                 = "8080"
	DefaultTechnologyServiceTimeout = 5 * time.Second
	DefaultTechnologyServiceRPS     = 50
	DefaultTechnologyServiceBurst   = 20
	DefaultBreakerMaxFailures       = 5
	DefaultBreakerOpenTimeout       = 30 * time.Second
	DefaultCatalogCacheTTL          = 30 * time.Second
	DefaultCatalogRefreshSpec       = "*/15 * * * * *"
)

type Config struct {
	HTTPPort string
	LogLevel slog.Level

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	TechnologyServiceURL     string
	TechnologyServiceTimeout time.Duration
	TechnologyServiceRPS     float64
	TechnologyServiceBurst   int
	BreakerMaxFailures       uint32
	BreakerOpenTimeout       time.Duration

	// RedisAddr enables the technology catalog cache when set.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CatalogCacheTTL    time.Duration
	CatalogRefreshSpec string
}

// LoadConfig reads the configuration through getenv, usually os.Getenv.
// Every malformed value is reported, not only the first one.
func LoadConfig(getenv func(string) string) (Config, error) {
	p := parser{getenv: getenv}

	cfg := Config{
		HTTPPort: p.str("HTTP_PORT", DefaultHTTPPort),
		LogLevel: p.level("LOG_LEVEL", slog.LevelInfo),

		DBHost:     p.str("DB_HOST", "localhost"),
		DBPort:     p.str("DB_PORT", "5432"),
		DBUser:     p.str("DB_USER", ""),
		DBPassword: p.str("DB_PASSWORD", ""),
		DBName:     p.str("DB_NAME", ""),
		DBSslMode:  p.str("DB_SSLMODE", "disable"),

		TechnologyServiceURL:     p.str("TECHNOLOGY_SERVICE_URL", ""),
		TechnologyServiceTimeout: p.duration("TECHNOLOGY_SERVICE_TIMEOUT", DefaultTechnologyServiceTimeout),
		TechnologyServiceRPS:     p.float("TECHNOLOGY_SERVICE_RPS", DefaultTechnologyServiceRPS),
		TechnologyServiceBurst:   p.int("TECHNOLOGY_SERVICE_BURST", DefaultTechnologyServiceBurst),
		BreakerMaxFailures:       uint32(p.int("BREAKER_MAX_FAILURES", DefaultBreakerMaxFailures)), //nolint:gosec // checked below
		BreakerOpenTimeout:       p.duration("BREAKER_OPEN_TIMEOUT", DefaultBreakerOpenTimeout),

		RedisAddr:     p.str("REDIS_ADDR", ""),
		RedisPassword: p.str("REDIS_PASSWORD", ""),
		RedisDB:       p.int("REDIS_DB", 0),

		CatalogCacheTTL:    p.duration("CATALOG_CACHE_TTL", DefaultCatalogCacheTTL),
		CatalogRefreshSpec: p.str("CATALOG_REFRESH_SPEC", DefaultCatalogRefreshSpec),
	}

	if cfg.TechnologyServiceURL == "" {
		p.errs = append(p.errs, errors.New("TECHNOLOGY_SERVICE_URL is required"))
	}
	if raw := getenv("BREAKER_MAX_FAILURES"); raw != "" && cfg.BreakerMaxFailures == 0 {
		p.errs = append(p.errs, errors.New("BREAKER_MAX_FAILURES must be positive"))
	}

	if err := errors.Join(p.errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DatabaseSettings returns the connection settings of the capacity store.
func (c Config) DatabaseSettings() postgres.Settings {
	return postgres.Settings{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

// TechnologyClientConfig returns the settings of the technology service client.
func (c Config) TechnologyClientConfig() technologyclient.Config {
	return technologyclient.Config{
		BaseURL:            c.TechnologyServiceURL,
		Timeout:            c.TechnologyServiceTimeout,
		RPS:                c.TechnologyServiceRPS,
		Burst:              c.TechnologyServiceBurst,
		BreakerMaxFailures: c.BreakerMaxFailures,
		BreakerOpenTimeout: c.BreakerOpenTimeout,
	}
}

// CatalogCacheEnabled reports whether the technology catalog is cached in Redis.
func (c Config) CatalogCacheEnabled() bool {
	return c.RedisAddr != ""
}

// CatalogRefreshTimeout bounds a single catalog refresh run, leaving room for
// one call plus the cache write.
func (c Config) CatalogRefreshTimeout() time.Duration {
	return 2 * c.TechnologyServiceTimeout
}

type parser struct {
	getenv func(string) string
	errs   []error
}

func (p *parser) str(key, fallback string) string {
	if v := p.getenv(key); v != "" {
		return v
	}
	return fallback
}

func (p *parser) int(key string, fallback int) int {
	raw := p.getenv(key)
	if raw == "" {
		return fallback
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		p.errs = append(p.errs, fmt.Errorf("%s: %q is not a non-negative integer", key, raw))
		return fallback
	}
	return v
}

func (p *parser) float(key string, fallback float64) float64 {
	raw := p.getenv(key)
	if raw == "" {
		return fallback
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %q is not a number", key, raw))
		return fallback
	}
	return v
}

func (p *parser) duration(key string, fallback time.Duration) time.Duration {
	raw := p.getenv(key)
	if raw == "" {
		return fallback
	}

	v, err := time.ParseDuration(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return v
}

func (p *parser) level(key string, fallback slog.Level) slog.Level {
	raw := p.getenv(key)
	if raw == "" {
		return fallback
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return level
}
