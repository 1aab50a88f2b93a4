package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all server settings. Redis and sqlite are optional: with no
// REDIS_ADDR the server falls back to in-memory storage, and with no
// CATALOG_DB_PATH it serves the seeded in-memory catalog.
type Config struct {
	HTTPPort        string        `env:"HTTP_PORT" envDefault:"8080"`
	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	CatalogDBPath   string        `env:"CATALOG_DB_PATH"`
	MigrationsPath  string        `env:"MIGRATIONS_PATH" envDefault:"migrations"`
	DemoEmail       string        `env:"DEMO_EMAIL" envDefault:"user@example.com"`
	DemoPassword    string        `env:"DEMO_PASSWORD" envDefault:"password123"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"30m"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
