package config

import (
	"fmt"

	pkgconfig "github.com/frontendshop/fixturegen/pkg/config"
)

// Config holds all configuration for the fixture generator. Every variable
// has a default, so a zero-argument invocation works out of the box.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Catalog generation
	Seed       int64  `env:"CATALOG_SEED" envDefault:"42"`
	OutputPath string `env:"OUTPUT_PATH" envDefault:"data/products.csv"`

	// Optional database seeding
	DatabaseSeedEnabled bool   `env:"DATABASE_SEED_ENABLED" envDefault:"false"`
	PostgresHost        string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort        int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser        string `env:"POSTGRES_USER" envDefault:"ecommerce"`
	PostgresPass        string `env:"POSTGRES_PASSWORD" envDefault:"ecommerce_secret"`
	PostgresDB          string `env:"PRODUCT_DB_NAME" envDefault:"product_db"`
	PostgresSSL         string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`

	// Optional event publishing
	EventsEnabled bool     `env:"EVENTS_ENABLED" envDefault:"false"`
	KafkaBrokers  []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load fixture generator config: %w", err)
	}
	if cfg.OutputPath == "" {
		return nil, fmt.Errorf("OUTPUT_PATH is required")
	}
	if cfg.PostgresPort < 1 || cfg.PostgresPort > 65535 {
		return nil, fmt.Errorf("invalid postgres port: %d", cfg.PostgresPort)
	}
	if cfg.DatabaseSeedEnabled && cfg.PostgresHost == "" {
		return nil, fmt.Errorf("POSTGRES_HOST is required when database seeding is enabled")
	}
	if cfg.EventsEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, fmt.Errorf("KAFKA_BROKERS is required when event publishing is enabled")
	}
	return cfg, nil
}
