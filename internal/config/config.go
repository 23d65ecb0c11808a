package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	DBDriver       string   `env:"DB_DRIVER"          envDefault:"postgres"`
	DBHost         string   `env:"DB_HOST"            envDefault:"localhost"`
	DBPort         string   `env:"DB_PORT"            envDefault:"5432"`
	DBUser         string   `env:"DB_USER"            envDefault:"postgres"`
	DBPassword     string   `env:"DB_PASSWORD"        envDefault:"postgres"`
	DBName         string   `env:"DB_NAME"            envDefault:"trivia"`
	DBSSLMode      string   `env:"DB_SSLMODE"         envDefault:"disable"`
	DBPath         string   `env:"DB_PATH"            envDefault:"trivia.db"`
	ServerPort     string   `env:"SERVER_PORT"        envDefault:"5000"`
	GinMode        string   `env:"GIN_MODE"           envDefault:"debug"`
	SeedCategories bool     `env:"SEED_CATEGORIES"    envDefault:"true"`
	AllowOrigins   []string `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	switch cfg.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return &cfg, nil
}

// DSN returns the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}
