package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"sendsafe/internal/core/domain/services"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store drivers accepted in STORE_DRIVER.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
	StoreDriverRedis    = "redis"
	StoreDriverMemory   = "memory"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	StoreDriver string `env:"STORE_DRIVER" envDefault:"sqlite"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"sendsafe"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	SQLitePath string `env:"SQLITE_PATH" envDefault:"sendsafe.db"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	HandOffBaseURL   string `env:"HANDOFF_BASE_URL" envDefault:"https://wa.me"`
	HandOffRecipient string `env:"HANDOFF_RECIPIENT" envDefault:"2349154607762"`

	InstantPrice     string `env:"INSTANT_PRICE" envDefault:"NGN 6,500"`
	InstantDuration  string `env:"INSTANT_DURATION" envDefault:"1-2 hours"`
	StandardPrice    string `env:"STANDARD_PRICE" envDefault:"NGN 3,500"`
	StandardDuration string `env:"STANDARD_DURATION" envDefault:"24 hours"`

	PendingFlushSchedule string `env:"PENDING_FLUSH_SCHEDULE" envDefault:"*/30 * * * * *"`
}

// LoadConfig reads envFile into the process environment when it exists and
// parses the configuration. Variables already set win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the composition root cannot act on.
func (c Config) Validate() error {
	switch c.StoreDriver {
	case StoreDriverPostgres, StoreDriverSQLite, StoreDriverRedis, StoreDriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.HandOffBaseURL == "" || c.HandOffRecipient == "" {
		return errors.New("HANDOFF_BASE_URL and HANDOFF_RECIPIENT are required")
	}
	return nil
}

// Tariffs returns the configured price table.
func (c Config) Tariffs() services.Tariffs {
	return services.Tariffs{
		Instant:  services.Tariff{Price: c.InstantPrice, Duration: c.InstantDuration},
		Standard: services.Tariff{Price: c.StandardPrice, Duration: c.StandardDuration},
	}
}

// HandOffTarget returns the configured dispatcher address.
func (c Config) HandOffTarget() services.HandOffTarget {
	return services.HandOffTarget{BaseURL: c.HandOffBaseURL, Recipient: c.HandOffRecipient}
}
