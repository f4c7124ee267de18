package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/vytor/algogame/internal/logger"
)

type Config struct {
	Addr             string        `env:"ADDR" envDefault:":8080"`
	DBPath           string        `env:"DB_PATH" envDefault:"file:algogame.db"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"INFO"`
	LogColors        bool          `env:"LOG_COLORS" envDefault:"true"`
	LeaderboardLimit int           `env:"LEADERBOARD_LIMIT" envDefault:"10"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	CookieSecure     bool          `env:"COOKIE_SECURE" envDefault:"false"`
}

// Load reads configuration from a .env file (if present) and environment variables.
func Load() (Config, error) {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, errors.New("ADDR cannot be empty"))
	}
	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, errors.New("DB_PATH cannot be empty"))
	}
	if _, ok := logger.LookupLevel(c.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("LOG_LEVEL %q is not one of DEBUG, INFO, WARN, ERROR", c.LogLevel))
	}
	if c.LeaderboardLimit < 1 || c.LeaderboardLimit > 100 {
		errs = append(errs, fmt.Errorf("LEADERBOARD_LIMIT must be between 1 and 100, got %d", c.LeaderboardLimit))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout))
	}
	return errors.Join(errs...)
}
