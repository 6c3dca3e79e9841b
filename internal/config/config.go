// Package config loads process configuration from the environment and
// optional .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/neomorfeo/tenantadmin/internal/adapter/otel"
)

// DefaultEnvFiles are read, when present, before the environment is parsed.
var DefaultEnvFiles = []string{".env", ".env.local"}

// Config is the process configuration.
type Config struct {
	Port         string     `env:"PORT" envDefault:"8080"`
	DatabasePath string     `env:"DATABASE_PATH" envDefault:"tenantadmin.db"`
	LogLevel     slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	OTel         otel.Config
}

// Load reads the given env files that exist, then parses Config from the
// environment. Variables already set in the environment win over the files.
func Load(envFiles ...string) (Config, error) {
	if _, err := loadEnvFiles(envFiles); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

func loadEnvFiles(files []string) (int, error) {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		_, err := os.Stat(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("checking env file %s: %w", f, err)
		}
		existing = append(existing, f)
	}

	if len(existing) == 0 {
		return 0, nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return 0, fmt.Errorf("loading env files: %w", err)
	}
	return len(existing), nil
}
