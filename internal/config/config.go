// Package config loads devpath settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/abhisek/devpath/internal/llm"
)

// Config is the full runtime configuration. Every variable carries the
// DEVPATH_ prefix, e.g. DEVPATH_LOG_LEVEL.
type Config struct {
	// DBPath overrides the default database location when set.
	DBPath string `env:"DB"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	Redis RedisConfig `envPrefix:"REDIS_"`

	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"1h"`

	// CurriculumFile replaces the built-in catalog with paths from a JSON file.
	CurriculumFile string `env:"CURRICULUM_FILE"`

	LLM llm.Config
}

// RedisConfig enables the status cache when Addr is set.
type RedisConfig struct {
	Addr     string        `env:"ADDR"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	TTL      time.Duration `env:"TTL" envDefault:"10m"`
}

// Load reads dotenv files and then parses the process environment. With no
// files given it reads ".env" if present; a named file must exist.
func Load(dotenvFiles ...string) (Config, error) {
	if len(dotenvFiles) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load dotenv: %w", err)
		}
	} else if err := godotenv.Load(dotenvFiles...); err != nil {
		return Config{}, fmt.Errorf("load dotenv: %w", err)
	}
	return parse(env.Options{Prefix: llm.EnvPrefix})
}

// FromMap parses configuration from the given variables only.
func FromMap(vars map[string]string) (Config, error) {
	return parse(env.Options{Prefix: llm.EnvPrefix, Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.SweepInterval <= 0 {
		return Config{}, fmt.Errorf("DEVPATH_SWEEP_INTERVAL must be positive, got %s", cfg.SweepInterval)
	}
	return cfg, nil
}
