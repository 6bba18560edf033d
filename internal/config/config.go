// Package config loads service settings from the environment. A .env file
// in the working directory is read first if present.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from variable names, ARTICLES_ADDR maps to "addr".
const EnvPrefix = "ARTICLES_"

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
	EnvTest        = "test"
)

type Config struct {
	Env             string        `koanf:"env" validate:"required,oneof=production development test"`
	Addr            string        `koanf:"addr" validate:"required"`
	DiagAddr        string        `koanf:"diag_addr" validate:"required"`
	DatabaseURL     string        `koanf:"database_url"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// Production reports whether error details must be hidden from clients.
func (c *Config) Production() bool {
	return c.Env == EnvProduction
}

func Default() *Config {
	return &Config{
		Env:             EnvDevelopment,
		Addr:            ":8000",
		DiagAddr:        ":9999",
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load reads ARTICLES_* variables over the defaults and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env variables: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
