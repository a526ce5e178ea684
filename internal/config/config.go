package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Logging LogConfig
	Demo    DemoConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// DemoConfig holds showcase run configuration.
type DemoConfig struct {
	SieveLimit  int `envconfig:"DEMO_SIEVE_LIMIT" default:"100"`
	SampleSize  int `envconfig:"DEMO_SAMPLE_SIZE" default:"50"`
	CollatzSeed int `envconfig:"DEMO_COLLATZ_SEED" default:"27"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Demo: DemoConfig{
			SieveLimit:  100,
			SampleSize:  50,
			CollatzSeed: 27,
		},
	}
}
