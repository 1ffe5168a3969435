package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads the configuration from a YAML file, applies environment
// overrides and defaults, and validates the result.
func LoadFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Load is LoadFile for an optional path: an empty path or a missing file
// yields the defaults plus environment overrides.
func Load(path string) (*Config, error) {
	if path == "" {
		return fromEnv()
	}

	cfg, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fromEnv()
	}
	return cfg, err
}

// Parse decodes a YAML document into a validated configuration.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	return finalize(&cfg)
}

func fromEnv() (*Config, error) {
	return finalize(&Config{})
}

func finalize(cfg *Config) (*Config, error) {
	cfg.ApplyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}
