// Package models defines data structures for configuration, catalog records
// and query responses.
package models

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration. Values come from an optional YAML file
// and are then overridden by CLI flags or environment variables.
type Config struct {
	Addr          string        `yaml:"addr"`
	CatalogPath   string        `yaml:"catalog"`
	DBPath        string        `yaml:"db"`
	CacheDir      string        `yaml:"cache_dir"`
	CacheTTL      time.Duration `yaml:"cache_ttl"`
	FetchTimeout  time.Duration `yaml:"fetch_timeout"`
	MaxWords      int           `yaml:"max_words"`
	MinConfidence float64       `yaml:"min_confidence"`
	LogLevel      string        `yaml:"log_level"`
}

// DefaultConfig returns a Config with all default values set.
func DefaultConfig() Config {
	return Config{
		Addr:         ":8080",
		CatalogPath:  "comments.json",
		CacheDir:     ".fatigue-cache",
		CacheTTL:     24 * time.Hour,
		FetchTimeout: 15 * time.Second,
		LogLevel:     "info",
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
// An empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that values are within range.
func (c *Config) Validate() error {
	if c.CatalogPath == "" && c.DBPath == "" {
		return fmt.Errorf("either catalog or db must be set")
	}
	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		return fmt.Errorf("min_confidence %v out of range [0,1]", c.MinConfidence)
	}
	if c.MaxWords < 0 {
		return fmt.Errorf("max_words must not be negative")
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must not be negative")
	}

	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}

	return nil
}
