// Package common holds helpers shared by the CLI command actions.
package common

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dtnitsch/fatigue-explorer/models"
	"github.com/dtnitsch/fatigue-explorer/pkg/caching"
	"github.com/dtnitsch/fatigue-explorer/pkg/catalog"
	"github.com/dtnitsch/fatigue-explorer/pkg/db"
	"github.com/dtnitsch/fatigue-explorer/pkg/fetcher"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// NewLogger builds the JSON stderr logger. --quiet wins over the configured
// level.
func NewLogger(c *cli.Context, level string) *slog.Logger {
	logLevel := ParseLevel(level)
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// ParseLevel maps a config log level to slog. Unknown values mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadConfig reads --config and applies any flags set on the command line
// or through their environment variables.
func LoadConfig(c *cli.Context) (models.Config, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return models.Config{}, err
	}

	if c.IsSet("addr") {
		cfg.Addr = c.String("addr")
	}
	if c.IsSet("catalog") {
		cfg.CatalogPath = c.String("catalog")
	}
	if c.IsSet("db") {
		cfg.DBPath = c.String("db")
	}
	if c.IsSet("cache-dir") {
		cfg.CacheDir = c.String("cache-dir")
	}
	if c.IsSet("cache-ttl") {
		cfg.CacheTTL = c.Duration("cache-ttl")
	}
	if c.IsSet("fetch-timeout") {
		cfg.FetchTimeout = c.Duration("fetch-timeout")
	}
	if c.IsSet("max-words") {
		cfg.MaxWords = c.Int("max-words")
	}
	if c.IsSet("min-confidence") {
		cfg.MinConfidence = c.Float64("min-confidence")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return models.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// NewLoader returns a catalog loader. A disk cache is attached only when
// the catalog source is remote.
func NewLoader(cfg models.Config, source string, logger *slog.Logger) (*catalog.Loader, error) {
	loader := &catalog.Loader{
		Fetcher: fetcher.NewFetcher(cfg.FetchTimeout),
		Logger:  logger,
	}

	if catalog.IsRemote(source) && cfg.CacheDir != "" {
		cache, err := caching.NewCache(cfg.CacheDir, cfg.CacheTTL)
		if err != nil {
			return nil, err
		}
		loader.Cache = cache
	}

	return loader, nil
}

// OpenCatalog loads the catalog named by cfg. A database path takes
// precedence over a catalog file or URL.
func OpenCatalog(ctx context.Context, cfg models.Config, logger *slog.Logger) (*catalog.Catalog, error) {
	if cfg.DBPath != "" {
		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()
		return catalog.FromStore(database, logger)
	}

	loader, err := NewLoader(cfg, cfg.CatalogPath, logger)
	if err != nil {
		return nil, err
	}
	return loader.Load(ctx, cfg.CatalogPath)
}

// WriteOutput encodes v as YAML (the default) or indented JSON.
func WriteOutput(w io.Writer, v interface{}, format string) error {
	switch strings.ToLower(format) {
	case "", "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (want yaml or json)", format)
	}
}
