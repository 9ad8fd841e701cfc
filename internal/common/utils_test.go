package common

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dtnitsch/fatigue-explorer/models"
	"github.com/urfave/cli/v2"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"info":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestWriteOutput(t *testing.T) {
	v := models.Response{Status: 200, Body: models.ErrorResponse{Error: "x"}}

	var buf bytes.Buffer
	if err := WriteOutput(&buf, v, "yaml"); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if !strings.Contains(buf.String(), "status: 200") {
		t.Errorf("yaml output = %q", buf.String())
	}

	buf.Reset()
	if err := WriteOutput(&buf, v, "json"); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !strings.Contains(buf.String(), `"status": 200`) || !strings.Contains(buf.String(), `"error": "x"`) {
		t.Errorf("json output = %q", buf.String())
	}

	if err := WriteOutput(&buf, v, "xml"); err == nil {
		t.Error("WriteOutput(xml) error = nil, want error")
	}
}

// runWithFlags runs a one-command app and hands the parsed context to fn.
func runWithFlags(t *testing.T, args []string, fn func(c *cli.Context) error) {
	t.Helper()
	app := &cli.App{
		Name: "test",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config"},
			&cli.BoolFlag{Name: "quiet"},
			&cli.StringFlag{Name: "log-level"},
		},
		Commands: []*cli.Command{{
			Name: "run",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "catalog"},
				&cli.StringFlag{Name: "db"},
				&cli.StringFlag{Name: "addr"},
				&cli.DurationFlag{Name: "cache-ttl"},
				&cli.IntFlag{Name: "max-words"},
				&cli.Float64Flag{Name: "min-confidence"},
			},
			Action: fn,
		}},
	}
	if err := app.Run(append([]string{"test"}, args...)); err != nil {
		t.Fatalf("app.Run() error = %v", err)
	}
}

func TestLoadConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: \":9000\"\nmax_words: 10\ncache_ttl: 1h\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var cfg models.Config
	runWithFlags(t, []string{"--config", path, "run", "--max-words", "30", "--min-confidence", "0.7"}, func(c *cli.Context) error {
		var err error
		cfg, err = LoadConfig(c)
		return err
	})

	if cfg.Addr != ":9000" {
		t.Errorf("Addr = %q, want value from file", cfg.Addr)
	}
	if cfg.MaxWords != 30 {
		t.Errorf("MaxWords = %d, want flag value 30", cfg.MaxWords)
	}
	if cfg.MinConfidence != 0.7 {
		t.Errorf("MinConfidence = %v, want 0.7", cfg.MinConfidence)
	}
	if cfg.CacheTTL != time.Hour {
		t.Errorf("CacheTTL = %v, want 1h", cfg.CacheTTL)
	}
	if cfg.CatalogPath != "comments.json" {
		t.Errorf("CatalogPath = %q, want default", cfg.CatalogPath)
	}
}

func TestLoadConfigRejectsInvalidFlags(t *testing.T) {
	var err error
	runWithFlags(t, []string{"run", "--min-confidence", "1.5"}, func(c *cli.Context) error {
		_, err = LoadConfig(c)
		return nil
	})
	if err == nil {
		t.Error("LoadConfig() error = nil, want range error")
	}
}

func TestOpenCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.json")
	body := `[{"comment_text_cleaned": "tired", "fatigue_classification": "irrelevant or other topic", "classification_confidence": 0.9}]`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := models.DefaultConfig()
	cfg.CatalogPath = path
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cat, err := OpenCatalog(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("OpenCatalog() error = %v", err)
	}
	if cat.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cat.Len())
	}
}

func TestNewLoaderAttachesCacheOnlyForRemote(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.CacheDir = filepath.Join(t.TempDir(), "cache")

	local, err := NewLoader(cfg, "comments.json", nil)
	if err != nil {
		t.Fatal(err)
	}
	if local.Cache != nil {
		t.Error("local source got a cache")
	}

	remote, err := NewLoader(cfg, "https://example.com/c.json", nil)
	if err != nil {
		t.Fatal(err)
	}
	if remote.Cache == nil {
		t.Error("remote source has no cache")
	}
}
