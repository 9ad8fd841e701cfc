package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dtnitsch/fatigue-explorer/models"
	"github.com/dtnitsch/fatigue-explorer/pkg/caching"
	"github.com/dtnitsch/fatigue-explorer/pkg/fetcher"
)

// Store is the subset of the SQLite store a catalog can be read from.
type Store interface {
	LoadComments() ([]models.Comment, error)
	Path() string
}

// Loader reads catalogs from local files or http(s) URLs. Remote bodies are
// cached on disk; when a fetch fails a stale cached copy is used instead.
type Loader struct {
	Fetcher *fetcher.Fetcher
	Cache   *caching.Cache
	Logger  *slog.Logger
}

// IsRemote reports whether source is an http or https URL.
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Decode parses a JSON array of comment records.
func Decode(r io.Reader) ([]models.Comment, error) {
	var comments []models.Comment
	if err := json.NewDecoder(r).Decode(&comments); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

// Load builds a catalog from source.
func (l *Loader) Load(ctx context.Context, source string) (*Catalog, error) {
	data, err := l.Read(ctx, source)
	if err != nil {
		return nil, err
	}

	comments, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	cat := New(comments, source)
	l.report(cat)
	return cat, nil
}

// Read returns the raw catalog bytes for source.
func (l *Loader) Read(ctx context.Context, source string) ([]byte, error) {
	if !IsRemote(source) {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("reading catalog %s: %w", source, err)
		}
		return data, nil
	}
	return l.readRemote(ctx, source)
}

func (l *Loader) readRemote(ctx context.Context, url string) ([]byte, error) {
	logger := l.logger()

	if l.Cache != nil {
		if data, ok := l.Cache.Get(url); ok {
			logger.Debug("catalog cache hit", "url", url)
			return data, nil
		}
	}

	f := l.Fetcher
	if f == nil {
		f = fetcher.NewFetcher(15 * time.Second)
	}

	data, err := f.GetBytes(ctx, url)
	if err != nil {
		if l.Cache != nil {
			if stale, modTime, ok := l.Cache.Stale(url); ok {
				logger.Warn("catalog fetch failed, using stale cache",
					"url", url, "cached_at", modTime, "error", err)
				return stale, nil
			}
		}
		return nil, fmt.Errorf("fetching catalog: %w", err)
	}

	if l.Cache != nil {
		if err := l.Cache.Set(url, data); err != nil {
			logger.Warn("failed to cache catalog", "url", url, "error", err)
		}
	}

	return data, nil
}

// FromStore builds a catalog from the comments held in store.
func FromStore(store Store, logger *slog.Logger) (*Catalog, error) {
	comments, err := store.LoadComments()
	if err != nil {
		return nil, err
	}
	cat := New(comments, store.Path())
	(&Loader{Logger: logger}).report(cat)
	return cat, nil
}

func (l *Loader) report(cat *Catalog) {
	logger := l.logger()
	logger.Info("catalog loaded", "source", cat.Source(), "comments", cat.Len())
	if n := cat.Unclassified(); n > 0 {
		logger.Warn("catalog has records with unknown classification",
			"count", n, "labels", cat.UnknownLabels())
	}
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}
