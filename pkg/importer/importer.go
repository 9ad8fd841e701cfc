// Package importer turns a classifier export into the catalog stored in
// SQLite: text is cleaned, duplicates dropped and low-confidence records cut.
package importer

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"

	"github.com/dtnitsch/fatigue-explorer/models"
	"github.com/dtnitsch/fatigue-explorer/pkg/catalog"
	"github.com/dtnitsch/fatigue-explorer/pkg/cleaner"
	"github.com/dtnitsch/fatigue-explorer/pkg/db"
)

// DefaultMinConfidence is the classification confidence cut applied on import.
const DefaultMinConfidence = 0.70

// Stats reports what Prepare kept and dropped.
type Stats struct {
	Read                 int `yaml:"read"`
	Kept                 int `yaml:"kept"`
	SkippedDuplicates    int `yaml:"skipped_duplicates"`
	SkippedLowConfidence int `yaml:"skipped_low_confidence"`
}

// Writer is the store an import is written to.
type Writer interface {
	ReplaceComments(meta db.Import, comments []models.Comment) (int64, error)
}

type Importer struct {
	Loader        *catalog.Loader
	Cleaner       *cleaner.Cleaner
	MinConfidence float64
	Logger        *slog.Logger
}

// Prepare cleans text and post titles, keeps the first record for each
// non-empty comment_id and drops records below MinConfidence. Input order
// is preserved.
func (im *Importer) Prepare(comments []models.Comment) ([]models.Comment, Stats) {
	c := im.Cleaner
	if c == nil {
		c = &cleaner.Cleaner{}
	}

	stats := Stats{Read: len(comments)}
	seen := make(map[string]struct{}, len(comments))
	kept := make([]models.Comment, 0, len(comments))

	for _, comment := range comments {
		if comment.CommentID != "" {
			if _, dup := seen[comment.CommentID]; dup {
				stats.SkippedDuplicates++
				continue
			}
			seen[comment.CommentID] = struct{}{}
		}

		if comment.Confidence < im.MinConfidence {
			stats.SkippedLowConfidence++
			continue
		}

		comment.Text = c.Clean(comment.Text)
		comment.PostTitle = c.Clean(comment.PostTitle)
		kept = append(kept, comment)
	}

	stats.Kept = len(kept)
	return kept, stats
}

// Run reads source, prepares its records and replaces the catalog held by w.
func (im *Importer) Run(ctx context.Context, source string, w Writer) (Stats, error) {
	logger := im.Logger
	if logger == nil {
		logger = slog.Default()
	}

	loader := im.Loader
	if loader == nil {
		loader = &catalog.Loader{Logger: logger}
	}

	data, err := loader.Read(ctx, source)
	if err != nil {
		return Stats{}, err
	}

	comments, err := catalog.Decode(bytes.NewReader(data))
	if err != nil {
		return Stats{}, fmt.Errorf("%s: %w", source, err)
	}

	kept, stats := im.Prepare(comments)

	meta := db.Import{
		Source:               source,
		ContentHash:          fmt.Sprintf("%x", sha256.Sum256(data)),
		SkippedDuplicates:    stats.SkippedDuplicates,
		SkippedLowConfidence: stats.SkippedLowConfidence,
		MinConfidence:        im.MinConfidence,
	}

	importID, err := w.ReplaceComments(meta, kept)
	if err != nil {
		return stats, fmt.Errorf("storing catalog: %w", err)
	}

	logger.Info("catalog imported",
		"source", source,
		"import_id", importID,
		"read", stats.Read,
		"kept", stats.Kept,
		"skipped_duplicates", stats.SkippedDuplicates,
		"skipped_low_confidence", stats.SkippedLowConfidence)

	return stats, nil
}
