// Package catalog implements the 'catalog' subcommands.
package catalog

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/dtnitsch/fatigue-explorer/internal/common"
	"github.com/dtnitsch/fatigue-explorer/pkg/catalog"
	"github.com/dtnitsch/fatigue-explorer/pkg/cleaner"
	"github.com/dtnitsch/fatigue-explorer/pkg/db"
	"github.com/dtnitsch/fatigue-explorer/pkg/detector"
	"github.com/dtnitsch/fatigue-explorer/pkg/importer"
	"github.com/dtnitsch/fatigue-explorer/pkg/storage"
	"github.com/urfave/cli/v2"
)

// ImportAction loads a classifier export, cleans and filters it, and
// replaces the catalog stored in the SQLite database.
func ImportAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	logger := common.NewLogger(c, cfg.LogLevel)

	from := c.String("from")
	if from == "" {
		from = cfg.CatalogPath
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	loader, err := common.NewLoader(cfg, from, logger)
	if err != nil {
		return err
	}

	im := &importer.Importer{
		Loader:        loader,
		Cleaner:       &cleaner.Cleaner{},
		MinConfidence: c.Float64("min-confidence"),
		Logger:        logger,
	}

	stats, err := im.Run(c.Context, from, database)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Imported %d of %d comments into %s\n", stats.Kept, stats.Read, database.Path())
	return common.WriteOutput(os.Stdout, stats, c.String("format"))
}

// InspectAction prints counts, confidence statistics and the detected
// language mix of the configured catalog.
func InspectAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	logger := common.NewLogger(c, cfg.LogLevel)

	cat, err := common.OpenCatalog(c.Context, cfg, logger)
	if err != nil {
		return err
	}

	var det *detector.Detector
	if c.Bool("languages") {
		det = detector.New()
	}

	report := Inspect(cat, det)

	if cfg.DBPath != "" {
		imp, err := lastImport(cfg.DBPath)
		if err != nil {
			return err
		}
		report.LastImport = imp
	}

	return common.WriteOutput(os.Stdout, report, c.String("format"))
}

func lastImport(path string) (*ImportSummary, error) {
	database, err := db.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	imp, found, err := database.LatestImport()
	if err != nil || !found {
		return nil, err
	}

	return &ImportSummary{
		ImportedAt:           imp.CreatedAt.Format(time.RFC3339),
		Source:               imp.Source,
		ContentHash:          imp.ContentHash,
		SkippedDuplicates:    imp.SkippedDuplicates,
		SkippedLowConfidence: imp.SkippedLowConfidence,
		MinConfidence:        imp.MinConfidence,
	}, nil
}

// FetchAction downloads a remote catalog through the cache, checks that it
// decodes, and saves a local copy.
func FetchAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	logger := common.NewLogger(c, cfg.LogLevel)

	from := c.String("from")
	if !catalog.IsRemote(from) {
		return fmt.Errorf("--from must be an http or https URL, got %q", from)
	}

	loader, err := common.NewLoader(cfg, from, logger)
	if err != nil {
		return err
	}

	data, err := loader.Read(c.Context, from)
	if err != nil {
		return err
	}

	comments, err := catalog.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: %w", from, err)
	}

	out := c.String("out")
	if err := (&storage.Storage{}).SaveFile(out, data); err != nil {
		return err
	}

	logger.Info("catalog saved", "url", from, "path", out, "comments", len(comments))
	fmt.Printf("Saved %d comments to %s\n", len(comments), out)
	return nil
}
