package report

import (
	"fmt"

	"github.com/dtnitsch/fatigue-explorer/internal/common"
	"github.com/dtnitsch/fatigue-explorer/pkg/manifest"
	"github.com/dtnitsch/fatigue-explorer/pkg/storage"
	"github.com/urfave/cli/v2"
)

// ReportAction writes the YAML summary manifest for the configured catalog
// and prints the aggregate top keywords.
func ReportAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	logger := common.NewLogger(c, cfg.LogLevel)

	cat, err := common.OpenCatalog(c.Context, cfg, logger)
	if err != nil {
		return err
	}

	top := c.Int("top")
	m := manifest.Build(cat, top, cfg.MinConfidence)

	s := &storage.Storage{}
	path, err := manifest.Write(m, c.String("out"), c.Bool("force"), s)
	if err != nil {
		return err
	}
	if stats, err := s.GetFileStats(path); err == nil {
		logger.Info("report written", "path", path, "comments", m.TotalComments, "bytes", stats.SizeBytes)
	} else {
		logger.Warn("report written but not readable", "path", path, "error", err)
	}

	fmt.Printf("--- Top %d Words (all categories) ---\n", len(m.AggregateKeywords))
	for i, kw := range m.AggregateKeywords {
		fmt.Printf("%d. %s\n", i+1, kw)
	}
	fmt.Printf("\nSummary manifest saved to: %s\n", path)

	return nil
}
