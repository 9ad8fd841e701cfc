package serve

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/dtnitsch/fatigue-explorer/internal/common"
	"github.com/dtnitsch/fatigue-explorer/internal/server"
	"github.com/dtnitsch/fatigue-explorer/pkg/query"
	"github.com/urfave/cli/v2"
)

// ServeAction loads the catalog once and serves it until SIGINT or SIGTERM.
func ServeAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	logger := common.NewLogger(c, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := common.OpenCatalog(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to load catalog", "catalog", cfg.CatalogPath, "db", cfg.DBPath, "error", err)
		return cli.Exit("failed to load catalog: "+err.Error(), 2)
	}

	svc := query.NewService(cat, query.Options{
		MaxWords:      cfg.MaxWords,
		MinConfidence: cfg.MinConfidence,
	})

	return server.New(cfg.Addr, svc, logger).Run(ctx)
}
