package query

import (
	"net/http"
	"os"

	"github.com/dtnitsch/fatigue-explorer/internal/common"
	"github.com/dtnitsch/fatigue-explorer/models"
	"github.com/dtnitsch/fatigue-explorer/pkg/query"
	"github.com/urfave/cli/v2"
)

// QueryAction runs one request against the catalog offline and prints the
// response. A non-2xx status exits with code 1 after printing.
func QueryAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	logger := common.NewLogger(c, cfg.LogLevel)

	cat, err := common.OpenCatalog(c.Context, cfg, logger)
	if err != nil {
		return err
	}

	req := models.Request{
		Category: c.String("category"),
		Mode:     c.String("mode"),
	}

	resp := query.NewService(cat, query.Options{
		MaxWords:      cfg.MaxWords,
		MinConfidence: cfg.MinConfidence,
	}).Handle(req)

	if err := common.WriteOutput(os.Stdout, resp, c.String("format")); err != nil {
		return err
	}

	if resp.Status != http.StatusOK {
		return cli.Exit("", 1)
	}
	return nil
}
