package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dtnitsch/fatigue-explorer/internal/catalog"
	"github.com/dtnitsch/fatigue-explorer/internal/query"
	"github.com/dtnitsch/fatigue-explorer/internal/report"
	"github.com/dtnitsch/fatigue-explorer/internal/serve"
	"github.com/dtnitsch/fatigue-explorer/pkg/category"
	"github.com/dtnitsch/fatigue-explorer/pkg/help"
	"github.com/dtnitsch/fatigue-explorer/pkg/importer"
	"github.com/dtnitsch/fatigue-explorer/pkg/manifest"
	"github.com/urfave/cli/v2"
)

// sourceFlags select and tune where the catalog is read from.
func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "catalog",
			Usage:   "Catalog JSON file or http(s) URL",
			EnvVars: []string{"FATIGUE_CATALOG"},
		},
		&cli.StringFlag{
			Name:    "db",
			Usage:   "SQLite catalog database (takes precedence over --catalog)",
			EnvVars: []string{"FATIGUE_DB"},
		},
		&cli.StringFlag{
			Name:    "cache-dir",
			Usage:   "Directory for cached remote catalogs",
			EnvVars: []string{"FATIGUE_CACHE_DIR"},
		},
		&cli.DurationFlag{
			Name:  "cache-ttl",
			Usage: "How long a cached remote catalog stays fresh",
		},
		&cli.DurationFlag{
			Name:  "fetch-timeout",
			Usage: "Timeout for downloading a remote catalog",
		},
	}
}

func queryFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "max-words",
			Usage: "Cap the word list per category (0 = unlimited)",
		},
		&cli.Float64Flag{
			Name:  "min-confidence",
			Usage: "Drop comments below this classification confidence",
		},
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "format",
		Value: "yaml",
		Usage: "Output format: yaml or json",
	}
}

func with(groups ...[]cli.Flag) []cli.Flag {
	var out []cli.Flag
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func main() {
	app := &cli.App{
		Name:  "fatigue-explorer",
		Usage: "Serve classified peptide-fatigue comments by category",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "YAML config file",
				EnvVars: []string{"FATIGUE_CONFIG"},
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "Only log errors",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn or error",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the catalog over HTTP",
				Action: serve.ServeAction,
				Flags: with(sourceFlags(), queryFlags(), []cli.Flag{
					&cli.StringFlag{
						Name:    "addr",
						Usage:   "Listen address",
						EnvVars: []string{"FATIGUE_ADDR"},
					},
				}),
			},
			{
				Name:   "query",
				Usage:  "Run one catalog query and print the response",
				Action: query.QueryAction,
				Flags: with(sourceFlags(), queryFlags(), []cli.Flag{
					&cli.StringFlag{Name: "category", Usage: "Category key: " + strings.Join(category.Keys(), ", ")},
					&cli.StringFlag{Name: "mode", Usage: "Set to 'summary' for per-category counts"},
					formatFlag(),
				}),
			},
			{
				Name:  "catalog",
				Usage: "Import, inspect and download catalogs",
				Subcommands: []*cli.Command{
					{
						Name:   "import",
						Usage:  "Clean, de-duplicate and store a classifier export in SQLite",
						Action: catalog.ImportAction,
						Flags: with(sourceFlags(), []cli.Flag{
							&cli.StringFlag{Name: "from", Usage: "Export JSON file or URL (defaults to --catalog)"},
							&cli.Float64Flag{
								Name:  "min-confidence",
								Value: importer.DefaultMinConfidence,
								Usage: "Drop comments below this classification confidence",
							},
							formatFlag(),
						}),
					},
					{
						Name:   "inspect",
						Usage:  "Show counts, confidence and language statistics",
						Action: catalog.InspectAction,
						Flags: with(sourceFlags(), []cli.Flag{
							&cli.BoolFlag{Name: "languages", Value: true, Usage: "Detect comment languages"},
							formatFlag(),
						}),
					},
					{
						Name:   "fetch",
						Usage:  "Download a remote catalog to a local file",
						Action: catalog.FetchAction,
						Flags: with(sourceFlags(), []cli.Flag{
							&cli.StringFlag{Name: "from", Required: true, Usage: "Catalog URL"},
							&cli.StringFlag{Name: "out", Value: "comments.json", Usage: "Destination file"},
						}),
					},
				},
			},
			{
				Name:   "report",
				Usage:  "Write a YAML summary manifest with counts and top keywords",
				Action: report.ReportAction,
				Flags: with(sourceFlags(), queryFlags(), []cli.Flag{
					&cli.StringFlag{Name: "out", Usage: "Manifest path (default reports/summary-<date>.yaml)"},
					&cli.IntFlag{Name: "top", Value: manifest.DefaultTopN, Usage: "Keywords per category"},
					&cli.BoolFlag{Name: "force", Usage: "Replace an existing manifest at --out"},
				}),
			},
			{
				Name:  "quickstart",
				Usage: "Print a YAML quick-start guide",
				Action: func(c *cli.Context) error {
					fmt.Print(help.QuickstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
