package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/urfave/cli/v2"

	"github.com/mikills/tinkerings/catalogplot/catalog"
	"github.com/mikills/tinkerings/catalogplot/chartjs"
	"github.com/mikills/tinkerings/catalogplot/config"
	"github.com/mikills/tinkerings/catalogplot/fileurl"
	"github.com/mikills/tinkerings/catalogplot/mcptools"
	"github.com/mikills/tinkerings/catalogplot/service"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		slog.Error("catalogplot failed", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "catalogplot",
		Usage: "chart catalog attribute summaries with Chart.js",
		Flags: config.Flags(),
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "serve the chart helpers and catalog over http",
				Action: serve,
			},
			{
				Name:   "mcp",
				Usage:  "serve the chart helpers as MCP tools on stdio",
				Action: serveMCP,
			},
			{
				Name:  "render",
				Usage: "write an html page charting numeric summaries",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Value: "catalog.html", Usage: "output file"},
					&cli.StringSliceFlag{Name: "id", Usage: "summary id to chart (default: all numeric)"},
					&cli.BoolFlag{Name: "begin-at-zero", Usage: "start the value axis at zero"},
				},
				Action: render,
			},
			{
				Name:      "url",
				Usage:     "print the absolute url of a catalog file",
				ArgsUsage: "<path>",
				Action:    printURL,
			},
		},
	}
}

type env struct {
	cfg     config.Config
	logger  *slog.Logger
	urls    *fileurl.Builder
	catalog *catalog.Catalog
}

// setup resolves config and logging and loads the catalog when configured.
// Logs go to stderr so the mcp command keeps stdout for the protocol.
func setup(c *cli.Context) (*env, error) {
	cfg, err := config.FromContext(c)
	if err != nil {
		return nil, err
	}
	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	e := &env{cfg: cfg, logger: logger, urls: fileurl.New(cfg.BaseURL)}
	if cfg.CatalogPath != "" {
		cat, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		logger.Info("catalog loaded", "path", cfg.CatalogPath, "summaries", len(cat.List()))
		e.catalog = cat
	}
	return e, nil
}

func serve(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	return service.New(e.catalog, e.urls, e.logger).Run(c.Context, e.cfg.ListenAddr)
}

func serveMCP(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	e.logger.Info("mcp server starting", "base_url", e.cfg.BaseURL)
	return server.ServeStdio(mcptools.New(e.catalog, e.urls))
}

func render(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	if e.catalog == nil {
		return errors.New("render needs --catalog")
	}

	ids := c.StringSlice("id")
	if len(ids) == 0 {
		for _, s := range e.catalog.Numeric() {
			ids = append(ids, s.ID)
		}
	}

	page := chartjs.NewPage("Catalog summaries")
	for _, id := range ids {
		chart, err := e.catalog.Plot(id, c.Bool("begin-at-zero"), e.urls)
		if err != nil {
			return err
		}
		if err := page.Add(chart); err != nil {
			return err
		}
	}

	out := c.String("out")
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := page.Render(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	e.logger.Info("page written", "path", out, "charts", len(ids))
	return nil
}

func printURL(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	if c.NArg() != 1 {
		return cli.Exit("usage: catalogplot url <path>", 2)
	}
	fmt.Fprintln(c.App.Writer, e.urls.URLFromFilePath(c.Args().First()))
	return nil
}
