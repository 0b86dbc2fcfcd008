package config

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/mikills/tinkerings/catalogplot/fileurl"
)

// Config is resolved once per command from flags and environment.
type Config struct {
	BaseURL     string
	ListenAddr  string
	CatalogPath string
	LogLevel    string
	LogFormat   string
}

func Default() Config {
	return Config{
		BaseURL:    fileurl.DefaultBaseURL,
		ListenAddr: ":8080",
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Flags returns the global flags; every flag can also be set from a
// CATALOGPLOT_* environment variable.
func Flags() []cli.Flag {
	def := Default()
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "base-url",
			Usage:   "origin prefixed to catalog file paths (baseUrl)",
			Value:   def.BaseURL,
			EnvVars: []string{"CATALOGPLOT_BASE_URL"},
		},
		&cli.StringFlag{
			Name:    "listen",
			Usage:   "http listen address",
			Value:   def.ListenAddr,
			EnvVars: []string{"CATALOGPLOT_LISTEN_ADDR"},
		},
		&cli.StringFlag{
			Name:    "catalog",
			Usage:   "path to a JSON file of attribute summaries",
			EnvVars: []string{"CATALOGPLOT_CATALOG"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "debug, info, warn or error",
			Value:   def.LogLevel,
			EnvVars: []string{"CATALOGPLOT_LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "text or json",
			Value:   def.LogFormat,
			EnvVars: []string{"CATALOGPLOT_LOG_FORMAT"},
		},
	}
}

// FromContext reads the global flags.
func FromContext(c *cli.Context) (Config, error) {
	cfg := Config{
		BaseURL:     c.String("base-url"),
		ListenAddr:  c.String("listen"),
		CatalogPath: c.String("catalog"),
		LogLevel:    c.String("log-level"),
		LogFormat:   c.String("log-format"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base url %q: %w", c.BaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid base url %q: scheme and host required", c.BaseURL)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.LogFormat)
	}
	return nil
}

// NewLogger builds the slog logger described by the config.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
