package config

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func parse(t *testing.T, args ...string) (Config, error) {
	t.Helper()

	var cfg Config
	app := &cli.App{
		Name:  "test",
		Flags: Flags(),
		Action: func(c *cli.Context) error {
			var err error
			cfg, err = FromContext(c)
			return err
		},
	}
	err := app.Run(append([]string{"test"}, args...))
	return cfg, err
}

func TestFromContext_Defaults(t *testing.T) {
	cfg, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "http://10.0.32.112:8200/", cfg.BaseURL)
}

func TestFromContext_Flags(t *testing.T) {
	cfg, err := parse(t,
		"--base-url", "https://files.example.org/",
		"--listen", "127.0.0.1:9000",
		"--catalog", "summaries.json",
		"--log-level", "debug",
		"--log-format", "json",
	)
	require.NoError(t, err)
	assert.Equal(t, Config{
		BaseURL:     "https://files.example.org/",
		ListenAddr:  "127.0.0.1:9000",
		CatalogPath: "summaries.json",
		LogLevel:    "debug",
		LogFormat:   "json",
	}, cfg)
}

func TestFromContext_Env(t *testing.T) {
	t.Setenv("CATALOGPLOT_BASE_URL", "http://env-host:8200/")
	t.Setenv("CATALOGPLOT_LOG_LEVEL", "warn")

	cfg, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, "http://env-host:8200/", cfg.BaseURL)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "no scheme", mutate: func(c *Config) { c.BaseURL = "10.0.32.112:8200/" }, wantErr: true},
		{name: "no host", mutate: func(c *Config) { c.BaseURL = "http:///files/" }, wantErr: true},
		{name: "bad url", mutate: func(c *Config) { c.BaseURL = "http://[::1" }, wantErr: true},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
		{name: "bad format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: true},
		{name: "upper level", mutate: func(c *Config) { c.LogLevel = "ERROR" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.LogFormat = "json"
	cfg.LogLevel = "warn"

	logger := cfg.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"key":"value"`)
}
