package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/topfive/internal/config"
	"github.com/rshade/topfive/internal/logging"
)

func TestNew_Defaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, config.DefaultListEndpoint, cfg.Endpoints.List)
	assert.Equal(t, config.DefaultDetailEndpoint, cfg.Endpoints.Detail)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, 100, cfg.Pipeline.BatchSize)
	assert.Equal(t, 0, cfg.Pipeline.MaxPages)
	assert.Equal(t, 5, cfg.Report.Limit)
	assert.Equal(t, config.FormatTable, cfg.Report.Format)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{
			name:    "empty list endpoint",
			mutate:  func(c *config.Config) { c.Endpoints.List = " " },
			wantErr: "endpoints.list cannot be empty",
		},
		{
			name:    "relative detail endpoint",
			mutate:  func(c *config.Config) { c.Endpoints.Detail = "/sample/detail" },
			wantErr: "endpoints.detail must be an absolute http(s) URL",
		},
		{
			name:    "ftp endpoint",
			mutate:  func(c *config.Config) { c.Endpoints.List = "ftp://host/list" },
			wantErr: "endpoints.list must be an absolute http(s) URL",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *config.Config) { c.HTTP.Timeout = 0 },
			wantErr: "http.timeout must be positive",
		},
		{
			name:    "batch size too large",
			mutate:  func(c *config.Config) { c.Pipeline.BatchSize = 5000 },
			wantErr: "pipeline.batch_size must be between 1 and 1000",
		},
		{
			name:    "negative max pages",
			mutate:  func(c *config.Config) { c.Pipeline.MaxPages = -1 },
			wantErr: "pipeline.max_pages cannot be negative",
		},
		{
			name:    "zero limit",
			mutate:  func(c *config.Config) { c.Report.Limit = 0 },
			wantErr: "report.limit must be >= 1",
		},
		{
			name:    "unknown format",
			mutate:  func(c *config.Config) { c.Report.Format = "csv" },
			wantErr: "report.format",
		},
		{
			name:    "bad log level",
			mutate:  func(c *config.Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *config.Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoggingConfig_ToLoggingConfig(t *testing.T) {
	t.Run("stderr", func(t *testing.T) {
		lc := config.LoggingConfig{Level: "debug", Format: "json"}
		got := lc.ToLoggingConfig()
		assert.Equal(t, logging.Config{Level: "debug", Format: "json", Output: logging.OutputStderr}, got)
	})

	t.Run("file", func(t *testing.T) {
		lc := config.LoggingConfig{Level: "info", File: "/tmp/topfive.log"}
		got := lc.ToLoggingConfig()
		assert.Equal(t, logging.OutputFile, got.Output)
		assert.Equal(t, "/tmp/topfive.log", got.File)
	})
}
