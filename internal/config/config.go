// Package config loads topfive configuration.
//
// Values are layered, later layers winning: built-in defaults, the YAML
// config file, TOPFIVE_* environment variables, then CLI flags (applied by
// the cli package). Sections present in the config file replace the default
// section wholesale.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Defaults.
const (
	DefaultListEndpoint   = "https://appsheettest1.azurewebsites.net/sample/list"
	DefaultDetailEndpoint = "https://appsheettest1.azurewebsites.net/sample/detail"
	DefaultTimeout        = 30 * time.Second
	DefaultBatchSize      = 100
	DefaultLimit          = 5
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "console"

	FormatTable = "table"
	FormatJSON  = "json"

	// MaxBatchSize mirrors the batch package limit.
	MaxBatchSize = 1000
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full topfive configuration.
type Config struct {
	Endpoints EndpointsConfig `yaml:"endpoints"`
	HTTP      HTTPConfig      `yaml:"http"`
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	Report    ReportConfig    `yaml:"report"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// EndpointsConfig holds the two service URLs.
type EndpointsConfig struct {
	List   string `yaml:"list"`
	Detail string `yaml:"detail"`
}

// HTTPConfig configures the HTTP client.
type HTTPConfig struct {
	// Timeout bounds each request.
	Timeout time.Duration `yaml:"timeout"`
}

// PipelineConfig configures pagination.
type PipelineConfig struct {
	// BatchSize is the number of ids processed between progress updates.
	BatchSize int `yaml:"batch_size"`

	// MaxPages caps the pages fetched per run. 0 means no cap.
	MaxPages int `yaml:"max_pages"`
}

// ReportConfig configures the final report.
type ReportConfig struct {
	Limit  int    `yaml:"limit"`
	Format string `yaml:"format"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Endpoints: EndpointsConfig{
			List:   DefaultListEndpoint,
			Detail: DefaultDetailEndpoint,
		},
		HTTP: HTTPConfig{Timeout: DefaultTimeout},
		Pipeline: PipelineConfig{
			BatchSize: DefaultBatchSize,
		},
		Report: ReportConfig{
			Limit:  DefaultLimit,
			Format: FormatTable,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if err := validateEndpoint("endpoints.list", c.Endpoints.List); err != nil {
		return err
	}
	if err := validateEndpoint("endpoints.detail", c.Endpoints.Detail); err != nil {
		return err
	}
	if c.HTTP.Timeout <= 0 {
		return fmt.Errorf("%w: http.timeout must be positive, got %s", ErrInvalidConfig, c.HTTP.Timeout)
	}
	if c.Pipeline.BatchSize < 1 || c.Pipeline.BatchSize > MaxBatchSize {
		return fmt.Errorf("%w: pipeline.batch_size must be between 1 and %d, got %d",
			ErrInvalidConfig, MaxBatchSize, c.Pipeline.BatchSize)
	}
	if c.Pipeline.MaxPages < 0 {
		return fmt.Errorf("%w: pipeline.max_pages cannot be negative, got %d", ErrInvalidConfig, c.Pipeline.MaxPages)
	}
	if c.Report.Limit < 1 {
		return fmt.Errorf("%w: report.limit must be >= 1, got %d", ErrInvalidConfig, c.Report.Limit)
	}
	switch c.Report.Format {
	case FormatTable, FormatJSON:
	default:
		return fmt.Errorf("%w: report.format must be %q or %q, got %q",
			ErrInvalidConfig, FormatTable, FormatJSON, c.Report.Format)
	}
	return c.Logging.Validate()
}

func validateEndpoint(key, raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%w: %s cannot be empty", ErrInvalidConfig, key)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, key, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s must be an absolute http(s) URL, got %q", ErrInvalidConfig, key, raw)
	}
	return nil
}
