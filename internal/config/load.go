package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Environment variables read by Load.
const (
	EnvConfig         = "TOPFIVE_CONFIG"
	EnvListEndpoint   = "TOPFIVE_LIST_ENDPOINT"
	EnvDetailEndpoint = "TOPFIVE_DETAIL_ENDPOINT"
	EnvHTTPTimeout    = "TOPFIVE_HTTP_TIMEOUT"
	EnvLogLevel       = "TOPFIVE_LOG_LEVEL"
	EnvLogFormat      = "TOPFIVE_LOG_FORMAT"
)

// configDirName and configFileName locate the default config file under $HOME.
const (
	configDirName  = ".topfive"
	configFileName = "config.yaml"
)

// LookupEnvFunc matches os.LookupEnv.
type LookupEnvFunc func(key string) (string, bool)

// DefaultConfigPath returns ~/.topfive/config.yaml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// ResolveConfigPath picks the config file to load. It checks, in order:
//  1. flagValue (--config)
//  2. TOPFIVE_CONFIG
//  3. ~/.topfive/config.yaml
//
// explicit is true for the first two sources; a missing explicit file is an error.
//
//nolint:nonamedreturns // Named returns document the two results.
func ResolveConfigPath(flagValue string, lookupEnv LookupEnvFunc) (path string, explicit bool) {
	if flagValue != "" {
		return flagValue, true
	}
	if envPath, ok := lookupEnv(EnvConfig); ok && envPath != "" {
		return envPath, true
	}
	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false
	}
	return defaultPath, false
}

// Load builds a Config from defaults, the resolved config file and the
// environment. It returns the config file path that was read, or "" if none.
// The result is not validated; callers apply flag overrides first.
func Load(flagPath string, lookupEnv LookupEnvFunc) (*Config, string, error) {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}

	cfg := New()

	path, explicit := ResolveConfigPath(flagPath, lookupEnv)
	if path != "" {
		_, statErr := os.Stat(path)
		switch {
		case statErr == nil:
			if err := ShallowMergeYAML(cfg, path); err != nil {
				return nil, "", err
			}
		case errors.Is(statErr, fs.ErrNotExist) && !explicit:
			path = ""
		default:
			return nil, "", fmt.Errorf("config file %s: %w", path, statErr)
		}
	}

	if err := ApplyEnv(cfg, lookupEnv); err != nil {
		return nil, "", err
	}

	return cfg, path, nil
}

// ApplyEnv overrides cfg with any TOPFIVE_* variables that are set and non-empty.
func ApplyEnv(cfg *Config, lookupEnv LookupEnvFunc) error {
	if v, ok := lookupEnv(EnvListEndpoint); ok && v != "" {
		cfg.Endpoints.List = v
	}
	if v, ok := lookupEnv(EnvDetailEndpoint); ok && v != "" {
		cfg.Endpoints.Detail = v
	}
	if v, ok := lookupEnv(EnvHTTPTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvHTTPTimeout, err)
		}
		cfg.HTTP.Timeout = d
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		cfg.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		cfg.Logging.Format = v
	}
	return nil
}
