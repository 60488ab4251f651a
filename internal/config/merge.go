package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keyEndpoints = "endpoints"
	keyHTTP      = "http"
	keyPipeline  = "pipeline"
	keyReport    = "report"
	keyLogging   = "logging"
)

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// target. A key present in the file replaces that whole section; absent keys
// leave the target unchanged. Unknown keys are ignored.
func ShallowMergeYAML(target *Config, path string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing config YAML from %s: %w", path, err)
	}

	for key, node := range overlay {
		if err = unmarshalSection(target, key, &node); err != nil {
			return fmt.Errorf("applying config section %q from %s: %w", key, path, err)
		}
	}

	return nil
}

// unmarshalSection decodes node into a fresh zero value of the section named
// key and assigns it to target, so omitted fields do not inherit defaults.
func unmarshalSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyEndpoints:
		var v EndpointsConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Endpoints = v
	case keyHTTP:
		var v HTTPConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.HTTP = v
	case keyPipeline:
		var v PipelineConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Pipeline = v
	case keyReport:
		var v ReportConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Report = v
	case keyLogging:
		var v LoggingConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Logging = v
	}
	return nil
}
