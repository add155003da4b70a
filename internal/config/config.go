// Package config loads CLI settings from an optional YAML/JSON file and
// DRILLS_* environment variables.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aretw0/drills/internal/logging"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "drills.yaml"

// EnvPrefix prefixes every environment override (e.g. DRILLS_OUTPUT=json).
const EnvPrefix = "DRILLS_"

// Output formats understood by the presentation layer.
var Outputs = []string{"text", "json", "yaml", "markdown"}

// Config holds the CLI settings.
type Config struct {
	LogLevel  string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	LogFormat string `json:"log_format" yaml:"log_format" mapstructure:"log_format"`
	Output    string `json:"output" yaml:"output" mapstructure:"output"`
	Color     bool   `json:"color" yaml:"color" mapstructure:"color"`
	Metrics   bool   `json:"metrics" yaml:"metrics" mapstructure:"metrics"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel:  "off",
		LogFormat: "text",
		Output:    "text",
		Color:     true,
	}
}

// keys lists the settings that can be overridden from the environment.
var keys = []string{"log_level", "log_format", "output", "color", "metrics"}

// Load reads path (YAML unless it ends in .json), applies environment
// overrides and validates the result.
// A missing DefaultFile is not an error when path is empty; a missing explicit path is.
func Load(path string) (Config, error) {
	implicit := path == ""
	if implicit {
		path = DefaultFile
	}

	raw, err := readFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && implicit {
			raw = map[string]any{}
		} else {
			return Config{}, err
		}
	}

	for _, key := range keys {
		if v, ok := os.LookupEnv(EnvPrefix + strings.ToUpper(key)); ok {
			raw[key] = v
		}
	}

	cfg := Default()
	if err := decode(raw, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every setting holds a known value.
func (c Config) Validate() error {
	if !slices.Contains(Outputs, c.Output) {
		return fmt.Errorf("unknown output %q (expected one of %s)", c.Output, strings.Join(Outputs, ", "))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("unknown log format %q (expected text or json)", c.LogFormat)
	}
	if _, _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func readFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	// An empty YAML document leaves the map nil.
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}

func decode(raw map[string]any, out *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
