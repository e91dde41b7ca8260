// Package config provides configuration structures and loading logic for the
// blindex CLI.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI defaults: estimation parameters, output format
// and logging. Flags override everything here.
type Config struct {
	Estimation EstimationConfig `yaml:"estimation"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// EstimationConfig holds the default estimation parameters.
type EstimationConfig struct {
	ConfLevel   float64 `yaml:"conf_level"`
	SwitchPoint float64 `yaml:"switch_point"`
}

// OutputConfig holds the default output format ("text" or "json").
type OutputConfig struct {
	Format string `yaml:"format"`
}

// LoggingConfig holds configuration for logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// Load reads configuration from a file and applies environment variable
// overrides. An empty path loads defaults and environment only.
func Load(path string) (*Config, error) {
	cfg := &Config{
		// Defaults
		Estimation: EstimationConfig{
			ConfLevel:   0.95,
			SwitchPoint: 1e-12,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if val := os.Getenv("BLINDEX_CONF_LEVEL"); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("invalid BLINDEX_CONF_LEVEL %q: %w", val, err)
		}
		cfg.Estimation.ConfLevel = f
	}
	if val := os.Getenv("BLINDEX_SWITCH_POINT"); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("invalid BLINDEX_SWITCH_POINT %q: %w", val, err)
		}
		cfg.Estimation.SwitchPoint = f
	}
	if val := os.Getenv("BLINDEX_OUTPUT_FORMAT"); val != "" {
		cfg.Output.Format = val
	}
	if val := os.Getenv("BLINDEX_LOG_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	return nil
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.Estimation.ConfLevel < 0 || c.Estimation.ConfLevel > 1 {
		return fmt.Errorf("estimation.conf_level %v outside [0, 1]", c.Estimation.ConfLevel)
	}
	if c.Estimation.SwitchPoint < 0 || c.Estimation.SwitchPoint > 1 {
		return fmt.Errorf("estimation.switch_point %v outside [0, 1]", c.Estimation.SwitchPoint)
	}
	if c.Output.Format != "text" && c.Output.Format != "json" {
		return fmt.Errorf("output.format %q must be \"text\" or \"json\"", c.Output.Format)
	}
	return nil
}
