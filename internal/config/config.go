// Package config loads the YAML configuration file the CLI accepts via
// -config, following the teacher's load-with-fallback-to-defaults idiom.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration document.
type Config struct {
	Normalizer NormalizerConfig `yaml:"normalizer"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
	Watch      WatchConfig      `yaml:"watch"`
}

// NormalizerConfig controls the default target form and whether a run
// also reports the highest form the input already satisfies.
type NormalizerConfig struct {
	DefaultForm       string `yaml:"default_form"`
	ReportHighestForm bool   `yaml:"report_highest_form"`
}

// OutputConfig controls how the resulting tables are rendered.
type OutputConfig struct {
	Format string `yaml:"format"` // "sql" | "json"
}

// LoggingConfig controls the logger's minimum level.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug|info|warn|error
}

// WatchConfig controls -watch's polling cadence.
type WatchConfig struct {
	PollIntervalMs int `yaml:"poll_interval_ms"`
}

// Default returns the configuration used when no -config flag is given
// or the file cannot be loaded.
func Default() *Config {
	return &Config{
		Normalizer: NormalizerConfig{DefaultForm: "3"},
		Output:     OutputConfig{Format: "sql"},
		Logging:    LoggingConfig{Level: "info"},
		Watch:      WatchConfig{PollIntervalMs: 500},
	}
}

// Load reads and parses the YAML config file at path. Load starts from
// Default() and overwrites only the fields the file sets, so fields absent
// from the file keep their Default() value. A file that cannot be read or
// parsed yields an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
