// Package config loads and validates the optional finch.yaml project file.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the finch.yaml configuration. Every field is optional;
// command-line flags take precedence over file values.
type Config struct {
	// Output is the output base name (producing <output>.h and, in split
	// mode, <output>.c). Defaults to the asset directory's name.
	Output string `yaml:"output"`
	// Prefix is the identifier of the generated root value. It is used
	// verbatim and must be a valid C identifier.
	Prefix string `yaml:"prefix"`
	// CFile enables split mode: declarations in the header, data in a
	// companion .c file.
	CFile bool `yaml:"c_file"`
	// Strict aborts compilation when the directory contains entries that
	// are neither regular files nor directories.
	Strict bool `yaml:"strict"`
	// TextExtensions lists file extensions embedded as C string literals
	// instead of byte arrays.
	TextExtensions []string `yaml:"text_extensions"`
	// Logging configures log output.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty logs to stderr.
	Path string `yaml:"path"`
}

// Load reads and parses the configuration file at path. A missing file is
// not an error when optional is true; an empty Config is returned instead.
func Load(path string, optional bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// ApplyDefaults sets default values for configuration fields that are
// missing.
func ApplyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

// Validate checks the configuration for errors.
func Validate(cfg *Config) error {
	switch strings.ToLower(cfg.Logging.Level) {
	case "", "debug", "info", "warn", "error":
		// ok
	default:
		return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", cfg.Logging.Level)
	}

	for _, ext := range cfg.TextExtensions {
		if strings.TrimPrefix(ext, ".") == "" {
			return fmt.Errorf("invalid text extension: %q", ext)
		}
	}

	return nil
}
