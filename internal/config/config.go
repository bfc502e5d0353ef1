// Package config handles configuration loading and validation for the
// passrank CLI.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Version is the current configuration schema version.
const Version = 1

// Config holds the complete CLI configuration.
type Config struct {
	// Version is the configuration schema version.
	Version int `toml:"version" json:"version"`

	// Engine configures the evaluation engine.
	Engine EngineConfig `toml:"engine" json:"engine"`

	// Logging configures structured logging.
	Logging LoggingConfig `toml:"logging" json:"logging"`
}

// EngineConfig holds evaluation engine configuration.
type EngineConfig struct {
	// Locale is the BCP-47 tag for display strings, e.g. "fr-CA".
	// Empty means canonical English.
	Locale string `toml:"locale" json:"locale"`

	// WordlistDir overrides the embedded word lists with .txt files
	// from a directory.
	WordlistDir string `toml:"wordlist_dir" json:"wordlist_dir"`

	// WordlistDB overrides the embedded word lists with a compiled
	// SQLite word database. Takes precedence over WordlistDir.
	WordlistDB string `toml:"wordlist_db" json:"wordlist_db"`

	// Dictionaries overrides the default dictionary name set.
	Dictionaries []string `toml:"dictionaries" json:"dictionaries"`

	// LayoutFiles adds custom keyboard layouts from JSON definitions.
	LayoutFiles []string `toml:"layout_files" json:"layout_files"`

	// UserInputs are strings appended to every evaluation's
	// user-input dictionary (account names, company terms).
	UserInputs []string `toml:"user_inputs" json:"user_inputs"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum level: "debug", "info", "warn", "error".
	Level string `toml:"level" json:"level"`

	// Format is "text" or "json".
	Format string `toml:"format" json:"format"`

	// Output is "stderr", "stdout", or a file path.
	Output string `toml:"output" json:"output"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Version: Version,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// Load reads, overrides, and validates a configuration file. A missing
// path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnvOverrides applies PASSRANK_* environment variables on top of
// the file values.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("PASSRANK_LOCALE"); v != "" {
		c.Engine.Locale = v
	}
	if v := os.Getenv("PASSRANK_WORDLIST_DIR"); v != "" {
		c.Engine.WordlistDir = v
	}
	if v := os.Getenv("PASSRANK_WORDLIST_DB"); v != "" {
		c.Engine.WordlistDB = v
	}
	if v := os.Getenv("PASSRANK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Version < 1 || c.Version > Version {
		errs = append(errs, ValidationError{
			Field:   "version",
			Message: fmt.Sprintf("unsupported version %d (current: %d)", c.Version, Version),
		})
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("unknown level %q", c.Logging.Level),
		})
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("unknown format %q", c.Logging.Format),
		})
	}

	if c.Engine.WordlistDir != "" {
		if info, err := os.Stat(c.Engine.WordlistDir); err != nil || !info.IsDir() {
			errs = append(errs, ValidationError{
				Field:   "engine.wordlist_dir",
				Message: fmt.Sprintf("not a directory: %s", c.Engine.WordlistDir),
			})
		}
	}

	for _, path := range c.Engine.LayoutFiles {
		if _, err := os.Stat(path); err != nil {
			errs = append(errs, ValidationError{
				Field:   "engine.layout_files",
				Message: fmt.Sprintf("missing layout file: %s", path),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
