// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Input
	File        string `json:"file,omitempty"`                                    // Path to a .txt, .md or .html résumé, or - for stdin
	URL         string `json:"url,omitempty" validate:"omitempty,url"`            // Résumé page to fetch
	TargetJob   string `json:"target_job,omitempty" validate:"omitempty,max=500"` // Target job description
	LexiconPath string `json:"lexicon_path,omitempty"`                            // YAML lexicon override

	// Pipeline
	StageDelayMs  int   `json:"stage_delay_ms,omitempty" validate:"gte=0,lte=60000"` // Simulated per-stage inference latency
	MaxInputBytes int64 `json:"max_input_bytes,omitempty" validate:"gte=0"`          // Upper bound on résumé size

	// Server
	Port int `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`

	// Output
	LogLevel  string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	LogFormat string `json:"log_format,omitempty" validate:"omitempty,oneof=text json"`
	Verbose   bool   `json:"verbose,omitempty"` // Print the step table after a run
	JSON      bool   `json:"json,omitempty"`    // Print the raw result JSON
}

// DefaultConfig returns the values used when neither a config file nor a flag sets a field.
func DefaultConfig() Config {
	return Config{
		StageDelayMs:  500,
		MaxInputBytes: 2 << 20,
		Port:          8080,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks field ranges through struct tags, then the rules that span fields.
// Required inputs are not checked here since those come from CLI flags after merging.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.File != "" && c.URL != "" {
		return fmt.Errorf("config error: 'file' and 'url' are mutually exclusive")
	}

	if c.File != "" && c.File != "-" {
		if _, err := os.Stat(c.File); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.File)
		}
	}
	if c.LexiconPath != "" {
		if _, err := os.Stat(c.LexiconPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: lexicon file not found: %s", c.LexiconPath)
		}
	}

	return nil
}

// StageDelay returns the per-stage delay as a duration.
func (c *Config) StageDelay() time.Duration {
	return time.Duration(c.StageDelayMs) * time.Millisecond
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.File == "" {
		result.File = defaults.File
	}
	if result.URL == "" {
		result.URL = defaults.URL
	}
	if result.TargetJob == "" {
		result.TargetJob = defaults.TargetJob
	}
	if result.LexiconPath == "" {
		result.LexiconPath = defaults.LexiconPath
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	// A zero delay is indistinguishable from unset in JSON, so the default applies
	if result.StageDelayMs == 0 {
		result.StageDelayMs = defaults.StageDelayMs
	}
	if result.MaxInputBytes == 0 {
		result.MaxInputBytes = defaults.MaxInputBytes
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
