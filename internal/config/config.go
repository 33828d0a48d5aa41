// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Brand   string `json:"brand,omitempty"`   // Path to brand snapshot JSON file
	Content string `json:"content,omitempty"` // Path to content text file

	// Evaluation options
	EnforceBrandVoice    *bool  `json:"enforce_brand_voice,omitempty"`
	CheckRestrictedTerms *bool  `json:"check_restricted_terms,omitempty"`
	ValidateMessaging    *bool  `json:"validate_messaging,omitempty"`
	TargetAudience       string `json:"target_audience,omitempty"`
	ContentType          string `json:"content_type,omitempty"`

	// Limits
	MaxConcurrency int    `json:"max_concurrency,omitempty" validate:"omitempty,min=1,max=16"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" validate:"omitempty,min=1,max=300"`
	OutputFormat   string `json:"output_format,omitempty" validate:"omitempty,oneof=text json"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed analysis information
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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// Validate file paths exist (if specified)
	if c.Brand != "" {
		if _, err := os.Stat(c.Brand); os.IsNotExist(err) {
			return fmt.Errorf("config error: brand snapshot file not found: %s", c.Brand)
		}
	}
	if c.Content != "" {
		if _, err := os.Stat(c.Content); os.IsNotExist(err) {
			return fmt.Errorf("config error: content file not found: %s", c.Content)
		}
	}

	return nil
}

// Timeout converts the configured timeout seconds to a duration, zero when unset.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Brand == "" {
		result.Brand = defaults.Brand
	}
	if result.Content == "" {
		result.Content = defaults.Content
	}
	if result.TargetAudience == "" {
		result.TargetAudience = defaults.TargetAudience
	}
	if result.ContentType == "" {
		result.ContentType = defaults.ContentType
	}
	if result.OutputFormat == "" {
		result.OutputFormat = defaults.OutputFormat
	}
	if result.MaxConcurrency == 0 {
		result.MaxConcurrency = defaults.MaxConcurrency
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.EnforceBrandVoice == nil {
		result.EnforceBrandVoice = defaults.EnforceBrandVoice
	}
	if result.CheckRestrictedTerms == nil {
		result.CheckRestrictedTerms = defaults.CheckRestrictedTerms
	}
	if result.ValidateMessaging == nil {
		result.ValidateMessaging = defaults.ValidateMessaging
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
