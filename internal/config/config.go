// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs (mutually exclusive)
	Input string `json:"input,omitempty"` // Path to text/markdown source file
	PDF   string `json:"pdf,omitempty"`   // Path to PDF source file

	// Outputs
	Output    string `json:"output,omitempty"`     // Path of the .pptx to write
	AssetsDir string `json:"assets_dir,omitempty"` // Directory for per-slide image assets

	// Models
	APIKey     string `json:"api_key,omitempty"`     // Gemini API key
	TextModel  string `json:"text_model,omitempty"`  // Planning model override
	ImageModel string `json:"image_model,omitempty"` // Image model override

	// Theme overrides
	PrimaryColor   string `json:"primary_color,omitempty" validate:"omitempty,hexcolor"`
	SecondaryColor string `json:"secondary_color,omitempty" validate:"omitempty,hexcolor"`
	Font           string `json:"font,omitempty"`

	// Behavior
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
}

// DefaultOutput and DefaultAssetsDir apply when neither flags nor the
// config file set them.
const (
	DefaultOutput    = "presentation.pptx"
	DefaultAssetsDir = "assets"
)

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Input != "" && c.PDF != "" {
		return fmt.Errorf("config error: 'input' and 'pdf' are mutually exclusive")
	}

	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}
	if c.PDF != "" {
		if _, err := os.Stat(c.PDF); os.IsNotExist(err) {
			return fmt.Errorf("config error: pdf file not found: %s", c.PDF)
		}
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: invalid theme color: %w", err)
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.PDF == "" {
		result.PDF = defaults.PDF
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.AssetsDir == "" {
		result.AssetsDir = defaults.AssetsDir
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.TextModel == "" {
		result.TextModel = defaults.TextModel
	}
	if result.ImageModel == "" {
		result.ImageModel = defaults.ImageModel
	}
	if result.PrimaryColor == "" {
		result.PrimaryColor = defaults.PrimaryColor
	}
	if result.SecondaryColor == "" {
		result.SecondaryColor = defaults.SecondaryColor
	}
	if result.Font == "" {
		result.Font = defaults.Font
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.Output == "" {
		result.Output = DefaultOutput
	}
	if result.AssetsDir == "" {
		result.AssetsDir = DefaultAssetsDir
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
