// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonathan/citation-formatter/internal/rendering"
	"github.com/jonathan/citation-formatter/internal/types"
)

// Environment variables read by ApplyEnv
const (
	EnvStyle        = "CITATION_STYLE"
	EnvTemplate     = "CITATION_TEMPLATE"
	EnvOutputFormat = "CITATION_OUTPUT_FORMAT"
	EnvVerbose      = "CITATION_VERBOSE"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	Style        string `json:"style,omitempty"`         // Citation style (only MLA)
	Template     string `json:"template,omitempty"`      // Path to a bibliography template
	OutputFormat string `json:"output_format,omitempty"` // text, latex, markdown or json
	Output       string `json:"output,omitempty"`        // Output file; stdout when empty
	Verbose      bool   `json:"verbose,omitempty"`       // Print detailed debug information
	Check        bool   `json:"check,omitempty"`         // Run citation checks while formatting
}

// Defaults returns the configuration used when nothing else is set
func Defaults() Config {
	return Config{
		Style:        string(types.StyleMLA),
		OutputFormat: string(rendering.FormatText),
	}
}

// LoadConfig loads configuration from a JSON file.
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

// ApplyEnv overrides fields from CITATION_* environment variables.
// lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvStyle); ok && v != "" {
		c.Style = v
	}
	if v, ok := lookup(EnvTemplate); ok && v != "" {
		c.Template = v
	}
	if v, ok := lookup(EnvOutputFormat); ok && v != "" {
		c.OutputFormat = v
	}
	if v, ok := lookup(EnvVerbose); ok && v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config error: %s must be a boolean: %w", EnvVerbose, err)
		}
		c.Verbose = verbose
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Style != "" && !strings.EqualFold(strings.TrimSpace(c.Style), string(types.StyleMLA)) {
		return fmt.Errorf("config error: unsupported style %q (only MLA is supported)", c.Style)
	}

	if _, err := rendering.ParseOutputFormat(c.OutputFormat); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Style == "" {
		result.Style = defaults.Style
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.OutputFormat == "" {
		result.OutputFormat = defaults.OutputFormat
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
