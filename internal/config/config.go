// Package config provides configuration loading and validation for the CLI.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed config.schema.json
var configSchema []byte

var validate = validator.New()

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags.
type Config struct {
	APIKey   string `json:"api_key,omitempty"`                        // Gemini API key
	Model    string `json:"model,omitempty"`                          // Gemini model name
	CacheDir string `json:"cache_dir,omitempty"`                      // Directory holding cached inputs
	Output   string `json:"output,omitempty"`                         // Destination file for the generated letter
	JobURL   string `json:"job_url,omitempty" validate:"omitempty,url"` // URL to fetch the job description from
	Verbose  bool   `json:"verbose,omitempty"`                        // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file. The file is checked
// against the embedded schema before unmarshalling, so typos in field names
// fail loudly instead of being silently ignored.
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

	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// validateSchema checks the raw document against the embedded JSON schema.
func validateSchema(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(configSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate config JSON: %w", err)
	}
	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return fmt.Errorf("config error: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.CacheDir != "" {
		if info, err := os.Stat(c.CacheDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: cache_dir is not a directory: %s", c.CacheDir)
		}
	}
	return nil
}
