// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/dotpep/calc-tax-salary-kz/internal/errors"
	"github.com/dotpep/calc-tax-salary-kz/internal/logging"
)

// Config is the main application configuration.
// Tax rates are statutory constants and deliberately absent here.
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the report format used when --format is not given
	DefaultFormat string `json:"default_format"`

	// NoColor disables ANSI colors in the text report
	NoColor bool `json:"no_color"`

	// ShowSteps prints each formula with its operands
	ShowSteps bool `json:"show_steps"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Output: OutputConfig{
			DefaultFormat: "text",
			NoColor:       false,
			ShowSteps:     true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath is where `config init` writes and where the CLI looks when
// --config is not given: $HOME/.calc-tax-salary-kz.json
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".calc-tax-salary-kz.json")
}

// Load loads configuration from a file. Files ending in .hcl are read as
// HCL, everything else as JSON. The file must exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Config("config file not found", err).WithContext("path", path)
		}
		return nil, errors.Config("failed to read config", err).WithContext("path", path)
	}

	config := Default()
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		if err := decodeHCL(path, data, config); err != nil {
			return nil, errors.Config("failed to parse HCL config", err).WithContext("path", path)
		}
		return config, nil
	}

	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.Config("failed to parse JSON config", err).WithContext("path", path)
	}
	return config, nil
}

// Save saves configuration to a file as JSON
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// hclFile mirrors Config with optional attributes so that anything left out
// of the file keeps its default.
type hclFile struct {
	Version *string     `hcl:"version,optional"`
	Output  *hclOutput  `hcl:"output,block"`
	Logging *hclLogging `hcl:"logging,block"`
}

type hclOutput struct {
	DefaultFormat *string `hcl:"default_format,optional"`
	NoColor       *bool   `hcl:"no_color,optional"`
	ShowSteps     *bool   `hcl:"show_steps,optional"`
}

type hclLogging struct {
	Level       *string `hcl:"level,optional"`
	Format      *string `hcl:"format,optional"`
	Output      *string `hcl:"output,optional"`
	Development *bool   `hcl:"development,optional"`
}

func decodeHCL(path string, data []byte, config *Config) error {
	// hclsimple picks the syntax from a lower-case suffix
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".hcl"

	var file hclFile
	if err := hclsimple.Decode(name, data, nil, &file); err != nil {
		return err
	}

	setString(&config.Version, file.Version)
	if o := file.Output; o != nil {
		setString(&config.Output.DefaultFormat, o.DefaultFormat)
		setBool(&config.Output.NoColor, o.NoColor)
		setBool(&config.Output.ShowSteps, o.ShowSteps)
	}
	if l := file.Logging; l != nil {
		setString(&config.Logging.Level, l.Level)
		setString(&config.Logging.Format, l.Format)
		setString(&config.Logging.Output, l.Output)
		setBool(&config.Logging.Development, l.Development)
	}
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
