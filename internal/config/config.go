package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/qif/internal/categorize"
)

// FileName is the config file inside a project directory.
const FileName = "qif.yaml"

// Config represents the top-level qif.yaml configuration.
type Config struct {
	DefaultAccount string            `yaml:"default_account,omitempty"`
	Import         ImportConfig      `yaml:"import"`
	Output         OutputConfig      `yaml:"output"`
	Logging        LoggingConfig     `yaml:"logging"`
	Rules          []categorize.Rule `yaml:"rules,omitempty"`
}

// ImportConfig controls how bank CSVs are read.
type ImportConfig struct {
	Format        string `yaml:"format"`
	Dir           string `yaml:"dir"`
	MarkProcessed bool   `yaml:"mark_processed"`
}

// OutputConfig controls the QIF file that is written.
type OutputConfig struct {
	Path string `yaml:"path"`
	// ClearedStatus is written to the C line of imported transactions.
	ClearedStatus string `yaml:"cleared_status"`
}

// LoggingConfig selects the log level and handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// Load reads a qif.yaml file from disk. Missing fields keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Import: ImportConfig{
			Format: "chase",
			Dir:    "import",
		},
		Output: OutputConfig{
			Path: "export.qif",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks field values that YAML decoding cannot.
func (c *Config) Validate() error {
	var errs []error
	if c.Import.Format == "" {
		errs = append(errs, errors.New("import.format is required"))
	}
	if c.Output.Path == "" {
		errs = append(errs, errors.New("output.path is required"))
	}
	switch c.Output.ClearedStatus {
	case "", "*", "X", "c", "R":
	default:
		errs = append(errs, fmt.Errorf("output.cleared_status %q must be one of \"\", \"*\", \"c\", \"X\", \"R\"", c.Output.ClearedStatus))
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q must be text or json", c.Logging.Format))
	}
	if err := categorize.Validate(c.Rules); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
