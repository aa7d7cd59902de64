// =============================================================================
// POS Catalog Sync - Configuration Module
// =============================================================================
//
// This module loads and validates the YAML configuration for a sync run.
// A single file describes one source/target pair:
//
//   source:
//     path: ./exports/catalog.csv
//     format: csv            # csv | xlsx
//     csv:
//       delimiter: ";"
//       encoding: "latin-1"  # any IANA/WHATWG label: utf-8, windows-1252, ...
//   target:
//     path: ./database/database.xml
//     backup: true
//   logging:
//     level: info            # debug | info | warn | error
//     format: console        # console | json
//
// Defaults are applied after unmarshalling, so a minimal file with just the
// two paths is valid. CLI flags may override the paths after loading.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source format identifiers.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Config holds the full configuration for a sync run.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Target  TargetConfig  `yaml:"target"`
	Logging LoggingConfig `yaml:"logging"`
}

// SourceConfig describes the authoritative catalog export.
type SourceConfig struct {
	// Path is the location of the export file.
	Path string `yaml:"path"`

	// Format is the export format: "csv" (default) or "xlsx".
	Format string `yaml:"format"`

	// CSV holds the parsing settings used when Format is "csv".
	CSV CSVSettings `yaml:"csv"`
}

// CSVSettings contains settings for parsing the CSV export.
type CSVSettings struct {
	// Delimiter separates fields in the export.
	// Default: ";" (the scale software's export delimiter).
	Delimiter string `yaml:"delimiter"`

	// Encoding is the text encoding of the export. Accepts IANA/WHATWG
	// labels such as "utf-8", "latin-1", "iso-8859-1", "windows-1252".
	// Default: "latin-1".
	Encoding string `yaml:"encoding"`
}

// TargetConfig describes the XML database being synchronized.
type TargetConfig struct {
	// Path is the location of the XML database file.
	Path string `yaml:"path"`

	// Backup controls whether the previous database file is renamed to a
	// timestamped backup before the new version is written.
	// Default: true.
	Backup *bool `yaml:"backup"`
}

// LoggingConfig controls log verbosity and output format.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error". Default: "info".
	Level string `yaml:"level"`

	// Format is "console" or "json". Default: "console".
	Format string `yaml:"format"`
}

// BackupEnabled reports whether backups are on (the default when unset).
func (t TargetConfig) BackupEnabled() bool {
	return t.Backup == nil || *t.Backup
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}

	return &cfg, nil
}

// applyDefaults fills in every optional setting left empty.
func (c *Config) applyDefaults() {
	c.Source.Format = strings.ToLower(c.Source.Format)
	if c.Source.Format == "" {
		c.Source.Format = FormatCSV
	}
	if c.Source.CSV.Delimiter == "" {
		c.Source.CSV.Delimiter = ";"
	}
	if c.Source.CSV.Encoding == "" {
		c.Source.CSV.Encoding = "latin-1"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	if c.Source.Path == "" {
		return fmt.Errorf("source.path is required")
	}
	if c.Target.Path == "" {
		return fmt.Errorf("target.path is required")
	}

	switch c.Source.Format {
	case FormatCSV, FormatXLSX:
	default:
		return fmt.Errorf("source.format must be %q or %q, got %q",
			FormatCSV, FormatXLSX, c.Source.Format)
	}

	if len(c.Source.CSV.Delimiter) != 1 {
		return fmt.Errorf("source.csv.delimiter must be a single character, got %q",
			c.Source.CSV.Delimiter)
	}

	return nil
}
