// =============================================================================
// XLSX Header Stamper - Configuration Module
// =============================================================================
//
// This module loads and validates the application configuration from a YAML
// file. Every setting has a default, so running without a config file (or
// with a partial one) is always valid.
//
// CONFIGURATION SECTIONS:
//   roster  - layout of the company roster workbook
//   matcher - fuzzy-match threshold
//   header  - header geometry probing and layout policy
//   output  - output directory and archive/report naming
//   log     - logging level and optional log file
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Header layout policies. The "rows" policy merges each of the five header
// rows separately across the detected table width; the "block" policy merges
// a single region (rows 1-5, fixed column span) and writes all five lines
// into one cell separated by line breaks.
const (
	PolicyRows  = "rows"
	PolicyBlock = "block"
)

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the complete application configuration.
type Config struct {
	Roster  RosterConfig  `yaml:"roster"`
	Matcher MatcherConfig `yaml:"matcher"`
	Header  HeaderConfig  `yaml:"header"`
	Output  OutputConfig  `yaml:"output"`
	Log     LogConfig     `yaml:"log"`
}

// RosterConfig describes the layout of the roster workbook.
type RosterConfig struct {
	// Sheet is the name of the sheet holding the company blocks.
	// Empty means the workbook's first sheet.
	Sheet string `yaml:"sheet"`

	// BlockSize is the number of rows per company block.
	// Default: 6 (five identity rows plus one separator row).
	BlockSize int `yaml:"block_size"`

	// ValueColumn is the 1-based column holding the identity values.
	// Default: 2 (column B).
	ValueColumn int `yaml:"value_column"`
}

// MatcherConfig controls the fuzzy matching of file names to roster keys.
type MatcherConfig struct {
	// Threshold is the minimum similarity ratio (0..1) for a match.
	// Default: 0.3. The default is intentionally permissive: a wrong
	// top-scoring candidate above the threshold is accepted silently.
	Threshold float64 `yaml:"threshold"`
}

// HeaderConfig controls geometry detection and the stamped header layout.
type HeaderConfig struct {
	// Policy selects the header layout: "rows" or "block".
	// Default: "rows".
	Policy string `yaml:"policy"`

	// ProbeRows are the 1-based rows inspected (before any insertion) to
	// find the last populated column of the item table.
	// Default: [6, 7] - the table's label row and its first data row.
	ProbeRows []int `yaml:"probe_rows"`

	// BlockColumns is the fixed column span of the merged region when
	// Policy is "block". Ignored under the "rows" policy.
	// Default: 8 (columns A-H).
	BlockColumns int `yaml:"block_columns"`
}

// OutputConfig controls where and under which names outputs are written.
type OutputConfig struct {
	// Dir is the directory for the archive and the report.
	// Default: "./output".
	Dir string `yaml:"dir"`

	// ArchiveName is the zip file name. The placeholders {uuid} and
	// {timestamp} are expanded at write time.
	// Default: "Planilhas_Cabecalho_Formatado.zip".
	ArchiveName string `yaml:"archive_name"`

	// ReportFile is the match report file name.
	// Default: "match_report.txt".
	ReportFile string `yaml:"report_file"`
}

// LogConfig controls logging.
type LogConfig struct {
	// Level is the minimum log level: "debug", "info", "warn" or "error".
	// Default: "info".
	Level string `yaml:"level"`

	// File is an optional log file path. Empty logs to stderr only.
	File string `yaml:"file"`
}

// =============================================================================
// LOADING
// =============================================================================

// Default returns the configuration with every setting at its default value.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the configuration from a YAML file, applies defaults for unset
// values and validates the result. A missing file is not an error: the
// defaults are returned, so the config file stays optional.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.Roster.BlockSize == 0 {
		cfg.Roster.BlockSize = 6
	}
	if cfg.Roster.ValueColumn == 0 {
		cfg.Roster.ValueColumn = 2
	}
	if cfg.Matcher.Threshold == 0 {
		cfg.Matcher.Threshold = 0.3
	}
	if cfg.Header.Policy == "" {
		cfg.Header.Policy = PolicyRows
	}
	if len(cfg.Header.ProbeRows) == 0 {
		cfg.Header.ProbeRows = []int{6, 7}
	}
	if cfg.Header.BlockColumns == 0 {
		cfg.Header.BlockColumns = 8
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "./output"
	}
	if cfg.Output.ArchiveName == "" {
		cfg.Output.ArchiveName = "Planilhas_Cabecalho_Formatado.zip"
	}
	if cfg.Output.ReportFile == "" {
		cfg.Output.ReportFile = "match_report.txt"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// validate rejects configurations the pipeline cannot run with.
func validate(cfg *Config) error {
	if cfg.Roster.BlockSize < 2 {
		return fmt.Errorf("roster.block_size must be at least 2, got %d", cfg.Roster.BlockSize)
	}
	if cfg.Roster.ValueColumn < 1 {
		return fmt.Errorf("roster.value_column must be at least 1, got %d", cfg.Roster.ValueColumn)
	}
	if cfg.Matcher.Threshold < 0 || cfg.Matcher.Threshold > 1 {
		return fmt.Errorf("matcher.threshold must be between 0 and 1, got %g", cfg.Matcher.Threshold)
	}
	if cfg.Header.Policy != PolicyRows && cfg.Header.Policy != PolicyBlock {
		return fmt.Errorf("header.policy must be %q or %q, got %q", PolicyRows, PolicyBlock, cfg.Header.Policy)
	}
	for _, row := range cfg.Header.ProbeRows {
		if row < 1 {
			return fmt.Errorf("header.probe_rows entries must be 1-based, got %d", row)
		}
	}
	if cfg.Header.BlockColumns < 1 {
		return fmt.Errorf("header.block_columns must be at least 1, got %d", cfg.Header.BlockColumns)
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", cfg.Log.Level)
	}
	return nil
}
