// =============================================================================
// XLSX Header Stamper - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that the 'process' and 'version' commands attach to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (stamper)
//   ├── processCmd (stamper process)
//   └── versionCmd (stamper version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ginjaninja78/xlsx-header-stamper/internal/config"
)

// cfgFile holds the path to the configuration file.
// Overridden with the --config flag; the file is optional.
var cfgFile string

// verbose forces debug-level logging regardless of the configured level.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "stamper",
	Short: "XLSX Header Stamper - Stamp company identity headers onto spreadsheets",
	Long: `XLSX Header Stamper matches a batch of per-company .xlsx files against a
master company roster and stamps a formatted identity header block (legal
name, CNPJ, address, phone, e-mail) onto the top of each matched file.

The roster workbook has no header row: every consecutive block of 6 rows
describes one company, with the identity values in column B. Target files
are matched to roster entries by fuzzy comparison of their file names
against the company legal names.

Example Usage:
  stamper process --roster "DADOS DAS EMPRESAS.xlsx" --input-dir ./planilhas
  stamper process --roster dados.xlsx acme.xlsx beta.xlsx
  stamper process --roster dados.xlsx --dry-run   # report only, no outputs`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (optional)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// newLogger builds the application logger from the log configuration.
// --verbose wins over the configured level.
func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.Encoding = "console"
	zcfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	zcfg.OutputPaths = []string{"stderr"}
	if cfg.File != "" {
		zcfg.OutputPaths = append(zcfg.OutputPaths, cfg.File)
	}

	return zcfg.Build()
}
