// =============================================================================
// XLSX Header Stamper - Process Command
// =============================================================================
//
// This file defines the 'process' command, which runs the whole batch:
//
//   1. Load configuration
//   2. Read the roster workbook and the target files
//   3. Match each target file name to a roster company (fuzzy)
//   4. Stamp the identity header onto each matched workbook
//   5. Write the zip archive and the match report
//
// COMMAND USAGE:
//   stamper process --roster <file> [--input-dir <dir> | <targets>...] [flags]
//
// FLAGS:
//   --roster      : Path to the roster workbook (required)
//   --input-dir   : Directory scanned for target .xlsx files
//   --output-dir  : Override the configured output directory
//   --dry-run     : Match and report only, write no outputs
//
// Per-file problems (no match, unreadable workbook) never abort the run;
// they show up as report lines. Only an unusable roster is fatal.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ginjaninja78/xlsx-header-stamper/internal/config"
	"github.com/ginjaninja78/xlsx-header-stamper/internal/pipeline"
	"github.com/ginjaninja78/xlsx-header-stamper/internal/report"
	"github.com/ginjaninja78/xlsx-header-stamper/internal/types"
	"github.com/ginjaninja78/xlsx-header-stamper/pkg/utils"
)

// rosterPath is the path to the roster workbook (--roster, required).
var rosterPath string

// inputDir is the directory scanned for target files when no explicit
// targets are given.
var inputDir string

// outputDir overrides the configured output directory when set.
var outputDir string

// dryRun matches and reports without writing the archive or the report file.
var dryRun bool

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process [targets...]",
	Short: "Match target workbooks to the roster and stamp their headers",
	Long: `The process command loads the company roster, matches every target .xlsx
file to a roster entry by fuzzy file-name comparison, stamps the matched
company's identity header onto the top of the workbook, and bundles the
stamped files into a single zip archive next to a per-file match report.

Targets can be passed as arguments; without arguments the input directory
is scanned for .xlsx files (the roster itself is skipped).

Files that match no company, or that cannot be opened as workbooks, are
skipped and reported; the run continues with the remaining files.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(args)
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(
		&rosterPath,
		"roster",
		"",
		"Path to the roster workbook (blocks of 6 rows per company)",
	)
	processCmd.MarkFlagRequired("roster")

	processCmd.Flags().StringVar(
		&inputDir,
		"input-dir",
		".",
		"Directory scanned for target .xlsx files when no targets are given",
	)

	processCmd.Flags().StringVar(
		&outputDir,
		"output-dir",
		"",
		"Override the configured output directory",
	)

	processCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Match and report only, without writing the archive or report",
	)
}

// runProcess orchestrates one full run.
func runProcess(targets []string) error {
	startTime := time.Now()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	// =========================================================================
	// STEP 1: READ INPUTS
	// =========================================================================

	rosterData, err := os.ReadFile(rosterPath)
	if err != nil {
		return fmt.Errorf("failed to read roster %s: %w", rosterPath, err)
	}

	if len(targets) == 0 {
		targets, err = utils.DiscoverTargets(inputDir, rosterPath)
		if err != nil {
			return err
		}
	}
	if len(targets) == 0 {
		fmt.Println("No .xlsx files found to process.")
		return nil
	}

	files, err := utils.ReadTargets(targets)
	if err != nil {
		return err
	}

	fmt.Println("=== XLSX Header Stamper ===")
	fmt.Printf("Roster:      %s\n", rosterPath)
	fmt.Printf("Targets:     %d file(s)\n", len(files))

	// =========================================================================
	// STEP 2: RUN THE PIPELINE
	// =========================================================================

	result, err := pipeline.New(cfg, logger).Run(rosterData, files)
	if err != nil {
		return err
	}

	fmt.Printf("\nCompanies detected (%d):\n", len(result.Records))
	for _, rec := range result.Records {
		fmt.Printf("  - %s\n", rec.LegalName)
	}

	fmt.Println("\nMatch log:")
	for _, entry := range result.Log {
		fmt.Printf("  %s %s\n", outcomeMark(entry.Outcome), report.Line(entry))
	}

	// =========================================================================
	// STEP 3: WRITE OUTPUTS
	// =========================================================================

	if !dryRun {
		fm := utils.NewFileManager(cfg.Output.Dir)
		if err := fm.EnsureOutputDir(); err != nil {
			return err
		}

		archiveName := utils.ResolveArchiveName(cfg.Output.ArchiveName, startTime)
		archivePath, err := fm.WriteArchive(archiveName, result.Archive)
		if err != nil {
			return err
		}
		logger.Info("archive written", zap.String("path", archivePath))

		reportPath, err := fm.WriteReport(cfg.Output.ReportFile, report.Render(result.Log, time.Since(startTime)))
		if err != nil {
			return err
		}

		fmt.Printf("\nArchive: %s\n", archivePath)
		fmt.Printf("Report:  %s\n", reportPath)
	}

	// =========================================================================
	// STEP 4: PRINT SUMMARY
	// =========================================================================

	matched, notFound, openErrors := report.Counts(result.Log)
	fmt.Println("\n=== Processing Complete ===")
	fmt.Printf("Total files:     %d\n", len(result.Log))
	fmt.Printf("Matched:         %d\n", matched)
	fmt.Printf("Not found:       %d\n", notFound)
	fmt.Printf("Open errors:     %d\n", openErrors)
	fmt.Printf("Time elapsed:    %s\n", time.Since(startTime))

	return nil
}

// outcomeMark returns the console marker for a match outcome.
func outcomeMark(outcome types.MatchOutcome) string {
	switch outcome {
	case types.OutcomeMatched:
		return "✓"
	case types.OutcomeNotFound:
		return "✗"
	default:
		return "!"
	}
}
