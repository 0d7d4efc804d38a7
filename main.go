// =============================================================================
// XLSX Header Stamper - Main Entry Point
// =============================================================================
//
// This is the main entry point for the XLSX Header Stamper CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   stamper process       - Match and stamp the target workbooks
//   stamper version       - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core business logic (not for external import)
//   - pkg/           : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/xlsx-header-stamper/cmd"
)

func main() {
	cmd.Execute()
}
