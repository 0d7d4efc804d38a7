// =============================================================================
// XLSX Header Stamper - Match Report
// =============================================================================
//
// This module renders the match log as the human-readable report that ships
// next to the output archive. One line per input file, in input order:
//
//   acme.xlsx → ACME LTDA
//   NOT FOUND: mystery.xlsx (normalized: mystery)
//   ERROR OPENING broken.xlsx: zip: not a valid zip file
//
// =============================================================================

package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/ginjaninja78/xlsx-header-stamper/internal/types"
)

// Line renders a single match log entry.
func Line(e types.MatchLogEntry) string {
	switch e.Outcome {
	case types.OutcomeMatched:
		return fmt.Sprintf("%s → %s", e.FileName, e.LegalName)
	case types.OutcomeNotFound:
		return fmt.Sprintf("NOT FOUND: %s (normalized: %s)", e.FileName, e.Key)
	case types.OutcomeOpenError:
		return fmt.Sprintf("ERROR OPENING %s: %v", e.FileName, e.Err)
	default:
		return fmt.Sprintf("UNKNOWN OUTCOME: %s", e.FileName)
	}
}

// Lines renders the full log, one line per entry, preserving order.
func Lines(log []types.MatchLogEntry) []string {
	lines := make([]string, len(log))
	for i, e := range log {
		lines[i] = Line(e)
	}
	return lines
}

// Counts tallies the log by outcome.
func Counts(log []types.MatchLogEntry) (matched, notFound, openErrors int) {
	for _, e := range log {
		switch e.Outcome {
		case types.OutcomeMatched:
			matched++
		case types.OutcomeNotFound:
			notFound++
		case types.OutcomeOpenError:
			openErrors++
		}
	}
	return matched, notFound, openErrors
}

// Render produces the complete report text: all match lines followed by a
// summary block.
func Render(log []types.MatchLogEntry, elapsed time.Duration) string {
	var b strings.Builder

	for _, line := range Lines(log) {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	matched, notFound, openErrors := Counts(log)
	b.WriteString("\n")
	b.WriteString("=== Processing Complete ===\n")
	fmt.Fprintf(&b, "Total files:     %d\n", len(log))
	fmt.Fprintf(&b, "Matched:         %d\n", matched)
	fmt.Fprintf(&b, "Not found:       %d\n", notFound)
	fmt.Fprintf(&b, "Open errors:     %d\n", openErrors)
	fmt.Fprintf(&b, "Time elapsed:    %s\n", elapsed)

	return b.String()
}
