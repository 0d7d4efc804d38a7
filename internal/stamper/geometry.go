// =============================================================================
// XLSX Header Stamper - Header Geometry Detection
// =============================================================================
//
// The stamped header must span exactly the width of the workbook's existing
// item table, which varies per file. DetectLastColumn probes the table's
// label row and first data row (rows 6 and 7 in the product's layout) and
// reports the right-most populated column.
//
// Probing two rows is deliberate: some workbooks have gaps in the label row
// that the first data row fills, and vice versa. Detection must run before
// any rows are inserted, since it reads the original row positions.
//
// =============================================================================

package stamper

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DetectLastColumn returns the 1-based index of the right-most column whose
// cell is non-blank (after trimming) in any of the probe rows. Probe rows
// beyond the sheet's extent contribute nothing. The minimum result is 1,
// even on a fully empty sheet.
func DetectLastColumn(f *excelize.File, sheet string, probeRows []int) (int, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	last := 1
	for _, probe := range probeRows {
		if probe < 1 || probe > len(rows) {
			continue
		}
		for i, val := range rows[probe-1] {
			if strings.TrimSpace(val) != "" && i+1 > last {
				last = i + 1
			}
		}
	}

	return last, nil
}
