// =============================================================================
// XLSX Header Stamper - Header Stamping
// =============================================================================
//
// This module writes the company identity header onto a target sheet. The
// steps are order-dependent:
//
//   1. Unmerge every pre-existing merged region. Inserting rows into a sheet
//      with overlapping merges can fail, so merges are always cleared first.
//   2. Insert 5 blank rows at the top, shifting the item table down.
//   3. Merge and fill the 5 new rows according to the configured policy.
//
// Two layout policies exist:
//
//   rows  - each header row is merged separately from column A to the
//           detected last column; only the address line word-wraps.
//   block - one merged region (rows 1-5, fixed column span) holding all five
//           lines separated by line breaks, word-wrapped, top-aligned.
//
// =============================================================================

package stamper

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/xlsx-header-stamper/internal/config"
	"github.com/ginjaninja78/xlsx-header-stamper/internal/types"
)

// HeaderRowCount is the number of header lines stamped onto each sheet.
const HeaderRowCount = 5

// Options selects the header layout.
type Options struct {
	// Policy is config.PolicyRows or config.PolicyBlock.
	Policy string

	// BlockColumns is the merged column span under the block policy.
	BlockColumns int
}

// HeaderLines renders the five labeled header lines for a company.
func HeaderLines(rec types.CompanyRecord) [HeaderRowCount]string {
	return [HeaderRowCount]string{
		"RAZÃO SOCIAL: " + rec.LegalName,
		"CNPJ: " + rec.TaxID,
		"ENDEREÇO: " + rec.Address,
		"TELEFONE: " + rec.Phone,
		"E-MAIL: " + rec.Email,
	}
}

// Stamp mutates the sheet in place: clears merges, inserts the header rows
// and writes the identity block sized to lastColumn (rows policy) or to the
// configured fixed span (block policy). lastColumn must come from
// DetectLastColumn on the same sheet, before this call.
func Stamp(f *excelize.File, sheet string, rec types.CompanyRecord, lastColumn int, opts Options) error {
	if err := clearMerges(f, sheet); err != nil {
		return err
	}

	if err := f.InsertRows(sheet, 1, HeaderRowCount); err != nil {
		return fmt.Errorf("failed to insert header rows: %w", err)
	}

	switch opts.Policy {
	case config.PolicyBlock:
		return stampBlock(f, sheet, rec, opts.BlockColumns)
	default:
		return stampRows(f, sheet, rec, lastColumn)
	}
}

// clearMerges unmerges every merged region on the sheet.
func clearMerges(f *excelize.File, sheet string) error {
	merges, err := f.GetMergeCells(sheet)
	if err != nil {
		return fmt.Errorf("failed to list merged cells: %w", err)
	}
	for _, mc := range merges {
		if err := f.UnmergeCell(sheet, mc.GetStartAxis(), mc.GetEndAxis()); err != nil {
			return fmt.Errorf("failed to unmerge %s:%s: %w", mc.GetStartAxis(), mc.GetEndAxis(), err)
		}
	}
	return nil
}

// stampRows merges each header row from column A to lastColumn and writes
// one labeled line per row. All lines are left-aligned and vertically
// centered; the address line additionally word-wraps, since addresses are
// routinely wider than the table.
func stampRows(f *excelize.File, sheet string, rec types.CompanyRecord, lastColumn int) error {
	plain, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	wrapped, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create address style: %w", err)
	}

	for i, line := range HeaderLines(rec) {
		row := i + 1
		start, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		end, err := excelize.CoordinatesToCellName(lastColumn, row)
		if err != nil {
			return err
		}

		if err := f.MergeCell(sheet, start, end); err != nil {
			return fmt.Errorf("failed to merge %s:%s: %w", start, end, err)
		}

		style := plain
		if strings.HasPrefix(line, "ENDEREÇO:") {
			style = wrapped
		}
		if err := f.SetCellStyle(sheet, start, start, style); err != nil {
			return fmt.Errorf("failed to style %s: %w", start, err)
		}
		if err := f.SetCellStr(sheet, start, line); err != nil {
			return fmt.Errorf("failed to write %s: %w", start, err)
		}
	}

	return nil
}

// stampBlock merges a single region spanning the five header rows and a
// fixed column span, then writes all five lines into its top-left cell
// separated by line breaks.
func stampBlock(f *excelize.File, sheet string, rec types.CompanyRecord, columns int) error {
	end, err := excelize.CoordinatesToCellName(columns, HeaderRowCount)
	if err != nil {
		return err
	}

	if err := f.MergeCell(sheet, "A1", end); err != nil {
		return fmt.Errorf("failed to merge A1:%s: %w", end, err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "top", WrapText: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", style); err != nil {
		return fmt.Errorf("failed to style A1: %w", err)
	}

	lines := HeaderLines(rec)
	if err := f.SetCellStr(sheet, "A1", strings.Join(lines[:], "\n")); err != nil {
		return fmt.Errorf("failed to write A1: %w", err)
	}

	return nil
}
