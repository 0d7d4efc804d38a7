// =============================================================================
// XLSX Header Stamper - Roster Extraction
// =============================================================================
//
// This module reads the company roster workbook ("DADOS DAS EMPRESAS.xlsx").
// The roster has no header row: every consecutive block of 6 rows describes
// one company, with the identity values in column B:
//
//   row 0 of the block -> legal name ("Razão Social")
//   row 1 of the block -> tax ID ("CNPJ")
//   row 2 of the block -> address
//   row 3 of the block -> phone
//   row 4 of the block -> e-mail
//
// Blocks are validated independently: a block missing its legal name, or a
// trailing block shorter than 2 rows, is silently dropped, so a roster whose
// row count is not a multiple of the block size still parses.
//
// =============================================================================

package roster

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/xlsx-header-stamper/internal/config"
	"github.com/ginjaninja78/xlsx-header-stamper/internal/normalizer"
	"github.com/ginjaninja78/xlsx-header-stamper/internal/types"
)

// ErrNoRecords is returned when the roster workbook parses but yields no
// valid company blocks. This is fatal for the whole run.
var ErrNoRecords = errors.New("roster contains no valid company blocks")

// =============================================================================
// RECORD EXTRACTION
// =============================================================================

// ExtractRecords partitions the roster rows into consecutive groups of
// blockSize rows and pulls one CompanyRecord out of each group, reading the
// identity fields from valueColumn (1-based). Groups shorter than 2 rows, or
// whose leading cell is blank, are discarded. Values of a short trailing
// group default to the empty string. Cell text is trimmed; nothing else is
// validated.
func ExtractRecords(rows [][]string, blockSize, valueColumn int) []types.CompanyRecord {
	cell := func(block [][]string, row int) string {
		if row >= len(block) {
			return ""
		}
		if valueColumn > len(block[row]) {
			return ""
		}
		return strings.TrimSpace(block[row][valueColumn-1])
	}

	var records []types.CompanyRecord
	for start := 0; start < len(rows); start += blockSize {
		end := start + blockSize
		if end > len(rows) {
			end = len(rows)
		}
		block := rows[start:end]

		if len(block) < 2 {
			continue
		}
		legalName := cell(block, 0)
		if legalName == "" {
			continue
		}

		records = append(records, types.CompanyRecord{
			LegalName: legalName,
			TaxID:     cell(block, 1),
			Address:   cell(block, 2),
			Phone:     cell(block, 3),
			Email:     cell(block, 4),
		})
	}

	return records
}

// =============================================================================
// ROSTER INDEX
// =============================================================================

// Index maps normalized legal names to company records while preserving
// roster order. The order matters: the matcher walks candidates in insertion
// order, which is what makes its tie-break deterministic.
type Index struct {
	keys  []string
	byKey map[string]types.CompanyRecord
}

// NewIndex builds an Index from extracted records. When two legal names
// normalize to the same key the later record overwrites the earlier one,
// keeping the earlier key's position.
func NewIndex(records []types.CompanyRecord) *Index {
	ix := &Index{byKey: make(map[string]types.CompanyRecord, len(records))}
	for _, rec := range records {
		key := normalizer.Normalize(rec.LegalName)
		if _, seen := ix.byKey[key]; !seen {
			ix.keys = append(ix.keys, key)
		}
		ix.byKey[key] = rec
	}
	return ix
}

// Keys returns the normalized keys in insertion order. The returned slice is
// shared; callers must not modify it.
func (ix *Index) Keys() []string { return ix.keys }

// Get returns the record for a normalized key.
func (ix *Index) Get(key string) (types.CompanyRecord, bool) {
	rec, ok := ix.byKey[key]
	return rec, ok
}

// Len returns the number of distinct keys.
func (ix *Index) Len() int { return len(ix.keys) }

// =============================================================================
// WORKBOOK LOADING
// =============================================================================

// Load opens the roster workbook from raw bytes and extracts its records and
// index. An unreadable workbook or an empty result is an error: without a
// usable roster the run cannot proceed.
func Load(data []byte, cfg config.RosterConfig) ([]types.CompanyRecord, *Index, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open roster workbook: %w", err)
	}
	defer f.Close()

	sheet := cfg.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return nil, nil, fmt.Errorf("roster workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read roster sheet %q: %w", sheet, err)
	}

	records := ExtractRecords(rows, cfg.BlockSize, cfg.ValueColumn)
	if len(records) == 0 {
		return nil, nil, ErrNoRecords
	}

	return records, NewIndex(records), nil
}
