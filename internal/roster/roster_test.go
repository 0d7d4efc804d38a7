package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/xlsx-header-stamper/internal/config"
	"github.com/ginjaninja78/xlsx-header-stamper/internal/types"
)

// block builds the six roster rows for one company, values in column B.
func block(name, taxID, address, phone, email string) [][]string {
	return [][]string{
		{"", name},
		{"", taxID},
		{"", address},
		{"", phone},
		{"", email},
		{"", ""},
	}
}

func TestExtractRecordsCompleteBlocks(t *testing.T) {
	var rows [][]string
	rows = append(rows, block("ACME LTDA", "11.111.111/0001-11", "Rua A, 100", "1111-1111", "a@acme.com")...)
	rows = append(rows, block("Beta Comércio S.A.", "22.222.222/0001-22", "Av. B, 200", "2222-2222", "contato@beta.com")...)

	records := ExtractRecords(rows, 6, 2)
	require.Len(t, records, 2)

	assert.Equal(t, types.CompanyRecord{
		LegalName: "ACME LTDA",
		TaxID:     "11.111.111/0001-11",
		Address:   "Rua A, 100",
		Phone:     "1111-1111",
		Email:     "a@acme.com",
	}, records[0])
	assert.Equal(t, "Beta Comércio S.A.", records[1].LegalName)
}

func TestExtractRecordsBlankLeadingCellDropsBlock(t *testing.T) {
	var rows [][]string
	rows = append(rows, block("ACME LTDA", "11", "Rua A", "111", "a@acme.com")...)
	rows = append(rows, block("", "22", "Av. B", "222", "b@beta.com")...)

	records := ExtractRecords(rows, 6, 2)
	require.Len(t, records, 1)
	assert.Equal(t, "ACME LTDA", records[0].LegalName)
}

func TestExtractRecordsShortTrailingBlock(t *testing.T) {
	var rows [][]string
	rows = append(rows, block("ACME LTDA", "11", "Rua A", "111", "a@acme.com")...)
	// Trailing block with only name and tax ID rows.
	rows = append(rows, []string{"", "Gamma ME"}, []string{"", "33.333.333/0001-33"})

	records := ExtractRecords(rows, 6, 2)
	require.Len(t, records, 2)

	assert.Equal(t, "Gamma ME", records[1].LegalName)
	assert.Equal(t, "33.333.333/0001-33", records[1].TaxID)
	assert.Empty(t, records[1].Address)
	assert.Empty(t, records[1].Phone)
	assert.Empty(t, records[1].Email)
}

func TestExtractRecordsSingleRowTrailingBlockDropped(t *testing.T) {
	var rows [][]string
	rows = append(rows, block("ACME LTDA", "11", "Rua A", "111", "a@acme.com")...)
	rows = append(rows, []string{"", "Orphan Ltda"})

	records := ExtractRecords(rows, 6, 2)
	require.Len(t, records, 1)
}

func TestExtractRecordsTrimsValues(t *testing.T) {
	rows := block("  ACME LTDA  ", " 11 ", " Rua A ", " 111 ", " a@acme.com ")

	records := ExtractRecords(rows, 6, 2)
	require.Len(t, records, 1)
	assert.Equal(t, "ACME LTDA", records[0].LegalName)
	assert.Equal(t, "11", records[0].TaxID)
}

func TestNewIndexOrderAndCollisions(t *testing.T) {
	ix := NewIndex([]types.CompanyRecord{
		{LegalName: "ACME LTDA", TaxID: "11"},
		{LegalName: "Beta S.A.", TaxID: "22"},
		// Normalizes to "acme ltda" as well: later record wins the key.
		{LegalName: "Acmé Ltda.", TaxID: "33"},
	})

	assert.Equal(t, []string{"acme ltda", "beta sa"}, ix.Keys())
	assert.Equal(t, 2, ix.Len())

	rec, ok := ix.Get("acme ltda")
	require.True(t, ok)
	assert.Equal(t, "33", rec.TaxID)
}

// rosterBytes serializes roster rows into an in-memory xlsx workbook.
func rosterBytes(t *testing.T, rows [][]string) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, val := range row {
			if val == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, val))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestLoad(t *testing.T) {
	var rows [][]string
	rows = append(rows, block("ACME LTDA", "11.111.111/0001-11", "Rua A, 100", "1111-1111", "a@acme.com")...)

	records, ix, err := Load(rosterBytes(t, rows), config.Default().Roster)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec, ok := ix.Get("acme ltda")
	require.True(t, ok)
	assert.Equal(t, "ACME LTDA", rec.LegalName)
}

func TestLoadEmptyRoster(t *testing.T) {
	_, _, err := Load(rosterBytes(t, nil), config.Default().Roster)
	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestLoadUnreadableWorkbook(t *testing.T) {
	_, _, err := Load([]byte("not an xlsx file"), config.Default().Roster)
	assert.Error(t, err)
}
