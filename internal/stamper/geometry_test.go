package stamper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// sheetWith builds a workbook with the given cells set, addressed by
// (1-based row, 1-based column).
func sheetWith(t *testing.T, cells map[[2]int]string) (*excelize.File, string) {
	t.Helper()

	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })

	sheet := f.GetSheetName(0)
	for coord, val := range cells {
		cell, err := excelize.CoordinatesToCellName(coord[1], coord[0])
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, val))
	}
	return f, sheet
}

func TestDetectLastColumnGapInLabelRow(t *testing.T) {
	// Label row populated in columns 1, 2, 3 and 5 with a gap at 4; the
	// data probe row is empty.
	f, sheet := sheetWith(t, map[[2]int]string{
		{6, 1}: "ITEM", {6, 2}: "DESCRIÇÃO", {6, 3}: "QTDE", {6, 5}: "TOTAL",
	})

	last, err := DetectLastColumn(f, sheet, []int{6, 7})
	require.NoError(t, err)
	assert.Equal(t, 5, last)
}

func TestDetectLastColumnDataRowExtendsFurther(t *testing.T) {
	f, sheet := sheetWith(t, map[[2]int]string{
		{6, 1}: "ITEM", {6, 3}: "QTDE",
		{7, 1}: "1", {7, 7}: "10,00",
	})

	last, err := DetectLastColumn(f, sheet, []int{6, 7})
	require.NoError(t, err)
	assert.Equal(t, 7, last)
}

func TestDetectLastColumnIgnoresBlankCells(t *testing.T) {
	f, sheet := sheetWith(t, map[[2]int]string{
		{6, 2}: "DESCRIÇÃO", {6, 9}: "   ",
	})

	last, err := DetectLastColumn(f, sheet, []int{6, 7})
	require.NoError(t, err)
	assert.Equal(t, 2, last)
}

func TestDetectLastColumnEmptySheetDefaultsToOne(t *testing.T) {
	f, sheet := sheetWith(t, nil)

	last, err := DetectLastColumn(f, sheet, []int{6, 7})
	require.NoError(t, err)
	assert.Equal(t, 1, last)
}

func TestDetectLastColumnProbeBeyondSheetExtent(t *testing.T) {
	f, sheet := sheetWith(t, map[[2]int]string{{1, 3}: "x"})

	last, err := DetectLastColumn(f, sheet, []int{6, 7})
	require.NoError(t, err)
	assert.Equal(t, 1, last)
}

func TestDetectLastColumnUnknownSheet(t *testing.T) {
	f, _ := sheetWith(t, nil)

	_, err := DetectLastColumn(f, "NoSuchSheet", []int{6, 7})
	assert.Error(t, err)
}
