package xlsx_test

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/UNO-SOFT/paginate"
	"github.com/UNO-SOFT/paginate/xlsx"
)

func writeWorkbook(t *testing.T) string {
	t.Helper()
	xl := excelize.NewFile()
	const sheet = "Sheet1"
	for i, h := range []string{"ID", "BrandSupplierDescription", "CCN", "Rate"} {
		axis, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		require.NoError(t, xl.SetCellStr(sheet, axis, h))
	}
	bold, err := xl.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Family: "Arial"}})
	require.NoError(t, err)
	require.NoError(t, xl.SetCellStyle(sheet, "A1", "D1", bold))
	for r := 2; r <= 10; r++ {
		require.NoError(t, xl.SetCellInt(sheet, "A"+strconv.Itoa(r), int64(r)))
		require.NoError(t, xl.SetCellStr(sheet, "B"+strconv.Itoa(r), "Acme Ltd"))
		require.NoError(t, xl.SetCellInt(sheet, "C"+strconv.Itoa(r), 4711))
		require.NoError(t, xl.SetCellFloat(sheet, "D"+strconv.Itoa(r), 12.345, -1, 64))
	}
	require.NoError(t, xl.SetSheetDimension(sheet, "A1:D10"))
	require.NoError(t, xl.InsertPageBreak(sheet, "A6"))
	fn := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, xl.SaveAs(fn))
	require.NoError(t, xl.Close())
	return fn
}

func TestOpen(t *testing.T) {
	src, err := xlsx.Open(writeWorkbook(t))
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, []int{5}, src.BreakRows())
	dim, err := src.Dimension()
	require.NoError(t, err)
	assert.Equal(t, "A1:D10", dim)

	v, err := src.CellValue(1, 2)
	require.NoError(t, err)
	assert.Equal(t, "BrandSupplierDescription", v)
	v, err = src.CellValue(2, 4)
	require.NoError(t, err)
	assert.Equal(t, 12.345, v)
	v, err = src.CellValue(99, 1)
	require.NoError(t, err)
	assert.Nil(t, v)

	f, err := src.CellFont(1, 1)
	require.NoError(t, err)
	assert.True(t, f.Bold)
}

func TestOpenResolvesPages(t *testing.T) {
	src, err := xlsx.Open(writeWorkbook(t))
	require.NoError(t, err)
	defer src.Close()

	snap, err := paginate.NewSnapshot(src)
	require.NoError(t, err)
	pages, err := paginate.ResolvePages(snap)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "A2:D5", pages[0].Ref())
	assert.Equal(t, "A6:D10", pages[1].Ref())
}

func TestOpenMissing(t *testing.T) {
	_, err := xlsx.Open(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
}
