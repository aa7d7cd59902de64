package xlsxsource

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "github.com/ginjaninja78/pos-catalog-sync/pkg/errors"
	"github.com/ginjaninja78/pos-catalog-sync/pkg/logging"
)

var fixedNow = func() time.Time {
	return time.Date(2025, 8, 18, 9, 30, 5, 0, time.UTC)
}

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestLoad(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"PLU Number", "Display Text", "EAN Code", "Retail Price (1st)",
			"Department ID", "Text Area (1)", "Product Type",
			"Price Modifier Multiplier", "Barcode Format ID", "Print Format ID"},
		{"1001", "Bananas", "2.52E+12", "2,50", "10", "per kg", "0", "1", "0", "0"},
		{"0", "No PLU", "0", "2.50", "10", "", "0", "1", "0", "0"},
		{"1002", "Apples", "4006381333931", "1.99", "10", "", "0", "1", "0", "0"},
	})

	loader := New(path, fixedNow, logging.Nop)
	products, skipped, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, 1, skipped)
	require.Len(t, products, 2)
	assert.Equal(t, 1001, products[0].PLU)
	assert.Equal(t, "2.50", products[0].Price)
	assert.Equal(t, int64(2520000000000), products[0].EAN)
	assert.Equal(t, "Apples", products[1].Name)
}

func TestLoadMissingFile(t *testing.T) {
	loader := New(filepath.Join(t.TempDir(), "nope.xlsx"), fixedNow, logging.Nop)
	_, _, err := loader.Load()
	assert.ErrorIs(t, err, apperrors.ErrSourceNotFound)
}
