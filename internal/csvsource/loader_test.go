package csvsource

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/pos-catalog-sync/internal/config"
	apperrors "github.com/ginjaninja78/pos-catalog-sync/pkg/errors"
	"github.com/ginjaninja78/pos-catalog-sync/pkg/logging"
)

var fixedNow = func() time.Time {
	return time.Date(2025, 8, 18, 9, 30, 5, 0, time.UTC)
}

const header = "PLU Number;Display Text;EAN Code;Retail Price (1st);Department ID;" +
	"Text Area (1);Product Type;Price Modifier Multiplier;Barcode Format ID;Print Format ID\n"

func writeCSV(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func settings() config.CSVSettings {
	return config.CSVSettings{Delimiter: ";", Encoding: "utf-8"}
}

func TestLoadValidRows(t *testing.T) {
	csv := header +
		"1001;Bananas;2.52E+12;2,50;10;per kg;0;1;0;0\n" +
		"1002;Apples;4006381333931;1.99;10;per kg;0;1;0;0\n"

	loader := New(writeCSV(t, []byte(csv)), settings(), fixedNow, logging.Nop)
	products, skipped, err := loader.Load()
	require.NoError(t, err)

	assert.Zero(t, skipped)
	require.Len(t, products, 2)
	assert.Equal(t, 1001, products[0].PLU)
	assert.Equal(t, "2.50", products[0].Price)
	assert.Equal(t, int64(2520000000000), products[0].EAN)
	assert.Equal(t, "Apples", products[1].Name)
	assert.Equal(t, fixedNow(), products[0].LastModified)
}

func TestLoadSkipsMalformedRows(t *testing.T) {
	csv := header +
		"1001;Bananas;0;2.50;10;;0;1;0;0\n" + // ok
		"0;No PLU;0;2.50;10;;0;1;0;0\n" + // missing PLU
		"1003;Bad Type;0;2.50;10;;5;1;0;0\n" + // invalid product type
		"1004;Too Expensive;0;1000000.00;10;;0;1;0;0\n" + // price out of range
		"1005;Clamped;0;2.50;10;;0;500;1;2\n" // multiplier clamped, kept

	loader := New(writeCSV(t, []byte(csv)), settings(), fixedNow, logging.Nop)
	products, skipped, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, 3, skipped)
	require.Len(t, products, 2)
	assert.Equal(t, 1001, products[0].PLU)
	assert.Equal(t, 1005, products[1].PLU)
	assert.Equal(t, 1, products[1].PriceModifierMultiplier)
}

func TestLoadLatin1Encoding(t *testing.T) {
	// "Café" with an ISO-8859-1 encoded é (0xE9).
	row := append([]byte("1001;Caf"), 0xE9)
	row = append(row, []byte(";0;2.50;10;;0;1;0;0\n")...)
	content := append([]byte(header), row...)

	cfg := config.CSVSettings{Delimiter: ";", Encoding: "latin-1"}
	loader := New(writeCSV(t, content), cfg, fixedNow, logging.Nop)
	products, _, err := loader.Load()
	require.NoError(t, err)

	require.Len(t, products, 1)
	assert.Equal(t, "Café", products[0].Name)
}

// A loader built with zero-value settings still parses the default
// semicolon-delimited export.
func TestLoadZeroValueSettings(t *testing.T) {
	csv := header + "1001;Bananas;0;2.50;10;;0;1;0;0\n"
	loader := New(writeCSV(t, []byte(csv)), config.CSVSettings{}, fixedNow, logging.Nop)
	products, _, err := loader.Load()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Bananas", products[0].Name)
}

func TestLoadUnknownEncoding(t *testing.T) {
	cfg := config.CSVSettings{Delimiter: ";", Encoding: "klingon-8"}
	loader := New(writeCSV(t, []byte(header)), cfg, fixedNow, logging.Nop)
	_, _, err := loader.Load()
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	loader := New(filepath.Join(t.TempDir(), "nope.csv"), settings(), fixedNow, logging.Nop)
	_, _, err := loader.Load()
	assert.ErrorIs(t, err, apperrors.ErrSourceNotFound)
}
