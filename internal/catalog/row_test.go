package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 8, 18, 9, 30, 5, 0, time.UTC)

func validRow() map[string]string {
	return map[string]string{
		ColPLU:               "1001",
		ColDisplayText:       " Bananas ",
		ColEAN:               "2.52E+12",
		ColRetailPrice:       "€2,50",
		ColDepartmentID:      "10",
		ColTextArea1:         "per kg",
		ColProductType:       "0",
		ColPriceModifierMult: "1",
		ColBarcodeFormatID:   "0",
		ColPrintFormatID:     "0",
	}
}

func TestFromRow(t *testing.T) {
	p, err := FromRow(validRow(), testNow)
	require.NoError(t, err)

	assert.Equal(t, 1001, p.PLU)
	assert.Equal(t, 10, p.DepartmentID)
	assert.Equal(t, "Bananas", p.Name)
	assert.Equal(t, int64(2520000000000), p.EAN)
	assert.Equal(t, "2.50", p.Price)
	assert.Equal(t, 0, p.ProductType)
	assert.Equal(t, testNow, p.LastModified)
	assert.Equal(t, Key{PLU: 1001, DepartmentID: 10}, p.Key())
}

func TestFromRowRejectsMissingPLU(t *testing.T) {
	row := validRow()
	row[ColPLU] = ""
	_, err := FromRow(row, testNow)
	assert.ErrorContains(t, err, "PLU")

	row[ColPLU] = "0"
	_, err = FromRow(row, testNow)
	assert.ErrorContains(t, err, "PLU")
}

func TestFromRowPriceRange(t *testing.T) {
	for raw, wantErr := range map[string]bool{
		"0.00":       false,
		"999999.99":  false,
		"1000000.00": true,
		"-5.00":      true,
	} {
		row := validRow()
		row[ColRetailPrice] = raw
		_, err := FromRow(row, testNow)
		if wantErr {
			assert.Error(t, err, raw)
		} else {
			assert.NoError(t, err, raw)
		}
	}
}

func TestFromRowProductTypeEnum(t *testing.T) {
	accepted := []string{"0", "1", "2", "4", "6", "9", "99"}
	rejected := []string{"3", "5", "-1", "notanumber", "0x2", "2.0"}

	// An absent type is the only case that defaults to 0 (by weight).
	row := validRow()
	row[ColProductType] = ""
	_, err := FromRow(row, testNow)
	assert.NoError(t, err)

	for _, v := range accepted {
		row := validRow()
		row[ColProductType] = v
		_, err := FromRow(row, testNow)
		assert.NoError(t, err, v)
	}
	for _, v := range rejected {
		row := validRow()
		row[ColProductType] = v
		_, err := FromRow(row, testNow)
		assert.Error(t, err, v)
	}
}

func TestFromRowClampsMultiplier(t *testing.T) {
	for _, v := range []string{"0", "101", "-3"} {
		row := validRow()
		row[ColPriceModifierMult] = v
		p, err := FromRow(row, testNow)
		require.NoError(t, err, v)
		assert.Equal(t, 1, p.PriceModifierMultiplier, v)
	}

	row := validRow()
	row[ColPriceModifierMult] = "100"
	p, err := FromRow(row, testNow)
	require.NoError(t, err)
	assert.Equal(t, 100, p.PriceModifierMultiplier)
}

// A zero department does not reject the row; it only makes the key invalid
// so the reconciler excludes it from matching.
func TestFromRowZeroDepartmentKeptButUnmatchable(t *testing.T) {
	row := validRow()
	row[ColDepartmentID] = ""
	p, err := FromRow(row, testNow)
	require.NoError(t, err)
	assert.False(t, p.Key().Valid())
}
