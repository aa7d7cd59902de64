// =============================================================================
// POS Catalog Sync - Source Row Protocol
// =============================================================================
//
// FromRow turns one header-keyed source row (CSV or XLSX, the loaders share
// this path) into a validated Product. The validation order and outcomes:
//
//   1. Price out of [0.00, 999999.99] after normalization -> row rejected.
//   2. PLU resolving to 0                                 -> row rejected.
//   3. Product type non-numeric or outside the fixed enum -> row rejected.
//   4. Price modifier multiplier outside [1, 100]         -> clamped to 1,
//      row kept.
//
// A rejected row returns an error describing the reason; the loaders log it
// and continue. A single malformed row never aborts the load.
//
// =============================================================================

package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ginjaninja78/pos-catalog-sync/internal/normalize"
)

// FromRow builds a Product from a header-keyed source row. now becomes the
// product's LastModified stamp.
func FromRow(row map[string]string, now time.Time) (Product, error) {
	rawPrice := row[ColRetailPrice]
	price := normalize.Price(rawPrice)
	if !normalize.PriceInRange(price) {
		return Product{}, fmt.Errorf("price %q out of range", rawPrice)
	}

	plu := normalize.SafeInt(row[ColPLU], 0)
	if plu == 0 {
		return Product{}, fmt.Errorf("missing or invalid PLU %q", row[ColPLU])
	}

	// A non-numeric product type is rejected outright, never defaulted: a
	// defaulted 0 would silently land inside the enum.
	productType := 0
	if raw := strings.TrimSpace(row[ColProductType]); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Product{}, fmt.Errorf("invalid product type %q", row[ColProductType])
		}
		productType = n
	}
	if !ValidProductType(productType) {
		return Product{}, fmt.Errorf("invalid product type %q", row[ColProductType])
	}

	multiplier := normalize.SafeInt(row[ColPriceModifierMult], 1)
	if multiplier < 1 || multiplier > 100 {
		multiplier = 1
	}

	return Product{
		PLU:                     plu,
		DepartmentID:            normalize.SafeInt(row[ColDepartmentID], 0),
		Name:                    strings.TrimSpace(row[ColDisplayText]),
		EAN:                     normalize.SafeInt64(normalize.EAN(row[ColEAN]), 0),
		Price:                   price,
		TextArea1:               strings.TrimSpace(row[ColTextArea1]),
		ProductType:             productType,
		PriceModifierMultiplier: multiplier,
		BarcodeFormatID:         normalize.SafeInt(row[ColBarcodeFormatID], 0),
		PrintFormatID:           normalize.SafeInt(row[ColPrintFormatID], 0),
		LastModified:            now,
	}, nil
}
