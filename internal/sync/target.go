// =============================================================================
// POS Catalog Sync - Target Loader
// =============================================================================
//
// ExtractProducts reads the ITEM table of the XML database into the same
// Product shape the CSV loader produces, running every raw field through the
// same normalization rules. This keeps comparisons apples-to-apples no
// matter which side introduced the formatting drift ("2,5" vs "2.50",
// scientific-notation EANs, padded integers).
//
// The extraction fails only when the ITEM table is absent; individual field
// problems default rather than abort.
//
// =============================================================================

package sync

import (
	"github.com/ginjaninja78/pos-catalog-sync/internal/catalog"
	"github.com/ginjaninja78/pos-catalog-sync/internal/normalize"
	"github.com/ginjaninja78/pos-catalog-sync/internal/xmldb"
	apperrors "github.com/ginjaninja78/pos-catalog-sync/pkg/errors"
)

// ExtractProducts builds Product values from the ITEM table of doc.
func ExtractProducts(doc *xmldb.Document) ([]catalog.Product, error) {
	item := doc.Table(catalog.TableItem)
	if item == nil {
		return nil, apperrors.NewSyncError("load-target", "",
			apperrors.ErrTableNotFound)
	}

	products := make([]catalog.Product, 0, len(item.Records))
	for _, rec := range item.Records {
		products = append(products, productFromRecord(rec))
	}
	return products, nil
}

// productFromRecord extracts one Product from a record's field bag.
// Missing fields default; nothing here can fail.
func productFromRecord(rec *xmldb.Record) catalog.Product {
	return catalog.Product{
		PLU:                     normalize.SafeInt(rec.Value(catalog.ColPLU), 0),
		DepartmentID:            normalize.SafeInt(rec.Value(catalog.ColDepartmentID), 0),
		Name:                    rec.Value(catalog.ColDisplayText),
		EAN:                     normalize.SafeInt64(normalize.EAN(rec.Value(catalog.ColEAN)), 0),
		Price:                   normalize.Price(rec.Value(catalog.ColRetailPrice)),
		TextArea1:               rec.Value(catalog.ColTextArea1),
		ProductType:             normalize.SafeInt(rec.Value(catalog.ColProductType), 0),
		PriceModifierMultiplier: normalize.SafeInt(rec.Value(catalog.ColPriceModifierMult), 1),
		BarcodeFormatID:         normalize.SafeInt(rec.Value(catalog.ColBarcodeFormatID), 0),
		PrintFormatID:           normalize.SafeInt(rec.Value(catalog.ColPrintFormatID), 0),
	}
}
