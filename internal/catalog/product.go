// =============================================================================
// POS Catalog Sync - Shared Catalog Types
// =============================================================================
//
// This package contains the product model shared across the loaders and the
// sync engine, kept separate to avoid import cycles. It also owns the column
// vocabulary of the scale database: every field name the engine reads or
// writes is a constant here, never a string literal at the point of use.
//
// =============================================================================

package catalog

import "time"

// Table names the engine depends on inside the XML database.
const (
	// TableItem holds one record per product.
	TableItem = "ITEM"

	// TableItemBand holds the per-price-band records linked to ITEM by
	// (PLU, Department ID). Only band "0" is maintained by this engine.
	TableItemBand = "ITEM in Band"
)

// Column names shared by the CSV export and the XML database.
const (
	ColPLU               = "PLU Number"
	ColDisplayText       = "Display Text"
	ColEAN               = "EAN Code"
	ColRetailPrice       = "Retail Price (1st)"
	ColDepartmentID      = "Department ID"
	ColTextArea1         = "Text Area (1)"
	ColProductType       = "Product Type"
	ColPriceModifierMult = "Price Modifier Multiplier"
	ColBarcodeFormatID   = "Barcode Format ID"
	ColPrintFormatID     = "Print Format ID"

	// ColDisplayButtonText duplicates the display text on the scale's
	// keyboard buttons. It is written from the same Name value.
	ColDisplayButtonText = "Display Button Text"

	// ColBandID identifies the price band in the ITEM in Band table.
	ColBandID = "Band ID"

	// Change-tracking columns maintained by the engine.
	ColTimestamp  = "_TS"
	ColChangeFlag = "_CF"
)

// DefaultBandID is the only price band this engine maintains.
const DefaultBandID = "0"

// DirtyFlag is the fixed marker written to the change-flag column when a
// record is created or modified.
const DirtyFlag = "1"

// TimestampLayout is the format of the _TS column.
const TimestampLayout = "2006-01-02T15:04:05"

// Key is the composite match key for a product. A key with a zero PLU or
// department cannot be matched and is excluded from reconciliation.
type Key struct {
	PLU          int
	DepartmentID int
}

// Valid reports whether both key components are non-zero.
func (k Key) Valid() bool {
	return k.PLU != 0 && k.DepartmentID != 0
}

// Product is the transient record shape both loaders produce. Products are
// rebuilt on every run; the durable state is the XML tree itself.
type Product struct {
	PLU                     int
	DepartmentID            int
	Name                    string
	EAN                     int64
	Price                   string // fixed-point decimal string, 2 fractional digits
	TextArea1               string
	ProductType             int
	PriceModifierMultiplier int
	BarcodeFormatID         int
	PrintFormatID           int

	// LastModified is assigned at processing time, never read from the CSV.
	LastModified time.Time
}

// Key returns the composite match key.
func (p Product) Key() Key {
	return Key{PLU: p.PLU, DepartmentID: p.DepartmentID}
}

// validProductTypes is the closed set of scale item types:
// 0 by weight, 1 by count, 2 fixed price, 4 fixed weight, 6 by volume,
// 9 manual weight, 99 negative by count.
var validProductTypes = map[int]struct{}{
	0: {}, 1: {}, 2: {}, 4: {}, 6: {}, 9: {}, 99: {},
}

// ValidProductType reports whether v is a recognized product type.
func ValidProductType(v int) bool {
	_, ok := validProductTypes[v]
	return ok
}
