// =============================================================================
// POS Catalog Sync - Default Field Template
// =============================================================================
//
// Every ITEM record the engine creates carries the scale software's full
// field set, not just the handful of columns the export provides: a record
// with missing columns renders incompletely on the scale UI. The template
// below is pure configuration data in the exact column order the records
// are written; only the handful of export-derived values vary per product.
//
// An empty value in the template means "filled from the product" and is
// resolved in defaultItemFields.
//
// =============================================================================

package sync

import (
	"strconv"
	"time"

	"github.com/ginjaninja78/pos-catalog-sync/internal/catalog"
	"github.com/ginjaninja78/pos-catalog-sync/internal/xmldb"
)

// fieldDefault is one (column, default text) entry of the template.
type fieldDefault struct {
	column string
	value  string
}

// itemFieldTemplate is the complete ITEM record layout. Columns whose value
// comes from the product are listed with an empty default and overridden in
// defaultItemFields.
var itemFieldTemplate = []fieldDefault{
	{catalog.ColTextArea1, ""},
	{"Cost Price", "0"},
	{catalog.ColDisplayText, ""},
	{catalog.ColEAN, ""},
	{"GTIN", "0"},
	{catalog.ColRetailPrice, ""},
	{catalog.ColPLU, ""},
	{"Container ID", "0"},
	{catalog.ColDepartmentID, ""},
	{catalog.ColProductType, ""},
	{"Margin", "100"},
	{"Barcode Print Control", "0"},
	{catalog.ColBarcodeFormatID, ""},
	{"Sales Only ITEM", "0"},
	{"Scale ITEM Type", "0"},
	{"Container Tare Type", "0"},
	{"Nominal Weight Value", "0"},
	{"Proportional Tare Value", "0"},
	{"Nominal Volume", "0"},
	{"Date Offset (1)", "0"},
	{"Date Offset (2)", "0"},
	{"Date Print Control (1)", "0"},
	{"Date Print Control (2)", "0"},
	{"Text Area (2)", ""},
	{"Text Area (3)", ""},
	{"Text Area (4)", ""},
	{"Text Area (5 Serving Size Description)", ""},
	{"Text Area (6 Servings Per Description)", ""},
	{"Message ID (1)", "0"},
	{"Message ID (2)", "0"},
	{"Message Category ID (1)", "14"},
	{"Message Category ID (2)", "14"},
	{"Discount Percentage (1)", "0"},
	{"Items Free (1)", "0"},
	{"ITEM Discount Type", "1"},
	{"Promotion Control", "0"},
	{"Print Promotion Message", "0"},
	{"Promotion Type", "0"},
	{"Promotion Voucher Id", "0"},
	{"Retail Price (2nd / Freq Shopper Alternate Price)", "0"},
	{"Message ID (Promotion Message)", "0"},
	{"Time Period ID", "0"},
	{"Voucher Amount", "0"},
	{"Weight Free (1)", "0"},
	{"Discount Amount Money Off (1)", "0"},
	{"Weight Break Quantity (1)", "0"},
	{"Weight Break Quantity (2)", "0"},
	{"Item Break Quantity (1)", "0"},
	{"Item Break Quantity (2)", "0"},
	{"Item Promotion Quantity Limit", "0"},
	{"Weight Promotion Quantity Limit", "0"},
	{"Promotion Transaction Limit", "0"},
	{"Retail Price (Break 1)", "0"},
	{"Retail Price (Break 2)", "0"},
	{"Keyboard ID (Dynamic 1)", "0"},
	{"Group ID", "0"},
	{"Information Voucher Id", "0"},
	{catalog.ColPrintFormatID, ""},
	{"Print Format Type Control", "0"},
	{"Print Format ID (Nutritional Label)", "100"},
	{"Media ID (1)", "0"},
	{"ITEM Logo Control", "0"},
	{"ITEM Logo Promotion Mode", "0"},
	{"ITEM Logo Type", "0"},
	{"Interactive Traceability Mode", "0"},
	{"Traceability Linked ITEM", "0"},
	{"Traceability ITEM", "0"},
	{"Traceability Scheme Id", "1"},
	{"Negative By Count", "0"},
	{"Tax Rate ID (Primary)", "0"},
	{"Tax Rate ID (Secondary)", "0"},
	{catalog.ColPriceModifierMult, ""},
	{"Price Modifier Divider", "1"},
	{"Message Category ID (Promotion Message)", "14"},
	{catalog.ColTimestamp, ""},
	{catalog.ColChangeFlag, catalog.DirtyFlag},
	{catalog.ColDisplayButtonText, ""},
}

// defaultItemFields resolves the template for one product, in template
// order.
func defaultItemFields(p catalog.Product, now time.Time) []*xmldb.Field {
	overrides := map[string]string{
		catalog.ColTextArea1:         p.TextArea1,
		catalog.ColDisplayText:       p.Name,
		catalog.ColEAN:               strconv.FormatInt(p.EAN, 10),
		catalog.ColRetailPrice:       p.Price,
		catalog.ColPLU:               strconv.Itoa(p.PLU),
		catalog.ColDepartmentID:      strconv.Itoa(p.DepartmentID),
		catalog.ColProductType:       strconv.Itoa(p.ProductType),
		catalog.ColBarcodeFormatID:   strconv.Itoa(p.BarcodeFormatID),
		catalog.ColPrintFormatID:     strconv.Itoa(p.PrintFormatID),
		catalog.ColPriceModifierMult: strconv.Itoa(p.PriceModifierMultiplier),
		catalog.ColTimestamp:         now.Format(catalog.TimestampLayout),
		catalog.ColDisplayButtonText: p.Name,
	}

	fields := make([]*xmldb.Field, 0, len(itemFieldTemplate))
	for _, def := range itemFieldTemplate {
		value := def.value
		if v, ok := overrides[def.column]; ok {
			value = v
		}
		fields = append(fields, xmldb.NewField(def.column, value))
	}
	return fields
}

// defaultBandFields builds the linked ITEM in Band record for a new
// product: band "0" carrying the composite key and the price, stamped with
// the same change metadata as the primary record.
func defaultBandFields(p catalog.Product, now time.Time) []*xmldb.Field {
	return []*xmldb.Field{
		xmldb.NewField(catalog.ColPLU, strconv.Itoa(p.PLU)),
		xmldb.NewField(catalog.ColDepartmentID, strconv.Itoa(p.DepartmentID)),
		xmldb.NewField(catalog.ColBandID, catalog.DefaultBandID),
		xmldb.NewField(catalog.ColRetailPrice, p.Price),
		xmldb.NewField(catalog.ColTimestamp, now.Format(catalog.TimestampLayout)),
		xmldb.NewField(catalog.ColChangeFlag, catalog.DirtyFlag),
	}
}
