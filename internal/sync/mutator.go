// =============================================================================
// POS Catalog Sync - Mutator
// =============================================================================
//
// The mutator applies the reconciliation plan to the document tree in place.
//
// ADD: a new ITEM record with the full default field set, plus a linked
// ITEM in Band record (band "0") carrying the key and price. When the band
// table is absent the secondary insert is skipped with a warning; the
// primary add still succeeds.
//
// UPDATE: each mapped column whose live field text differs from the new
// value is overwritten. If anything changed, the record's _TS and _CF are
// stamped; if the price changed, the matching band record's price and
// metadata are stamped too (band records are never fabricated on update).
// A record with no differing column is left untouched except that a missing
// _TS is still created - that backfill does not count as an update.
//
// Record matching is exact string-trimmed equality on both key columns;
// the first structural match wins and iteration stops. On true duplicates
// inside the tree only the first record is touched (known upstream gap).
//
// =============================================================================

package sync

import (
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/ginjaninja78/pos-catalog-sync/internal/catalog"
	"github.com/ginjaninja78/pos-catalog-sync/internal/xmldb"
	apperrors "github.com/ginjaninja78/pos-catalog-sync/pkg/errors"
)

// Clock supplies the timestamps written to change-tracking fields. Inject a
// fixed clock in tests to keep mutation output deterministic.
type Clock func() time.Time

// columnMapping is the fixed ordered list of columns compared and written
// on update. Display Button Text is a duplicate sink for the Name field.
var columnMappings = []struct {
	column string
	value  func(p catalog.Product) string
}{
	{catalog.ColDisplayText, func(p catalog.Product) string { return p.Name }},
	{catalog.ColEAN, func(p catalog.Product) string { return strconv.FormatInt(p.EAN, 10) }},
	{catalog.ColRetailPrice, func(p catalog.Product) string { return p.Price }},
	{catalog.ColTextArea1, func(p catalog.Product) string { return p.TextArea1 }},
	{catalog.ColProductType, func(p catalog.Product) string { return strconv.Itoa(p.ProductType) }},
	{catalog.ColPriceModifierMult, func(p catalog.Product) string { return strconv.Itoa(p.PriceModifierMultiplier) }},
	{catalog.ColBarcodeFormatID, func(p catalog.Product) string { return strconv.Itoa(p.BarcodeFormatID) }},
	{catalog.ColPrintFormatID, func(p catalog.Product) string { return strconv.Itoa(p.PrintFormatID) }},
	{catalog.ColDisplayButtonText, func(p catalog.Product) string { return p.Name }},
}

// Mutator applies a Plan to the document tree.
type Mutator struct {
	Clock Clock
	Log   zerolog.Logger
}

// Apply mutates doc according to plan and returns the applied counts.
// (added, updated, errors). The only fatal condition is a missing ITEM
// table; everything else is absorbed per record.
func (m *Mutator) Apply(doc *xmldb.Document, plan *Plan) (added, updated, errCount int, err error) {
	item := doc.Table(catalog.TableItem)
	if item == nil {
		return 0, 0, 0, apperrors.NewSyncError("mutate", "",
			apperrors.ErrTableNotFound)
	}
	band := doc.Table(catalog.TableItemBand)

	for _, p := range plan.Updates {
		changed, ok := m.updateRecord(item, band, p)
		if !ok {
			errCount++
			continue
		}
		if changed {
			updated++
		}
	}

	for _, p := range plan.Adds {
		m.addRecord(item, band, p)
		added++
	}

	return added, updated, errCount, nil
}

// updateRecord applies one update candidate. changed reports whether a
// mapped column actually differed; ok is false when the record could not be
// located at all.
func (m *Mutator) updateRecord(item, band *xmldb.Table, p catalog.Product) (changed, ok bool) {
	key := p.Key()
	rec := findItemRecord(item, key)
	if rec == nil {
		// The reconciler saw this key in the target, so the record should
		// exist; a vanished record means duplicated keys with drifted text.
		m.Log.Warn().
			Int("plu", key.PLU).
			Int("department", key.DepartmentID).
			Msg("Update candidate has no matching ITEM record - skipping")
		return false, false
	}

	priceChanged := false

	for _, mapping := range columnMappings {
		fld := rec.Field(mapping.column)
		if fld == nil {
			// The mapped column is absent from this record; a field-level
			// inconsistency, not an error. Leave it be.
			continue
		}

		newValue := mapping.value(p)
		if fld.Value == newValue {
			continue
		}

		m.Log.Info().
			Int("plu", key.PLU).
			Int("department", key.DepartmentID).
			Str("column", mapping.column).
			Str("old", fld.Value).
			Str("new", newValue).
			Msg("Updating column")

		fld.Value = newValue
		changed = true
		if mapping.column == catalog.ColRetailPrice {
			priceChanged = true
		}
	}

	now := m.Clock()

	// Every record eventually carries the stamp: backfill a missing _TS even
	// when nothing changed. The backfill alone is not an update.
	if changed || rec.Field(catalog.ColTimestamp) == nil {
		rec.SetField(catalog.ColTimestamp, now.Format(catalog.TimestampLayout))
	}

	if !changed {
		return false, true
	}

	rec.SetField(catalog.ColChangeFlag, catalog.DirtyFlag)

	if priceChanged {
		m.updateBandPrice(band, key, p.Price, now)
	}

	m.Log.Info().
		Int("plu", key.PLU).
		Int("department", key.DepartmentID).
		Msg("Product updated")
	return true, true
}

// updateBandPrice propagates a changed price to the matching band record.
// No band record is fabricated here; that only happens during an add.
func (m *Mutator) updateBandPrice(band *xmldb.Table, key catalog.Key, price string, now time.Time) {
	if band == nil {
		m.Log.Warn().
			Int("plu", key.PLU).
			Int("department", key.DepartmentID).
			Msgf("%s table not found - band price not updated", catalog.TableItemBand)
		return
	}

	rec := findBandRecord(band, key)
	if rec == nil {
		m.Log.Warn().
			Int("plu", key.PLU).
			Int("department", key.DepartmentID).
			Msg("No matching band record - band price not updated")
		return
	}

	rec.SetField(catalog.ColRetailPrice, price)
	rec.SetField(catalog.ColTimestamp, now.Format(catalog.TimestampLayout))
	rec.SetField(catalog.ColChangeFlag, catalog.DirtyFlag)
}

// addRecord creates the primary ITEM record and its linked band record.
func (m *Mutator) addRecord(item, band *xmldb.Table, p catalog.Product) {
	now := m.Clock()

	rec := &xmldb.Record{Fields: defaultItemFields(p, now)}
	item.AppendRecord(rec)

	if band == nil {
		m.Log.Warn().
			Int("plu", p.PLU).
			Int("department", p.DepartmentID).
			Msgf("%s table not found - band record not created", catalog.TableItemBand)
	} else {
		band.AppendRecord(&xmldb.Record{Fields: defaultBandFields(p, now)})
	}

	m.Log.Info().
		Int("plu", p.PLU).
		Int("department", p.DepartmentID).
		Str("name", p.Name).
		Msg("Product added")
}

// findItemRecord locates the first ITEM record matching the composite key.
func findItemRecord(item *xmldb.Table, key catalog.Key) *xmldb.Record {
	return findRecord(item, key, func(*xmldb.Record) bool { return true })
}

// findBandRecord locates the first band-"0" record matching the composite
// key. Records without a Band ID column are treated as band "0".
func findBandRecord(band *xmldb.Table, key catalog.Key) *xmldb.Record {
	return findRecord(band, key, func(rec *xmldb.Record) bool {
		if rec.Field(catalog.ColBandID) == nil {
			return true
		}
		return rec.Value(catalog.ColBandID) == catalog.DefaultBandID
	})
}

// findRecord scans a table for the first record whose trimmed key columns
// equal the composite key and which satisfies extra. Iteration stops at the
// first match.
func findRecord(table *xmldb.Table, key catalog.Key, extra func(*xmldb.Record) bool) *xmldb.Record {
	plu := strconv.Itoa(key.PLU)
	dept := strconv.Itoa(key.DepartmentID)

	for _, rec := range table.Records {
		if rec.Field(catalog.ColPLU) == nil || rec.Field(catalog.ColDepartmentID) == nil {
			continue
		}
		if rec.Value(catalog.ColPLU) == plu && rec.Value(catalog.ColDepartmentID) == dept && extra(rec) {
			return rec
		}
	}
	return nil
}
