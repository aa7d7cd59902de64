// =============================================================================
// POS Catalog Sync - Reconciler
// =============================================================================
//
// The reconciler builds keyed maps from both record sets and classifies
// every composite key:
//
//   - present in source, absent in target  -> add
//   - present in both                      -> update candidate (the mutator
//                                             decides changed vs untouched
//                                             against the live field text)
//   - present in target, absent in source  -> delete candidate (report only)
//
// A key with a zero PLU or department on either side cannot be matched and
// is excluded from all three classes. Within one source, duplicate keys
// collapse last-write-wins at map construction.
//
// =============================================================================

package sync

import (
	"github.com/rs/zerolog"

	"github.com/ginjaninja78/pos-catalog-sync/internal/catalog"
)

// Plan is the classified outcome of one reconciliation pass. Slice order is
// deterministic: adds and updates follow source order, delete candidates
// follow target document order.
type Plan struct {
	Adds             []catalog.Product
	Updates          []catalog.Product
	DeleteCandidates []catalog.Key

	// SourceKeyed and TargetKeyed count the records that carried a valid
	// composite key and took part in matching.
	SourceKeyed int
	TargetKeyed int
}

// Reconciler classifies composite keys across the two record sets.
type Reconciler struct {
	Log zerolog.Logger
}

// Plan classifies every valid key from source and target.
func (r *Reconciler) Plan(source, target []catalog.Product) *Plan {
	sourceByKey, sourceLast := keyedLast(source, "source", r.Log)
	targetByKey, _ := keyedLast(target, "target", r.Log)

	plan := &Plan{
		SourceKeyed: len(sourceByKey),
		TargetKeyed: len(targetByKey),
	}

	// Walk the source in row order, handling each key once at its last
	// occurrence (last-write-wins).
	for i, p := range source {
		key := p.Key()
		if !key.Valid() || sourceLast[key] != i {
			continue
		}
		if _, exists := targetByKey[key]; exists {
			plan.Updates = append(plan.Updates, sourceByKey[key])
		} else {
			plan.Adds = append(plan.Adds, sourceByKey[key])
		}
	}

	// Walk the target in document order for the delete-candidate report.
	seen := make(map[catalog.Key]struct{}, len(targetByKey))
	for _, p := range target {
		key := p.Key()
		if !key.Valid() {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if _, exists := sourceByKey[key]; !exists {
			r.Log.Info().
				Int("plu", key.PLU).
				Int("department", key.DepartmentID).
				Msg("Product missing from source - delete candidate (no deletion performed)")
			plan.DeleteCandidates = append(plan.DeleteCandidates, key)
		}
	}

	r.Log.Info().
		Int("source_keyed", plan.SourceKeyed).
		Int("target_keyed", plan.TargetKeyed).
		Int("adds", len(plan.Adds)).
		Int("update_candidates", len(plan.Updates)).
		Int("delete_candidates", len(plan.DeleteCandidates)).
		Msg("Reconciliation plan built")

	return plan
}

// keyedLast builds the key map (last occurrence wins) and records the index
// of each key's last occurrence. For the target the map is only consulted
// for presence, so last-wins is harmless there.
func keyedLast(products []catalog.Product, side string, log zerolog.Logger) (map[catalog.Key]catalog.Product, map[catalog.Key]int) {
	byKey := make(map[catalog.Key]catalog.Product, len(products))
	last := make(map[catalog.Key]int, len(products))

	for i, p := range products {
		key := p.Key()
		if !key.Valid() {
			continue
		}
		if _, dup := byKey[key]; dup {
			log.Debug().
				Str("side", side).
				Int("plu", key.PLU).
				Int("department", key.DepartmentID).
				Msg("Duplicate composite key - last occurrence wins")
		}
		byKey[key] = p
		last[key] = i
	}
	return byKey, last
}
