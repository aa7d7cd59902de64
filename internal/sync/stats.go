// =============================================================================
// POS Catalog Sync - Run Outcome
// =============================================================================

// Package sync implements the reconciliation engine: it matches the catalog
// export against the XML database by composite key, classifies each key as
// add, update, or delete-candidate, and applies the add/update decisions to
// the document tree in place. Deletions are detected and reported only,
// never applied.
package sync

import "time"

// Stats is the run-outcome contract consumed by the CLI/report layer. It is
// populated for every run in which the reconciliation phase started, even
// when the run later fails.
type Stats struct {
	// SourceTotal and TargetTotal are the record counts after loading,
	// before key filtering.
	SourceTotal int
	TargetTotal int

	// SkippedRows is the number of source rows rejected during load.
	SkippedRows int

	// Added and Updated count applied mutations. A record touched only by
	// the LastModified backfill does not count as updated.
	Added   int
	Updated int

	// DeleteCandidates counts keys present in the target but absent from
	// the source. They are reported, never removed.
	DeleteCandidates int

	// Errors counts per-record failures that were absorbed.
	Errors int

	// Duration is the elapsed wall time of the run.
	Duration time.Duration
}
