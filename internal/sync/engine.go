// =============================================================================
// POS Catalog Sync - Pipeline Engine
// =============================================================================
//
// The engine runs the batch pipeline end to end, single-threaded and
// synchronous:
//
//   load source -> load target -> reconcile -> mutate in place -> persist
//
// Structural failures abort with a SyncError naming the stage; once the
// reconciliation phase has started, a Stats value is returned alongside any
// error so the CLI layer can always print the run summary.
//
// =============================================================================

package sync

import (
	"github.com/rs/zerolog"

	"github.com/ginjaninja78/pos-catalog-sync/internal/catalog"
	"github.com/ginjaninja78/pos-catalog-sync/internal/config"
	"github.com/ginjaninja78/pos-catalog-sync/internal/csvsource"
	"github.com/ginjaninja78/pos-catalog-sync/internal/xlsxsource"
	"github.com/ginjaninja78/pos-catalog-sync/internal/xmldb"
	apperrors "github.com/ginjaninja78/pos-catalog-sync/pkg/errors"
)

// Engine wires the pipeline together for one run.
type Engine struct {
	Config *config.Config
	Clock  Clock
	Log    zerolog.Logger

	// DryRun performs the full reconcile and in-memory mutation but skips
	// persistence.
	DryRun bool
}

// Run executes the pipeline. The returned Stats is non-nil whenever the
// reconciliation phase started, even if a later stage failed.
func (e *Engine) Run() (*Stats, error) {
	start := e.Clock()

	e.Log.Info().Msg("Phase 1: Loading data files")

	source, skipped, err := e.loadSource()
	if err != nil {
		return nil, apperrors.NewSyncError("load-source", e.Config.Source.Path, err)
	}

	doc, err := xmldb.Load(e.Config.Target.Path)
	if err != nil {
		return nil, apperrors.NewSyncError("load-target", e.Config.Target.Path, err)
	}

	target, err := ExtractProducts(doc)
	if err != nil {
		return nil, err
	}

	e.Log.Info().
		Int("source", len(source)).
		Int("target", len(target)).
		Msg("Phase 2: Synchronizing products")

	stats := &Stats{
		SourceTotal: len(source),
		TargetTotal: len(target),
		SkippedRows: skipped,
	}

	reconciler := &Reconciler{Log: e.Log}
	plan := reconciler.Plan(source, target)
	stats.DeleteCandidates = len(plan.DeleteCandidates)

	mutator := &Mutator{Clock: e.Clock, Log: e.Log}
	added, updated, errCount, err := mutator.Apply(doc, plan)
	stats.Added = added
	stats.Updated = updated
	stats.Errors = errCount
	if err != nil {
		stats.Duration = e.Clock().Sub(start)
		return stats, err
	}

	if e.DryRun {
		e.Log.Info().Msg("Dry run - skipping persistence")
		stats.Duration = e.Clock().Sub(start)
		return stats, nil
	}

	e.Log.Info().Msg("Phase 3: Saving updated database")

	backup := e.Config.Target.BackupEnabled()
	if err := xmldb.Save(doc, e.Config.Target.Path, backup, e.Clock(), e.Log); err != nil {
		stats.Duration = e.Clock().Sub(start)
		return stats, apperrors.NewSyncError("persist", e.Config.Target.Path, err)
	}

	stats.Duration = e.Clock().Sub(start)
	return stats, nil
}

// loadSource dispatches to the configured source format.
func (e *Engine) loadSource() ([]catalog.Product, int, error) {
	switch e.Config.Source.Format {
	case config.FormatXLSX:
		return xlsxsource.New(e.Config.Source.Path, e.Clock, e.Log).Load()
	default:
		return csvsource.New(e.Config.Source.Path, e.Config.Source.CSV, e.Clock, e.Log).Load()
	}
}
