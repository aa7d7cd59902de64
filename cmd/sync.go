// =============================================================================
// POS Catalog Sync - Sync Command
// =============================================================================
//
// This file defines the 'sync' command, which runs the reconciliation
// pipeline end to end.
//
// COMMAND USAGE:
//   catsync sync [flags]
//
// FLAGS:
//   --dry-run  : Reconcile and mutate in memory, but write nothing
//   --source   : Override the source export path from the config file
//   --target   : Override the target database path from the config file
//
// PIPELINE:
//   1. Load configuration
//   2. Load the catalog export (CSV or XLSX)
//   3. Load the XML database
//   4. Reconcile by composite key (PLU, Department ID)
//   5. Apply adds and updates to the tree in place
//   6. Back up and persist the database
//   7. Print the run summary
//
// The summary is printed whenever the reconciliation phase started, even if
// a later stage failed.
//
// =============================================================================

package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/pos-catalog-sync/internal/sync"
)

// dryRun reconciles without persisting.
var dryRun bool

// sourceOverride and targetOverride replace the configured paths.
var (
	sourceOverride string
	targetOverride string
)

// syncCmd represents the 'sync' command.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile the XML database against the catalog export",
	Long: `The sync command loads the catalog export and the XML database, matches
products by (PLU, Department ID), and applies the differences to the
database in place:

  - Products present only in the export are added with the complete
    default field set, plus a linked price-band record.
  - Products present in both have their mapped columns compared; changed
    columns are overwritten and the record is stamped with fresh change
    metadata. A changed price is propagated to the price-band record.
  - Products present only in the database are reported as delete
    candidates. Nothing is ever deleted.

Before the updated database is written, the previous version is renamed to
a timestamped backup (unless disabled in the configuration).`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync()
	},
}

// init registers the sync command and its flags.
func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Reconcile and mutate in memory without writing any files",
	)
	syncCmd.Flags().StringVar(
		&sourceOverride,
		"source",
		"",
		"Path to the catalog export (overrides the config file)",
	)
	syncCmd.Flags().StringVar(
		&targetOverride,
		"target",
		"",
		"Path to the XML database (overrides the config file)",
	)
}

// runSync executes the pipeline and prints the summary.
func runSync() error {
	cfg, err := loadConfig(sourceOverride, targetOverride)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	log := newLogger(cfg).With().Str("run_id", runID).Logger()

	log.Info().
		Str("source", cfg.Source.Path).
		Str("target", cfg.Target.Path).
		Bool("dry_run", dryRun).
		Msg("Catalog sync started")

	engine := &sync.Engine{
		Config: cfg,
		Clock:  time.Now,
		Log:    log,
		DryRun: dryRun,
	}

	stats, runErr := engine.Run()

	// The summary contract holds as long as reconciliation started.
	if stats != nil {
		printSummary(runID, stats)
	}

	if runErr != nil {
		log.Error().Err(runErr).Msg("Catalog sync failed")
		return runErr
	}

	log.Info().Msg("Catalog sync completed successfully")
	return nil
}

// printSummary writes the run report the operators consume.
func printSummary(runID string, stats *sync.Stats) {
	line := "============================================================"
	fmt.Println()
	fmt.Println(line)
	fmt.Println("SYNCHRONIZATION SUMMARY")
	fmt.Println(line)
	fmt.Printf("Run ID:                    %s\n", runID)
	fmt.Printf("Source Products:           %d\n", stats.SourceTotal)
	fmt.Printf("Target Products:           %d\n", stats.TargetTotal)
	fmt.Printf("Source Rows Skipped:       %d\n", stats.SkippedRows)
	fmt.Printf("Products Added:            %d\n", stats.Added)
	fmt.Printf("Products Updated:          %d\n", stats.Updated)
	fmt.Printf("Delete Candidates:         %d\n", stats.DeleteCandidates)
	fmt.Printf("Errors Encountered:        %d\n", stats.Errors)
	fmt.Printf("Execution Duration:        %s\n", stats.Duration)
	fmt.Printf("Completion Time:           %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Println(line)
}
