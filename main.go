// =============================================================================
// POS Catalog Sync - Main Entry Point
// =============================================================================
//
// This is the main entry point for the POS Catalog Sync CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   catsync sync       - Reconcile the XML database against the catalog export
//   catsync validate   - Check configuration and input files without syncing
//   catsync version    - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Core business logic (not for external import)
//   - pkg/       : Shared utilities (logging, error types)
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/pos-catalog-sync/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
