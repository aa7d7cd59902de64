// =============================================================================
// POS Catalog Sync - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (catsync)
//   ├── syncCmd     (catsync sync)
//   ├── validateCmd (catsync validate)
//   └── versionCmd  (catsync version)
//
// CONFIGURATION:
//   The root command owns the global flags (--config, --verbose) and the
//   logger construction shared by the subcommands.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/pos-catalog-sync/internal/config"
	"github.com/ginjaninja78/pos-catalog-sync/pkg/logging"
)

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose forces debug-level logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "catsync",
	Short: "POS Catalog Sync - Reconcile a scale XML database against a catalog export",
	Long: `POS Catalog Sync reconciles the product catalog held in a scale software's
XML database against an authoritative CSV (or XLSX) export.

The engine matches products by their composite key (PLU, Department ID),
adds missing products with the full default field set, updates changed
fields in place (including the linked price-band table), and reports
products that have disappeared from the export. Deletions are never
applied, only reported.

Example Usage:
  catsync sync                          # Sync using ./config.yaml
  catsync sync --config ./store42.yaml  # Use a store-specific configuration
  catsync sync --dry-run                # Reconcile without writing anything
  catsync validate                      # Check config and inputs only`,

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// init sets up the global flags.
func init() {
	// --config flag: Allows the user to specify a custom configuration file.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (default is config.yaml)",
	)

	// --verbose flag: Enables verbose/debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// loadConfig reads the configuration file named by --config and applies the
// path overrides given on the command line.
func loadConfig(sourceOverride, targetOverride string) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if sourceOverride != "" {
		cfg.Source.Path = sourceOverride
	}
	if targetOverride != "" {
		cfg.Target.Path = targetOverride
	}
	return cfg, nil
}

// newLogger builds the run logger from the configuration, honoring
// --verbose.
func newLogger(cfg *config.Config) zerolog.Logger {
	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	return logging.New(os.Stderr, level, cfg.Logging.Format)
}
