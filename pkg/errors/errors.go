// =============================================================================
// POS Catalog Sync - Error Types
// =============================================================================
//
// This package defines the error vocabulary shared across the sync pipeline.
// It distinguishes the two classes of failure the engine cares about:
//
//   1. Structural failures (missing files, unparsable documents, absent
//      tables) are fatal. They are wrapped in a SyncError carrying the
//      pipeline stage and file path, and abort the run before anything is
//      persisted.
//   2. Row- and field-level problems are never surfaced through this package;
//      they are logged, counted, and absorbed where they occur.
//
// Callers match on the sentinel errors with errors.Is and unwrap the typed
// SyncError with errors.As.
//
// =============================================================================

package errors

import (
	"errors"
	"fmt"
)

// New is an alias for the standard library errors.New for convenience.
var New = errors.New

// Sentinel errors for structural failures.
var (
	// ErrSourceNotFound indicates the source export file does not exist.
	ErrSourceNotFound = errors.New("source file not found")

	// ErrTargetNotFound indicates the target XML database does not exist.
	ErrTargetNotFound = errors.New("target database not found")

	// ErrTableNotFound indicates a required table is absent from the
	// XML document.
	ErrTableNotFound = errors.New("table not found")
)

// SyncError is the distinguished error for a failed pipeline stage.
// A SyncError always aborts the run with a non-zero outcome.
type SyncError struct {
	// Stage is the pipeline stage that failed.
	// One of: "load-source", "load-target", "reconcile", "mutate", "persist".
	Stage string

	// Path is the file involved, if any.
	Path string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *SyncError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("sync failed at stage %s (%s): %v", e.Stage, e.Path, e.Err)
	}
	return fmt.Sprintf("sync failed at stage %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying cause for errors.Is / errors.As.
func (e *SyncError) Unwrap() error {
	return e.Err
}

// NewSyncError wraps err as a fatal pipeline failure at the given stage.
func NewSyncError(stage, path string, err error) *SyncError {
	return &SyncError{Stage: stage, Path: path, Err: err}
}
