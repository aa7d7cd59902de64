// =============================================================================
// POS Catalog Sync - Persister
// =============================================================================
//
// Save writes the mutated tree back to storage. When the destination already
// exists and backups are enabled, the previous version is renamed to a
// timestamp-suffixed path first:
//
//   database.xml  ->  database.backup_20250818_093005.xml
//
// The rename is attempted once; there is no retry and no verification beyond
// the attempt itself. The write is a single call, so a failure surfaces as a
// top-level error with no partial-output guarantee beyond what the OS write
// primitive provides.
//
// =============================================================================

package xmldb

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// backupTimestampLayout is the segment inserted into backup file names.
const backupTimestampLayout = "20060102_150405"

// Save serializes doc and writes it to path. now stamps the backup name.
func Save(doc *Document, path string, backup bool, now time.Time, log zerolog.Logger) error {
	if backup {
		if _, err := os.Stat(path); err == nil {
			backupPath := BackupPath(path, now)
			if err := os.Rename(path, backupPath); err != nil {
				return fmt.Errorf("failed to create backup: %w", err)
			}
			log.Info().Str("backup", backupPath).Msg("Backup created")
		}
	}

	data, err := doc.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write XML database: %w", err)
	}

	log.Info().Str("path", path).Msg("XML database saved")
	return nil
}

// BackupPath returns the timestamp-suffixed backup path for the database
// file, alongside the original.
func BackupPath(path string, now time.Time) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	name := fmt.Sprintf("%s.backup_%s.xml", stem, now.Format(backupTimestampLayout))
	return filepath.Join(dir, name)
}
