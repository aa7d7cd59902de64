// =============================================================================
// POS Catalog Sync - CSV Source Loader
// =============================================================================
//
// This module parses the authoritative catalog export: delimited text with a
// single header row. It handles:
//   - Configurable delimiters (the scale software exports with ";")
//   - Caller-supplied text encodings (the exports are typically latin-1)
//   - Per-row validation with skip-and-continue semantics
//
// Rows are numbered from 2 (row 1 is the header) so log lines match what an
// operator sees in a spreadsheet. A malformed row is logged, counted, and
// skipped; it never aborts the load. Only structural problems (missing file,
// unreadable content, unknown encoding) are returned as errors.
//
// =============================================================================

package csvsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/ginjaninja78/pos-catalog-sync/internal/catalog"
	"github.com/ginjaninja78/pos-catalog-sync/internal/config"
	apperrors "github.com/ginjaninja78/pos-catalog-sync/pkg/errors"
)

// Loader reads products from a CSV catalog export.
type Loader struct {
	// Path is the location of the export file.
	Path string

	// Settings controls delimiter and encoding.
	Settings config.CSVSettings

	// Now supplies the LastModified stamp for loaded products.
	Now func() time.Time

	// Log receives row-level warnings and the load summary.
	Log zerolog.Logger
}

// New creates a Loader for the given file.
func New(path string, settings config.CSVSettings, now func() time.Time, log zerolog.Logger) *Loader {
	return &Loader{Path: path, Settings: settings, Now: now, Log: log}
}

// Load parses the export and returns the accepted products plus the number
// of skipped rows.
func (l *Loader) Load() ([]catalog.Product, int, error) {
	file, err := os.Open(l.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, fmt.Errorf("%w: %s", apperrors.ErrSourceNotFound, l.Path)
		}
		return nil, 0, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	l.Log.Info().Str("path", l.Path).Msg("Loading CSV file")

	reader, err := decodingReader(file, l.Settings.Encoding)
	if err != nil {
		return nil, 0, err
	}

	csvReader := csv.NewReader(reader)
	configureReader(csvReader, l.Settings)

	headers, err := csvReader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	var (
		products []catalog.Product
		skipped  int
	)

	// Data rows are 1-indexed starting after the header.
	for rowNum := 2; ; rowNum++ {
		raw, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			l.Log.Warn().Int("row", rowNum).Err(err).Msg("Unreadable row - skipping")
			skipped++
			continue
		}

		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(raw) {
				row[h] = raw[i]
			}
		}

		product, err := catalog.FromRow(row, l.Now())
		if err != nil {
			l.Log.Warn().Int("row", rowNum).Err(err).Msg("Invalid row - skipping")
			skipped++
			continue
		}
		products = append(products, product)
	}

	l.Log.Info().
		Int("loaded", len(products)).
		Int("skipped", skipped).
		Msg("CSV load complete")

	return products, skipped, nil
}

// configureReader applies the export settings to the CSV reader. An unset
// delimiter falls back to the export default ";".
func configureReader(reader *csv.Reader, settings config.CSVSettings) {
	reader.Comma = ';'
	if settings.Delimiter != "" {
		reader.Comma = rune(settings.Delimiter[0])
	}

	// Exports from older scale software versions have ragged rows and
	// loosely quoted fields; tolerate both.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
}

// decodingReader wraps r with a decoder for the named text encoding.
// Encoding names follow the IANA/WHATWG labels ("utf-8", "latin-1",
// "iso-8859-1", "windows-1252", ...).
func decodingReader(r io.Reader, name string) (io.Reader, error) {
	label := strings.ToLower(strings.TrimSpace(name))
	if label == "" || label == "utf-8" || label == "utf8" {
		return r, nil
	}

	// "latin-1" is the spelling the scale software's own tooling uses; the
	// WHATWG index only knows the label without the dash.
	if label == "latin-1" {
		label = "latin1"
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", name, err)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
