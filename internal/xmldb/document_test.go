package xmldb

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ginjaninja78/pos-catalog-sync/pkg/errors"
	"github.com/ginjaninja78/pos-catalog-sync/pkg/logging"
)

const sampleXML = `<?xml version="1.0" encoding="utf-8"?>
<database>
  <table name="ITEM">
    <record>
      <field column_name="PLU Number" exclusion="false">1001</field>
      <field column_name="Display Text" exclusion="false">Bananas</field>
      <field column_name="Department ID" exclusion="false">10</field>
    </record>
  </table>
  <table name="ITEM in Band">
    <record>
      <field column_name="PLU Number" exclusion="false">1001</field>
      <field column_name="Department ID" exclusion="false">10</field>
      <field column_name="Band ID" exclusion="false">0</field>
      <field column_name="Retail Price (1st)" exclusion="false">2.50</field>
    </record>
  </table>
</database>
`

func TestParseAndLookup(t *testing.T) {
	doc, err := Parse([]byte(sampleXML))
	require.NoError(t, err)

	item := doc.Table("ITEM")
	require.NotNil(t, item)
	require.Len(t, item.Records, 1)

	rec := item.Records[0]
	assert.Equal(t, "1001", rec.Value("PLU Number"))
	assert.Equal(t, "Bananas", rec.Value("Display Text"))
	assert.Nil(t, rec.Field("No Such Column"))
	assert.Equal(t, "", rec.Value("No Such Column"))

	assert.NotNil(t, doc.Table("ITEM in Band"))
	assert.Nil(t, doc.Table("NOT A TABLE"))
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse([]byte("<database><table"))
	assert.Error(t, err)
}

func TestSetFieldCreatesWithExclusion(t *testing.T) {
	rec := &Record{}

	rec.SetField("_TS", "2025-08-18T09:30:05")
	f := rec.Field("_TS")
	require.NotNil(t, f)
	assert.Equal(t, "false", f.Exclusion)
	assert.Equal(t, "2025-08-18T09:30:05", f.Value)

	// Overwrite keeps a single field.
	rec.SetField("_TS", "2025-08-19T10:00:00")
	assert.Len(t, rec.Fields, 1)
	assert.Equal(t, "2025-08-19T10:00:00", rec.Value("_TS"))
}

func TestMarshalRoundTrip(t *testing.T) {
	doc, err := Parse([]byte(sampleXML))
	require.NoError(t, err)

	out, err := doc.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(out), `<?xml version="1.0" encoding="utf-8"?>`)
	assert.Contains(t, string(out), `<table name="ITEM in Band">`)
	assert.Contains(t, string(out), `<field column_name="PLU Number" exclusion="false">1001</field>`)

	// Deterministic: marshalling twice yields identical bytes.
	again, err := doc.Marshal()
	require.NoError(t, err)
	assert.Equal(t, out, again)

	// And the output parses back to the same structure.
	doc2, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, "Bananas", doc2.Table("ITEM").Records[0].Value("Display Text"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.xml"))
	assert.ErrorIs(t, err, apperrors.ErrTargetNotFound)
}

func TestBackupPath(t *testing.T) {
	now := time.Date(2025, 8, 18, 9, 30, 5, 0, time.UTC)
	got := BackupPath(filepath.Join("data", "database.xml"), now)
	assert.Equal(t, filepath.Join("data", "database.backup_20250818_093005.xml"), got)
}

func TestSaveCreatesBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "database.xml")
	require.NoError(t, os.WriteFile(path, []byte(sampleXML), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	doc.Table("ITEM").Records[0].SetField("Display Text", "Plantains")

	now := time.Date(2025, 8, 18, 9, 30, 5, 0, time.UTC)
	require.NoError(t, Save(doc, path, true, now, logging.Nop))

	// Previous version renamed aside.
	backup, err := os.ReadFile(filepath.Join(dir, "database.backup_20250818_093005.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(backup), "Bananas")

	// New version written in place.
	current, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(current), "Plantains")
}

func TestSaveWithoutBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "database.xml")
	require.NoError(t, os.WriteFile(path, []byte(sampleXML), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)

	now := time.Date(2025, 8, 18, 9, 30, 5, 0, time.UTC)
	require.NoError(t, Save(doc, path, false, now, logging.Nop))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
