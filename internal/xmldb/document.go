// =============================================================================
// POS Catalog Sync - XML Database Model
// =============================================================================
//
// This module models the scale software's XML database as an in-memory tree
// that can be parsed, mutated in place, and serialized deterministically.
//
// DOCUMENT STRUCTURE:
//
//   <database>
//     <table name="ITEM">
//       <record>
//         <field column_name="PLU Number" exclusion="false">1001</field>
//         <field column_name="Display Text" exclusion="false">Bananas</field>
//         ...
//       </record>
//     </table>
//     <table name="ITEM in Band">
//       ...
//     </table>
//   </database>
//
// Tables and records keep their document order; each record is an unordered
// bag of (column_name -> text) fields accessed by name with explicit
// presence checks. Creating a missing field is an explicit insert with
// exclusion="false", not an error path.
//
// =============================================================================

package xmldb

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	apperrors "github.com/ginjaninja78/pos-catalog-sync/pkg/errors"
)

// xmlDeclaration is written ahead of the marshalled tree. The scale software
// expects a declaration line, which encoding/xml does not emit on its own.
const xmlDeclaration = `<?xml version="1.0" encoding="utf-8"?>` + "\n"

// Document is the root of the XML database tree. The root element name is
// preserved from the parsed file.
type Document struct {
	XMLName xml.Name
	Tables  []*Table `xml:"table"`
}

// Table is an ordered sequence of records under a named <table> element.
type Table struct {
	Name    string    `xml:"name,attr"`
	Records []*Record `xml:"record"`
}

// Record is a bag of named fields.
type Record struct {
	Fields []*Field `xml:"field"`
}

// Field is a single (column_name -> text) entry.
type Field struct {
	Column    string `xml:"column_name,attr"`
	Exclusion string `xml:"exclusion,attr,omitempty"`
	Value     string `xml:",chardata"`
}

// Load reads and parses the XML database at path.
//
// A missing file maps to ErrTargetNotFound and an unparsable document to a
// plain parse error; both are structural failures the caller must treat as
// fatal.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrTargetNotFound, path)
		}
		return nil, fmt.Errorf("failed to read XML database: %w", err)
	}
	return Parse(data)
}

// Parse unmarshals an XML database document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse XML database: %w", err)
	}
	return &doc, nil
}

// Marshal serializes the tree with the XML declaration and two-space
// indentation. Output is deterministic for a given tree.
func (d *Document) Marshal() ([]byte, error) {
	if d.XMLName.Local == "" {
		d.XMLName.Local = "database"
	}
	body, err := xml.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal XML database: %w", err)
	}

	var buf strings.Builder
	buf.WriteString(xmlDeclaration)
	buf.Write(body)
	buf.WriteString("\n")
	return []byte(buf.String()), nil
}

// Table returns the table with the given name, or nil if absent.
func (d *Document) Table(name string) *Table {
	for _, t := range d.Tables {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// AppendRecord appends a record at the end of the table, after all existing
// records.
func (t *Table) AppendRecord(r *Record) {
	t.Records = append(t.Records, r)
}

// Field returns the first field with the given column name, or nil if the
// record does not carry it.
func (r *Record) Field(column string) *Field {
	for _, f := range r.Fields {
		if f.Column == column {
			return f
		}
	}
	return nil
}

// Value returns the trimmed text of the named field, or "" when absent.
func (r *Record) Value(column string) string {
	if f := r.Field(column); f != nil {
		return strings.TrimSpace(f.Value)
	}
	return ""
}

// SetField overwrites the named field's text, creating the field with
// exclusion="false" when the record does not carry it yet.
func (r *Record) SetField(column, value string) {
	if f := r.Field(column); f != nil {
		f.Value = value
		return
	}
	r.Fields = append(r.Fields, NewField(column, value))
}

// NewField builds a field with the exclusion attribute the scale software
// expects on engine-written fields.
func NewField(column, value string) *Field {
	return &Field{Column: column, Exclusion: "false", Value: value}
}
