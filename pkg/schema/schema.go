// Package schema declares and checks the expected column layout of loaded
// interaction tables. Validation is a pure check: it never modifies the table
// and collects every problem instead of stopping at the first.
package schema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dd0wney/ppigraph/pkg/dataset"
)

// ColumnType is the expected value type of a column.
type ColumnType uint8

const (
	String ColumnType = iota
	Int
	Float
)

// String returns the type name.
func (ct ColumnType) String() string {
	switch ct {
	case String:
		return "string"
	case Int:
		return "int"
	case Float:
		return "float"
	default:
		return "unknown"
	}
}

// ColumnSpec describes one expected column.
type ColumnSpec struct {
	Name string     `validate:"required"`
	Type ColumnType `validate:"lte=2"`
}

// Schema is an ordered set of expected columns.
type Schema struct {
	columns []ColumnSpec
}

var validate = validator.New()

// New builds a schema from column specs. Specs are themselves validated so a
// misdeclared schema fails loudly at construction rather than during checks.
func New(columns ...ColumnSpec) (*Schema, error) {
	seen := make(map[string]bool, len(columns))
	for _, spec := range columns {
		if err := validate.Struct(spec); err != nil {
			return nil, fmt.Errorf("invalid column spec %+v: %w", spec, err)
		}
		if seen[spec.Name] {
			return nil, fmt.Errorf("duplicate column %q in schema", spec.Name)
		}
		seen[spec.Name] = true
	}
	return &Schema{columns: append([]ColumnSpec(nil), columns...)}, nil
}

// InteractionSchema returns the canonical schema of raw interaction files.
func InteractionSchema() *Schema {
	s, err := New(
		ColumnSpec{Name: "confidence_value", Type: Float},
		ColumnSpec{Name: "detection_method", Type: String},
		ColumnSpec{Name: "a_uniprot_id", Type: String},
		ColumnSpec{Name: "b_uniprot_id", Type: String},
		ColumnSpec{Name: "interaction_type", Type: String},
		ColumnSpec{Name: "pmid", Type: String},
		ColumnSpec{Name: "a_name", Type: String},
		ColumnSpec{Name: "a_taxid", Type: Int},
		ColumnSpec{Name: "b_name", Type: String},
		ColumnSpec{Name: "b_taxid", Type: Int},
	)
	if err != nil {
		panic(err) // static schema, cannot fail
	}
	return s
}

// Mistyped records one cell that does not parse as the declared column type.
type Mistyped struct {
	Column string
	Type   ColumnType
	Row    int // 0-based data row
	Value  string
}

// SchemaError lists every missing and mistyped column found by Validate.
type SchemaError struct {
	Missing  []string
	Mistyped []Mistyped
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing columns: %s", strings.Join(e.Missing, ", ")))
	}
	for _, m := range e.Mistyped {
		parts = append(parts, fmt.Sprintf("column %s row %d: %q is not a valid %s", m.Column, m.Row, m.Value, m.Type))
	}
	if len(parts) == 0 {
		return "schema mismatch"
	}
	return "schema mismatch: " + strings.Join(parts, "; ")
}

// Unwrap ties SchemaError into the pipeline error taxonomy.
func (e *SchemaError) Unwrap() error {
	return dataset.ErrSchema
}

// Validate checks that every declared column is present and that non-empty
// cells parse as the declared type. A zero-row table with the right header
// passes. Returns *SchemaError on failure, nil otherwise.
func (s *Schema) Validate(table *dataset.Table) error {
	serr := &SchemaError{}

	for _, spec := range s.columns {
		if !table.HasColumn(spec.Name) {
			serr.Missing = append(serr.Missing, spec.Name)
			continue
		}
		if spec.Type == String {
			continue
		}

		values, err := table.ColumnValues(spec.Name)
		if err != nil {
			serr.Missing = append(serr.Missing, spec.Name)
			continue
		}
		for row, v := range values {
			if v == "" {
				continue
			}
			if !parses(v, spec.Type) {
				serr.Mistyped = append(serr.Mistyped, Mistyped{
					Column: spec.Name,
					Type:   spec.Type,
					Row:    row,
					Value:  v,
				})
			}
		}
	}

	if len(serr.Missing) > 0 || len(serr.Mistyped) > 0 {
		return serr
	}
	return nil
}

// Columns returns the declared column names in order.
func (s *Schema) Columns() []string {
	names := make([]string, len(s.columns))
	for i, spec := range s.columns {
		names[i] = spec.Name
	}
	return names
}

func parses(v string, t ColumnType) bool {
	switch t {
	case Int:
		_, err := strconv.ParseInt(v, 10, 64)
		return err == nil
	case Float:
		_, err := strconv.ParseFloat(v, 64)
		return err == nil
	default:
		return true
	}
}

// IsSchemaError reports whether err is (or wraps) a SchemaError.
func IsSchemaError(err error) bool {
	var serr *SchemaError
	return errors.As(err, &serr)
}
