package dataset

import (
	"fmt"
)

// Table is an in-memory tabular dataset: an ordered header plus string cells.
// Tables are built once by the loader and read-only afterwards.
type Table struct {
	columns []string
	index   map[string]int // column name -> position
	rows    [][]string
}

// NewTable creates a table with the given header. Duplicate column names are
// rejected because later lookups by name would be ambiguous.
func NewTable(columns []string) (*Table, error) {
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		if _, ok := index[col]; ok {
			return nil, fmt.Errorf("duplicate column %q", col)
		}
		index[col] = i
	}
	return &Table{
		columns: append([]string(nil), columns...),
		index:   index,
		rows:    make([][]string, 0),
	}, nil
}

// AppendRow adds a row. The cell count must match the header width.
func (t *Table) AppendRow(cells []string) error {
	if len(cells) != len(t.columns) {
		return fmt.Errorf("row has %d cells, header has %d columns", len(cells), len(t.columns))
	}
	t.rows = append(t.rows, append([]string(nil), cells...))
	return nil
}

// Columns returns the ordered column names.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// NumRows returns the row count.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// Cell returns the value at (row, column name).
func (t *Table) Cell(row int, column string) (string, error) {
	pos, ok := t.index[column]
	if !ok {
		return "", fmt.Errorf("no column %q", column)
	}
	if row < 0 || row >= len(t.rows) {
		return "", fmt.Errorf("row %d out of range (%d rows)", row, len(t.rows))
	}
	return t.rows[row][pos], nil
}

// MustCell is Cell for callers that already validated the schema.
// It panics on unknown columns, which indicates a programming error.
func (t *Table) MustCell(row int, column string) string {
	v, err := t.Cell(row, column)
	if err != nil {
		panic(err)
	}
	return v
}

// ColumnValues returns all values of the named column in row order.
func (t *Table) ColumnValues(column string) ([]string, error) {
	pos, ok := t.index[column]
	if !ok {
		return nil, fmt.Errorf("no column %q", column)
	}
	values := make([]string, len(t.rows))
	for i, row := range t.rows {
		values[i] = row[pos]
	}
	return values, nil
}
