package tabular

import (
	"fmt"

	"audiotools/internal/curation"
)

// Table is an ordered header plus ordered rows. Row order is preserved from
// construction so repeated runs over unchanged input produce byte-identical
// output files.
type Table struct {
	Header []string
	Rows   [][]string
}

// New returns an empty table with the given header.
func New(header ...string) *Table {
	h := make([]string, len(header))
	copy(h, header)
	return &Table{Header: h}
}

// Append adds a row. Short rows are padded with empty cells so every row
// matches the header width.
func (t *Table) Append(row ...string) {
	if len(row) < len(t.Header) {
		padded := make([]string, len(t.Header))
		copy(padded, row)
		row = padded
	}
	t.Rows = append(t.Rows, row)
}

// Len reports the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex finds a header column by exact name.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, col := range t.Header {
		if col == name {
			return i, true
		}
	}
	return 0, false
}

// RequireColumn resolves a column or fails with a schema error naming the
// offending column and the actual header.
func (t *Table) RequireColumn(operation, name string) (int, error) {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return 0, curation.Wrap(curation.ErrSchema, operation,
			fmt.Sprintf("column %q not found in header %v", name, t.Header), nil)
	}
	return idx, nil
}

// Cell returns row[col], tolerating ragged rows.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}
