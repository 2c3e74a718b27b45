package sheetdb

// Table is an in-memory snapshot of one worksheet: a header row plus data
// rows. Rows are positional; column order matters. A Table with no data rows
// is valid and simply reports Len() == 0.
type Table struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// Len returns the number of data rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// Empty reports whether the table carries no data rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// ColumnIndex resolves a header name to its column position. The match is
// exact, whitespace included; blank header cells never match anything.
func (t Table) ColumnIndex(header string) (int, bool) {
	if header == "" {
		return 0, false
	}
	for i, h := range t.Headers {
		if h == header {
			return i, true
		}
	}
	return 0, false
}

// Cell returns the cell at (row, header), or "" when the header does not
// exist or the row is ragged. A mismatched header is treated as an absent
// column, never an error.
func (t Table) Cell(row int, header string) string {
	col, ok := t.ColumnIndex(header)
	if !ok {
		return ""
	}
	return t.CellAt(row, col)
}

// CellAt returns the cell at (row, col) by position, or "" when out of range.
func (t Table) CellAt(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return ""
	}
	cells := t.Rows[row]
	if col >= len(cells) {
		return ""
	}
	return cells[col]
}
