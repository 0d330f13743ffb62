package tabx

// rowCursor walks worksheet rows in one direction only. Rows already
// consumed cannot be replayed; the header search and the record iteration
// share a single pass over the data.
type rowCursor struct {
	rows [][]Value
	pos  int
}

func newRowCursor(rows [][]Value) *rowCursor {
	return &rowCursor{rows: rows}
}

// next returns the next row, or false when the cursor is exhausted.
func (c *rowCursor) next() ([]Value, bool) {
	if c.pos >= len(c.rows) {
		return nil, false
	}
	row := c.rows[c.pos]
	c.pos++
	return row, true
}

// rstripRow builds a new slice with trailing null values removed.
// Leading and interior nulls are preserved.
func rstripRow(row []Value) []Value {
	end := len(row)
	for end > 0 && row[end-1].IsNull() {
		end--
	}
	return row[:end]
}

// countValues counts the non-null cells in a row.
func countValues(row []Value) int {
	count := 0
	for _, v := range row {
		if !v.IsNull() {
			count++
		}
	}
	return count
}

// isTerminator reports whether every cell in the row is null. An all-null
// row ends a data table.
func isTerminator(row []Value) bool {
	return countValues(row) == 0
}
