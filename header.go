package tabx

// Header search defaults. Real-world exports often prepend titles, dates,
// or blank rows before the actual header; a population threshold cheaply
// tells a sparse banner row from a real header.
const (
	DefaultMinValues  = 3
	DefaultAbortAfter = 10
)

// findHeader consumes rows from the cursor until one with at least
// minValues non-null cells turns up. The cursor is left positioned on the
// row after the header.
//
// Returns a TableNotFoundError naming the worksheet if more than abortAfter
// rows were examined without a match, or the cursor ran dry first.
func findHeader(cursor *rowCursor, worksheet string, minValues, abortAfter int) ([]Value, error) {
	numSearched := 0
	for {
		row, ok := cursor.next()
		if !ok {
			break
		}
		if countValues(row) >= minValues {
			return row, nil
		}
		numSearched++
		if numSearched > abortAfter {
			break
		}
	}
	return nil, &TableNotFoundError{Worksheet: worksheet}
}
