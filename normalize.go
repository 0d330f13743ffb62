package tabx

// Record maps field names to cell values for a single data row. Field
// entries hold a Value; when a row carries more cells than the header the
// excess is kept in order under the restkey as a []Value.
type Record map[string]any

// Native returns a copy of the record with cell values unwrapped to plain
// Go types, suitable for JSON encoding or expression evaluation.
func (r Record) Native() map[string]any {
	native := make(map[string]any, len(r))
	for key, value := range r {
		native[key] = nativeValue(value)
	}
	return native
}

// normalizer reconciles data rows against a fixed set of field names,
// mirroring dict-reader conventions: short rows are padded with restval,
// long rows overflow into restkey.
type normalizer struct {
	fieldnames []string
	restkey    string
	restval    Value
}

// newNormalizer validates the restkey against the field names. A restkey
// that collides with a field would silently clobber data, so setup fails
// with a ConfigError before any row is read.
func newNormalizer(fieldnames []string, restkey string, restval Value) (*normalizer, error) {
	for _, name := range fieldnames {
		if restkey == name {
			return nil, configErrorf("restkey %q clashes with fieldnames", restkey)
		}
	}
	return &normalizer{
		fieldnames: fieldnames,
		restkey:    restkey,
		restval:    restval,
	}, nil
}

// normalize builds a Record from one data row. The row must not be a
// terminator; the caller stops iteration before one reaches here.
func (n *normalizer) normalize(row []Value) Record {
	row = rstripRow(row)

	record := make(Record, len(n.fieldnames)+1)
	for i, name := range n.fieldnames {
		if i < len(row) {
			record[name] = row[i]
		} else {
			// Too few cells: fill in the blanks.
			record[name] = n.restval
		}
	}

	// Too many cells: capture the excess in order.
	if len(row) > len(n.fieldnames) {
		rest := make([]Value, len(row)-len(n.fieldnames))
		copy(rest, row[len(n.fieldnames):])
		record[n.restkey] = rest
	}

	return record
}
