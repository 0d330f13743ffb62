package tabx

import "io"

// Reader extracts field-keyed records from a workbook, one worksheet at a
// time. Like a dict-reader it uses the header row for keys, but first it
// hunts for that header: real-world exports bury the table under titles,
// dates, and blank rows.
//
//	r, err := tabx.Open(path)
//	set, err := r.Read()
//	for rec, ok := set.Next(); ok; rec, ok = set.Next() {
//		...
//	}
//
// Operations apply to the active worksheet only; the first worksheet is
// active after open.
type Reader struct {
	wb     *Workbook
	cursor *rowCursor
}

// Open loads an XLSX file and positions the reader on its first worksheet.
func Open(path string) (*Reader, error) {
	wb, err := LoadWorkbook(path)
	if err != nil {
		return nil, err
	}
	return NewReader(wb), nil
}

// OpenReader decodes an XLSX stream. The name is used in errors only.
func OpenReader(r io.Reader, name string) (*Reader, error) {
	wb, err := ReadWorkbook(r, name)
	if err != nil {
		return nil, err
	}
	return NewReader(wb), nil
}

// NewReader wraps an in-memory workbook. The workbook is exclusively owned
// by the reader from here on.
func NewReader(wb *Workbook) *Reader {
	r := &Reader{wb: wb}
	r.Reset()
	return r
}

// Worksheet returns the title of the active worksheet.
func (r *Reader) Worksheet() string {
	if ws := r.wb.Active(); ws != nil {
		return ws.Title
	}
	return ""
}

// Worksheets returns the titles of all available worksheets.
func (r *Reader) Worksheets() []string {
	return r.wb.Titles()
}

// SetWorksheet selects the active worksheet by title and resets the read
// position to its top. An empty title selects the first worksheet. Fails
// with a NotFoundError for an unknown title.
func (r *Reader) SetWorksheet(title string) error {
	if err := r.wb.SetActive(title); err != nil {
		return err
	}
	r.rewind()
	return nil
}

// Reset returns the reader to its initial state: first worksheet active,
// positioned at the top.
func (r *Reader) Reset() {
	_ = r.wb.SetActive("")
	r.rewind()
}

func (r *Reader) rewind() {
	var rows [][]Value
	if ws := r.wb.Active(); ws != nil {
		rows = ws.Rows
	}
	r.cursor = newRowCursor(rows)
}

// Read locates the data table in the active worksheet and returns a lazy,
// non-restartable sequence of records. The header search, field-name
// derivation, and restkey validation all happen here, before any data row
// is consumed.
//
// Iteration stops at the first all-null row. A second Read call continues
// from the current position; callers wanting a fresh pass must call
// SetWorksheet or Reset first.
func (r *Reader) Read(opts ...ReadOption) (*RecordSet, error) {
	o := defaultReadOptions()
	for _, opt := range opts {
		opt(o)
	}

	header, err := findHeader(r.cursor, r.Worksheet(), o.minValues, o.abortAfter)
	if err != nil {
		return nil, err
	}
	fieldnames := MakeSlugs(header)

	norm, err := newNormalizer(fieldnames, o.restkey, o.restval)
	if err != nil {
		return nil, err
	}

	return &RecordSet{
		cursor:     r.cursor,
		norm:       norm,
		fieldnames: fieldnames,
	}, nil
}

// RecordSet is a single-pass sequence of records. It shares the reader's
// cursor, so it cannot be rewound or restarted.
type RecordSet struct {
	cursor     *rowCursor
	norm       *normalizer
	fieldnames []string
	done       bool
}

// FieldNames returns the field names derived from the header row, in
// column order.
func (s *RecordSet) FieldNames() []string {
	return s.fieldnames
}

// Next returns the next record, or false once the table's terminator row
// (or the end of the worksheet) has been reached.
func (s *RecordSet) Next() (Record, bool) {
	if s.done {
		return nil, false
	}
	row, ok := s.cursor.next()
	if !ok || isTerminator(row) {
		s.done = true
		return nil, false
	}
	return s.norm.normalize(row), true
}

// Collect drains the sequence into a slice.
func (s *RecordSet) Collect() []Record {
	var records []Record
	for rec, ok := s.Next(); ok; rec, ok = s.Next() {
		records = append(records, rec)
	}
	return records
}
