package tabx

// readOptions holds configuration for one Read call.
type readOptions struct {
	restkey    string
	restval    Value
	minValues  int
	abortAfter int
}

func defaultReadOptions() *readOptions {
	return &readOptions{
		restval:    Null(),
		minValues:  DefaultMinValues,
		abortAfter: DefaultAbortAfter,
	}
}

// ReadOption configures a Read call.
type ReadOption func(*readOptions)

// WithRestKey sets the record key that collects excess row data. The
// default is the empty-string placeholder key.
func WithRestKey(key string) ReadOption {
	return func(o *readOptions) { o.restkey = key }
}

// WithRestVal sets the value used to fill in missing row data (default:
// the null value).
func WithRestVal(v Value) ReadOption {
	return func(o *readOptions) { o.restval = v }
}

// WithMinValues sets the minimum number of populated cells a row needs to
// qualify as the header (default: 3).
func WithMinValues(n int) ReadOption {
	return func(o *readOptions) { o.minValues = n }
}

// WithAbortAfter sets how many non-qualifying rows the header search will
// examine before giving up (default: 10).
func WithAbortAfter(n int) ReadOption {
	return func(o *readOptions) { o.abortAfter = n }
}

// writerOptions holds configuration for a Writer. Styling defaults are
// explicit configuration here rather than package state.
type writerOptions struct {
	font        string
	size        float64
	titleSize   float64
	destination string
}

func defaultWriterOptions() *writerOptions {
	return &writerOptions{
		font:      "Calibri",
		size:      11,
		titleSize: 16,
	}
}

// WriterOption configures a Writer.
type WriterOption func(*writerOptions)

// WithFont sets the default font name (default: "Calibri").
func WithFont(name string) WriterOption {
	return func(o *writerOptions) { o.font = name }
}

// WithFontSize sets the default font size (default: 11).
func WithFontSize(size float64) WriterOption {
	return func(o *writerOptions) { o.size = size }
}

// WithTitleSize sets the font size used by AddTitle (default: 16).
func WithTitleSize(size float64) WriterOption {
	return func(o *writerOptions) { o.titleSize = size }
}

// WithDestination sets the path used by Save when none is given later.
func WithDestination(path string) WriterOption {
	return func(o *writerOptions) { o.destination = path }
}
