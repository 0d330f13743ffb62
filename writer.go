package tabx

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// Writer appends rows of tabular data to a workbook. Every write lands on
// the active worksheet, one whole row at a time, to streamline the common
// case:
//
//	w := tabx.NewWriter()
//	w.AddHeader(header)
//	w.AddRows(rows)
//	w.Save()
type Writer struct {
	file *excelize.File
	opts *writerOptions
	next map[string]int // next append row per sheet, 1-based
}

// NewWriter creates a Writer over a fresh single-sheet workbook.
func NewWriter(opts ...WriterOption) *Writer {
	o := defaultWriterOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Writer{
		file: excelize.NewFile(),
		opts: o,
		next: make(map[string]int),
	}
}

// OpenWriter opens an existing XLSX file for appending. Unless overridden
// with WithDestination, Save writes back to the same path.
func OpenWriter(path string, opts ...WriterOption) (*Writer, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, &SourceFormatError{Name: filepath.Base(path), Err: err}
	}

	o := defaultWriterOptions()
	o.destination = path
	for _, opt := range opts {
		opt(o)
	}

	w := &Writer{file: f, opts: o, next: make(map[string]int)}
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			f.Close()
			return nil, &SourceFormatError{Name: filepath.Base(path), Err: err}
		}
		w.next[sheet] = len(rows) + 1
	}
	return w, nil
}

// Worksheet returns the title of the active worksheet.
func (w *Writer) Worksheet() string {
	return w.file.GetSheetName(w.file.GetActiveSheetIndex())
}

// Worksheets returns the titles of all worksheets.
func (w *Writer) Worksheets() []string {
	return w.file.GetSheetList()
}

// SetWorksheet selects the active worksheet by title. An empty title
// selects the first worksheet. Fails with a NotFoundError for an unknown
// title.
func (w *Writer) SetWorksheet(title string) error {
	if title == "" {
		title = w.file.GetSheetList()[0]
	}
	index, err := w.file.GetSheetIndex(title)
	if err != nil || index < 0 {
		return &NotFoundError{Worksheet: title}
	}
	w.file.SetActiveSheet(index)
	return nil
}

// AddWorksheet appends a new worksheet and makes it active. Duplicate
// titles fail with a ConfigError.
func (w *Writer) AddWorksheet(title string) error {
	index, err := w.file.NewSheet(title)
	if err != nil {
		return &ConfigError{Message: fmt.Sprintf("add worksheet %q", title), Err: err}
	}
	w.file.SetActiveSheet(index)
	return nil
}

// AddHeader writes a bold header row and widens each column to roughly fit
// its heading.
func (w *Writer) AddHeader(header []string) error {
	sheet := w.Worksheet()
	row := w.takeRow(sheet)

	cells := make([]any, len(header))
	for i, text := range header {
		cells[i] = text
	}
	if err := w.setRow(sheet, row, cells); err != nil {
		return err
	}

	styleID, err := w.newFontStyle(true, w.opts.size)
	if err != nil {
		return err
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(max(len(header), 1), row)
	if err := w.file.SetCellStyle(sheet, first, last, styleID); err != nil {
		return fmt.Errorf("style header row: %w", err)
	}

	// Tweak column widths
	for i, text := range header {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		width := math.Round(float64(len(text)+2) * 1.2) // magic
		if err := w.file.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}
	return nil
}

// AddTitle writes large, bold text to the current row.
func (w *Writer) AddTitle(title string) error {
	return w.addText(title, true, w.opts.titleSize)
}

// AddSubtitle writes bold, normal-sized text to the current row, eg. a help
// string or a date.
func (w *Writer) AddSubtitle(subtitle string) error {
	return w.addText(subtitle, true, w.opts.size)
}

// AddText writes a plain line of text to the current row.
func (w *Writer) AddText(text string) error {
	return w.addText(text, false, w.opts.size)
}

// AddBlank writes an empty row.
func (w *Writer) AddBlank() error {
	return w.AddText("")
}

// AddRows appends data rows verbatim, without styling. Cell values may be
// text, numbers, booleans, or timestamps.
func (w *Writer) AddRows(rows [][]Value) error {
	sheet := w.Worksheet()
	for _, row := range rows {
		cells := make([]any, len(row))
		for i, v := range row {
			cells[i] = v.Any()
		}
		if err := w.setRow(sheet, w.takeRow(sheet), cells); err != nil {
			return err
		}
	}
	return nil
}

// Save persists the workbook to the configured destination. Fails with a
// ConfigError when no destination was ever given.
func (w *Writer) Save() error {
	if w.opts.destination == "" {
		return &ConfigError{Message: "cannot save", Err: ErrNoDestination}
	}
	return w.file.SaveAs(w.opts.destination)
}

// SaveAs persists the workbook to the given path, which also becomes the
// destination for later Save calls.
func (w *Writer) SaveAs(path string) error {
	w.opts.destination = path
	return w.Save()
}

// Write serialises the workbook to the given writer.
func (w *Writer) Write(out io.Writer) error {
	return w.file.Write(out)
}

// Close releases the underlying workbook.
func (w *Writer) Close() error {
	return w.file.Close()
}

func (w *Writer) addText(text string, bold bool, size float64) error {
	sheet := w.Worksheet()
	row := w.takeRow(sheet)
	if err := w.setRow(sheet, row, []any{text}); err != nil {
		return err
	}

	if !bold && size == w.opts.size {
		return nil
	}

	styleID, err := w.newFontStyle(bold, size)
	if err != nil {
		return err
	}
	cell, _ := excelize.CoordinatesToCellName(1, row)
	if err := w.file.SetCellStyle(sheet, cell, cell, styleID); err != nil {
		return fmt.Errorf("style text row: %w", err)
	}

	// Tweak row height for oversized text
	if size != w.opts.size {
		const heightFactor = 1.5
		if err := w.file.SetRowHeight(sheet, row, math.Trunc(size*heightFactor)); err != nil {
			return fmt.Errorf("set row height: %w", err)
		}
	}
	return nil
}

func (w *Writer) newFontStyle(bold bool, size float64) (int, error) {
	styleID, err := w.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Family: w.opts.font,
			Size:   size,
			Bold:   bold,
		},
	})
	if err != nil {
		return 0, fmt.Errorf("create font style: %w", err)
	}
	return styleID, nil
}

// takeRow claims the next append row for a sheet.
func (w *Writer) takeRow(sheet string) int {
	row := w.next[sheet]
	if row == 0 {
		row = 1
	}
	w.next[sheet] = row + 1
	return row
}

func (w *Writer) setRow(sheet string, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := w.file.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}
