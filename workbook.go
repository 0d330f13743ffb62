package tabx

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

// Worksheet is one named 2-D grid of typed cells.
type Worksheet struct {
	Title string
	Rows  [][]Value
}

// Workbook is an ordered set of uniquely-titled worksheets, exactly one of
// which is active at a time.
type Workbook struct {
	sheets []*Worksheet
	active int
}

// NewWorkbook creates an in-memory workbook from the given worksheets.
// The first worksheet is active.
func NewWorkbook(sheets ...*Worksheet) *Workbook {
	return &Workbook{sheets: sheets}
}

// Titles returns the titles of all worksheets in order.
func (wb *Workbook) Titles() []string {
	titles := make([]string, len(wb.sheets))
	for i, ws := range wb.sheets {
		titles[i] = ws.Title
	}
	return titles
}

// Active returns the currently active worksheet, or nil for an empty
// workbook.
func (wb *Workbook) Active() *Worksheet {
	if len(wb.sheets) == 0 {
		return nil
	}
	return wb.sheets[wb.active]
}

// SetActive selects the active worksheet by title. An empty title selects
// the first worksheet. An unknown title fails with a NotFoundError.
func (wb *Workbook) SetActive(title string) error {
	if title == "" {
		wb.active = 0
		return nil
	}
	for i, ws := range wb.sheets {
		if ws.Title == title {
			wb.active = i
			return nil
		}
	}
	return &NotFoundError{Worksheet: title}
}

// LoadWorkbook reads an XLSX file into an in-memory workbook. The whole
// file is decoded up front; inputs are small, bounded files and holding
// them in memory keeps worksheet switching simple.
func LoadWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, &SourceFormatError{Name: filepath.Base(path), Err: err}
	}
	defer f.Close()
	return decodeWorkbook(f)
}

// ReadWorkbook decodes an XLSX stream into an in-memory workbook. The name
// is used in error messages only.
func ReadWorkbook(r io.Reader, name string) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &SourceFormatError{Name: name, Err: err}
	}
	defer f.Close()
	return decodeWorkbook(f)
}

func decodeWorkbook(f *excelize.File) (*Workbook, error) {
	wb := &Workbook{}
	for _, title := range f.GetSheetList() {
		rows, err := f.GetRows(title)
		if err != nil {
			return nil, &SourceFormatError{Name: title, Err: err}
		}

		ws := &Worksheet{Title: title, Rows: make([][]Value, len(rows))}
		for r, row := range rows {
			cells := make([]Value, len(row))
			for c, formatted := range row {
				cells[c] = decodeCell(f, title, r, c, formatted)
			}
			ws.Rows[r] = cells
		}
		wb.sheets = append(wb.sheets, ws)
	}
	return wb, nil
}

// decodeCell classifies one formatted cell string using the codec's cell
// type where it helps. Excelize hands back display strings, so numbers and
// dates are recovered by probing.
func decodeCell(f *excelize.File, sheet string, row, col int, formatted string) Value {
	if formatted == "" {
		return Null()
	}

	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return Text(formatted)
	}

	cellType, err := f.GetCellType(sheet, name)
	if err != nil {
		return Text(formatted)
	}

	switch cellType {
	case excelize.CellTypeBool:
		return Bool(formatted == "TRUE")
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return Text(formatted)
	case excelize.CellTypeDate:
		if t, ok := probeTime(formatted); ok {
			return Timestamp(t)
		}
		return Text(formatted)
	}

	// Number cells and untyped cells: prefer the formatted value, fall back
	// to the raw serial value when formatting got in the way.
	if v := parseCellValue(formatted); v.Kind() == KindNumber || v.Kind() == KindTime {
		return v
	}
	if raw, err := f.GetCellValue(sheet, name, excelize.Options{RawCellValue: true}); err == nil && raw != formatted {
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return Number(n)
		}
	}
	return Text(formatted)
}

func probeTime(formatted string) (time.Time, bool) {
	for _, layout := range cellTimeLayouts {
		if t, err := time.Parse(layout, formatted); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
