package tabx

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// RecordCursor yields records one at a time.
type RecordCursor interface {
	Next() (map[string]any, bool)
}

// RecordSource supplies records for export: a declared field order, optional
// human-friendly names, and the records themselves. A database query result
// or an in-memory slice both fit.
type RecordSource interface {
	FieldNames() []string
	VerboseNames() map[string]string
	Records() RecordCursor
}

// SliceSource is an in-memory RecordSource.
type SliceSource struct {
	Fields  []string
	Verbose map[string]string
	Data    []map[string]any
}

func (s *SliceSource) FieldNames() []string            { return s.Fields }
func (s *SliceSource) VerboseNames() map[string]string { return s.Verbose }
func (s *SliceSource) Records() RecordCursor           { return &sliceCursor{data: s.Data} }

type sliceCursor struct {
	data []map[string]any
	pos  int
}

func (c *sliceCursor) Next() (map[string]any, bool) {
	if c.pos >= len(c.data) {
		return nil, false
	}
	rec := c.data[c.pos]
	c.pos++
	return rec, true
}

// ExportSpec configures an Exporter.
type ExportSpec struct {
	// BaseName seeds suggested filenames, eg. "Stock Orders".
	BaseName string

	// Exclude lists fields to leave out of the export.
	Exclude []string

	// Converters maps field names to expressions that format the field's
	// value. The expression sees `value` and the whole `record`.
	Converters map[string]string

	// Choices maps field names to code→label tables; exported values use
	// the label, not the stored code.
	Choices map[string]map[string]string

	// ChoicesRaw names fields whose codes should export verbatim even when
	// a choice table exists.
	ChoicesRaw []string

	// VerboseNames overrides the generated header text per field. Every key
	// must reference an included field.
	VerboseNames map[string]string
}

// Exporter serialises a record source to CSV, JSON, or XLSX with field
// filtering, choice-label substitution, and per-field value conversion.
type Exporter struct {
	spec       ExportSpec
	source     RecordSource
	fields     []string
	choicesRaw map[string]bool
	programs   map[string]*vm.Program
}

// NewExporter builds an Exporter, validating the spec eagerly: verbose-name
// overrides must reference included fields and converter expressions must
// compile, otherwise construction fails with a ConfigError.
func NewExporter(source RecordSource, spec ExportSpec) (*Exporter, error) {
	excluded := make(map[string]bool, len(spec.Exclude))
	for _, name := range spec.Exclude {
		excluded[name] = true
	}

	var fields []string
	for _, name := range source.FieldNames() {
		if !excluded[name] {
			fields = append(fields, name)
		}
	}

	included := make(map[string]bool, len(fields))
	for _, name := range fields {
		included[name] = true
	}
	for key := range spec.VerboseNames {
		if !included[key] {
			return nil, configErrorf("verbose name for unknown or excluded field %q", key)
		}
	}

	programs := make(map[string]*vm.Program, len(spec.Converters))
	for name, src := range spec.Converters {
		program, err := expr.Compile(src, expr.Env(map[string]any{}), expr.AllowUndefinedVariables())
		if err != nil {
			return nil, &ConfigError{
				Message: fmt.Sprintf("converter for field %q", name),
				Err:     err,
			}
		}
		programs[name] = program
	}

	choicesRaw := make(map[string]bool, len(spec.ChoicesRaw))
	for _, name := range spec.ChoicesRaw {
		choicesRaw[name] = true
	}

	return &Exporter{
		spec:       spec,
		source:     source,
		fields:     fields,
		choicesRaw: choicesRaw,
		programs:   programs,
	}, nil
}

// FieldNames returns the included field names in export order.
func (e *Exporter) FieldNames() []string {
	return e.fields
}

// Header returns the verbose column headings, in the same order as row
// data.
func (e *Exporter) Header() []string {
	sourceNames := e.source.VerboseNames()
	header := make([]string, len(e.fields))
	for i, name := range e.fields {
		verbose, ok := e.spec.VerboseNames[name]
		if !ok {
			verbose, ok = sourceNames[name]
		}
		if !ok {
			verbose = titleise(name)
		}
		header[i] = verbose
	}
	return header
}

// Filename suggests a file name built from the base name and today's date,
// eg. "stock-orders-2026-08-31.csv".
func (e *Exporter) Filename(suffix string) string {
	name := strings.ReplaceAll(MakeSlug(e.spec.BaseName), "_", "-")
	if name == "" {
		name = "export"
	}
	return fmt.Sprintf("%s-%s.%s", name, time.Now().Format("2006-01-02"), suffix)
}

// Row builds the export values for one record, applying choice labels and
// converters.
func (e *Exporter) Row(record map[string]any) ([]any, error) {
	row := make([]any, len(e.fields))
	for i, name := range e.fields {
		value := nativeValue(record[name])

		// Export choice labels, not stored codes.
		if table, ok := e.spec.Choices[name]; ok && !e.choicesRaw[name] {
			if label, ok := table[fmt.Sprint(value)]; ok {
				value = label
			}
		}

		if program, ok := e.programs[name]; ok {
			converted, err := expr.Run(program, map[string]any{
				"value":  value,
				"record": record,
			})
			if err != nil {
				return nil, fmt.Errorf("convert field %q: %w", name, err)
			}
			value = converted
		}
		row[i] = value
	}
	return row, nil
}

// WriteCSV writes a header row and all records as CSV.
func (e *Exporter) WriteCSV(out io.Writer) error {
	w := csv.NewWriter(out)
	if err := w.Write(e.Header()); err != nil {
		return err
	}

	cursor := e.source.Records()
	for record, ok := cursor.Next(); ok; record, ok = cursor.Next() {
		row, err := e.Row(record)
		if err != nil {
			return err
		}
		text := make([]string, len(row))
		for i, value := range row {
			text[i] = stringValue(value)
		}
		if err := w.Write(text); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteJSON writes all records as an indented JSON array of objects keyed
// by field name.
func (e *Exporter) WriteJSON(out io.Writer) error {
	var data []map[string]any

	cursor := e.source.Records()
	for record, ok := cursor.Next(); ok; record, ok = cursor.Next() {
		row, err := e.Row(record)
		if err != nil {
			return err
		}
		datum := make(map[string]any, len(row))
		for i, name := range e.fields {
			datum[name] = row[i]
		}
		data = append(data, datum)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "    ")
	return enc.Encode(data)
}

// WriteXLSX writes a styled spreadsheet: bold header with fitted column
// widths, then all records.
func (e *Exporter) WriteXLSX(out io.Writer) error {
	w := NewWriter()
	defer w.Close()

	if err := w.AddHeader(e.Header()); err != nil {
		return err
	}

	var rows [][]Value
	cursor := e.source.Records()
	for record, ok := cursor.Next(); ok; record, ok = cursor.Next() {
		row, err := e.Row(record)
		if err != nil {
			return err
		}
		cells := make([]Value, len(row))
		for i, value := range row {
			cells[i] = excelValue(value)
		}
		rows = append(rows, cells)
	}
	if err := w.AddRows(rows); err != nil {
		return err
	}
	return w.Write(out)
}

// nativeValue unwraps reader Values so converters and encoders work with
// plain Go types.
func nativeValue(value any) any {
	switch v := value.(type) {
	case Value:
		return v.Any()
	case []Value:
		native := make([]any, len(v))
		for i, item := range v {
			native[i] = item.Any()
		}
		return native
	}
	return value
}

// stringValue forces a value to text for CSV output. Nulls become empty
// strings.
func stringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format(time.RFC3339)
	case float64:
		return Number(v).String()
	}
	return fmt.Sprint(value)
}

// excelValue converts a value to one of the types allowed in a spreadsheet
// cell. Booleans export as "Yes" or blank.
func excelValue(value any) Value {
	switch v := value.(type) {
	case nil:
		return Text("")
	case bool:
		if v {
			return Text("Yes")
		}
		return Text("")
	case time.Time:
		return Text(v.Format(time.RFC3339))
	}
	return FromAny(value)
}

// titleise builds a default column heading from a field name:
// "board_length_mm" → "Board Length Mm", with "id" special-cased to "ID".
func titleise(field string) string {
	if field == "id" {
		return "ID"
	}
	parts := strings.Split(field, "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}
