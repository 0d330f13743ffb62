// Package tabx extracts tabular data from loosely structured spreadsheets
// and writes it back out again.
//
// Each worksheet is assumed to hold one table of data with column headings,
// with perhaps a title or a date in the first couple of rows. The Reader
// hunts for the header row, derives unique identifier-safe field names from
// it, and yields one record per data row until an all-null terminator row.
// The Writer appends headers, titles, and data rows with minimal styling.
// The Exporter serialises any record source to CSV, JSON, or XLSX.
package tabx
