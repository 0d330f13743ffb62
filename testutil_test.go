package tabx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var boardHeader = []string{
	"Thickness (mm)",
	"Colour",
	"Finish",
	"Has Grain",
	"Allow Partial",
	"Percentage Wastage",
	"Board Length (mm)",
	"Board Width (mm)",
	"Wholesale Price",
	"Retail Price",
	"Default",
}

var boardRows = [][]any{
	{"16mm", "Ashen Walnut", "Embossed", "Yes", "No", nil, 2400, 1200, 75.5, 100, "No"},
	{"16mm", "Dark Walnut", "Embossed", "Yes", "No", nil, 2400, 1200, 75.5, 100, "No"},
}

func boardRecord(row []any) Record {
	fields := []string{
		"thickness_mm", "colour", "finish", "has_grain", "allow_partial",
		"percentage_wastage", "board_length_mm", "board_width_mm",
		"wholesale_price", "retail_price", "default",
	}
	rec := make(Record, len(fields))
	for i, name := range fields {
		rec[name] = FromAny(row[i])
	}
	return rec
}

// createProductsFile builds the multi-worksheet test fixture in memory.
//
// Layout mirrors the sort of file customers actually send: one tidy table,
// one buried under banner rows, two with ragged rows, one with messy header
// cells, and two with no usable table at all.
func createProductsFile(t *testing.T) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	setRow := func(sheet string, row int, cells []any) {
		cell, err := excelize.CoordinatesToCellName(1, row)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &cells))
	}
	addSheet := func(title string) {
		_, err := f.NewSheet(title)
		require.NoError(t, err)
	}
	headerRow := func() []any {
		cells := make([]any, len(boardHeader))
		for i, h := range boardHeader {
			cells[i] = h
		}
		return cells
	}

	require.NoError(t, f.SetSheetName("Sheet1", "Simple"))
	setRow("Simple", 1, headerRow())
	setRow("Simple", 2, boardRows[0])
	setRow("Simple", 3, boardRows[1])

	addSheet("Skip Rows")
	setRow("Skip Rows", 1, []any{"Product Boards"})
	setRow("Skip Rows", 2, []any{"13 Oct 2023"})
	setRow("Skip Rows", 4, headerRow())
	setRow("Skip Rows", 5, boardRows[0])
	setRow("Skip Rows", 6, boardRows[1])

	addSheet("Too Few Data")
	setRow("Too Few Data", 1, []any{"Header", "Header2", "Header3"})
	setRow("Too Few Data", 2, []any{"One", "Two"})
	setRow("Too Few Data", 3, []any{nil, "Two", "Three"})

	addSheet("Too Many Data")
	setRow("Too Many Data", 1, []any{"Header", "Header2", "Header3"})
	setRow("Too Many Data", 2, []any{"One", "Two", "Three", "Four"})
	setRow("Too Many Data", 3, []any{"One", "Two", "Three", "Four", "Five", "Six"})

	addSheet("Odd Header Types")
	setRow("Odd Header Types", 1, []any{"One", 2, 3.1, nil, "five"})
	setRow("Odd Header Types", 2, []any{1, 2, 3, 4, 5})

	addSheet("Empty Sheet")

	addSheet("No Data Table")
	setRow("No Data Table", 1, []any{"Notes"})
	setRow("No Data Table", 3, []any{"Nothing tabular here", nil, nil})

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func openTestReader(t *testing.T) *Reader {
	t.Helper()
	reader, err := OpenReader(createProductsFile(t), "products.xlsx")
	require.NoError(t, err)
	return reader
}
