// core/ingest/ingest.go
// Package ingest reads measurement tables from CSV and XLSX files into
// table.Table values. Cells are coerced on the way in: numeric literals
// become float64, serialized "n+/-s" cells become uncertain values,
// everything else stays text.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"labtool/core/table"
	"labtool/core/uncert"
)

// CSVOptions control CSV parsing. The zero value reads comma separated
// data without a header row.
type CSVOptions struct {
	// Comma is the field separator; 0 means ','.
	Comma rune
	// Comment skips lines starting with this rune when non-zero.
	Comment rune
	// Header treats the first row as column names.
	Header bool
}

// ReadCSV parses CSV data from r.
func ReadCSV(r io.Reader, opt CSVOptions) (*table.Table, error) {
	cr := csv.NewReader(r)
	if opt.Comma != 0 {
		cr.Comma = opt.Comma
	}
	cr.Comment = opt.Comment
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ingest: read csv: %w", err)
	}
	return build(records, opt.Header)
}

// ReadCSVFile parses the CSV file at path.
func ReadCSVFile(path string, opt CSVOptions) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open %s: %w", path, err)
	}
	defer f.Close()
	t, err := ReadCSV(f, opt)
	if err != nil {
		return nil, fmt.Errorf("ingest: %s: %w", path, err)
	}
	return t, nil
}

// XLSXOptions control workbook parsing.
type XLSXOptions struct {
	// Header treats the first row as column names.
	Header bool
}

// ReadXLSX reads one sheet of the workbook at path. An empty sheet name
// means the first sheet.
func ReadXLSX(path, sheet string, opt XLSXOptions) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open %s: %w", path, err)
	}
	defer f.Close()
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("ingest: %s sheet %q: %w", path, sheet, err)
	}
	// excelize trims trailing empty cells per row; square the grid.
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	for i, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		rows[i] = row
	}
	return build(rows, opt.Header)
}

func build(records [][]string, header bool) (*table.Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("ingest: no rows")
	}
	var names []string
	body := records
	if header {
		names = records[0]
		body = records[1:]
	}
	rows := make([][]any, len(body))
	for i, rec := range body {
		row := make([]any, len(rec))
		for j, cell := range rec {
			row[j] = coerce(cell)
		}
		rows[i] = row
	}
	return table.FromRows(names, rows)
}

func coerce(s string) any {
	t := strings.TrimSpace(s)
	if t == "" {
		return ""
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil {
		return f
	}
	if v, err := uncert.Parse(t); err == nil {
		return v
	}
	return t
}
