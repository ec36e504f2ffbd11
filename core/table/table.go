// core/table/table.go
// Package table holds small column-ordered tables of heterogeneous cells
// (numbers, strings, uncertain values) on their way into a rendered
// report. Columns are named and keep insertion order.
package table

import (
	"fmt"
	"strconv"
	"strings"

	"labtool/core/uncert"
)

// Table is a named-column table. The zero value via New is empty and
// ready to use.
type Table struct {
	names []string
	cols  [][]any
}

// New returns an empty table.
func New() *Table { return &Table{} }

// FromRows builds a table from row-major cells. With nil names the
// columns are named by index like a headerless import would be.
func FromRows(names []string, rows [][]any) (*Table, error) {
	t := New()
	if len(rows) == 0 {
		if names == nil {
			return t, nil
		}
		for _, name := range names {
			if err := t.AddColumn(name, nil); err != nil {
				return nil, err
			}
		}
		return t, nil
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("table: row %d has %d cells, want %d", i, len(row), width)
		}
	}
	if names == nil {
		names = make([]string, width)
		for j := range names {
			names[j] = strconv.Itoa(j)
		}
	}
	if len(names) != width {
		return nil, fmt.Errorf("table: %d column names for %d columns", len(names), width)
	}
	for j, name := range names {
		col := make([]any, len(rows))
		for i, row := range rows {
			col[i] = row[j]
		}
		if err := t.AddColumn(name, col); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// AddColumn appends a named column. Every column after the first must
// match the table's row count, and names must be unique.
func (t *Table) AddColumn(name string, cells []any) error {
	if len(t.cols) > 0 && len(cells) != t.NumRows() {
		return fmt.Errorf("table: column %q has %d rows, want %d", name, len(cells), t.NumRows())
	}
	for _, existing := range t.names {
		if existing == name {
			return fmt.Errorf("table: duplicate column %q", name)
		}
	}
	t.names = append(t.names, name)
	t.cols = append(t.cols, cells)
	return nil
}

// AddFloats appends a numeric column.
func (t *Table) AddFloats(name string, xs []float64) error {
	cells := make([]any, len(xs))
	for i, x := range xs {
		cells[i] = x
	}
	return t.AddColumn(name, cells)
}

// AddValues appends a column of uncertain values.
func (t *Table) AddValues(name string, vs []uncert.Value) error {
	cells := make([]any, len(vs))
	for i, v := range vs {
		cells[i] = v
	}
	return t.AddColumn(name, cells)
}

// AddStrings appends a text column.
func (t *Table) AddStrings(name string, ss []string) error {
	cells := make([]any, len(ss))
	for i, s := range ss {
		cells[i] = s
	}
	return t.AddColumn(name, cells)
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.cols) }

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return len(t.cols[0])
}

// Cell returns the cell at row i, column j.
func (t *Table) Cell(i, j int) any { return t.cols[j][i] }

// Row returns the cells of row i in column order.
func (t *Table) Row(i int) []any {
	row := make([]any, len(t.cols))
	for j, col := range t.cols {
		row[j] = col[i]
	}
	return row
}

// Select returns a new table holding the named columns in the given
// order.
func (t *Table) Select(names ...string) (*Table, error) {
	out := New()
	for _, name := range names {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		if err := out.AddColumn(name, col); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (t *Table) colIndex(name string) (int, error) {
	for j, n := range t.names {
		if n == name {
			return j, nil
		}
	}
	return 0, fmt.Errorf("table: no column %q (have %s)", name, strings.Join(t.names, ", "))
}

// Column returns the cells of the named column.
func (t *Table) Column(name string) ([]any, error) {
	j, err := t.colIndex(name)
	if err != nil {
		return nil, err
	}
	return append([]any(nil), t.cols[j]...), nil
}

// Floats returns the named column as float64s. Numeric cells convert
// directly, numeric strings are parsed, and uncertain values contribute
// their nominal value.
func (t *Table) Floats(name string) ([]float64, error) {
	j, err := t.colIndex(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(t.cols[j]))
	for i, cell := range t.cols[j] {
		x, err := asFloat(cell)
		if err != nil {
			return nil, fmt.Errorf("table: column %q row %d: %w", name, i, err)
		}
		out[i] = x
	}
	return out, nil
}

// Values returns the named column as uncertain values. Plain numbers
// become exact values; strings must parse as numbers or "n+/-s" cells.
func (t *Table) Values(name string) ([]uncert.Value, error) {
	j, err := t.colIndex(name)
	if err != nil {
		return nil, err
	}
	out := make([]uncert.Value, len(t.cols[j]))
	for i, cell := range t.cols[j] {
		switch x := cell.(type) {
		case uncert.Value:
			out[i] = x
		case string:
			v, err := uncert.Parse(x)
			if err != nil {
				f, ferr := strconv.ParseFloat(strings.TrimSpace(x), 64)
				if ferr != nil {
					return nil, fmt.Errorf("table: column %q row %d: %w", name, i, err)
				}
				v = uncert.Exact(f)
			}
			out[i] = v
		default:
			f, err := asFloat(cell)
			if err != nil {
				return nil, fmt.Errorf("table: column %q row %d: %w", name, i, err)
			}
			out[i] = uncert.Exact(f)
		}
	}
	return out, nil
}

func asFloat(cell any) (float64, error) {
	switch x := cell.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uncert.Value:
		return x.N(), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, fmt.Errorf("not numeric: %q", x)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("not numeric: %T", cell)
	}
}
