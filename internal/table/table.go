// ABOUTME: In-memory sample table made of named, equally sized columns.
// ABOUTME: Enforces the shared row count and unique column names on construction.

package table

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoColumns       = errors.New("table has no columns")
	ErrRaggedColumns   = errors.New("columns have different row counts")
	ErrDuplicateColumn = errors.New("duplicate column name")
	ErrEmptyColumnName = errors.New("column name is empty")
)

// Kind is the value type held by a column.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindString
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindDate:
		return "date"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Column is a homogeneous sequence of values.
// Values hold int, float64, string or time.Time according to Kind.
type Column struct {
	Name   string
	Kind   Kind
	Values []any
}

// Len returns the number of values in the column.
func (c Column) Len() int {
	return len(c.Values)
}

// Ints returns the column values as ints. Values of another type are skipped.
func (c Column) Ints() []int {
	out := make([]int, 0, len(c.Values))
	for _, v := range c.Values {
		if n, ok := v.(int); ok {
			out = append(out, n)
		}
	}
	return out
}

// Floats returns the column values as float64. Values of another type are skipped.
func (c Column) Floats() []float64 {
	out := make([]float64, 0, len(c.Values))
	for _, v := range c.Values {
		if f, ok := v.(float64); ok {
			out = append(out, f)
		}
	}
	return out
}

// Strings returns the column values as strings. Values of another type are skipped.
func (c Column) Strings() []string {
	out := make([]string, 0, len(c.Values))
	for _, v := range c.Values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Dates returns the column values as times. Values of another type are skipped.
func (c Column) Dates() []time.Time {
	out := make([]time.Time, 0, len(c.Values))
	for _, v := range c.Values {
		if d, ok := v.(time.Time); ok {
			out = append(out, d)
		}
	}
	return out
}

// Table is an ordered set of columns sharing one row count.
type Table struct {
	columns []Column
	rows    int
}

// New builds a table, rejecting ragged columns and duplicate names.
func New(columns ...Column) (*Table, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}

	seen := make(map[string]bool, len(columns))
	rows := columns[0].Len()
	for _, c := range columns {
		if c.Name == "" {
			return nil, ErrEmptyColumnName
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColumn, c.Name)
		}
		seen[c.Name] = true

		if c.Len() != rows {
			return nil, fmt.Errorf("%w: %s has %d rows, want %d", ErrRaggedColumns, c.Name, c.Len(), rows)
		}
	}

	cols := make([]Column, len(columns))
	copy(cols, columns)
	return &Table{columns: cols, rows: rows}, nil
}

// Rows returns the number of rows.
func (t *Table) Rows() int {
	return t.rows
}

// Columns returns the columns in order.
func (t *Table) Columns() []Column {
	return t.columns
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Column looks up a column by name.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Row returns the values of row i across all columns.
func (t *Table) Row(i int) []any {
	row := make([]any, len(t.columns))
	for j, c := range t.columns {
		row[j] = c.Values[i]
	}
	return row
}

// Head returns a table holding at most n leading rows.
func (t *Table) Head(n int) *Table {
	if n < 0 || n >= t.rows {
		return t
	}
	cols := make([]Column, len(t.columns))
	for i, c := range t.columns {
		cols[i] = Column{Name: c.Name, Kind: c.Kind, Values: c.Values[:n]}
	}
	return &Table{columns: cols, rows: n}
}
