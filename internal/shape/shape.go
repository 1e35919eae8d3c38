// ABOUTME: Category shapes: a row count plus an ordered list of column definitions.
// ABOUTME: Builds a sample table from a freshly seeded random source on every call.

package shape

import (
	"fmt"
	"math/rand/v2"

	"github.com/2389/bdas/internal/table"
)

// DefaultSeed is the seed used when none is configured.
const DefaultSeed int64 = 42

// ColumnDef generates the values of one column.
type ColumnDef interface {
	// Name returns the column header.
	Name() string

	// Kind returns the value type of the generated column.
	Kind() table.Kind

	// Generate draws n values. Definitions that are not random must not touch r.
	Generate(r *rand.Rand, n int) []any

	// Describe returns a human-readable description of the value rule.
	Describe() string
}

// Shape is the fixed schema of one dataset category.
type Shape struct {
	Category string
	Rows     int
	Columns  []ColumnDef
}

// NewRand returns a random source seeded deterministically from seed.
func NewRand(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s))
}

// Build generates a table for the shape. Columns draw from one source in column order,
// so the same seed always yields the same table.
func (s Shape) Build(seed int64) (*table.Table, error) {
	return s.BuildWith(NewRand(seed))
}

// BuildWith generates a table drawing from r.
func (s Shape) BuildWith(r *rand.Rand) (*table.Table, error) {
	cols := make([]table.Column, len(s.Columns))
	for i, def := range s.Columns {
		cols[i] = table.Column{
			Name:   def.Name(),
			Kind:   def.Kind(),
			Values: def.Generate(r, s.Rows),
		}
	}

	t, err := table.New(cols...)
	if err != nil {
		return nil, fmt.Errorf("build %s table: %w", s.Category, err)
	}
	return t, nil
}

// Names returns the column headers of the shape in order.
func (s Shape) Names() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name()
	}
	return names
}
