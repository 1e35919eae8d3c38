// ABOUTME: Column definitions for sample tables: sequences, ranges, categoricals and dates.
// ABOUTME: Each definition draws its values from a caller-supplied random source.

package shape

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/2389/bdas/internal/table"
)

// StartDate is the first day of every date sequence.
var StartDate = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// SequenceDef numbers rows Start, Start+1, ...
type SequenceDef struct {
	Column string
	Start  int
}

// Sequence returns a sequential integer ID column starting at 1.
func Sequence(name string) SequenceDef {
	return SequenceDef{Column: name, Start: 1}
}

func (d SequenceDef) Name() string     { return d.Column }
func (d SequenceDef) Kind() table.Kind { return table.KindInt }

func (d SequenceDef) Generate(_ *rand.Rand, n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = d.Start + i
	}
	return out
}

func (d SequenceDef) Describe() string {
	return fmt.Sprintf("sequential integer starting at %d", d.Start)
}

// IntRangeDef draws integers uniformly from [Lo, Hi).
type IntRangeDef struct {
	Column string
	Lo, Hi int
}

// IntRange returns a uniform integer column over [lo, hi).
func IntRange(name string, lo, hi int) IntRangeDef {
	return IntRangeDef{Column: name, Lo: lo, Hi: hi}
}

func (d IntRangeDef) Name() string     { return d.Column }
func (d IntRangeDef) Kind() table.Kind { return table.KindInt }

func (d IntRangeDef) Generate(r *rand.Rand, n int) []any {
	out := make([]any, n)
	span := d.Hi - d.Lo
	for i := range out {
		out[i] = d.Lo + r.IntN(span)
	}
	return out
}

func (d IntRangeDef) Describe() string {
	return fmt.Sprintf("uniform integer in [%d, %d)", d.Lo, d.Hi)
}

// ChoiceDef draws uniformly from a fixed set of values.
type ChoiceDef struct {
	Column string
	Values []any
	kind   table.Kind
}

// Choice returns a categorical column over string values.
func Choice(name string, values ...string) ChoiceDef {
	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return ChoiceDef{Column: name, Values: vals, kind: table.KindString}
}

// ChoiceInt returns a categorical column over integer values.
func ChoiceInt(name string, values ...int) ChoiceDef {
	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return ChoiceDef{Column: name, Values: vals, kind: table.KindInt}
}

func (d ChoiceDef) Name() string     { return d.Column }
func (d ChoiceDef) Kind() table.Kind { return d.kind }

func (d ChoiceDef) Generate(r *rand.Rand, n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = d.Values[r.IntN(len(d.Values))]
	}
	return out
}

func (d ChoiceDef) Describe() string {
	parts := make([]string, len(d.Values))
	for i, v := range d.Values {
		parts[i] = fmt.Sprint(v)
	}
	return "one of " + strings.Join(parts, ", ")
}

// FloatRangeDef draws floats uniformly from [Lo, Hi), optionally rounded to 2 decimals.
type FloatRangeDef struct {
	Column string
	Lo, Hi float64
	Round  bool
}

// FloatRange returns a uniform float column over [lo, hi).
func FloatRange(name string, lo, hi float64) FloatRangeDef {
	return FloatRangeDef{Column: name, Lo: lo, Hi: hi}
}

// RoundedFloatRange returns a uniform float column over [lo, hi) rounded to 2 decimals.
// Rounding may produce hi itself when a draw lands within half a cent of it.
func RoundedFloatRange(name string, lo, hi float64) FloatRangeDef {
	return FloatRangeDef{Column: name, Lo: lo, Hi: hi, Round: true}
}

func (d FloatRangeDef) Name() string     { return d.Column }
func (d FloatRangeDef) Kind() table.Kind { return table.KindFloat }

func (d FloatRangeDef) Generate(r *rand.Rand, n int) []any {
	out := make([]any, n)
	for i := range out {
		v := d.Lo + r.Float64()*(d.Hi-d.Lo)
		if d.Round {
			v = Round2(v)
		}
		out[i] = v
	}
	return out
}

func (d FloatRangeDef) Describe() string {
	desc := fmt.Sprintf("uniform float in [%s, %s)", formatFloat(d.Lo), formatFloat(d.Hi))
	if d.Round {
		desc += " rounded to 2 decimals"
	}
	return desc
}

// DateSequenceDef emits consecutive days from Start.
type DateSequenceDef struct {
	Column string
	Start  time.Time
}

// DateSequence returns a daily date column starting at StartDate.
func DateSequence(name string) DateSequenceDef {
	return DateSequenceDef{Column: name, Start: StartDate}
}

func (d DateSequenceDef) Name() string     { return d.Column }
func (d DateSequenceDef) Kind() table.Kind { return table.KindDate }

func (d DateSequenceDef) Generate(_ *rand.Rand, n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = d.Start.AddDate(0, 0, i)
	}
	return out
}

func (d DateSequenceDef) Describe() string {
	return "consecutive days starting " + d.Start.Format("2006-01-02")
}

// Round2 rounds half to even at 2 decimals.
func Round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
