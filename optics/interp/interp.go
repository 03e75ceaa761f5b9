package interp

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-optics/optics/core"
)

// Errors returned by NewTable.
var (
	ErrTooFewKnots    = errors.New("interp: at least two knots are required")
	ErrLengthMismatch = errors.New("interp: knot and value slices must have same length")
	ErrNotIncreasing  = errors.New("interp: knots must be finite and strictly increasing")
)

// Linear2 interpolates from x0 (t=0) to x1 (t=1).
func Linear2(t, x0, x1 float64) float64 {
	return x0 + t*(x1-x0)
}

// Table interpolates one or more value columns over shared knots.
type Table struct {
	knots   []float64
	columns [][]float64
}

// NewTable builds a table. Every column must have len(knots) entries.
// The inputs are copied.
func NewTable(knots []float64, columns ...[]float64) (*Table, error) {
	if len(knots) < 2 {
		return nil, ErrTooFewKnots
	}

	for i, x := range knots {
		if !core.IsFinite(x) || (i > 0 && x <= knots[i-1]) {
			return nil, fmt.Errorf("%w: knot %d = %g", ErrNotIncreasing, i, x)
		}
	}

	t := &Table{knots: append([]float64(nil), knots...)}
	for c, col := range columns {
		if len(col) != len(knots) {
			return nil, fmt.Errorf("%w: column %d has %d values, want %d", ErrLengthMismatch, c, len(col), len(knots))
		}
		t.columns = append(t.columns, append([]float64(nil), col...))
	}

	return t, nil
}

// Len returns the knot count.
func (t *Table) Len() int { return len(t.knots) }

// Columns returns the number of value columns.
func (t *Table) Columns() int { return len(t.columns) }

// Domain returns the first and last knot.
func (t *Table) Domain() (min, max float64) {
	return t.knots[0], t.knots[len(t.knots)-1]
}

// Knot returns knot i and the values of every column at it.
func (t *Table) Knot(i int) (x float64, values []float64) {
	values = make([]float64, len(t.columns))
	for c := range t.columns {
		values[c] = t.columns[c][i]
	}
	return t.knots[i], values
}

// Bracket locates x. It returns the lower knot index i and the fraction of
// the way to knot i+1. A query equal to a knot returns that knot with frac 0.
// ok is false when x lies outside the domain or is NaN.
func (t *Table) Bracket(x float64) (i int, frac float64, ok bool) {
	n := len(t.knots)
	if math.IsNaN(x) || x < t.knots[0] || x > t.knots[n-1] {
		return 0, 0, false
	}

	i = sort.SearchFloat64s(t.knots, x)
	if t.knots[i] == x {
		return i, 0, true
	}

	i--
	return i, (x - t.knots[i]) / (t.knots[i+1] - t.knots[i]), true
}

// At evaluates column c at x. ok is false outside the domain.
func (t *Table) At(c int, x float64) (float64, bool) {
	i, frac, ok := t.Bracket(x)
	if !ok {
		return math.NaN(), false
	}
	return t.eval(c, i, frac), true
}

// Clamp evaluates column c at x, holding the edge value outside the domain.
// clamped reports whether the edge value was used.
func (t *Table) Clamp(c int, x float64) (v float64, clamped bool) {
	if v, ok := t.At(c, x); ok {
		return v, false
	}
	if x < t.knots[0] {
		return t.columns[c][0], true
	}
	return t.columns[c][len(t.knots)-1], true
}

func (t *Table) eval(c, i int, frac float64) float64 {
	col := t.columns[c]
	if frac == 0 {
		return col[i]
	}
	return Linear2(frac, col[i], col[i+1])
}

// Eval evaluates every column at a previously bracketed position.
func (t *Table) Eval(i int, frac float64, dst []float64) []float64 {
	if cap(dst) < len(t.columns) {
		dst = make([]float64, len(t.columns))
	}
	dst = dst[:len(t.columns)]
	for c := range t.columns {
		dst[c] = t.eval(c, i, frac)
	}
	return dst
}
