package core

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Errors returned by grid constructors.
var (
	ErrEmptyGrid   = errors.New("core: wavelength grid is empty")
	ErrInvalidGrid = errors.New("core: wavelength grid must be positive, finite and strictly increasing")
)

// Grid is an ordered set of wavelengths in metres.
//
// A Grid is immutable once built; accessors never expose the backing slice.
type Grid struct {
	values []float64
}

// NewGrid validates values and returns a grid holding a copy of them.
func NewGrid(values []float64) (Grid, error) {
	if len(values) == 0 {
		return Grid{}, ErrEmptyGrid
	}

	for i, v := range values {
		if !(v > 0) || !IsFinite(v) {
			return Grid{}, fmt.Errorf("%w: value %d is %g", ErrInvalidGrid, i, v)
		}

		if i > 0 && v <= values[i-1] {
			return Grid{}, fmt.Errorf("%w: value %d (%g) <= value %d (%g)", ErrInvalidGrid, i, v, i-1, values[i-1])
		}
	}

	return Grid{values: append([]float64(nil), values...)}, nil
}

// LinearGrid returns count evenly spaced wavelengths from min to max inclusive.
// A count of 1 requires min == max.
func LinearGrid(min, max float64, count int) (Grid, error) {
	if count <= 0 {
		return Grid{}, fmt.Errorf("%w: count must be > 0: %d", ErrEmptyGrid, count)
	}

	if count == 1 {
		if min != max {
			return Grid{}, fmt.Errorf("%w: single-point grid needs min == max (%g, %g)", ErrInvalidGrid, min, max)
		}

		return NewGrid([]float64{min})
	}

	if !(max > min) {
		return Grid{}, fmt.Errorf("%w: max (%g) must exceed min (%g)", ErrInvalidGrid, max, min)
	}

	return NewGrid(floats.Span(make([]float64, count), min, max))
}

// LogGrid returns count logarithmically spaced wavelengths from min to max inclusive.
func LogGrid(min, max float64, count int) (Grid, error) {
	if count <= 0 {
		return Grid{}, fmt.Errorf("%w: count must be > 0: %d", ErrEmptyGrid, count)
	}

	if count == 1 || min <= 0 {
		return LinearGrid(min, max, count)
	}

	if !(max > min) {
		return Grid{}, fmt.Errorf("%w: max (%g) must exceed min (%g)", ErrInvalidGrid, max, min)
	}

	return NewGrid(floats.LogSpan(make([]float64, count), min, max))
}

// Len returns the number of wavelengths.
func (g Grid) Len() int { return len(g.values) }

// At returns the i-th wavelength.
func (g Grid) At(i int) float64 { return g.values[i] }

// Values returns a copy of the wavelengths.
func (g Grid) Values() []float64 { return append([]float64(nil), g.values...) }

// Min returns the shortest wavelength, or 0 for an empty grid.
func (g Grid) Min() float64 {
	if len(g.values) == 0 {
		return 0
	}
	return g.values[0]
}

// Max returns the longest wavelength, or 0 for an empty grid.
func (g Grid) Max() float64 {
	if len(g.values) == 0 {
		return 0
	}
	return g.values[len(g.values)-1]
}
