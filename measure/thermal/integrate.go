package thermal

import (
	"fmt"

	"gonum.org/v1/gonum/integrate"
)

// Trapezoid integrates y over x with the trapezoidal rule. x must be
// strictly increasing but need not be uniform.
func Trapezoid(x, y []float64) (float64, error) {
	if err := checkGrid(x); err != nil {
		return 0, err
	}
	if len(y) != len(x) {
		return 0, fmt.Errorf("%w: %d values on %d wavelengths", ErrLengthMismatch, len(y), len(x))
	}
	return integrate.Trapezoidal(x, y), nil
}

func checkGrid(x []float64) error {
	if len(x) < 2 {
		return ErrEmptyGrid
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return fmt.Errorf("%w: x[%d] = %g after %g", ErrInvalidGrid, i, x[i], x[i-1])
		}
	}
	return nil
}
