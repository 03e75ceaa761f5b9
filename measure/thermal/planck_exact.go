//go:build !fastmath

package thermal

import "math"

// expm1 computes exp(x)-1 using standard library math.
func expm1(x float64) float64 {
	return math.Expm1(x)
}
