//go:build fastmath

package thermal

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// expm1 computes exp(x)-1 using fast approximation.
// Small arguments keep math.Expm1, where exp(x)-1 cancels.
func expm1(x float64) float64 {
	if x < 1e-2 {
		return math.Expm1(x)
	}
	return approx.FastExp(x) - 1
}
