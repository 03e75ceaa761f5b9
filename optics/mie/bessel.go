package mie

import (
	"math"
	"math/cmplx"
)

// rescale bounds intermediate values of the downward recurrence.
const rescale = 1e250

// startOrder is where the downward recurrences begin for orders up to n at
// argument magnitude absZ.
func startOrder(n int, absZ float64) int {
	top := math.Max(float64(n), absZ)
	return int(top) + 20 + int(math.Sqrt(40*top))
}

// sphericalJ returns j_0(z)..j_n(z) by Miller's downward recurrence,
// normalized against the closed forms of j_0 or j_1.
func sphericalJ(n int, z complex128) []complex128 {
	start := startOrder(n, cmplx.Abs(z))
	f := make([]complex128, start+2)
	f[start] = 1e-30

	for k := start; k > 0; k-- {
		f[k-1] = complex(float64(2*k+1), 0)/z*f[k] - f[k+1]
		if cmplx.Abs(f[k-1]) > rescale {
			for i := k - 1; i < len(f); i++ {
				f[i] /= rescale
			}
		}
	}

	sin, cos := cmplx.Sin(z), cmplx.Cos(z)
	j0 := sin / z
	j1 := sin/(z*z) - cos/z

	scale := j0 / f[0]
	if cmplx.Abs(f[1]) > cmplx.Abs(f[0]) {
		scale = j1 / f[1]
	}

	out := make([]complex128, n+1)
	for k := range out {
		out[k] = f[k] * scale
	}
	return out
}

// sphericalY returns y_0(x)..y_n(x) by upward recurrence.
func sphericalY(n int, x float64) []float64 {
	y := make([]float64, n+1)
	sin, cos := math.Sincos(x)
	y[0] = -cos / x
	if n >= 1 {
		y[1] = -cos/(x*x) - sin/x
	}
	for k := 1; k < n; k++ {
		y[k+1] = float64(2*k+1)/x*y[k] - y[k-1]
	}
	return y
}

// logDerivative returns D_0(z)..D_n(z) with D_n = psi_n'/psi_n and
// psi_n(z) = z j_n(z), by downward recurrence from D = 0.
func logDerivative(n int, z complex128) []complex128 {
	start := max(n, int(cmplx.Abs(z))) + 16
	d := make([]complex128, start+1)
	for k := start; k > 0; k-- {
		nz := complex(float64(k), 0) / z
		d[k-1] = nz - 1/(d[k]+nz)
	}
	return d[:n+1]
}
