package testutil

import (
	"math"
	"math/rand"
)

// GaussianLine samples a unit-height Gaussian centred at center with the
// given full width at half maximum.
func GaussianLine(x []float64, center, fwhm float64) []float64 {
	out := make([]float64, len(x))
	sigma := fwhm / (2 * math.Sqrt(2*math.Ln2))
	for i, v := range x {
		d := (v - center) / sigma
		out[i] = math.Exp(-0.5 * d * d)
	}
	return out
}

// LorentzianLine samples a unit-height Lorentzian centred at center with
// half width at half maximum gamma.
func LorentzianLine(x []float64, center, gamma float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		d := (v - center) / gamma
		out[i] = 1 / (1 + d*d)
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Constant generates a flat spectrum.
func Constant(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return Constant(1.0, n)
}
