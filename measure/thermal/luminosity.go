package thermal

import "math"

// Photopic returns the CIE 1931 photopic luminosity V(lambda) at lambda
// metres, from the Wyman, Sloan and Shirley (2013) two-lobe fit of y-bar.
// The peak is close to 1 near 555 nm.
func Photopic(lambda float64) float64 {
	nm := lambda * 1e9
	return 0.821*lobe(nm, 568.8, 46.9, 40.5) + 0.286*lobe(nm, 530.9, 16.3, 31.1)
}

// PhotopicSpectrum evaluates Photopic at every wavelength.
func PhotopicSpectrum(wavelengths []float64) []float64 {
	out := make([]float64, len(wavelengths))
	for i, lambda := range wavelengths {
		out[i] = Photopic(lambda)
	}
	return out
}

// lobe is a piecewise Gaussian with separate widths below and above mu.
func lobe(x, mu, below, above float64) float64 {
	s := above
	if x < mu {
		s = below
	}
	t := (x - mu) / s
	return math.Exp(-0.5 * t * t)
}
