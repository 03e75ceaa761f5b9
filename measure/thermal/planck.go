package thermal

import "github.com/cwbudde/algo-optics/optics/core"

// Planck returns the blackbody spectral radiance in W sr^-1 m^-3 at
// wavelength lambda (m) and temperature T (K).
//
//	B(lambda, T) = 2 h c^2 / lambda^5 / (exp(h c / (lambda k T)) - 1)
func Planck(lambda, T float64) float64 {
	if lambda <= 0 || T <= 0 {
		return 0
	}

	h, c, k := core.Planck, core.SpeedOfLight, core.Boltzmann
	x := h * c / (lambda * k * T)
	if x > 700 {
		return 0
	}

	l5 := lambda * lambda * lambda * lambda * lambda
	return 2 * h * c * c / l5 / expm1(x)
}

// BlackbodySpectrum evaluates Planck at every wavelength.
func BlackbodySpectrum(wavelengths []float64, T float64) ([]float64, error) {
	if !validTemperature(T) {
		return nil, ErrInvalidTemperature
	}

	out := make([]float64, len(wavelengths))
	for i, lambda := range wavelengths {
		out[i] = Planck(lambda, T)
	}
	return out, nil
}

// StefanBoltzmannPower is the hemispherical power sigma T^4 (W m^-2) of a
// blackbody, the limit of pi times the integral of Planck over all
// wavelengths.
func StefanBoltzmannPower(T float64) float64 {
	return core.StefanBoltzmann * T * T * T * T
}

// WienPeak returns the wavelength (m) of maximum spectral radiance.
func WienPeak(T float64) float64 {
	const wien = 2.897771955e-3 // m K
	return wien / T
}

func validTemperature(T float64) bool {
	return T > 0 && core.IsFinite(T)
}
