package core

import (
	"math"
	"math/cmplx"
)

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// IsFiniteComplex reports whether both parts of c are finite.
func IsFiniteComplex(c complex128) bool {
	return !cmplx.IsNaN(c) && !cmplx.IsInf(c)
}

// NaNComplex returns a complex value with both parts NaN.
func NaNComplex() complex128 {
	return complex(math.NaN(), math.NaN())
}

// PhotonEnergyEV converts a wavelength in metres to photon energy in eV.
func PhotonEnergyEV(lambda float64) float64 {
	return HCElectronVoltMetre / lambda
}

// Wavenumber converts a wavelength in metres to a wavenumber in cm^-1.
func Wavenumber(lambda float64) float64 {
	return 0.01 / lambda
}
