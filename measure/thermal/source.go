package thermal

import (
	"fmt"

	"github.com/cwbudde/algo-optics/optics/interp"
)

// Source is a reference spectrum illuminating or emitting from a sample,
// e.g. the blackbody an absorber is matched against.
type Source interface {
	// Spectrum returns the spectral radiance at each wavelength.
	Spectrum(wavelengths []float64) ([]float64, error)
}

// Blackbody is a Planck source at Temperature kelvin.
type Blackbody struct {
	Temperature float64
}

func (b Blackbody) Spectrum(wavelengths []float64) ([]float64, error) {
	return BlackbodySpectrum(wavelengths, b.Temperature)
}

// TabulatedSource is a measured spectrum, interpolated linearly between
// rows and zero outside them.
type TabulatedSource struct {
	table *interp.Table
}

// NewTabulatedSource copies the rows of a source table. Wavelengths are in
// metres and strictly increasing; values must be non-negative.
func NewTabulatedSource(wavelengths, values []float64) (*TabulatedSource, error) {
	for i, v := range values {
		if !(v >= 0) {
			return nil, fmt.Errorf("%w: value %d is %g", ErrInvalidSource, i, v)
		}
	}

	table, err := interp.NewTable(wavelengths, values)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSource, err)
	}
	return &TabulatedSource{table: table}, nil
}

func (s *TabulatedSource) Spectrum(wavelengths []float64) ([]float64, error) {
	out := make([]float64, len(wavelengths))
	for i, lambda := range wavelengths {
		if v, ok := s.table.At(0, lambda); ok {
			out[i] = v
		}
	}
	return out, nil
}
