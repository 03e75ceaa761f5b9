package thermal

import "errors"

// Errors returned by thermal analysis functions.
var (
	ErrEmptyGrid          = errors.New("thermal: wavelength grid needs at least 2 points")
	ErrInvalidTemperature = errors.New("thermal: temperature must be positive and finite")
	ErrLengthMismatch     = errors.New("thermal: spectrum length differs from grid length")
	ErrInvalidBandgap     = errors.New("thermal: bandgap wavelength must be positive")
	ErrInvalidGrid        = errors.New("thermal: wavelengths must be strictly increasing")
	ErrInvalidSource      = errors.New("thermal: invalid source spectrum")
)
