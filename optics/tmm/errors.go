package tmm

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is wrapped by every ConfigurationError.
	ErrConfiguration = errors.New("tmm: invalid configuration")
	// ErrNumericalInstability is wrapped by every NumericalInstabilityError.
	ErrNumericalInstability = errors.New("tmm: numerical instability")
	// ErrUndefinedIndex is returned by Evaluate when a layer index is not finite,
	// typically a wavelength outside a material table.
	ErrUndefinedIndex = errors.New("tmm: refractive index undefined")
)

// ConfigurationError reports a malformed stack or solver input.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("tmm: invalid %s: %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

func configError(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// NumericalInstabilityError marks one wavelength that could not be
// evaluated reliably.
type NumericalInstabilityError struct {
	Index      int
	Wavelength float64
	Reason     string
}

func (e *NumericalInstabilityError) Error() string {
	return fmt.Sprintf("tmm: wavelength %g m (index %d): %s", e.Wavelength, e.Index, e.Reason)
}

func (e *NumericalInstabilityError) Unwrap() error { return ErrNumericalInstability }
