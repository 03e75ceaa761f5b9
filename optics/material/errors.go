package material

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, matched with errors.Is.
var (
	ErrUnknownMaterial   = errors.New("material: unknown material")
	ErrOutOfRange        = errors.New("material: wavelength outside tabulated range")
	ErrDuplicateMaterial = errors.New("material: duplicate material identifier")
	ErrInvalidModel      = errors.New("material: invalid dispersion model")
)

// UnknownMaterialError reports an identifier missing from a database.
type UnknownMaterialError struct {
	Name  string
	Known []string
}

func (e *UnknownMaterialError) Error() string {
	return fmt.Sprintf("material: unknown material %q (known: %s)", e.Name, strings.Join(e.Known, ", "))
}

func (e *UnknownMaterialError) Unwrap() error { return ErrUnknownMaterial }

// DomainRangeError reports a wavelength outside a table. Index is the
// position in the requested grid.
type DomainRangeError struct {
	Material   string
	Index      int
	Wavelength float64
	Min, Max   float64
}

func (e *DomainRangeError) Error() string {
	return fmt.Sprintf("material: %s: wavelength %g m (index %d) outside tabulated range [%g, %g]",
		e.Material, e.Wavelength, e.Index, e.Min, e.Max)
}

func (e *DomainRangeError) Unwrap() error { return ErrOutOfRange }

func invalidModel(name, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidModel, name, fmt.Sprintf(format, args...))
}
