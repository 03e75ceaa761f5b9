package material

import (
	"math"

	"github.com/cwbudde/algo-optics/optics/core"
	"github.com/cwbudde/algo-optics/optics/interp"
)

// Kind identifies a dispersion model variant.
type Kind int

const (
	KindConstant Kind = iota
	KindTabulated
	KindSellmeier
	KindCauchy
	KindLorentzDrude
	KindLorentz
)

var kindNames = [...]string{
	KindConstant:     "constant",
	KindTabulated:    "tabulated",
	KindSellmeier:    "sellmeier",
	KindCauchy:       "cauchy",
	KindLorentzDrude: "lorentz-drude",
	KindLorentz:      "lorentz",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Model evaluates the complex refractive index of one material.
//
// Implementations are immutable values and safe for concurrent use.
type Model interface {
	// Name is the display name, e.g. "SiO2".
	Name() string
	Kind() Kind
	// Domain is the wavelength range in metres over which the model is
	// valid. max is +Inf for models without an upper bound.
	Domain() (min, max float64)
	// Index returns n+ik at lambda metres; ok is false when the model has
	// no value there (outside a table, or lambda not positive and finite).
	Index(lambda float64) (n complex128, ok bool)
}

func validWavelength(lambda float64) bool {
	return lambda > 0 && core.IsFinite(lambda)
}

// Constant is a wavelength-independent index.
type Constant struct {
	Label string
	N     complex128
}

// Ambient is the non-absorbing terminal medium used when a stack names none.
var Ambient = Constant{Label: "Air", N: 1}

func (c Constant) Name() string               { return c.Label }
func (c Constant) Kind() Kind                 { return KindConstant }
func (c Constant) Domain() (float64, float64) { return 0, math.Inf(1) }

func (c Constant) Index(lambda float64) (complex128, bool) {
	if !validWavelength(lambda) {
		return core.NaNComplex(), false
	}
	return c.N, true
}

// Tabulated interpolates measured (wavelength, n, k) rows.
type Tabulated struct {
	label string
	table *interp.Table
}

// NewTabulated builds a table model. Wavelengths must be strictly
// increasing metres and every k must be >= 0.
func NewTabulated(label string, wavelength, n, k []float64) (*Tabulated, error) {
	for i, v := range k {
		if v < 0 || math.IsNaN(v) {
			return nil, invalidModel(label, "row %d has k = %g, want k >= 0", i, v)
		}
	}

	table, err := interp.NewTable(wavelength, n, k)
	if err != nil {
		return nil, invalidModel(label, "%v", err)
	}

	return &Tabulated{label: label, table: table}, nil
}

func (t *Tabulated) Name() string { return t.label }
func (t *Tabulated) Kind() Kind   { return KindTabulated }

func (t *Tabulated) Domain() (float64, float64) { return t.table.Domain() }

// Rows returns the number of table rows.
func (t *Tabulated) Rows() int { return t.table.Len() }

// Row returns row i of the table.
func (t *Tabulated) Row(i int) (lambda, n, k float64) {
	lambda, v := t.table.Knot(i)
	return lambda, v[0], v[1]
}

func (t *Tabulated) Index(lambda float64) (complex128, bool) {
	i, frac, ok := t.table.Bracket(lambda)
	if !ok {
		return core.NaNComplex(), false
	}

	var buf [2]float64
	v := t.table.Eval(i, frac, buf[:0])
	return complex(v[0], v[1]), true
}

// Clamped returns the index at lambda, holding the first or last row
// outside the table. clamped reports whether a row was held.
func (t *Tabulated) Clamped(lambda float64) (n complex128, clamped bool) {
	if math.IsNaN(lambda) {
		return core.NaNComplex(), false
	}
	re, c := t.table.Clamp(0, lambda)
	im, _ := t.table.Clamp(1, lambda)
	return complex(re, im), c
}
