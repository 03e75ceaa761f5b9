package simulate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-optics/optics/material"
)

// CustomMaterial describes a user dispersion model. Model selects which of
// the parameter fields apply:
//
//	constant       n, k
//	cauchy         a, b, c, k
//	sellmeier      a, terms (b, c), k
//	lorentz-drude  plasma_ev, oscillators
//	table          table rows (wavelength, n, k)
//
// Wavelengths are in metres; Cauchy and Sellmeier coefficients use um.
type CustomMaterial struct {
	Name  string  `yaml:"name"`
	Model string  `yaml:"model"`
	N     float64 `yaml:"n,omitempty"`
	K     float64 `yaml:"k,omitempty"`
	A     float64 `yaml:"a,omitempty"`
	B     float64 `yaml:"b,omitempty"`
	C     float64 `yaml:"c,omitempty"`

	Terms       []SellmeierTerm `yaml:"terms,omitempty"`
	PlasmaEV    float64         `yaml:"plasma_ev,omitempty"`
	Oscillators []Oscillator    `yaml:"oscillators,omitempty"`
	Table       []TableRow      `yaml:"table,omitempty"`

	// Min and Max bound the validity range of analytic models.
	Min float64 `yaml:"min,omitempty"`
	Max float64 `yaml:"max,omitempty"`
}

// SellmeierTerm is B lambda^2 / (lambda^2 - C) with C in um^2.
type SellmeierTerm struct {
	B float64 `yaml:"b"`
	C float64 `yaml:"c"`
}

// Oscillator is one Lorentz-Drude term in eV.
type Oscillator struct {
	Strength    float64 `yaml:"strength"`
	DampingEV   float64 `yaml:"damping_ev"`
	ResonanceEV float64 `yaml:"resonance_ev,omitempty"`
}

// TableRow is one tabulated n, k sample.
type TableRow struct {
	Wavelength float64 `yaml:"wavelength"`
	N          float64 `yaml:"n"`
	K          float64 `yaml:"k"`
}

var errNoName = errors.New("custom material needs a name")

// Build converts the description into a material model.
func (m CustomMaterial) Build() (material.Model, error) {
	if strings.TrimSpace(m.Name) == "" {
		return nil, errNoName
	}
	if m.K < 0 {
		return nil, fmt.Errorf("%s: extinction coefficient %g is negative", m.Name, m.K)
	}

	switch strings.ToLower(m.Model) {
	case "constant":
		if !(m.N > 0) {
			return nil, fmt.Errorf("%s: constant index needs n > 0", m.Name)
		}
		return material.Constant{Label: m.Name, N: complex(m.N, m.K)}, nil
	case "cauchy":
		if !(m.A > 0) {
			return nil, fmt.Errorf("%s: cauchy model needs a > 0", m.Name)
		}
		return material.Cauchy{Label: m.Name, A: m.A, B: m.B, C: m.C, K: m.K, Min: m.Min, Max: m.Max}, nil
	case "sellmeier":
		if len(m.Terms) == 0 {
			return nil, fmt.Errorf("%s: sellmeier model needs at least one term", m.Name)
		}
		a := m.A
		if a == 0 {
			a = 1
		}
		terms := make([]material.SellmeierTerm, len(m.Terms))
		for i, t := range m.Terms {
			terms[i] = material.SellmeierTerm{B: t.B, C: t.C}
		}
		return material.Sellmeier{Label: m.Name, A: a, Terms: terms, K: m.K, Min: m.Min, Max: m.Max}, nil
	case "lorentz-drude":
		if !(m.PlasmaEV > 0) || len(m.Oscillators) == 0 {
			return nil, fmt.Errorf("%s: lorentz-drude model needs plasma_ev > 0 and oscillators", m.Name)
		}
		osc := make([]material.Oscillator, len(m.Oscillators))
		for i, o := range m.Oscillators {
			osc[i] = material.Oscillator{Strength: o.Strength, DampingEV: o.DampingEV, ResonanceEV: o.ResonanceEV}
		}
		return material.LorentzDrude{Label: m.Name, PlasmaEV: m.PlasmaEV, Oscillators: osc, Min: m.Min, Max: m.Max}, nil
	case "table":
		wl := make([]float64, len(m.Table))
		n := make([]float64, len(m.Table))
		k := make([]float64, len(m.Table))
		for i, r := range m.Table {
			wl[i], n[i], k[i] = r.Wavelength, r.N, r.K
		}
		t, err := material.NewTabulated(m.Name, wl, n, k)
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, fmt.Errorf("%s: unknown model %q", m.Name, m.Model)
	}
}
