package material

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-optics/optics/core"
)

func analyticDomain(min, max float64) (float64, float64) {
	if max <= 0 {
		max = math.Inf(1)
	}
	return min, max
}

// passive picks the root of eps with k >= 0.
func passive(eps complex128) complex128 {
	n := cmplx.Sqrt(eps)
	if imag(n) < 0 {
		n = -n
	}
	return n
}

// SellmeierTerm is one B*lambda^2/(lambda^2 - C) term with C in um^2.
type SellmeierTerm struct {
	B, C float64
}

// Sellmeier is n^2 = A + sum B_j lambda^2/(lambda^2 - C_j), lambda in um.
// K is a constant extinction coefficient added to the result.
type Sellmeier struct {
	Label    string
	A        float64
	Terms    []SellmeierTerm
	K        float64
	Min, Max float64
}

func (s Sellmeier) Name() string               { return s.Label }
func (s Sellmeier) Kind() Kind                 { return KindSellmeier }
func (s Sellmeier) Domain() (float64, float64) { return analyticDomain(s.Min, s.Max) }

func (s Sellmeier) Index(lambda float64) (complex128, bool) {
	if !validWavelength(lambda) {
		return core.NaNComplex(), false
	}

	um := lambda * 1e6
	l2 := um * um
	eps := s.A
	for _, t := range s.Terms {
		eps += t.B * l2 / (l2 - t.C)
	}

	return passive(complex(eps, 0)) + complex(0, s.K), true
}

// Cauchy is n = A + B/lambda^2 + C/lambda^4, lambda in um, with constant k.
type Cauchy struct {
	Label    string
	A, B, C  float64
	K        float64
	Min, Max float64
}

func (c Cauchy) Name() string               { return c.Label }
func (c Cauchy) Kind() Kind                 { return KindCauchy }
func (c Cauchy) Domain() (float64, float64) { return analyticDomain(c.Min, c.Max) }

func (c Cauchy) Index(lambda float64) (complex128, bool) {
	if !validWavelength(lambda) {
		return core.NaNComplex(), false
	}

	um := lambda * 1e6
	l2 := um * um
	return complex(c.A+c.B/l2+c.C/(l2*l2), c.K), true
}

// Oscillator is one Lorentz-Drude term with energies in eV. A zero
// ResonanceEV makes it the free-electron Drude term.
type Oscillator struct {
	Strength    float64
	DampingEV   float64
	ResonanceEV float64
}

// LorentzDrude is the Rakic (1998) metal model
//
//	eps(w) = 1 + sum_j f_j wp^2 / (w_j^2 - w^2 - i w G_j)
//
// with the photon energy w in eV.
type LorentzDrude struct {
	Label       string
	PlasmaEV    float64
	Oscillators []Oscillator
	Min, Max    float64
}

func (m LorentzDrude) Name() string               { return m.Label }
func (m LorentzDrude) Kind() Kind                 { return KindLorentzDrude }
func (m LorentzDrude) Domain() (float64, float64) { return analyticDomain(m.Min, m.Max) }

func (m LorentzDrude) Index(lambda float64) (complex128, bool) {
	if !validWavelength(lambda) {
		return core.NaNComplex(), false
	}

	w := complex(core.PhotonEnergyEV(lambda), 0)
	wp2 := complex(m.PlasmaEV*m.PlasmaEV, 0)
	eps := complex(1, 0)
	for _, o := range m.Oscillators {
		w0 := complex(o.ResonanceEV, 0)
		eps += complex(o.Strength, 0) * wp2 / (w0*w0 - w*w - 1i*w*complex(o.DampingEV, 0))
	}

	return passive(eps), true
}

// LorentzTerm is one oscillator with resonance, plasma and damping
// wavenumbers in cm^-1.
type LorentzTerm struct {
	Resonance float64
	Plasma    float64
	Damping   float64
}

// Lorentz is the oscillator model
//
//	eps(w) = (A + B/lambda_um^2)^2 + sum_j wp_j^2 / (w_j^2 - w^2 - i g_j w)
//
// with w in cm^-1.
type Lorentz struct {
	Label       string
	A, B        float64
	Oscillators []LorentzTerm
	Min, Max    float64
}

func (m Lorentz) Name() string               { return m.Label }
func (m Lorentz) Kind() Kind                 { return KindLorentz }
func (m Lorentz) Domain() (float64, float64) { return analyticDomain(m.Min, m.Max) }

func (m Lorentz) Index(lambda float64) (complex128, bool) {
	if !validWavelength(lambda) {
		return core.NaNComplex(), false
	}

	um := lambda * 1e6
	bg := m.A + m.B/(um*um)
	w := complex(core.Wavenumber(lambda), 0)
	eps := complex(bg*bg, 0)
	for _, o := range m.Oscillators {
		w0 := complex(o.Resonance, 0)
		eps += complex(o.Plasma*o.Plasma, 0) / (w0*w0 - w*w - 1i*complex(o.Damping, 0)*w)
	}

	return passive(eps), true
}
