package tmm

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-optics/optics/core"
)

// Polarization selects the field orientation relative to the plane of
// incidence.
type Polarization int

const (
	// S is transverse-electric polarization.
	S Polarization = iota
	// P is transverse-magnetic polarization.
	P
	// Unpolarized averages S and P.
	Unpolarized
)

func (p Polarization) String() string {
	switch p {
	case S:
		return "s"
	case P:
		return "p"
	case Unpolarized:
		return "unpolarized"
	default:
		return fmt.Sprintf("Polarization(%d)", int(p))
	}
}

const (
	// maxPhaseImag bounds Im(delta) of a single layer.
	maxPhaseImag = 35.0
	// forwardEps decides when Im(n cos) is large enough to pick the branch.
	forwardEps = 100 * 2.220446049250313e-16
	// grazingEps is the smallest admissible |n0 cos(theta0)|.
	grazingEps = 1e-12
	// energyEps is the slack allowed on R and T outside [0, 1].
	energyEps = 1e-9
	// incidentLossEps is the largest k accepted for the incident medium.
	incidentLossEps = 1e-12
)

// Result holds the response of a stack at one wavelength.
type Result struct {
	R, T, A float64
	// LayerA is the absorptance of each finite layer, nil unless requested.
	LayerA []float64
	// Clamped reports that at least one layer phase hit the opacity clamp.
	Clamped bool
}

func nanResult(finite int, layerA bool) Result {
	r := Result{R: math.NaN(), T: math.NaN(), A: math.NaN()}
	if layerA {
		r.LayerA = make([]float64, finite)
		for i := range r.LayerA {
			r.LayerA[i] = math.NaN()
		}
	}
	return r
}

// Evaluate computes the response of one stack at wavelength lambda (m) and
// incidence angle theta0 (rad, measured in the incident medium).
//
// indices and thicknesses run from the incident medium to the exit medium.
// The returned error is a *NumericalInstabilityError (with Index 0) when the
// matrix product breaks down, ErrUndefinedIndex when an index is NaN, or a
// *ConfigurationError for malformed input. The Result is NaN in every error
// case.
func Evaluate(indices []complex128, thicknesses []float64, lambda, theta0 float64, pol Polarization, layerA bool) (Result, error) {
	layers := len(indices)
	finite := max(layers-2, 0)

	if layers != len(thicknesses) {
		return nanResult(finite, layerA), configError("stack", "%d indices but %d thicknesses", layers, len(thicknesses))
	}
	if layers < 3 {
		return nanResult(finite, layerA), configError("stack", "need at least 3 layers, got %d", layers)
	}
	if !(lambda > 0) || !core.IsFinite(lambda) {
		return nanResult(finite, layerA), configError("wavelength", "%g", lambda)
	}
	if err := checkAngle(theta0); err != nil {
		return nanResult(finite, layerA), err
	}
	for _, n := range indices {
		if !core.IsFiniteComplex(n) {
			return nanResult(finite, layerA), ErrUndefinedIndex
		}
	}
	if math.Abs(imag(indices[0])) > incidentLossEps {
		return nanResult(finite, layerA), configError("incident medium", "must be non-absorbing, n = %v", indices[0])
	}

	var (
		res    Result
		reason string
	)

	switch pol {
	case S, P:
		res, reason = evaluate(indices, thicknesses, lambda, theta0, pol, layerA)
	case Unpolarized:
		s, rs := evaluate(indices, thicknesses, lambda, theta0, S, layerA)
		p, rp := evaluate(indices, thicknesses, lambda, theta0, P, layerA)
		res, reason = average(s, p), rs
		if reason == "" {
			reason = rp
		}
	default:
		return nanResult(finite, layerA), configError("polarization", "%v", pol)
	}

	if reason != "" {
		return nanResult(finite, layerA), &NumericalInstabilityError{Wavelength: lambda, Reason: reason}
	}
	return res, nil
}

func checkAngle(theta0 float64) error {
	if math.IsNaN(theta0) || math.Abs(theta0) >= math.Pi/2 {
		return configError("angle", "incidence angle %g rad must lie in (-pi/2, pi/2)", theta0)
	}
	return nil
}

func average(s, p Result) Result {
	out := Result{
		R:       0.5 * (s.R + p.R),
		T:       0.5 * (s.T + p.T),
		A:       0.5 * (s.A + p.A),
		Clamped: s.Clamped || p.Clamped,
	}
	if s.LayerA != nil {
		out.LayerA = make([]float64, len(s.LayerA))
		for i := range out.LayerA {
			out.LayerA[i] = 0.5 * (s.LayerA[i] + p.LayerA[i])
		}
	}
	return out
}

// mat2 is a row-major 2x2 complex matrix.
type mat2 [4]complex128

func (a mat2) mul(b mat2) mat2 {
	return mat2{
		a[0]*b[0] + a[1]*b[2], a[0]*b[1] + a[1]*b[3],
		a[2]*b[0] + a[3]*b[2], a[2]*b[1] + a[3]*b[3],
	}
}

func (a mat2) apply(v, w complex128) (complex128, complex128) {
	return a[0]*v + a[1]*w, a[2]*v + a[3]*w
}

// forwardCos returns cos(theta) in a medium of index n for the conserved
// transverse component nSin, choosing the branch that propagates or
// decays away from the incident side.
func forwardCos(n, nSin complex128) complex128 {
	sin := nSin / n
	c := cmplx.Sqrt(1 - sin*sin)

	nc := n * c
	var forward bool
	if math.Abs(imag(nc)) > forwardEps {
		forward = imag(nc) > 0
	} else {
		forward = real(nc) > 0
	}
	if !forward {
		c = -c
	}
	return c
}

// fresnel returns the amplitude coefficients of the interface between media
// i and f.
func fresnel(pol Polarization, ni, nf, ci, cf complex128) (r, t complex128) {
	if pol == S {
		d := ni*ci + nf*cf
		return (ni*ci - nf*cf) / d, 2 * ni * ci / d
	}
	d := nf*ci + ni*cf
	return (nf*ci - ni*cf) / d, 2 * ni * ci / d
}

// flux is the normal Poynting flux of amplitudes (v, w) in a medium of
// index n, normalized to the incident medium.
func flux(pol Polarization, n, c, v, w, n0, c0 complex128) float64 {
	if pol == S {
		return real(n*c*cmplx.Conj(v+w)*(v-w)) / real(n0*c0)
	}
	return real(n*cmplx.Conj(c)*(v+w)*cmplx.Conj(v-w)) / real(n0*cmplx.Conj(c0))
}

// evaluate runs one polarization. A non-empty reason marks an instability.
func evaluate(n []complex128, d []float64, lambda, theta0 float64, pol Polarization, layerA bool) (Result, string) {
	layers := len(n)
	last := layers - 1
	var res Result

	nSin := n[0] * complex(math.Sin(theta0), 0)
	cos := make([]complex128, layers)
	for j := range n {
		cos[j] = forwardCos(n[j], nSin)
	}

	if cmplx.Abs(n[0]*cos[0]) < grazingEps {
		return res, "grazing incidence"
	}

	k0 := 2 * math.Pi / lambda
	layerM := make([]mat2, layers)

	r01, t01 := fresnel(pol, n[0], n[1], cos[0], cos[1])
	m := mat2{1 / t01, r01 / t01, r01 / t01, 1 / t01}

	for j := 1; j < last; j++ {
		delta := complex(k0*d[j], 0) * n[j] * cos[j]
		if imag(delta) > maxPhaseImag {
			delta = complex(real(delta), maxPhaseImag)
			res.Clamped = true
		}

		r, t := fresnel(pol, n[j], n[j+1], cos[j], cos[j+1])
		em := cmplx.Exp(-1i * delta)
		ep := cmplx.Exp(1i * delta)
		layerM[j] = mat2{em / t, r * em / t, r * ep / t, ep / t}
		m = m.mul(layerM[j])
	}

	for _, v := range m {
		if !core.IsFiniteComplex(v) {
			return res, "non-finite transfer matrix"
		}
	}
	if a := cmplx.Abs(m[0]); a < 1e-300 || a > 1e300 {
		return res, fmt.Sprintf("|M00| = %g out of range", a)
	}

	r := m[2] / m[0]
	t := 1 / m[0]

	res.R = real(r)*real(r) + imag(r)*imag(r)
	res.T = (real(t)*real(t) + imag(t)*imag(t)) * transmissionFactor(pol, n[0], n[last], cos[0], cos[last])
	res.A = 1 - res.R - res.T

	if math.IsNaN(res.R) || math.IsNaN(res.T) {
		return res, "non-finite reflectance"
	}
	if res.R < -energyEps || res.R > 1+energyEps || res.T < -energyEps || res.T > 1+energyEps {
		return res, fmt.Sprintf("R = %g, T = %g outside [0, 1]", res.R, res.T)
	}

	if layerA {
		res.LayerA = layerAbsorption(pol, n, cos, layerM, r, t, res.T)
	}
	return res, ""
}

func transmissionFactor(pol Polarization, n0, nf, c0, cf complex128) float64 {
	if pol == S {
		return real(nf*cf) / real(n0*c0)
	}
	return real(nf*cmplx.Conj(cf)) / real(n0*cmplx.Conj(c0))
}

// layerAbsorption back-propagates the exit amplitudes (t, 0) through the
// layer matrices and differences the flux entering consecutive layers.
func layerAbsorption(pol Polarization, n, cos []complex128, layerM []mat2, r, t complex128, T float64) []float64 {
	last := len(n) - 1

	// power[j] is the flux entering layer j, j = 1..last.
	power := make([]float64, len(n))
	power[1] = flux(pol, n[0], cos[0], 1, r, n[0], cos[0])
	power[last] = T

	v, w := t, complex(0, 0)
	for j := last - 1; j >= 2; j-- {
		v, w = layerM[j].apply(v, w)
		power[j] = flux(pol, n[j], cos[j], v, w, n[0], cos[0])
	}

	out := make([]float64, last-1)
	for j := 1; j < last; j++ {
		out[j-1] = power[j] - power[j+1]
	}
	return out
}
