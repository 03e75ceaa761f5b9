package mie

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-optics/optics/core"
)

// Errors returned by Mie calculations.
var (
	ErrInvalidSizeParameter = errors.New("mie: size parameter must be positive and finite")
	ErrInvalidRadius        = errors.New("mie: radius must be positive and finite")
	ErrInvalidIndex         = errors.New("mie: refractive index undefined")
)

// NMax returns the number of expansion orders kept for size parameter x.
func NMax(x float64) int {
	return int(math.Floor(x + 4*math.Cbrt(x) + 2))
}

// Coefficients holds the Mie coefficients for orders 1..NMax; element i
// belongs to order i+1.
type Coefficients struct {
	A, B []complex128 // scattered field
	C, D []complex128 // internal field
}

// NMax returns the highest order held.
func (c Coefficients) NMax() int { return len(c.A) }

// Compute returns the Mie coefficients of a sphere with relative index m
// and relative permeability mu at size parameter x = 2 pi n_medium r / lambda.
func Compute(m, mu complex128, x float64) (Coefficients, error) {
	if !(x > 0) || !core.IsFinite(x) {
		return Coefficients{}, fmt.Errorf("%w: %g", ErrInvalidSizeParameter, x)
	}
	if cmplx.IsNaN(m) || cmplx.IsNaN(mu) || m == 0 {
		return Coefficients{}, fmt.Errorf("%w: m = %v, mu = %v", ErrInvalidIndex, m, mu)
	}

	n := NMax(x)
	mx := m * complex(x, 0)
	cx := complex(x, 0)
	m2 := m * m
	wronskian := 1i / cx // j_n (x h_n)' - h_n (x j_n)'

	jx := sphericalJ(n, cx)
	yx := sphericalY(n, x)
	jmx := sphericalJ(n, mx)
	dmx := logDerivative(n, mx)

	c := Coefficients{
		A: make([]complex128, n),
		B: make([]complex128, n),
		C: make([]complex128, n),
		D: make([]complex128, n),
	}

	for k := 1; k <= n; k++ {
		fk := complex(float64(k), 0)
		j := jx[k]
		h := j + complex(0, yx[k])
		hPrev := jx[k-1] + complex(0, yx[k-1])

		xj := cx*jx[k-1] - fk*j // (x j_n(x))'
		xh := cx*hPrev - fk*h   // (x h_n(x))'
		mxD := mx * dmx[k]      // (mx j_n(mx))' / j_n(mx)
		den := m2*xh - mu*h*mxD // electric
		denB := mu*xh - h*mxD   // magnetic

		c.A[k-1] = (m2*xj - mu*j*mxD) / den
		c.B[k-1] = (mu*xj - j*mxD) / denB
		c.C[k-1] = mu * wronskian / (jmx[k] * denB)
		c.D[k-1] = mu * m * wronskian / (jmx[k] * den)
	}

	return c, nil
}

// Efficiencies are dimensionless cross sections normalized by pi r^2.
type Efficiencies struct {
	Scattering float64
	Extinction float64
	Absorption float64
	// Backscatter is the radar backscattering efficiency.
	Backscatter float64
}

// Efficiencies sums the coefficients at size parameter x:
//
//	Q_sca = 2/x^2 sum (2n+1)(|a_n|^2 + |b_n|^2)
//	Q_ext = 2/x^2 sum (2n+1) Re(a_n + b_n)
//	Q_abs = Q_ext - Q_sca
func (c Coefficients) Efficiencies(x float64) Efficiencies {
	var sca, ext float64
	var back complex128
	sign := -1.0

	for i := range c.A {
		a, b := c.A[i], c.B[i]
		w := float64(2*(i+1) + 1)
		sca += w * (real(a)*real(a) + imag(a)*imag(a) + real(b)*real(b) + imag(b)*imag(b))
		ext += w * real(a+b)
		back += complex(w*sign, 0) * (a - b)
		sign = -sign
	}

	norm := 2 / (x * x)
	e := Efficiencies{
		Scattering:  norm * sca,
		Extinction:  norm * ext,
		Backscatter: (real(back)*real(back) + imag(back)*imag(back)) / (x * x),
	}
	e.Absorption = e.Extinction - e.Scattering
	return e
}
