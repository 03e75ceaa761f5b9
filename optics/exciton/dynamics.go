package exciton

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrDimension is returned when a state does not match the Hamiltonian.
var ErrDimension = errors.New("exciton: state dimension does not match Hamiltonian")

// Wavefunction is a single-exciton state in the site basis.
type Wavefunction []complex128

// Localized returns the state with the exciton on one site.
func Localized(size, site int) Wavefunction {
	c := make(Wavefunction, size)
	c[site] = 1
	return c
}

// Delocalized returns the equal-weight superposition of all sites, the
// bright state of an aggregate with parallel dipoles.
func Delocalized(size int) Wavefunction {
	c := make(Wavefunction, size)
	amp := complex(1/math.Sqrt(float64(size)), 0)
	for i := range c {
		c[i] = amp
	}
	return c
}

// Norm returns sum |c_n|^2.
func (c Wavefunction) Norm() float64 {
	var s float64
	for _, v := range c {
		s += real(v)*real(v) + imag(v)*imag(v)
	}
	return s
}

// Populations returns |c_n|^2 per site.
func (c Wavefunction) Populations() []float64 {
	p := make([]float64, len(c))
	for i, v := range c {
		p[i] = real(v)*real(v) + imag(v)*imag(v)
	}
	return p
}

// Overlap returns <c|d>.
func (c Wavefunction) Overlap(d Wavefunction) complex128 {
	var s complex128
	for i := range c {
		s += complex(real(c[i]), -imag(c[i])) * d[i]
	}
	return s
}

// DensityMatrix is a square complex matrix in the site basis.
type DensityMatrix struct {
	n    int
	data []complex128
}

// NewDensityMatrix returns the pure state |c><c|.
func NewDensityMatrix(c Wavefunction) DensityMatrix {
	n := len(c)
	d := DensityMatrix{n: n, data: make([]complex128, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d.data[i*n+j] = c[i] * complex(real(c[j]), -imag(c[j]))
		}
	}
	return d
}

// Size returns the matrix dimension.
func (d DensityMatrix) Size() int { return d.n }

// At returns element (i, j).
func (d DensityMatrix) At(i, j int) complex128 { return d.data[i*d.n+j] }

// Trace returns the sum of the diagonal.
func (d DensityMatrix) Trace() complex128 {
	var s complex128
	for i := 0; i < d.n; i++ {
		s += d.data[i*d.n+i]
	}
	return s
}

// Populations returns the real diagonal.
func (d DensityMatrix) Populations() []float64 {
	p := make([]float64, d.n)
	for i := range p {
		p[i] = real(d.data[i*d.n+i])
	}
	return p
}

// Propagator advances states under a time-independent Hamiltonian with
// fourth-order Runge-Kutta steps.
type Propagator struct {
	n int
	h []float64
}

// NewPropagator copies h.
func NewPropagator(h mat.Symmetric) *Propagator {
	n := h.SymmetricDim()
	p := &Propagator{n: n, h: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			p.h[i*n+j] = h.At(i, j)
		}
	}
	return p
}

// Size returns the Hamiltonian dimension.
func (p *Propagator) Size() int { return p.n }

// Step advances c by dt under dc/dt = -iHc.
func (p *Propagator) Step(c Wavefunction, dt float64) (Wavefunction, error) {
	if len(c) != p.n {
		return nil, fmt.Errorf("%w: wavefunction has %d sites, want %d", ErrDimension, len(c), p.n)
	}
	return rk4(c, dt, p.schrodinger), nil
}

// Evolve applies steps RK4 steps of size dt.
func (p *Propagator) Evolve(c Wavefunction, dt float64, steps int) (Wavefunction, error) {
	for s := 0; s < steps; s++ {
		next, err := p.Step(c, dt)
		if err != nil {
			return nil, err
		}
		c = next
	}
	return c, nil
}

// StepDensity advances d by dt under dD/dt = -i[H, D].
func (p *Propagator) StepDensity(d DensityMatrix, dt float64) (DensityMatrix, error) {
	if d.n != p.n {
		return DensityMatrix{}, fmt.Errorf("%w: density matrix is %dx%d, want %d", ErrDimension, d.n, d.n, p.n)
	}
	return DensityMatrix{n: d.n, data: rk4(d.data, dt, p.liouville)}, nil
}

// EvolveDensity is Evolve for density matrices.
func (p *Propagator) EvolveDensity(d DensityMatrix, dt float64, steps int) (DensityMatrix, error) {
	for s := 0; s < steps; s++ {
		next, err := p.StepDensity(d, dt)
		if err != nil {
			return DensityMatrix{}, err
		}
		d = next
	}
	return d, nil
}

// schrodinger writes -iHc to dst.
func (p *Propagator) schrodinger(dst, c []complex128) {
	for i := 0; i < p.n; i++ {
		var s complex128
		for j, hij := range p.h[i*p.n : (i+1)*p.n] {
			s += complex(hij, 0) * c[j]
		}
		dst[i] = complex(imag(s), -real(s))
	}
}

// liouville writes -i(HD - DH) to dst.
func (p *Propagator) liouville(dst, d []complex128) {
	n := p.n
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var s complex128
			for k := 0; k < n; k++ {
				s += complex(p.h[i*n+k], 0)*d[k*n+j] - d[i*n+k]*complex(p.h[k*n+j], 0)
			}
			dst[i*n+j] = complex(imag(s), -real(s))
		}
	}
}

func rk4(y []complex128, dt float64, f func(dst, y []complex128)) []complex128 {
	n := len(y)
	k1 := make([]complex128, n)
	k2 := make([]complex128, n)
	k3 := make([]complex128, n)
	k4 := make([]complex128, n)
	tmp := make([]complex128, n)

	half := complex(dt/2, 0)
	full := complex(dt, 0)

	f(k1, y)
	for i := range tmp {
		tmp[i] = y[i] + half*k1[i]
	}
	f(k2, tmp)
	for i := range tmp {
		tmp[i] = y[i] + half*k2[i]
	}
	f(k3, tmp)
	for i := range tmp {
		tmp[i] = y[i] + full*k3[i]
	}
	f(k4, tmp)

	out := make([]complex128, n)
	sixth := complex(dt/6, 0)
	for i := range out {
		out[i] = y[i] + sixth*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return out
}
