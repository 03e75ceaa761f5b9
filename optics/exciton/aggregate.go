package exciton

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-optics/optics/core"
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"
)

// Errors returned by aggregate construction and analysis.
var (
	ErrInvalidShape    = errors.New("exciton: shape must be positive along every axis")
	ErrInvalidGeometry = errors.New("exciton: invalid aggregate geometry")
	ErrInvalidIndex    = errors.New("exciton: refractive index must be positive and finite")
	ErrEigen           = errors.New("exciton: eigendecomposition did not converge")
)

// Aggregate is a regular lattice of identical monomers.
type Aggregate struct {
	// Shape is the monomer count along x, y and z.
	Shape [3]int
	// Displacement is the lattice spacing per axis. Site (i, j, k) sits at
	// (i*Dx, j*Dy, k*Dz).
	Displacement mgl64.Vec3
	// Dipole is the transition dipole moment shared by all monomers.
	Dipole mgl64.Vec3
	// SiteEnergy is the excitation energy of an isolated monomer.
	SiteEnergy float64
	// RefractiveIndex screens the coupling by 1/n^2.
	RefractiveIndex float64
}

// DefaultAggregate returns a unit-spaced H-dimer with dipoles along z.
func DefaultAggregate() Aggregate {
	return Aggregate{
		Shape:           [3]int{2, 1, 1},
		Displacement:    mgl64.Vec3{1, 0, 0},
		Dipole:          mgl64.Vec3{0, 0, 1},
		SiteEnergy:      0.5,
		RefractiveIndex: 1,
	}
}

// Validate reports whether the aggregate describes distinct sites.
func (a Aggregate) Validate() error {
	for axis, n := range a.Shape {
		if n < 1 {
			return fmt.Errorf("%w: axis %d has %d monomers", ErrInvalidShape, axis, n)
		}
		d := a.Displacement[axis]
		if !core.IsFinite(d) || (n > 1 && d == 0) {
			return fmt.Errorf("%w: spacing %g along axis %d with %d monomers", ErrInvalidGeometry, d, axis, n)
		}
		if mu := a.Dipole[axis]; !core.IsFinite(mu) {
			return fmt.Errorf("%w: dipole component %d is %g", ErrInvalidGeometry, axis, mu)
		}
	}
	if !core.IsFinite(a.SiteEnergy) {
		return fmt.Errorf("%w: site energy %g", ErrInvalidGeometry, a.SiteEnergy)
	}
	if !(a.RefractiveIndex > 0) || !core.IsFinite(a.RefractiveIndex) {
		return fmt.Errorf("%w: %g", ErrInvalidIndex, a.RefractiveIndex)
	}
	return nil
}

// Size returns the number of monomers.
func (a Aggregate) Size() int { return a.Shape[0] * a.Shape[1] * a.Shape[2] }

// Site returns the position of monomer n. x varies fastest.
func (a Aggregate) Site(n int) mgl64.Vec3 {
	i := n % a.Shape[0]
	j := (n / a.Shape[0]) % a.Shape[1]
	k := n / (a.Shape[0] * a.Shape[1])
	return mgl64.Vec3{
		float64(i) * a.Displacement.X(),
		float64(j) * a.Displacement.Y(),
		float64(k) * a.Displacement.Z(),
	}
}

// Sites returns every monomer position in site order.
func (a Aggregate) Sites() []mgl64.Vec3 {
	sites := make([]mgl64.Vec3, a.Size())
	for n := range sites {
		sites[n] = a.Site(n)
	}
	return sites
}

// H0 is the uncoupled Hamiltonian element between sites n and m.
func (a Aggregate) H0(n, m int) float64 {
	if n == m {
		return a.SiteEnergy
	}
	return 0
}

// Coupling is the dipole-dipole interaction between sites n and m. It is
// zero on the diagonal.
func (a Aggregate) Coupling(n, m int) float64 {
	if n == m {
		return 0
	}
	r := a.Site(m).Sub(a.Site(n))
	r2 := r.Dot(r)
	mu := a.Dipole
	mr := mu.Dot(r)
	return (mu.Dot(mu) - 3*mr*mr/r2) / (a.RefractiveIndex * a.RefractiveIndex * r2 * math.Sqrt(r2))
}

// Hamiltonian builds H0 + V in the site basis.
func (a Aggregate) Hamiltonian() (*mat.SymDense, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	n := a.Size()
	h := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			h.SetSym(i, j, a.H0(i, j)+a.Coupling(i, j))
		}
	}
	return h, nil
}

// Eigenstates is the diagonalized Hamiltonian.
type Eigenstates struct {
	// Energies are ascending.
	Energies []float64
	// Vectors holds the state of Energies[k] in column k, in the site basis.
	Vectors *mat.Dense
}

// Eigen diagonalizes the Hamiltonian.
func (a Aggregate) Eigen() (Eigenstates, error) {
	h, err := a.Hamiltonian()
	if err != nil {
		return Eigenstates{}, err
	}
	var es mat.EigenSym
	if !es.Factorize(h, true) {
		return Eigenstates{}, ErrEigen
	}
	var v mat.Dense
	es.VectorsTo(&v)
	return Eigenstates{Energies: es.Values(nil), Vectors: &v}, nil
}
