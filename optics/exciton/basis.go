package exciton

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrTooFewPoints is returned for site grids with fewer than two points.
var ErrTooFewPoints = errors.New("exciton: at least two grid points are required")

// fwhmPerSigma converts a Gaussian full width at half maximum to its
// standard deviation.
var fwhmPerSigma = 2 * math.Sqrt(2*math.Ln2)

// SiteBasis is a set of normalized Gaussians, one per site, sampled on x.
type SiteBasis struct {
	X []float64
	// Phi[n] is the site-n orbital on X.
	Phi [][]float64
}

// SiteWavefunctions samples a Gaussian orbital per monomer along the x
// axis. The FWHM is half the x spacing and the grid spans from one
// spacing before the first site to the last site.
func (a Aggregate) SiteWavefunctions(points int) (SiteBasis, error) {
	if err := a.Validate(); err != nil {
		return SiteBasis{}, err
	}
	if points < 2 {
		return SiteBasis{}, fmt.Errorf("%w: %d", ErrTooFewPoints, points)
	}
	dx := a.Displacement.X()
	if a.Shape[0] < 2 || dx <= 0 {
		return SiteBasis{}, fmt.Errorf("%w: site orbitals need at least two sites with positive x spacing", ErrInvalidGeometry)
	}

	sigma := dx / 2 / fwhmPerSigma
	norm := 1 / (sigma * math.Sqrt(2*math.Pi))
	xMax := float64(a.Shape[0]-1) * dx

	b := SiteBasis{
		X:   floats.Span(make([]float64, points), -dx, xMax),
		Phi: make([][]float64, a.Size()),
	}
	for n := range b.Phi {
		xn := a.Site(n).X()
		phi := make([]float64, points)
		for i, x := range b.X {
			d := x - xn
			phi[i] = norm * math.Exp(-d*d/(2*sigma*sigma))
		}
		b.Phi[n] = phi
	}
	return b, nil
}
