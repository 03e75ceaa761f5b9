package mie

import (
	"context"
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-optics/internal/testutil"
	"github.com/cwbudde/algo-optics/optics/core"
	"github.com/cwbudde/algo-optics/optics/material"
)

func TestNMax(t *testing.T) {
	tests := []struct {
		x    float64
		want int
	}{
		{0.1, 3},
		{1, 7},
		{5, 13},
		{100, 120},
	}
	for _, tt := range tests {
		if got := NMax(tt.x); got != tt.want {
			t.Errorf("NMax(%v) = %d, want %d", tt.x, got, tt.want)
		}
	}

	c, err := Compute(1.5, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	if c.NMax() != 13 || len(c.B) != 13 || len(c.C) != 13 || len(c.D) != 13 {
		t.Fatalf("coefficient lengths %d/%d/%d/%d", len(c.A), len(c.B), len(c.C), len(c.D))
	}
}

func TestSphericalBesselClosedForms(t *testing.T) {
	for _, z := range []complex128{0.3, 1.5, 7, complex(1.5, 0.7), complex(20, 2)} {
		j := sphericalJ(3, z)
		sin, cos := cmplx.Sin(z), cmplx.Cos(z)
		j2 := (3/(z*z*z)-1/z)*sin - 3/(z*z)*cos
		testutil.RequireComplexNear(t, "j0", j[0], sin/z, 1e-13)
		testutil.RequireComplexNear(t, "j2", j[2], j2, 1e-12*math.Max(1, cmplx.Abs(j2)))
	}

	x := 2.5
	y := sphericalY(2, x)
	sin, cos := math.Sincos(x)
	testutil.RequireNear(t, "y2", y[2], (-3/(x*x*x)+1/x)*cos-3/(x*x)*sin, 1e-13)
}

func TestBohrenHuffmanReference(t *testing.T) {
	// Water-like sphere of the Bohren and Huffman BHMIE listing:
	// r = 0.525 um, lambda = 0.6328 um, m = 1.55.
	x := 2 * math.Pi * 0.525 / 0.6328
	c, err := Compute(1.55, 1, x)
	if err != nil {
		t.Fatal(err)
	}
	q := c.Efficiencies(x)
	testutil.RequireNear(t, "Qsca", q.Scattering, 3.10543, 1e-5)
	testutil.RequireNear(t, "Qext", q.Extinction, 3.10543, 1e-5)
	testutil.RequireNear(t, "Qback", q.Backscatter, 2.92534, 1e-5)
}

func TestLosslessSphereDoesNotAbsorb(t *testing.T) {
	for _, x := range []float64{0.5, 2, 10, 40} {
		c, err := Compute(1.5, 1, x)
		if err != nil {
			t.Fatal(err)
		}
		q := c.Efficiencies(x)
		testutil.RequireNear(t, "Qabs", q.Absorption, 0, 1e-9)
		if q.Scattering <= 0 {
			t.Fatalf("x=%v: Qsca = %v", x, q.Scattering)
		}
	}
}

func TestRayleighLimit(t *testing.T) {
	m := complex(1.5, 0.1)
	x := 0.01
	c, err := Compute(m, 1, x)
	if err != nil {
		t.Fatal(err)
	}
	q := c.Efficiencies(x)

	alpha := (m*m - 1) / (m*m + 2)
	sca := 8.0 / 3 * math.Pow(x, 4) * cmplx.Abs(alpha) * cmplx.Abs(alpha)
	abs := 4 * x * imag(alpha)
	testutil.RequireRelNear(t, "Qsca", q.Scattering, sca, 1e-2)
	testutil.RequireRelNear(t, "Qabs", q.Absorption, abs, 1e-2)
}

func TestLargeSphereExtinctionParadox(t *testing.T) {
	x := 100.0
	c, err := Compute(complex(1.5, 0.05), 1, x)
	if err != nil {
		t.Fatal(err)
	}
	q := c.Efficiencies(x)
	if q.Extinction < 1.8 || q.Extinction > 2.4 {
		t.Fatalf("Qext = %v, want close to 2", q.Extinction)
	}
	if q.Absorption <= 0 || q.Absorption >= q.Extinction {
		t.Fatalf("Qabs = %v", q.Absorption)
	}
}

func TestInternalCoefficientsMatchDirectForm(t *testing.T) {
	m := complex(1.5, 0.1)
	x := 2.0
	c, err := Compute(m, 1, x)
	if err != nil {
		t.Fatal(err)
	}

	// c_1 from the unsimplified Bessel products.
	jx := sphericalJ(1, complex(x, 0))
	yx := sphericalY(1, x)
	jm := sphericalJ(1, m*complex(x, 0))
	h1 := jx[1] + complex(0, yx[1])
	h0 := jx[0] + complex(0, yx[0])
	xjp := complex(x, 0)*jx[0] - jx[1]
	xhp := complex(x, 0)*h0 - h1
	mxjp := m*complex(x, 0)*jm[0] - jm[1]
	want := (jx[1]*xhp - h1*xjp) / (jm[1]*xhp - h1*mxjp)

	testutil.RequireComplexNear(t, "c1", c.C[0], want, 1e-12)
}

func TestComputeErrors(t *testing.T) {
	for _, x := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := Compute(1.5, 1, x); !errors.Is(err, ErrInvalidSizeParameter) {
			t.Fatalf("x=%v: err = %v", x, err)
		}
	}
	if _, err := Compute(core.NaNComplex(), 1, 1); !errors.Is(err, ErrInvalidIndex) {
		t.Fatalf("err = %v", err)
	}
}

func TestDriverSpectrum(t *testing.T) {
	grid, err := core.LinearGrid(400e-9, 800e-9, 41)
	if err != nil {
		t.Fatal(err)
	}

	serial, err := NewDriver("au", "water", 20e-9, grid)
	if err != nil {
		t.Fatal(err)
	}
	s, err := serial.Spectrum(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	area := math.Pi * 20e-9 * 20e-9
	peak := 0
	for i := range s.QExt {
		testutil.RequireNear(t, "Qabs", s.QAbs[i], s.QExt[i]-s.QSca[i], 1e-12)
		testutil.RequireRelNear(t, "Cext", s.CExt[i], s.QExt[i]*area, 1e-12)
		if s.QExt[i] > s.QExt[peak] {
			peak = i
		}
	}
	// The gold plasmon resonance of a small sphere in water sits between
	// 500 and 560 nm.
	if p := s.Wavelengths[peak]; p < 500e-9 || p > 560e-9 {
		t.Fatalf("extinction peak at %g m", p)
	}

	parallel, err := NewDriver("au", "water", 20e-9, grid, WithParallelism(4))
	if err != nil {
		t.Fatal(err)
	}
	p, err := parallel.Spectrum(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, p.QExt, s.QExt, 0)
}

func TestDriverPropagatesDomainErrors(t *testing.T) {
	grid, err := core.LinearGrid(400e-9, 600e-9, 11)
	if err != nil {
		t.Fatal(err)
	}
	d, err := NewDriver("ta2o5", "air", 50e-9, grid)
	if err != nil {
		t.Fatal(err)
	}
	s, err := d.Spectrum(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(s.DomainErrors) == 0 || !math.IsNaN(s.QExt[0]) || math.IsNaN(s.QExt[10]) {
		t.Fatalf("domain errors %d, QExt[0] %v, QExt[10] %v", len(s.DomainErrors), s.QExt[0], s.QExt[10])
	}
}

func TestNewDriverErrors(t *testing.T) {
	grid, _ := core.LinearGrid(400e-9, 600e-9, 3)
	if _, err := NewDriver("au", "air", 0, grid); !errors.Is(err, ErrInvalidRadius) {
		t.Fatalf("err = %v", err)
	}
	if _, err := NewDriver("mithril", "air", 1e-8, grid); !errors.Is(err, material.ErrUnknownMaterial) {
		t.Fatalf("err = %v", err)
	}
}
