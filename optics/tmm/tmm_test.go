package tmm

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-optics/internal/testutil"
	"github.com/cwbudde/algo-optics/optics/core"
	"github.com/cwbudde/algo-optics/optics/material"
)

func constLayer(n complex128, d float64) Layer {
	return Layer{Material: "const", Thickness: d, Model: material.Constant{Label: "const", N: n}}
}

func mustGrid(t *testing.T, min, max float64, n int) core.Grid {
	t.Helper()
	g, err := core.LinearGrid(min, max, n)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func mustSolve(t *testing.T, stack Stack, grid core.Grid, angle float64, pol Polarization, opts ...Option) Spectrum {
	t.Helper()
	s, err := NewSolver(stack, grid, opts...)
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	spec, err := s.Solve(angle, pol)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	return spec
}

func TestAiryFilm(t *testing.T) {
	res, err := Evaluate([]complex128{1, 1.5, 1}, []float64{0, 500e-9, 0}, 600e-9, 0, S, false)
	if err != nil {
		t.Fatal(err)
	}

	// r01 = -0.2, r12 = 0.2 and exp(2i delta) = -1.
	want := 0.16 / 1.0816
	testutil.RequireNear(t, "R", res.R, want, 1e-12)
	testutil.RequireNear(t, "T", res.T, 1-want, 1e-12)
	testutil.RequireNear(t, "A", res.A, 0, 1e-12)
}

func TestZeroThicknessLayerIsTransparent(t *testing.T) {
	for _, pol := range []Polarization{S, P, Unpolarized} {
		for _, angle := range []float64{0, 0.3, 1.2} {
			res, err := Evaluate([]complex128{1, complex(2.3, 0.4), 1}, []float64{0, 0, 0}, 550e-9, angle, pol, false)
			if err != nil {
				t.Fatal(err)
			}
			testutil.RequireNear(t, "R", res.R, 0, 1e-12)
			testutil.RequireNear(t, "T", res.T, 1, 1e-12)
		}
	}
}

func TestSingleInterface(t *testing.T) {
	stack := Stack{constLayer(1, 0), constLayer(1.5, 0), constLayer(1.5, 0)}
	grid := mustGrid(t, 500e-9, 500e-9, 1)

	normal := mustSolve(t, stack, grid, 0, S)
	testutil.RequireNear(t, "R(0)", normal.R[0], 0.04, 1e-12)

	brewster := mustSolve(t, stack, grid, math.Atan(1.5), P)
	testutil.RequireNear(t, "Rp(Brewster)", brewster.R[0], 0, 1e-12)
	testutil.RequireNear(t, "Tp(Brewster)", brewster.T[0], 1, 1e-12)
}

func TestTotalInternalReflection(t *testing.T) {
	for _, pol := range []Polarization{S, P} {
		res, err := Evaluate([]complex128{1.5, 1.5, 1}, []float64{0, 0, 0}, 700e-9, math.Pi/3, pol, false)
		if err != nil {
			t.Fatal(err)
		}
		testutil.RequireNear(t, "R", res.R, 1, 1e-12)
		testutil.RequireNear(t, "T", res.T, 0, 1e-12)
	}
}

func TestCriticalAngleInsideFilm(t *testing.T) {
	// glass | 100 nm air | glass. At the critical angle the air layer has
	// cos(theta) = 0 and R tends to x^2/(4+x^2) with x = eta0 k d.
	n := []complex128{1.5, 1, 1.5}
	d := []float64{0, 100e-9, 0}
	lambda := 600e-9
	thetaC := math.Asin(1 / 1.5)
	x := 1.5 * math.Cos(thetaC) * 2 * math.Pi / lambda * d[1]
	limit := x * x / (4 + x*x)

	for _, dt := range []float64{-1e-6, 1e-6} {
		res, err := Evaluate(n, d, lambda, thetaC+dt, S, false)
		if err != nil {
			t.Fatalf("theta = thetaC%+g: %v", dt, err)
		}
		testutil.RequireNear(t, "R near critical angle", res.R, limit, 1e-5)
		testutil.RequireNear(t, "R+T", res.R+res.T, 1, 1e-9)
	}

	// Exactly at the critical angle the result is flagged, never silently wrong.
	res, err := Evaluate(n, d, lambda, thetaC, S, false)
	if err != nil {
		if !errors.Is(err, ErrNumericalInstability) || !math.IsNaN(res.R) {
			t.Fatalf("err = %v, R = %v", err, res.R)
		}
	} else {
		testutil.RequireNear(t, "R at critical angle", res.R, limit, 1e-4)
	}
}

func TestQuarterWaveCoating(t *testing.T) {
	lambda := 600e-9
	nc := math.Sqrt(1.5)
	res, err := Evaluate([]complex128{1, complex(nc, 0), 1.5}, []float64{0, lambda / (4 * nc), 0}, lambda, 0, S, false)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireNear(t, "R", res.R, 0, 1e-12)
}

func TestNormalIncidencePolarizationsAgree(t *testing.T) {
	n := []complex128{1, complex(0.2, 3.4), 1.46, complex(2.1, 0.01), 1.52}
	d := []float64{0, 30e-9, 120e-9, 80e-9, 0}

	s, err := Evaluate(n, d, 633e-9, 0, S, false)
	if err != nil {
		t.Fatal(err)
	}
	p, err := Evaluate(n, d, 633e-9, 0, P, false)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireNear(t, "R", p.R, s.R, 1e-12)
	testutil.RequireNear(t, "T", p.T, s.T, 1e-12)
}

func metalStack() Stack {
	return Stack{
		{Material: "air"},
		{Material: "tio2", Thickness: 40e-9},
		{Material: "ag", Thickness: 15e-9},
		{Material: "sio2", Thickness: 120e-9},
		{Material: "bk7"},
	}
}

func TestEnergyConservation(t *testing.T) {
	grid := mustGrid(t, 450e-9, 1000e-9, 111)

	for _, pol := range []Polarization{S, P, Unpolarized} {
		for _, angle := range []float64{0, 0.5, 1.3} {
			spec := mustSolve(t, metalStack(), grid, angle, pol, WithLayerAbsorption())
			for i := range spec.R {
				r, tr, a := spec.R[i], spec.T[i], spec.A[i]
				if math.Abs(r+tr+a-1) > 1e-9 {
					t.Fatalf("%v angle %g index %d: R+T+A = %v", pol, angle, i, r+tr+a)
				}
				for _, v := range []float64{r, tr, a} {
					if v < -1e-9 || v > 1+1e-9 {
						t.Fatalf("%v angle %g index %d: R=%v T=%v A=%v", pol, angle, i, r, tr, a)
					}
				}

				sum := 0.0
				for j := range spec.LayerA {
					sum += spec.LayerA[j][i]
				}
				testutil.RequireNear(t, "sum(LayerA)", sum, a, 1e-12)
			}
		}
	}
}

func TestLayerAbsorptionLocalizesLoss(t *testing.T) {
	grid := mustGrid(t, 600e-9, 600e-9, 1)
	spec := mustSolve(t, metalStack(), grid, 0.2, P, WithLayerAbsorption())

	if len(spec.LayerA) != 3 {
		t.Fatalf("LayerA has %d layers, want 3", len(spec.LayerA))
	}
	// Only the silver film absorbs at 600 nm; TiO2 and SiO2 are lossless there.
	testutil.RequireNear(t, "A(tio2)", spec.LayerA[0][0], 0, 1e-9)
	testutil.RequireNear(t, "A(sio2)", spec.LayerA[2][0], 0, 1e-9)
	if spec.LayerA[1][0] <= 1e-3 {
		t.Fatalf("A(ag) = %v, want clearly positive", spec.LayerA[1][0])
	}
}

func TestAbsorbingExitMediumCountsAsTransmission(t *testing.T) {
	stack := Stack{{Material: "air"}, {Material: "sio2", Thickness: 90e-9}, {Material: "au"}}
	grid := mustGrid(t, 500e-9, 900e-9, 41)

	for _, pol := range []Polarization{S, P} {
		spec := mustSolve(t, stack, grid, 0.5, pol)
		for i := range spec.A {
			testutil.RequireNear(t, "A", spec.A[i], 0, 1e-9)
			if spec.T[i] <= 0 {
				t.Fatalf("%v index %d: T = %v, want > 0", pol, i, spec.T[i])
			}
		}
	}
}

func TestUnpolarizedIsMean(t *testing.T) {
	grid := mustGrid(t, 500e-9, 800e-9, 31)
	solver, err := NewSolver(metalStack(), grid, WithLayerAbsorption())
	if err != nil {
		t.Fatal(err)
	}

	s, _ := solver.Solve(0.7, S)
	p, _ := solver.Solve(0.7, P)
	u, err := solver.Solve(0.7, Unpolarized)
	if err != nil {
		t.Fatal(err)
	}
	if u.Polarization != Unpolarized {
		t.Fatalf("polarization = %v", u.Polarization)
	}

	for i := range u.R {
		testutil.RequireNear(t, "R", u.R[i], 0.5*(s.R[i]+p.R[i]), 1e-15)
		testutil.RequireNear(t, "T", u.T[i], 0.5*(s.T[i]+p.T[i]), 1e-15)
		testutil.RequireNear(t, "A(ag)", u.LayerA[1][i], 0.5*(s.LayerA[1][i]+p.LayerA[1][i]), 1e-15)
	}
}

func TestOpaqueLayerClamp(t *testing.T) {
	stack := Stack{{Material: "air"}, {Material: "w", Thickness: 10e-6}, {Material: "air"}}
	grid := mustGrid(t, 1e-6, 2e-6, 11)

	spec := mustSolve(t, stack, grid, 0, S)
	if spec.Diagnostics.Clamped != grid.Len() {
		t.Fatalf("clamped = %d, want %d", spec.Diagnostics.Clamped, grid.Len())
	}
	for i := range spec.R {
		testutil.RequireNear(t, "T", spec.T[i], 0, 1e-20)
		testutil.RequireNear(t, "R+A", spec.R[i]+spec.A[i], 1, 1e-9)
	}
	if len(spec.Diagnostics.Instabilities) != 0 {
		t.Fatalf("unexpected instabilities %v", spec.Diagnostics.Instabilities)
	}
}

func TestGrazingIncidenceIsUnstable(t *testing.T) {
	grid := mustGrid(t, 500e-9, 600e-9, 3)
	spec := mustSolve(t, metalStack(), grid, math.Pi/2-1e-13, S)

	d := spec.Diagnostics
	if len(d.Instabilities) != grid.Len() || d.Invalid() != grid.Len() {
		t.Fatalf("instabilities = %d, want %d", len(d.Instabilities), grid.Len())
	}
	for i, e := range d.Instabilities {
		if e.Index != i || !errors.Is(&e, ErrNumericalInstability) {
			t.Fatalf("instability %d = %+v", i, e)
		}
		if !math.IsNaN(spec.R[i]) || !math.IsNaN(spec.T[i]) || !math.IsNaN(spec.A[i]) {
			t.Fatalf("index %d not NaN", i)
		}
	}
}

func TestOutOfRangeMaterialPropagatesNaN(t *testing.T) {
	// The Ta2O5 table starts at 500 nm.
	stack := Stack{{Material: "air"}, {Material: "ta2o5", Thickness: 100e-9}, {Material: "air"}}
	grid := mustGrid(t, 400e-9, 600e-9, 21)

	spec := mustSolve(t, stack, grid, 0, S)
	d := spec.Diagnostics
	if len(d.DomainErrors) == 0 || len(d.Instabilities) != 0 {
		t.Fatalf("domain errors %d, instabilities %d", len(d.DomainErrors), len(d.Instabilities))
	}

	bad := make(map[int]bool)
	for _, e := range d.DomainErrors {
		bad[e.Index] = true
	}
	for i := range spec.R {
		if bad[i] != math.IsNaN(spec.R[i]) {
			t.Fatalf("index %d (%g m): R = %v, flagged = %v", i, grid.At(i), spec.R[i], bad[i])
		}
	}
	if !bad[0] || bad[grid.Len()-1] {
		t.Fatal("expected the short-wavelength end only to be undefined")
	}

	clamped := mustSolve(t, stack, grid, 0, S, WithMaterialOptions(material.WithExtrapolation(material.ExtrapolateClamp)))
	testutil.RequireFinite(t, clamped.R)
}

func TestParallelMatchesSerial(t *testing.T) {
	grid := mustGrid(t, 400e-9, 1200e-9, 257)

	serial := mustSolve(t, metalStack(), grid, 0.4, Unpolarized, WithLayerAbsorption())
	parallel := mustSolve(t, metalStack(), grid, 0.4, Unpolarized, WithLayerAbsorption(), WithParallelism(7))

	testutil.RequireSliceNearlyEqual(t, parallel.R, serial.R, 0)
	testutil.RequireSliceNearlyEqual(t, parallel.T, serial.T, 0)
	testutil.RequireSliceNearlyEqual(t, parallel.A, serial.A, 0)
	for j := range serial.LayerA {
		testutil.RequireSliceNearlyEqual(t, parallel.LayerA[j], serial.LayerA[j], 0)
	}
}

func TestSolveContextCancelled(t *testing.T) {
	grid := mustGrid(t, 400e-9, 800e-9, 64)
	for _, workers := range []int{1, 4} {
		solver, err := NewSolver(metalStack(), grid, WithParallelism(workers))
		if err != nil {
			t.Fatal(err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := solver.SolveContext(ctx, 0, S); !errors.Is(err, context.Canceled) {
			t.Fatalf("workers %d: err = %v, want context.Canceled", workers, err)
		}
	}
}

func TestAngleSweep(t *testing.T) {
	grid := mustGrid(t, 500e-9, 700e-9, 5)
	solver, err := NewSolver(metalStack(), grid)
	if err != nil {
		t.Fatal(err)
	}

	angles := []float64{0, 0.2, 0.4}
	specs, err := solver.AngleSweep(context.Background(), angles, P)
	if err != nil {
		t.Fatal(err)
	}
	if len(specs) != len(angles) {
		t.Fatalf("got %d spectra", len(specs))
	}
	for k, spec := range specs {
		want, _ := solver.Solve(angles[k], P)
		if spec.Angle != angles[k] {
			t.Fatalf("spectrum %d angle %v", k, spec.Angle)
		}
		testutil.RequireSliceNearlyEqual(t, spec.R, want.R, 0)
	}

	if _, err := solver.AngleSweep(context.Background(), []float64{0, math.Pi / 2}, P); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("err = %v, want ErrConfiguration", err)
	}
}

func TestStackValidation(t *testing.T) {
	tests := []struct {
		name        string
		materials   []string
		thicknesses []float64
	}{
		{"too few layers", []string{"air", "air"}, []float64{0, 0}},
		{"length mismatch", []string{"air", "sio2", "air"}, []float64{0, 1e-7}},
		{"terminal thickness", []string{"air", "sio2", "air"}, []float64{1e-9, 1e-7, 0}},
		{"exit thickness", []string{"air", "sio2", "air"}, []float64{0, 1e-7, 1e-9}},
		{"negative thickness", []string{"air", "sio2", "air"}, []float64{0, -1e-7, 0}},
		{"NaN thickness", []string{"air", "sio2", "air"}, []float64{0, math.NaN(), 0}},
		{"empty name", []string{"air", " ", "air"}, []float64{0, 1e-7, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStack(tt.materials, tt.thicknesses)
			var ce *ConfigurationError
			if !errors.As(err, &ce) || !errors.Is(err, ErrConfiguration) {
				t.Fatalf("err = %v, want ConfigurationError", err)
			}
		})
	}

	s, err := NewStack([]string{"air", "sio2", "w", "air"}, []float64{0, 200e-9, 400e-9, 0})
	if err != nil {
		t.Fatal(err)
	}
	if got := s.String(); got != "air | sio2 200nm | w 400nm | air" {
		t.Fatalf("String() = %q", got)
	}
}

func TestSolverRejectsBadInput(t *testing.T) {
	grid := mustGrid(t, 500e-9, 600e-9, 3)

	unknown := Stack{{Material: "air"}, {Material: "kryptonite", Thickness: 1e-7}, {Material: "air"}}
	if _, err := NewSolver(unknown, grid); !errors.Is(err, material.ErrUnknownMaterial) {
		t.Fatalf("unknown material err = %v", err)
	}

	absorbing := Stack{{Material: "au"}, {Material: "sio2", Thickness: 1e-7}, {Material: "air"}}
	if _, err := NewSolver(absorbing, grid); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("absorbing incident medium err = %v", err)
	}

	solver, err := NewSolver(metalStack(), grid)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := solver.Solve(math.NaN(), S); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("NaN angle err = %v", err)
	}
	if _, err := solver.Solve(0, Polarization(9)); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("bad polarization err = %v", err)
	}
}

func TestEvaluateUndefinedIndex(t *testing.T) {
	for _, n := range []complex128{core.NaNComplex(), complex(math.Inf(1), 0), complex(1.5, math.Inf(1))} {
		res, err := Evaluate([]complex128{1, n, 1}, []float64{0, 1e-7, 0}, 5e-7, 0, S, true)
		if !errors.Is(err, ErrUndefinedIndex) {
			t.Fatalf("n = %v: err = %v", n, err)
		}
		if !math.IsNaN(res.R) || len(res.LayerA) != 1 || !math.IsNaN(res.LayerA[0]) {
			t.Fatalf("n = %v: result = %+v", n, res)
		}
	}
}
