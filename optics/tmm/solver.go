package tmm

import (
	"context"
	"errors"
	"math"

	"github.com/cwbudde/algo-optics/optics/core"
	"github.com/cwbudde/algo-optics/optics/material"
	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/sync/errgroup"
)

// Diagnostics collects the per-wavelength problems of one solve.
type Diagnostics struct {
	// Instabilities lists wavelengths rejected by the matrix checks.
	Instabilities []NumericalInstabilityError
	// DomainErrors lists layer indices that were undefined (NaN).
	DomainErrors []material.DomainRangeError
	// Clamped counts wavelengths where a layer phase hit the opacity clamp.
	Clamped int
	// MaterialWarnings counts wavelengths evaluated outside an analytic
	// model's validity range or clamped to a table edge, summed over layers.
	MaterialWarnings int
}

// Invalid returns the number of NaN wavelengths.
func (d Diagnostics) Invalid() int {
	seen := make(map[int]struct{}, len(d.Instabilities)+len(d.DomainErrors))
	for _, e := range d.Instabilities {
		seen[e.Index] = struct{}{}
	}
	for _, e := range d.DomainErrors {
		seen[e.Index] = struct{}{}
	}
	return len(seen)
}

// Spectrum is the response of a stack over a wavelength grid.
type Spectrum struct {
	Wavelengths []float64
	R, T, A     []float64
	// LayerA[j][i] is the absorptance of finite layer j+1 at wavelength i.
	LayerA       [][]float64
	Angle        float64
	Polarization Polarization
	Diagnostics  Diagnostics
}

// Len returns the number of wavelengths.
func (s Spectrum) Len() int { return len(s.Wavelengths) }

// Solver evaluates one stack on one wavelength grid. The layer indices are
// resolved once by NewSolver; a Solver is safe for concurrent use.
type Solver struct {
	stack   Stack
	grid    core.Grid
	fields  []material.Field
	thick   []float64
	cfg     Config
	domain  []material.DomainRangeError
	warning int
}

// NewSolver validates stack and resolves every layer on grid.
func NewSolver(stack Stack, grid core.Grid, opts ...Option) (*Solver, error) {
	if err := stack.Validate(); err != nil {
		return nil, err
	}
	if grid.Len() == 0 {
		return nil, configError("wavelength grid", "empty")
	}

	cfg := ApplyOptions(opts...)
	if cfg.Resolver == nil {
		cfg.Resolver = material.Default()
	}

	matOpts := append([]material.Option{material.WithLogger(cfg.Logger)}, cfg.Material...)
	s := &Solver{
		stack:  append(Stack(nil), stack...),
		grid:   grid,
		fields: make([]material.Field, len(stack)),
		thick:  stack.Thicknesses(),
		cfg:    cfg,
	}

	for i, l := range stack {
		var (
			f   material.Field
			err error
		)
		if l.Model != nil {
			f = material.Sample(l.Model, grid, matOpts...)
		} else {
			f, err = cfg.Resolver.Resolve(l.Material, grid, matOpts...)
		}
		if err != nil {
			return nil, err
		}

		s.fields[i] = f
		s.domain = append(s.domain, f.Issues()...)
		s.warning += f.Warnings()
	}

	if s.fields[0].IsAbsorbing(incidentLossEps) {
		return nil, configError("incident medium", "%s is absorbing on the requested grid", stack[0].name())
	}

	cfg.Logger.Debugf("tmm: solver for %s on %d wavelengths [%g, %g] m", s.stack, grid.Len(), grid.Min(), grid.Max())
	return s, nil
}

// Stack returns a copy of the solved stack.
func (s *Solver) Stack() Stack { return append(Stack(nil), s.stack...) }

// Grid returns the wavelength grid.
func (s *Solver) Grid() core.Grid { return s.grid }

// Indices returns the layer indices at wavelength index i.
func (s *Solver) Indices(i int) []complex128 {
	out := make([]complex128, len(s.fields))
	for j, f := range s.fields {
		out[j] = f.At(i)
	}
	return out
}

// Field returns the resolved index field of layer j.
func (s *Solver) Field(j int) material.Field { return s.fields[j] }

// At evaluates wavelength index i alone.
func (s *Solver) At(i int, angle float64, pol Polarization) (Result, error) {
	res, err := Evaluate(s.Indices(i), s.thick, s.grid.At(i), angle, pol, s.cfg.LayerAbsorption)
	var inst *NumericalInstabilityError
	if errors.As(err, &inst) {
		inst.Index = i
	}
	return res, err
}

// Solve evaluates every wavelength. It is SolveContext without cancellation.
func (s *Solver) Solve(angle float64, pol Polarization) (Spectrum, error) {
	return s.SolveContext(context.Background(), angle, pol)
}

// SolveContext evaluates every wavelength, honouring ctx between
// wavelengths. Unpolarized spectra are the mean of the S and P spectra.
func (s *Solver) SolveContext(ctx context.Context, angle float64, pol Polarization) (Spectrum, error) {
	if err := checkAngle(angle); err != nil {
		return Spectrum{}, err
	}

	switch pol {
	case S, P:
		return s.solve(ctx, angle, pol)
	case Unpolarized:
		sp, err := s.solve(ctx, angle, S)
		if err != nil {
			return Spectrum{}, err
		}
		pp, err := s.solve(ctx, angle, P)
		if err != nil {
			return Spectrum{}, err
		}
		return mean(sp, pp), nil
	default:
		return Spectrum{}, configError("polarization", "%v", pol)
	}
}

// AngleSweep solves the stack at every angle in angles.
func (s *Solver) AngleSweep(ctx context.Context, angles []float64, pol Polarization) ([]Spectrum, error) {
	out := make([]Spectrum, len(angles))
	for i, a := range angles {
		spec, err := s.SolveContext(ctx, a, pol)
		if err != nil {
			return nil, err
		}
		out[i] = spec
	}
	return out, nil
}

func (s *Solver) newSpectrum(angle float64, pol Polarization) Spectrum {
	n := s.grid.Len()
	spec := Spectrum{
		Wavelengths:  s.grid.Values(),
		R:            make([]float64, n),
		T:            make([]float64, n),
		A:            make([]float64, n),
		Angle:        angle,
		Polarization: pol,
		Diagnostics: Diagnostics{
			DomainErrors:     append([]material.DomainRangeError(nil), s.domain...),
			MaterialWarnings: s.warning,
		},
	}
	if s.cfg.LayerAbsorption {
		spec.LayerA = make([][]float64, len(s.stack)-2)
		for j := range spec.LayerA {
			spec.LayerA[j] = make([]float64, n)
		}
	}
	return spec
}

func (s *Solver) solve(ctx context.Context, angle float64, pol Polarization) (Spectrum, error) {
	spec := s.newSpectrum(angle, pol)
	n := s.grid.Len()

	unstable := make([]*NumericalInstabilityError, n)
	clamped := make([]bool, n)

	work := func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := s.At(i, angle, pol)
			var inst *NumericalInstabilityError
			switch {
			case errors.As(err, &inst):
				unstable[i] = inst
			case err != nil && !errors.Is(err, ErrUndefinedIndex):
				return err
			}

			spec.R[i], spec.T[i], spec.A[i] = res.R, res.T, res.A
			for j := range spec.LayerA {
				if res.LayerA != nil {
					spec.LayerA[j][i] = res.LayerA[j]
				} else {
					spec.LayerA[j][i] = math.NaN()
				}
			}
			clamped[i] = res.Clamped
		}
		return nil
	}

	workers := min(max(s.cfg.Workers, 1), n)
	if workers == 1 {
		if err := work(0, n); err != nil {
			return Spectrum{}, err
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		ctx = gctx

		chunk := (n + workers - 1) / workers
		for lo := 0; lo < n; lo += chunk {
			hi := min(lo+chunk, n)
			g.Go(func() error { return work(lo, hi) })
		}
		if err := g.Wait(); err != nil {
			return Spectrum{}, err
		}
	}

	for i := range unstable {
		if unstable[i] != nil {
			spec.Diagnostics.Instabilities = append(spec.Diagnostics.Instabilities, *unstable[i])
		}
		if clamped[i] {
			spec.Diagnostics.Clamped++
		}
	}

	if k := len(spec.Diagnostics.Instabilities); k > 0 {
		s.cfg.Logger.Warnf("tmm: %d of %d wavelengths numerically unstable (%s, %s)", k, n, pol, s.stack)
	}
	if spec.Diagnostics.Clamped > 0 {
		s.cfg.Logger.Debugf("tmm: opacity clamp engaged at %d wavelengths", spec.Diagnostics.Clamped)
	}

	return spec, nil
}

// mean averages two spectra on the same grid.
func mean(a, b Spectrum) Spectrum {
	out := a
	out.Polarization = Unpolarized
	out.R = averaged(a.R, b.R)
	out.T = averaged(a.T, b.T)
	out.A = averaged(a.A, b.A)
	if a.LayerA != nil {
		out.LayerA = make([][]float64, len(a.LayerA))
		for j := range a.LayerA {
			out.LayerA[j] = averaged(a.LayerA[j], b.LayerA[j])
		}
	}

	d := &out.Diagnostics
	d.Instabilities = mergeInstabilities(a.Diagnostics.Instabilities, b.Diagnostics.Instabilities)
	d.Clamped = max(a.Diagnostics.Clamped, b.Diagnostics.Clamped)
	return out
}

func averaged(a, b []float64) []float64 {
	out := make([]float64, len(a))
	copy(out, a)
	vecmath.AddBlockInPlace(out, b)
	vecmath.ScaleBlock(out, out, 0.5)
	return out
}

// mergeInstabilities unions two index-sorted lists, keeping the first entry
// per wavelength.
func mergeInstabilities(a, b []NumericalInstabilityError) []NumericalInstabilityError {
	var out []NumericalInstabilityError
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case j == len(b) || (i < len(a) && a[i].Index < b[j].Index):
			out = append(out, a[i])
			i++
		case i == len(a) || b[j].Index < a[i].Index:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}
