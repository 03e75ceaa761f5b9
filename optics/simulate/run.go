package simulate

import (
	"context"
	"fmt"

	"github.com/cwbudde/algo-optics/measure/thermal"
	"github.com/cwbudde/algo-optics/optics/core"
	"github.com/cwbudde/algo-optics/optics/material"
	"github.com/cwbudde/algo-optics/optics/tmm"
	"github.com/cwbudde/algo-optics/stats/spectral"
)

// Option configures Run.
type Option func(*runConfig)

type runConfig struct {
	logger core.Logger
	db     *material.Database
}

// WithLogger routes progress and diagnostics to l.
func WithLogger(l core.Logger) Option {
	return func(rc *runConfig) {
		if l != nil {
			rc.logger = l
		}
	}
}

// WithDatabase replaces the built-in material database. Custom materials
// from the configuration are added on top of it.
func WithDatabase(db *material.Database) Option {
	return func(rc *runConfig) {
		if db != nil {
			rc.db = db
		}
	}
}

// Result is the outcome of one Run.
type Result struct {
	Stack    tmm.Stack
	Spectrum tmm.Spectrum

	Reflectance   spectral.Stats
	Transmittance spectral.Stats
	Absorptance   spectral.Stats

	// Thermal holds the figures of merit when Temperature > 0. The
	// absorptance doubles as emissivity.
	Thermal *thermal.Metrics
}

// Run validates cfg, resolves the stack and solves it on the configured
// grid.
func Run(ctx context.Context, cfg Config, opts ...Option) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	rc := runConfig{logger: core.NopLogger{}, db: material.Default()}
	for _, opt := range opts {
		opt(&rc)
	}

	// Validate has already rejected every error these can return.
	stack, _ := cfg.stack()
	grid, _ := cfg.grid()
	pol, _ := cfg.polarization()
	extrap, _ := cfg.extrapolation()

	db, err := extend(rc.db, cfg.CustomMaterials)
	if err != nil {
		return Result{}, err
	}

	topts := []tmm.Option{
		tmm.WithResolver(db),
		tmm.WithMaterialOptions(material.WithExtrapolation(extrap)),
		tmm.WithLogger(rc.logger),
	}
	if cfg.Parallelism > 0 {
		topts = append(topts, tmm.WithParallelism(cfg.Parallelism))
	}
	if cfg.LayerAbsorption {
		topts = append(topts, tmm.WithLayerAbsorption())
	}

	solver, err := tmm.NewSolver(stack, grid, topts...)
	if err != nil {
		return Result{}, fromStack(err)
	}

	rc.logger.Infof("simulate: %s, %d wavelengths %g..%g m, %s at %g rad",
		stack, grid.Len(), grid.Min(), grid.Max(), pol, cfg.IncidenceAngle)

	spec, err := solver.SolveContext(ctx, cfg.IncidenceAngle, pol)
	if err != nil {
		return Result{}, err
	}
	if bad := spec.Diagnostics.Invalid(); bad > 0 {
		rc.logger.Warnf("simulate: %d of %d wavelengths are undefined", bad, spec.Len())
	}

	res := Result{
		Stack:         stack,
		Spectrum:      spec,
		Reflectance:   spectral.Calculate(spec.Wavelengths, spec.R),
		Transmittance: spectral.Calculate(spec.Wavelengths, spec.T),
		Absorptance:   spectral.Calculate(spec.Wavelengths, spec.A),
	}

	if cfg.Temperature > 0 {
		m, err := analyze(cfg, grid, spec.A)
		if err != nil {
			return Result{}, err
		}
		res.Thermal = &m
	}
	return res, nil
}

func extend(db *material.Database, custom []CustomMaterial) (*material.Database, error) {
	if len(custom) == 0 {
		return db, nil
	}
	models := make([]material.Model, 0, len(custom))
	for _, c := range custom {
		m, err := c.Build()
		if err != nil {
			return nil, configError("custom_materials", "%v", err)
		}
		models = append(models, m)
	}
	out, err := db.Extend(models...)
	if err != nil {
		return nil, configError("custom_materials", "%v", err)
	}
	return out, nil
}

func analyze(cfg Config, grid core.Grid, absorptance []float64) (thermal.Metrics, error) {
	a, err := thermal.NewAnalyzer(grid, cfg.Temperature)
	if err != nil {
		return thermal.Metrics{}, fmt.Errorf("simulate: thermal: %w", err)
	}
	a.BandgapWavelength = cfg.BandgapWavelength
	if cfg.ReferenceSpectrumMode == ReferenceTabulated {
		if a.Source, err = cfg.source(); err != nil {
			return thermal.Metrics{}, configError("source_spectrum", "%v", err)
		}
	}

	m, err := a.Analyze(absorptance)
	if err != nil {
		return thermal.Metrics{}, fmt.Errorf("simulate: thermal: %w", err)
	}
	return m, nil
}

func (c Config) source() (thermal.Source, error) {
	wl := make([]float64, len(c.SourceSpectrum))
	values := make([]float64, len(c.SourceSpectrum))
	for i, r := range c.SourceSpectrum {
		wl[i], values[i] = r.Wavelength, r.Value
	}
	src, err := thermal.NewTabulatedSource(wl, values)
	if err != nil {
		return nil, err
	}
	return src, nil
}
