package mie

import (
	"context"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-optics/optics/core"
	"github.com/cwbudde/algo-optics/optics/material"
	"golang.org/x/sync/errgroup"
)

// Config controls a Driver.
type Config struct {
	core.ComputeConfig

	// Resolver maps material names to index fields. Nil selects
	// material.Default().
	Resolver material.Resolver
	// Material holds options forwarded to every Resolve call.
	Material []material.Option
	// Permeability is the relative permeability of the sphere, default 1.
	Permeability complex128
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a serial, non-magnetic configuration.
func DefaultConfig() Config {
	return Config{ComputeConfig: core.DefaultComputeConfig(), Permeability: 1}
}

// WithResolver selects the material database.
func WithResolver(r material.Resolver) Option {
	return func(cfg *Config) { cfg.Resolver = r }
}

// WithMaterialOptions forwards options to material resolution.
func WithMaterialOptions(opts ...material.Option) Option {
	return func(cfg *Config) { cfg.Material = append(cfg.Material, opts...) }
}

// WithPermeability sets the relative permeability of the sphere.
func WithPermeability(mu complex128) Option {
	return func(cfg *Config) { cfg.Permeability = mu }
}

// WithParallelism evaluates wavelengths on n goroutines.
func WithParallelism(n int) Option {
	return func(cfg *Config) { core.WithWorkers(n)(&cfg.ComputeConfig) }
}

// WithLogger routes diagnostics to l.
func WithLogger(l core.Logger) Option {
	return func(cfg *Config) { core.WithLogger(l)(&cfg.ComputeConfig) }
}

// Spectrum holds the response of one sphere over a wavelength grid. Cross
// sections are in m^2.
type Spectrum struct {
	Wavelengths   []float64
	SizeParameter []float64
	QSca          []float64
	QExt          []float64
	QAbs          []float64
	QBack         []float64
	CSca          []float64
	CExt          []float64
	CAbs          []float64
	// DomainErrors lists wavelengths where a material was undefined.
	DomainErrors []material.DomainRangeError
}

// Driver evaluates a sphere of one material embedded in a host medium.
type Driver struct {
	radius float64
	grid   core.Grid
	sphere material.Field
	medium material.Field
	cfg    Config
}

// NewDriver resolves the sphere and medium materials on grid. radius is in
// metres. The medium is treated as non-absorbing; its extinction
// coefficient is dropped with a warning.
func NewDriver(sphere, medium string, radius float64, grid core.Grid, opts ...Option) (*Driver, error) {
	if !(radius > 0) || !core.IsFinite(radius) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidRadius, radius)
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Resolver == nil {
		cfg.Resolver = material.Default()
	}

	matOpts := append([]material.Option{material.WithLogger(cfg.Logger)}, cfg.Material...)
	sf, err := cfg.Resolver.Resolve(sphere, grid, matOpts...)
	if err != nil {
		return nil, err
	}
	mf, err := cfg.Resolver.Resolve(medium, grid, matOpts...)
	if err != nil {
		return nil, err
	}
	if mf.IsAbsorbing(1e-12) {
		cfg.Logger.Warnf("mie: medium %s is absorbing; using the real part of its index", mf.Material())
	}

	return &Driver{radius: radius, grid: grid, sphere: sf, medium: mf, cfg: cfg}, nil
}

// Radius returns the sphere radius in metres.
func (d *Driver) Radius() float64 { return d.radius }

// Spectrum evaluates every wavelength.
func (d *Driver) Spectrum(ctx context.Context) (Spectrum, error) {
	n := d.grid.Len()
	s := Spectrum{
		Wavelengths:   d.grid.Values(),
		SizeParameter: make([]float64, n),
		QSca:          make([]float64, n),
		QExt:          make([]float64, n),
		QAbs:          make([]float64, n),
		QBack:         make([]float64, n),
		CSca:          make([]float64, n),
		CExt:          make([]float64, n),
		CAbs:          make([]float64, n),
	}
	s.DomainErrors = append(d.sphere.Issues(), d.medium.Issues()...)

	area := math.Pi * d.radius * d.radius

	eval := func(i int) error {
		nm := real(d.medium.At(i))
		ns := d.sphere.At(i)
		x := 2 * math.Pi * nm * d.radius / d.grid.At(i)
		s.SizeParameter[i] = x

		if cmplx.IsNaN(ns) || math.IsNaN(nm) {
			for _, arr := range [][]float64{s.QSca, s.QExt, s.QAbs, s.QBack, s.CSca, s.CExt, s.CAbs} {
				arr[i] = math.NaN()
			}
			return nil
		}

		c, err := Compute(ns/complex(nm, 0), d.cfg.Permeability, x)
		if err != nil {
			return fmt.Errorf("mie: wavelength %g m: %w", d.grid.At(i), err)
		}

		q := c.Efficiencies(x)
		s.QSca[i], s.QExt[i], s.QAbs[i], s.QBack[i] = q.Scattering, q.Extinction, q.Absorption, q.Backscatter
		s.CSca[i], s.CExt[i], s.CAbs[i] = q.Scattering*area, q.Extinction*area, q.Absorption*area
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(d.cfg.Workers, 1))
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return eval(i)
		})
	}
	if err := g.Wait(); err != nil {
		return Spectrum{}, err
	}

	d.cfg.Logger.Debugf("mie: %s sphere r=%g m in %s, %d wavelengths", d.sphere.Material(), d.radius, d.medium.Material(), n)
	return s, nil
}
