package tmm

import (
	"github.com/cwbudde/algo-optics/optics/core"
	"github.com/cwbudde/algo-optics/optics/material"
)

// Config controls a Solver.
type Config struct {
	core.ComputeConfig

	// Resolver maps layer names to index fields. Nil selects material.Default().
	Resolver material.Resolver
	// Material holds options forwarded to every Resolve call.
	Material []material.Option
	// LayerAbsorption enables per-layer absorptance in every Spectrum.
	LayerAbsorption bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a serial solver over the default material database.
func DefaultConfig() Config {
	return Config{ComputeConfig: core.DefaultComputeConfig()}
}

// WithResolver selects the material database.
func WithResolver(r material.Resolver) Option {
	return func(cfg *Config) {
		cfg.Resolver = r
	}
}

// WithMaterialOptions forwards options, e.g. an extrapolation policy, to
// material resolution.
func WithMaterialOptions(opts ...material.Option) Option {
	return func(cfg *Config) {
		cfg.Material = append(cfg.Material, opts...)
	}
}

// WithLayerAbsorption enables per-layer absorptance.
func WithLayerAbsorption() Option {
	return func(cfg *Config) {
		cfg.LayerAbsorption = true
	}
}

// WithParallelism evaluates wavelengths on n goroutines. n <= 0 selects
// GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(cfg *Config) {
		core.WithWorkers(n)(&cfg.ComputeConfig)
	}
}

// WithLogger routes diagnostics to l.
func WithLogger(l core.Logger) Option {
	return func(cfg *Config) {
		core.WithLogger(l)(&cfg.ComputeConfig)
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
