package core

import "runtime"

// ComputeConfig holds settings shared by every calculator in the module.
type ComputeConfig struct {
	Logger  Logger
	Workers int
}

// ComputeOption mutates a ComputeConfig.
type ComputeOption func(*ComputeConfig)

// DefaultComputeConfig returns a silent, single-worker configuration.
func DefaultComputeConfig() ComputeConfig {
	return ComputeConfig{
		Logger:  NopLogger{},
		Workers: 1,
	}
}

// WithLogger routes diagnostics to l. A nil logger is ignored.
func WithLogger(l Logger) ComputeOption {
	return func(cfg *ComputeConfig) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// WithWorkers sets the number of goroutines used for independent wavelength
// evaluation. Zero or negative values select runtime.GOMAXPROCS(0).
func WithWorkers(n int) ComputeOption {
	return func(cfg *ComputeConfig) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		cfg.Workers = n
	}
}

// ApplyComputeOptions applies zero or more options to the default config.
func ApplyComputeOptions(opts ...ComputeOption) ComputeConfig {
	cfg := DefaultComputeConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
