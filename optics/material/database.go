package material

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/cwbudde/algo-optics/optics/core"
)

// Extrapolation selects how tabulated models treat wavelengths outside
// their table.
type Extrapolation int

const (
	// ExtrapolateNone yields NaN and records a DomainRangeError.
	ExtrapolateNone Extrapolation = iota
	// ExtrapolateClamp holds the nearest table row and counts a warning.
	ExtrapolateClamp
)

// Config controls Resolve.
type Config struct {
	core.ComputeConfig
	Extrapolation Extrapolation
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the strict, silent configuration.
func DefaultConfig() Config {
	return Config{
		ComputeConfig: core.DefaultComputeConfig(),
		Extrapolation: ExtrapolateNone,
	}
}

// WithExtrapolation sets the out-of-table policy.
func WithExtrapolation(e Extrapolation) Option {
	return func(cfg *Config) {
		cfg.Extrapolation = e
	}
}

// WithLogger routes validity warnings to l.
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

// Resolver turns a material identifier into an index field on a grid.
type Resolver interface {
	Resolve(name string, grid core.Grid, opts ...Option) (Field, error)
}

// Field is the complex refractive index of one material sampled on a grid.
// It is read-only; accessors return copies.
type Field struct {
	material string
	values   []complex128
	issues   []DomainRangeError
	warnings int
}

// NewField wraps precomputed values, e.g. an explicit terminal override.
func NewField(material string, values []complex128) Field {
	return Field{material: material, values: append([]complex128(nil), values...)}
}

// Material returns the display name of the resolved material.
func (f Field) Material() string { return f.material }

// Len returns the number of wavelengths.
func (f Field) Len() int { return len(f.values) }

// At returns n+ik at grid index i. Out-of-range entries are NaN.
func (f Field) At(i int) complex128 { return f.values[i] }

// Values returns a copy of every entry.
func (f Field) Values() []complex128 { return append([]complex128(nil), f.values...) }

// Issues returns the wavelengths that fell outside a table.
func (f Field) Issues() []DomainRangeError { return append([]DomainRangeError(nil), f.issues...) }

// Warnings counts wavelengths outside an analytic validity range or
// clamped to a table edge.
func (f Field) Warnings() int { return f.warnings }

// Database is a set of models keyed by lower-cased identifier.
type Database struct {
	models map[string]Model
	names  []string
}

// NewDatabase builds a database from models. Identifiers are the
// lower-cased model names and must be unique.
func NewDatabase(models ...Model) (*Database, error) {
	db := &Database{models: make(map[string]Model, len(models))}
	for _, m := range models {
		if err := db.add(m); err != nil {
			return nil, err
		}
	}
	return db, nil
}

func (db *Database) add(m Model) error {
	if m == nil || m.Name() == "" {
		return fmt.Errorf("%w: model without name", ErrInvalidModel)
	}

	key := normalize(m.Name())
	if _, dup := db.models[key]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateMaterial, m.Name())
	}

	db.models[key] = m
	i := sort.SearchStrings(db.names, key)
	db.names = append(db.names, "")
	copy(db.names[i+1:], db.names[i:])
	db.names[i] = key
	return nil
}

// Extend returns a new database holding db's models plus extra. db is not
// modified.
func (db *Database) Extend(extra ...Model) (*Database, error) {
	models := make([]Model, 0, len(db.names)+len(extra))
	for _, key := range db.names {
		models = append(models, db.models[key])
	}
	return NewDatabase(append(models, extra...)...)
}

// Names returns the known identifiers in sorted order.
func (db *Database) Names() []string {
	return append([]string(nil), db.names...)
}

// Lookup returns the model registered under name, ignoring case and
// surrounding white space.
func (db *Database) Lookup(name string) (Model, error) {
	if m, ok := db.models[normalize(name)]; ok {
		return m, nil
	}
	return nil, &UnknownMaterialError{Name: name, Known: db.Names()}
}

// Resolve samples the named material on grid.
func (db *Database) Resolve(name string, grid core.Grid, opts ...Option) (Field, error) {
	m, err := db.Lookup(name)
	if err != nil {
		return Field{}, err
	}
	return Sample(m, grid, opts...), nil
}

// Sample evaluates m at every wavelength of grid.
func Sample(m Model, grid core.Grid, opts ...Option) Field {
	cfg := ApplyOptions(opts...)
	f := Field{material: m.Name(), values: make([]complex128, grid.Len())}
	min, max := m.Domain()
	tab, isTable := m.(*Tabulated)

	outside := 0
	for i := range f.values {
		lambda := grid.At(i)
		n, ok := m.Index(lambda)

		switch {
		case !ok && isTable && cfg.Extrapolation == ExtrapolateClamp:
			n, _ = tab.Clamped(lambda)
			f.warnings++
		case !ok:
			n = core.NaNComplex()
			f.issues = append(f.issues, DomainRangeError{
				Material:   m.Name(),
				Index:      i,
				Wavelength: lambda,
				Min:        min,
				Max:        max,
			})
		case lambda < min || lambda > max:
			f.warnings++
			outside++
		}

		f.values[i] = n
	}

	if outside > 0 {
		cfg.Logger.Warnf("material %s: %d of %d wavelengths outside model validity [%g, %g] m",
			m.Name(), outside, grid.Len(), min, max)
	}
	if len(f.issues) > 0 {
		cfg.Logger.Warnf("material %s: %d of %d wavelengths outside table [%g, %g] m",
			m.Name(), len(f.issues), grid.Len(), min, max)
	}

	return f
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

var (
	defaultOnce sync.Once
	defaultDB   *Database
	defaultErr  error
)

// Default returns the built-in catalogue. The embedded tables are parsed on
// first use.
func Default() *Database {
	defaultOnce.Do(func() {
		models, err := builtinModels()
		if err != nil {
			defaultErr = err
			return
		}
		defaultDB, defaultErr = NewDatabase(models...)
	})

	if defaultErr != nil {
		// The tables are compiled into the binary; failure is a build defect.
		panic(defaultErr)
	}

	return defaultDB
}

// Lookup finds name in the default database.
func Lookup(name string) (Model, error) { return Default().Lookup(name) }

// Names lists the default database identifiers.
func Names() []string { return Default().Names() }

// Resolve samples name from the default database on grid.
func Resolve(name string, grid core.Grid, opts ...Option) (Field, error) {
	return Default().Resolve(name, grid, opts...)
}

// IsAbsorbing reports whether any entry of f has k > tol. NaN entries are
// ignored.
func (f Field) IsAbsorbing(tol float64) bool {
	for _, n := range f.values {
		if !math.IsNaN(imag(n)) && imag(n) > tol {
			return true
		}
	}
	return false
}
