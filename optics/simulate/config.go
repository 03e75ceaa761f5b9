package simulate

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/cwbudde/algo-optics/optics/core"
	"github.com/cwbudde/algo-optics/optics/material"
	"github.com/cwbudde/algo-optics/optics/tmm"
	"gopkg.in/yaml.v3"
)

// Reference spectrum modes for absorption metrics.
const (
	ReferenceBlackbody = "blackbody"
	ReferenceTabulated = "tabulated-source"
)

// Config is the input record of one simulation.
type Config struct {
	// Stack is the layer sequence in ParseStack syntax. It replaces
	// Materials and Thicknesses when set.
	Stack       string    `yaml:"stack,omitempty"`
	Materials   []string  `yaml:"materials,omitempty"`
	Thicknesses []float64 `yaml:"thicknesses,omitempty"`

	// WavelengthRange is [min, max, count] with wavelengths in metres.
	WavelengthRange []float64 `yaml:"wavelength_range"`
	// WavelengthSpacing is "linear" (default) or "log".
	WavelengthSpacing string `yaml:"wavelength_spacing,omitempty"`

	// Temperature in kelvin enables thermal metrics when positive.
	Temperature float64 `yaml:"temperature,omitempty"`
	// IncidenceAngle is in radians from the normal.
	IncidenceAngle float64 `yaml:"incidence_angle,omitempty"`
	// Polarization is s (default), p or unpolarized.
	Polarization string `yaml:"polarization,omitempty"`

	ReferenceSpectrumMode string           `yaml:"reference_spectrum_mode,omitempty"`
	SourceSpectrum        []SourceRow      `yaml:"source_spectrum,omitempty"`
	BandgapWavelength     float64          `yaml:"bandgap_wavelength,omitempty"`
	CustomMaterials       []CustomMaterial `yaml:"custom_materials,omitempty"`

	// Extrapolation is none (default) or clamp for tabulated materials.
	Extrapolation   string `yaml:"extrapolation,omitempty"`
	LayerAbsorption bool   `yaml:"layer_absorption,omitempty"`
	Parallelism     int    `yaml:"parallelism,omitempty"`
}

// SourceRow is one sample of a tabulated reference spectrum.
type SourceRow struct {
	Wavelength float64 `yaml:"wavelength"`
	Value      float64 `yaml:"value"`
}

// Load reads a YAML configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("simulate: read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML configuration. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, configError("yaml", "%v", err)
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks every field and returns the first problem as a
// *ConfigurationError.
func (c Config) Validate() error {
	if _, err := c.stack(); err != nil {
		return err
	}
	if _, err := c.grid(); err != nil {
		return err
	}
	if _, err := c.polarization(); err != nil {
		return err
	}
	if _, err := c.extrapolation(); err != nil {
		return err
	}

	switch {
	case math.IsNaN(c.Temperature) || math.IsInf(c.Temperature, 0) || c.Temperature < 0:
		return configError("temperature", "%g K", c.Temperature)
	case math.IsNaN(c.IncidenceAngle) || math.Abs(c.IncidenceAngle) >= math.Pi/2:
		return configError("incidence_angle", "%g rad is not below pi/2", c.IncidenceAngle)
	case math.IsNaN(c.BandgapWavelength) || c.BandgapWavelength < 0:
		return configError("bandgap_wavelength", "%g m", c.BandgapWavelength)
	case c.Parallelism < 0:
		return configError("parallelism", "%d", c.Parallelism)
	}

	switch c.ReferenceSpectrumMode {
	case "", ReferenceBlackbody:
	case ReferenceTabulated:
		if len(c.SourceSpectrum) < 2 {
			return configError("source_spectrum", "tabulated-source needs at least two rows, got %d", len(c.SourceSpectrum))
		}
		if _, err := c.source(); err != nil {
			return configError("source_spectrum", "%v", err)
		}
	default:
		return configError("reference_spectrum_mode", "%q is not blackbody or tabulated-source", c.ReferenceSpectrumMode)
	}

	for i, m := range c.CustomMaterials {
		if _, err := m.Build(); err != nil {
			return configError(fmt.Sprintf("custom_materials[%d]", i), "%v", err)
		}
	}
	return nil
}

func (c Config) stack() (tmm.Stack, error) {
	materials, thicknesses := c.Materials, c.Thicknesses
	if c.Stack != "" {
		if len(materials) > 0 || len(thicknesses) > 0 {
			return nil, configError("stack", "give either stack or materials/thicknesses, not both")
		}
		var err error
		if materials, thicknesses, err = ParseStack(c.Stack); err != nil {
			return nil, err
		}
	}
	s, err := tmm.NewStack(materials, thicknesses)
	if err != nil {
		return nil, fromStack(err)
	}
	return s, nil
}

func (c Config) grid() (core.Grid, error) {
	r := c.WavelengthRange
	if len(r) != 3 {
		return core.Grid{}, configError("wavelength_range", "want [min, max, count], got %d values", len(r))
	}
	count := r[2]
	if count != math.Trunc(count) || count < 2 {
		return core.Grid{}, configError("wavelength_range", "count %g must be an integer of at least 2", count)
	}
	if !(r[0] > 0) || !(r[1] > r[0]) || math.IsInf(r[1], 0) {
		return core.Grid{}, configError("wavelength_range", "need 0 < min < max, got [%g, %g]", r[0], r[1])
	}

	var (
		g   core.Grid
		err error
	)
	switch strings.ToLower(c.WavelengthSpacing) {
	case "", "linear":
		g, err = core.LinearGrid(r[0], r[1], int(count))
	case "log":
		g, err = core.LogGrid(r[0], r[1], int(count))
	default:
		return core.Grid{}, configError("wavelength_spacing", "%q is not linear or log", c.WavelengthSpacing)
	}
	if err != nil {
		return core.Grid{}, configError("wavelength_range", "%v", err)
	}
	return g, nil
}

func (c Config) polarization() (tmm.Polarization, error) {
	switch strings.ToLower(c.Polarization) {
	case "", "s", "te":
		return tmm.S, nil
	case "p", "tm":
		return tmm.P, nil
	case "unpolarized", "u":
		return tmm.Unpolarized, nil
	default:
		return 0, configError("polarization", "%q is not s, p or unpolarized", c.Polarization)
	}
}

func (c Config) extrapolation() (material.Extrapolation, error) {
	switch strings.ToLower(c.Extrapolation) {
	case "", "none":
		return material.ExtrapolateNone, nil
	case "clamp":
		return material.ExtrapolateClamp, nil
	default:
		return 0, configError("extrapolation", "%q is not none or clamp", c.Extrapolation)
	}
}
