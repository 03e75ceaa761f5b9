package thermal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-optics/optics/core"
	"github.com/cwbudde/algo-vecmath"
)

// EmissionMetrics describes thermal emission from a surface of spectral
// emissivity e(lambda) at the analyzer temperature. Powers are
// hemispherical (pi times the radiance integral) in W m^-2 over the grid.
type EmissionMetrics struct {
	BlackbodyPower     float64 // pi * int B
	EmittedPower       float64 // pi * int e B
	MeanEmissivity     float64 // int e B / int B
	LuminousEfficiency float64 // int e B V / int e B
	LuminousEfficacy   float64 // lm/W, 683 * LuminousEfficiency
}

// AbsorptionMetrics describes a surface of absorptance A(lambda) under the
// analyzer's reference source S(lambda).
type AbsorptionMetrics struct {
	IncidentPower float64 // int S
	AbsorbedPower float64 // int A S
	Efficiency    float64 // int A S / int S
}

// TPVMetrics describes an emitter feeding a photovoltaic cell with bandgap
// wavelength BandgapWavelength.
type TPVMetrics struct {
	BandgapWavelength  float64
	EmittedPower       float64 // pi * int e B over the grid
	UsefulPower        float64 // pi * int_{lambda < bg} (lambda/bg) e B
	SpectralEfficiency float64 // UsefulPower / EmittedPower
}

// Metrics bundles every figure of merit for one spectrum.
type Metrics struct {
	Temperature float64
	Emission    EmissionMetrics
	Absorption  AbsorptionMetrics
	// TPV is nil unless the analyzer has a bandgap.
	TPV *TPVMetrics
}

// Analyzer computes figures of merit on a fixed wavelength grid. The
// Planck and photopic spectra are cached and rebuilt when Temperature or the
// grid length change; an Analyzer must not be mutated concurrently.
type Analyzer struct {
	Wavelengths []float64
	Temperature float64
	// Source is the reference spectrum for absorption metrics. Nil selects a
	// blackbody at Temperature.
	Source Source
	// BandgapWavelength enables TPV metrics when > 0.
	BandgapWavelength float64

	cachedT   float64
	blackbody []float64
	photopic  []float64
}

// NewAnalyzer creates an analyzer for grid at temperature T kelvin.
func NewAnalyzer(grid core.Grid, T float64) (*Analyzer, error) {
	a := &Analyzer{Wavelengths: grid.Values(), Temperature: T}
	if err := a.prepare(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Analyzer) prepare() error {
	if err := checkGrid(a.Wavelengths); err != nil {
		return err
	}

	bb, err := BlackbodySpectrum(a.Wavelengths, a.Temperature)
	if err != nil {
		return err
	}
	a.blackbody = bb
	a.cachedT = a.Temperature
	a.photopic = PhotopicSpectrum(a.Wavelengths)
	return nil
}

func (a *Analyzer) ensure(values []float64) error {
	if a.blackbody == nil || len(a.blackbody) != len(a.Wavelengths) || a.cachedT != a.Temperature {
		if err := a.prepare(); err != nil {
			return err
		}
	}
	if len(values) != len(a.Wavelengths) {
		return fmt.Errorf("%w: %d values on %d wavelengths", ErrLengthMismatch, len(values), len(a.Wavelengths))
	}
	return nil
}

// Blackbody returns a copy of the analyzer's Planck spectrum.
func (a *Analyzer) Blackbody() ([]float64, error) {
	if err := a.ensure(a.Wavelengths); err != nil {
		return nil, err
	}
	return append([]float64(nil), a.blackbody...), nil
}

// Emission computes emission metrics for the emissivity spectrum e.
func (a *Analyzer) Emission(e []float64) (EmissionMetrics, error) {
	if err := a.ensure(e); err != nil {
		return EmissionMetrics{}, err
	}

	eb := make([]float64, len(e))
	vecmath.MulBlock(eb, e, a.blackbody)
	ebv := make([]float64, len(e))
	vecmath.MulBlock(ebv, eb, a.photopic)

	total := a.integral(a.blackbody)
	emitted := a.integral(eb)
	visible := a.integral(ebv)

	m := EmissionMetrics{
		BlackbodyPower: math.Pi * total,
		EmittedPower:   math.Pi * emitted,
		MeanEmissivity: ratio(emitted, total),
	}
	m.LuminousEfficiency = ratio(visible, emitted)
	m.LuminousEfficacy = core.MaxLuminousEfficacy * m.LuminousEfficiency
	return m, nil
}

// Absorption computes absorption metrics for the absorptance spectrum abs
// under the reference source.
func (a *Analyzer) Absorption(abs []float64) (AbsorptionMetrics, error) {
	if err := a.ensure(abs); err != nil {
		return AbsorptionMetrics{}, err
	}

	src := a.blackbody
	if a.Source != nil {
		s, err := a.Source.Spectrum(a.Wavelengths)
		if err != nil {
			return AbsorptionMetrics{}, err
		}
		if len(s) != len(a.Wavelengths) {
			return AbsorptionMetrics{}, fmt.Errorf("%w: source returned %d values", ErrLengthMismatch, len(s))
		}
		src = s
	}

	as := make([]float64, len(abs))
	vecmath.MulBlock(as, abs, src)

	incident := a.integral(src)
	absorbed := a.integral(as)
	return AbsorptionMetrics{
		IncidentPower: incident,
		AbsorbedPower: absorbed,
		Efficiency:    ratio(absorbed, incident),
	}, nil
}

// TPV computes thermophotovoltaic metrics for the emissivity spectrum e and
// a cell with bandgap wavelength bg (m). Photons above the bandgap deliver
// the fraction lambda/bg of their energy.
func (a *Analyzer) TPV(e []float64, bg float64) (TPVMetrics, error) {
	if !(bg > 0) || !core.IsFinite(bg) {
		return TPVMetrics{}, ErrInvalidBandgap
	}
	if err := a.ensure(e); err != nil {
		return TPVMetrics{}, err
	}

	eb := make([]float64, len(e))
	vecmath.MulBlock(eb, e, a.blackbody)

	weight := make([]float64, len(e))
	for i, lambda := range a.Wavelengths {
		if lambda <= bg {
			weight[i] = lambda / bg
		}
	}
	useful := make([]float64, len(e))
	vecmath.MulBlock(useful, eb, weight)

	emitted := math.Pi * a.integral(eb)
	usable := math.Pi * a.integral(useful)
	return TPVMetrics{
		BandgapWavelength:  bg,
		EmittedPower:       emitted,
		UsefulPower:        usable,
		SpectralEfficiency: ratio(usable, emitted),
	}, nil
}

// Analyze computes every metric for a stack whose absorptance (equal to
// its emissivity) is abs.
func (a *Analyzer) Analyze(abs []float64) (Metrics, error) {
	m := Metrics{Temperature: a.Temperature}

	var err error
	if m.Emission, err = a.Emission(abs); err != nil {
		return Metrics{}, err
	}
	if m.Absorption, err = a.Absorption(abs); err != nil {
		return Metrics{}, err
	}
	if a.BandgapWavelength > 0 {
		tpv, err := a.TPV(abs, a.BandgapWavelength)
		if err != nil {
			return Metrics{}, err
		}
		m.TPV = &tpv
	}
	return m, nil
}

func (a *Analyzer) integral(y []float64) float64 {
	v, _ := Trapezoid(a.Wavelengths, y)
	return v
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
