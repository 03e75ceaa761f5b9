package exciton

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-optics/optics/core"
	"gonum.org/v1/gonum/floats"
)

// Errors returned by the spectrum builders.
var (
	ErrInvalidWidth    = errors.New("exciton: line width must be positive and finite")
	ErrInvalidTimeStep = errors.New("exciton: time step must be positive and finite")
	ErrTooFewSteps     = errors.New("exciton: at least two time steps are required")
)

// Stick is one optical transition out of the ground state.
type Stick struct {
	Energy   float64
	Strength float64
}

// StickSpectrum returns one transition per eigenstate, in ascending energy.
// Strength is |sum_n mu c_n|^2, so the strengths sum to Size()*|mu|^2.
func (a Aggregate) StickSpectrum() ([]Stick, error) {
	es, err := a.Eigen()
	if err != nil {
		return nil, err
	}
	mu2 := a.Dipole.Dot(a.Dipole)
	n := a.Size()
	sticks := make([]Stick, n)
	for k := range sticks {
		var amp float64
		for i := 0; i < n; i++ {
			amp += es.Vectors.At(i, k)
		}
		sticks[k] = Stick{Energy: es.Energies[k], Strength: mu2 * amp * amp}
	}
	return sticks, nil
}

// Broaden sums area-normalized Lorentzians of full width fwhm centred on
// each stick.
func Broaden(sticks []Stick, energies []float64, fwhm float64) ([]float64, error) {
	if !(fwhm > 0) || !core.IsFinite(fwhm) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidWidth, fwhm)
	}
	gamma := fwhm / 2
	out := make([]float64, len(energies))
	for i, e := range energies {
		var s float64
		for _, st := range sticks {
			d := e - st.Energy
			s += st.Strength * gamma / (math.Pi * (d*d + gamma*gamma))
		}
		out[i] = s
	}
	return out, nil
}

// AbsorptionSpectrum broadens the stick spectrum onto energies.
func (a Aggregate) AbsorptionSpectrum(energies []float64, fwhm float64) ([]float64, error) {
	sticks, err := a.StickSpectrum()
	if err != nil {
		return nil, err
	}
	return Broaden(sticks, energies, fwhm)
}

// Autocorrelation is the bright-state survival amplitude and its spectrum.
type Autocorrelation struct {
	// Times and Signal hold C(t) = <psi(0)|psi(t)>.
	Times  []float64
	Signal []complex128
	// Energies and Intensity hold |FFT[C*]| up to the Nyquist energy.
	Energies  []float64
	Intensity []float64
}

// AutocorrelationSpectrum propagates the delocalized bright state for
// steps RK4 steps of size dt and Fourier transforms its autocorrelation.
// The signal is zero-padded to a power of two; peaks sit at the energies
// of the eigenstates the bright state overlaps.
func (a Aggregate) AutocorrelationSpectrum(dt float64, steps int) (Autocorrelation, error) {
	if !(dt > 0) || !core.IsFinite(dt) {
		return Autocorrelation{}, fmt.Errorf("%w: %g", ErrInvalidTimeStep, dt)
	}
	if steps < 2 {
		return Autocorrelation{}, fmt.Errorf("%w: %d", ErrTooFewSteps, steps)
	}
	h, err := a.Hamiltonian()
	if err != nil {
		return Autocorrelation{}, err
	}

	p := NewPropagator(h)
	psi0 := Delocalized(a.Size())
	psi := psi0

	ac := Autocorrelation{
		Times:  floats.Span(make([]float64, steps), 0, dt*float64(steps-1)),
		Signal: make([]complex128, steps),
	}
	for s := 0; s < steps; s++ {
		ac.Signal[s] = psi0.Overlap(psi)
		if psi, err = p.Step(psi, dt); err != nil {
			return Autocorrelation{}, err
		}
	}

	fftSize := nextPowerOf2(steps)
	in := make([]complex128, fftSize)
	for s, v := range ac.Signal {
		in[s] = cmplx.Conj(v)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Autocorrelation{}, err
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Autocorrelation{}, err
	}

	half := fftSize / 2
	ac.Energies = make([]float64, half)
	ac.Intensity = make([]float64, half)
	de := 2 * math.Pi / (float64(fftSize) * dt)
	for k := 0; k < half; k++ {
		ac.Energies[k] = float64(k) * de
		ac.Intensity[k] = cmplx.Abs(out[k]) * dt
	}
	return ac, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
