package spectral

import (
	"math"

	"github.com/cwbudde/algo-optics/optics/core"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// Stats holds shape descriptors of a spectrum S(lambda) sampled on a
// wavelength grid. Wavelength-valued fields are in the grid's unit.
type Stats struct {
	Count          int // finite samples used
	Max            float64
	MaxIndex       int // index into the input slices
	PeakWavelength float64
	Min            float64
	MinIndex       int
	Range          float64
	Integral       float64 // int S dlambda
	Mean           float64 // Integral / (lambda_max - lambda_min)
	// Spectral shape descriptors
	Centroid float64 // int lambda S / int S
	Spread   float64 // standard deviation around the centroid
	Flatness float64 // geometric over arithmetic mean of the samples, 0..1
	Rolloff  float64 // wavelength below which 85% of the integral lies
	FWHM     float64 // full width at half maximum around the peak
}

// Calculate computes every descriptor of values over wavelengths. Pairs
// with a non-finite value are skipped; wavelengths must be increasing.
func Calculate(wavelengths, values []float64) Stats {
	x, y, idx := finite(wavelengths, values)
	n := len(y)

	var s Stats
	s.Count = n
	if n == 0 {
		s.MaxIndex, s.MinIndex = -1, -1
		return s
	}

	maxAt, minAt := floats.MaxIdx(y), floats.MinIdx(y)
	s.Max, s.MaxIndex, s.PeakWavelength = y[maxAt], idx[maxAt], x[maxAt]
	s.Min, s.MinIndex = y[minAt], idx[minAt]
	s.Range = s.Max - s.Min

	if n == 1 {
		s.Mean = y[0]
		s.Centroid = x[0]
		s.Rolloff = x[0]
		s.Flatness = flatness(y)
		return s
	}

	s.Integral = integrate.Trapezoidal(x, y)
	s.Mean = s.Integral / (x[n-1] - x[0])
	s.Centroid = centroid(x, y, s.Integral)
	s.Spread = spread(x, y, s.Centroid, s.Integral)
	s.Flatness = flatness(y)
	s.Rolloff = rolloff(x, y, 0.85, s.Integral)
	s.FWHM = fwhm(x, y, maxAt)

	return s
}

// finite returns the pairs whose value and wavelength are finite, with
// their original indices.
func finite(wavelengths, values []float64) (x, y []float64, idx []int) {
	n := min(len(wavelengths), len(values))
	x = make([]float64, 0, n)
	y = make([]float64, 0, n)
	idx = make([]int, 0, n)
	for i := 0; i < n; i++ {
		if core.IsFinite(values[i]) && core.IsFinite(wavelengths[i]) {
			x = append(x, wavelengths[i])
			y = append(y, values[i])
			idx = append(idx, i)
		}
	}
	return x, y, idx
}

// Centroid returns the spectral centroid int lambda S / int S.
func Centroid(wavelengths, values []float64) float64 {
	x, y, _ := finite(wavelengths, values)
	if len(y) < 2 {
		return 0
	}
	return centroid(x, y, integrate.Trapezoidal(x, y))
}

func centroid(x, y []float64, total float64) float64 {
	if total == 0 {
		return 0
	}
	w := make([]float64, len(y))
	floats.MulTo(w, x, y)
	return integrate.Trapezoidal(x, w) / total
}

// spread computes the standard deviation of the spectrum around the centroid.
func spread(x, y []float64, cent, total float64) float64 {
	if total == 0 {
		return 0
	}
	w := make([]float64, len(y))
	for i := range y {
		d := x[i] - cent
		w[i] = d * d * y[i]
	}
	v := integrate.Trapezoidal(x, w) / total
	if v <= 0 {
		return 0
	}
	return math.Sqrt(v)
}

// Flatness returns the spectral flatness (Wiener entropy) in the range 0..1.
//
// Flatness = exp(mean(log(S_i))) / mean(S_i)
//
// If any sample is zero or negative, 0 is returned.
func Flatness(values []float64) float64 {
	_, y, _ := finite(make([]float64, len(values)), values)
	return flatness(y)
}

func flatness(y []float64) float64 {
	if len(y) == 0 {
		return 0
	}

	sumLog := 0.0
	for _, v := range y {
		if v <= 0 {
			return 0
		}
		sumLog += math.Log(v)
	}

	meanLin := floats.Sum(y) / float64(len(y))
	return math.Exp(sumLog/float64(len(y))) / meanLin
}

// Rolloff returns the wavelength below which the fraction (0..1) of the
// integrated spectrum lies.
func Rolloff(wavelengths, values []float64, fraction float64) float64 {
	x, y, _ := finite(wavelengths, values)
	if len(y) < 2 {
		return 0
	}
	return rolloff(x, y, fraction, integrate.Trapezoidal(x, y))
}

func rolloff(x, y []float64, fraction, total float64) float64 {
	if total <= 0 {
		return x[0]
	}

	threshold := fraction * total
	cum := 0.0
	for i := 1; i < len(x); i++ {
		seg := 0.5 * (y[i] + y[i-1]) * (x[i] - x[i-1])
		if cum+seg >= threshold && seg > 0 {
			t := (threshold - cum) / seg
			return x[i-1] + t*(x[i]-x[i-1])
		}
		cum += seg
	}
	return x[len(x)-1]
}

// FWHM returns the full width at half maximum around the spectral peak.
//
// The half-maximum crossings on both sides of the peak are located by linear
// interpolation between samples. A side that never drops below half maximum
// ends at the grid edge.
func FWHM(wavelengths, values []float64) float64 {
	x, y, _ := finite(wavelengths, values)
	if len(y) < 2 {
		return 0
	}
	return fwhm(x, y, floats.MaxIdx(y))
}

func fwhm(x, y []float64, peak int) float64 {
	n := len(y)
	peakVal := y[peak]
	if peakVal <= 0 {
		return 0
	}

	half := peakVal / 2

	lower := x[0]
	for i := peak; i >= 1; i-- {
		if y[i-1] <= half && y[i] > half {
			lower = interpCrossing(x[i-1], x[i], y[i-1], y[i], half)
			break
		}
	}

	upper := x[n-1]
	for i := peak; i < n-1; i++ {
		if y[i+1] <= half && y[i] > half {
			upper = interpCrossing(x[i], x[i+1], y[i], y[i+1], half)
			break
		}
	}

	if w := upper - lower; w > 0 {
		return w
	}
	return 0
}

// interpCrossing linearly interpolates the abscissa where the segment
// (x0, y0)-(x1, y1) crosses level.
func interpCrossing(x0, x1, y0, y1, level float64) float64 {
	denom := y1 - y0
	if denom == 0 {
		return (x0 + x1) / 2
	}
	t := (level - y0) / denom
	return x0 + t*(x1-x0)
}
