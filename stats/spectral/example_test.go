package spectral_test

import (
	"fmt"

	"github.com/cwbudde/algo-optics/stats/spectral"
)

func ExampleCalculate() {
	wl := []float64{500, 510, 520, 530, 540}
	r := []float64{0, 0.5, 1, 0.5, 0}

	s := spectral.Calculate(wl, r)
	fmt.Printf("peak=%.0f fwhm=%.0f centroid=%.0f\n", s.PeakWavelength, s.FWHM, s.Centroid)

	// Output:
	// peak=520 fwhm=20 centroid=520
}
