package spectral

import (
	"testing"

	"github.com/cwbudde/algo-optics/internal/testutil"
)

func BenchmarkCalculate(b *testing.B) {
	x := span(400, 2000, 4096)
	y := testutil.GaussianLine(x, 900, 120)

	for b.Loop() {
		_ = Calculate(x, y)
	}
}
