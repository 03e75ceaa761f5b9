package mie_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-optics/optics/mie"
)

func ExampleCompute() {
	x := 2 * math.Pi * 0.525 / 0.6328
	c, err := mie.Compute(1.55, 1, x)
	if err != nil {
		panic(err)
	}
	q := c.Efficiencies(x)
	fmt.Printf("terms=%d Qext=%.4f Qback=%.4f\n", c.NMax(), q.Extinction, q.Backscatter)
	// Output: terms=14 Qext=3.1054 Qback=2.9253
}
