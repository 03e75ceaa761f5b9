package exciton_test

import (
	"fmt"

	"github.com/cwbudde/algo-optics/optics/exciton"
	"github.com/go-gl/mathgl/mgl64"
)

func ExampleAggregate_StickSpectrum() {
	// Head-to-tail dimer: the coupling is -2 and the lower state is bright.
	a := exciton.Aggregate{
		Shape:           [3]int{2, 1, 1},
		Displacement:    mgl64.Vec3{1, 0, 0},
		Dipole:          mgl64.Vec3{1, 0, 0},
		SiteEnergy:      5,
		RefractiveIndex: 1,
	}
	sticks, err := a.StickSpectrum()
	if err != nil {
		panic(err)
	}
	for _, s := range sticks {
		fmt.Printf("E=%.1f strength=%.1f\n", s.Energy, s.Strength)
	}
	// Output:
	// E=3.0 strength=2.0
	// E=7.0 strength=0.0
}
