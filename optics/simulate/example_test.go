package simulate_test

import (
	"context"
	"fmt"

	"github.com/cwbudde/algo-optics/optics/simulate"
)

func ExampleRun() {
	cfg, err := simulate.Parse([]byte(`
stack: air | coating 100nm | air
wavelength_range: [400e-9, 800e-9, 5]
custom_materials:
  - {name: coating, model: constant, n: 1.5}
`))
	if err != nil {
		panic(err)
	}

	res, err := simulate.Run(context.Background(), cfg)
	if err != nil {
		panic(err)
	}
	for i, lambda := range res.Spectrum.Wavelengths {
		fmt.Printf("%.0f nm R=%.4f\n", lambda*1e9, res.Spectrum.R[i])
	}
	// Output:
	// 400 nm R=0.0799
	// 500 nm R=0.1357
	// 600 nm R=0.1479
	// 700 nm R=0.1416
	// 800 nm R=0.1291
}

func ExampleParseStack() {
	materials, thicknesses, err := simulate.ParseStack("air | sio2 0.2um | w 400nm | air")
	if err != nil {
		panic(err)
	}
	for i := range materials {
		fmt.Printf("%s %.0f nm\n", materials[i], thicknesses[i]*1e9)
	}
	// Output:
	// air 0 nm
	// sio2 200 nm
	// w 400 nm
	// air 0 nm
}
