// Command optix computes optical spectra of thin-film stacks, spheres and
// exciton aggregates.
//
// Usage:
//
//	optix <command> [flags]
//
// Examples:
//
//	optix spectrum --stack "air | sio2 200nm | w 400nm | air" --range 400e-9,2e-6,161
//	optix spectrum --config emitter.yaml --temperature 1500
//	optix materials
//	optix materials --at 636e-9 sio2 ta2o5
//	optix mie --material au --medium water --radius 20e-9
//	optix exciton --shape 4,1,1 --dipole 1,0,0
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
