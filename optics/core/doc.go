// Package core holds the primitives shared by the optics packages.
//
//   - [Grid]: immutable, strictly increasing wavelength grid in metres
//   - physical constants ([Planck], [SpeedOfLight], [Boltzmann], [HCElectronVoltMetre])
//   - [ComputeConfig] and [ComputeOption]: options common to every calculator
//   - [Logger]: level-prefixed diagnostics sink, silent by default
package core
