// Package material maps material identifiers to complex refractive indices.
//
// Every material is a [Model], one of a closed set of dispersion variants:
//
//   - [Constant]:     wavelength-independent n+ik (ambient media)
//   - [Tabulated]:    embedded (wavelength, n, k) table, piecewise-linear between rows
//   - [Sellmeier]:    n^2 = A + sum B_j lambda^2/(lambda^2 - C_j)
//   - [Cauchy]:       n = A + B/lambda^2 + C/lambda^4, optional constant k
//   - [LorentzDrude]: Drude term plus Lorentz oscillators in eV (Rakic 1998 form)
//   - [Lorentz]:      (A + B/lambda^2)^2 background plus oscillators in cm^-1
//
// Identifiers are looked up once, case-insensitively, in a [Database]. The
// package-level [Default] database holds the built-in catalogue, is built once
// and is safe for concurrent use.
//
// # Out-of-domain policy
//
// A tabulated material queried outside its table yields NaN at that wavelength
// and a [DomainRangeError] on the resolved [Field] ([ExtrapolateNone], the
// default). [ExtrapolateClamp] holds the nearest table row instead and counts
// the clamp as a warning. Analytic models are always evaluated; wavelengths
// outside their published validity range only produce a warning.
//
// # Usage
//
//	grid, _ := core.LinearGrid(400e-9, 800e-9, 101)
//	field, err := material.Resolve("SiO2", grid)
//	n := field.At(50) // n+ik at 600 nm
package material
