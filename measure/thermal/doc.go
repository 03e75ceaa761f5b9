// Package thermal derives radiative figures of merit from spectra computed
// on a wavelength grid.
//
// Features:
//
//   - Planck spectral radiance and blackbody spectra (W sr^-1 m^-3)
//   - Reference sources: a blackbody at the analyzer temperature or a
//     user table interpolated onto the grid
//   - Photopic luminosity function V(lambda) (CIE 1931 y-bar, multi-lobe fit)
//   - Trapezoid integration on non-uniform grids
//   - Emission metrics: emitted power, mean emissivity, luminous
//     efficiency and efficacy
//   - Absorption metrics: absorbed power and absorption efficiency
//   - Thermophotovoltaic spectral efficiency above a bandgap
//
// By Kirchhoff's law the absorptance of a stack equals its emissivity, so
// the A array of an optics/tmm Spectrum can be passed directly to
// [Analyzer.Emission]. NaN entries propagate into the integrals.
//
// Build with -tags fastmath to evaluate the Planck exponential with
// algo-approx instead of the standard library.
package thermal
