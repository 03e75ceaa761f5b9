// Package spectral provides shape descriptors for spectra sampled on a
// wavelength grid: peak, extrema, trapezoid integral and mean, centroid,
// spread, flatness, roll-off and full width at half maximum.
//
// Grids may be non-uniform. Non-finite samples, such as the NaN
// wavelengths of an optics/tmm Spectrum, are skipped.
package spectral
