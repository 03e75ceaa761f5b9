// Package simulate runs a multilayer calculation from a configuration
// record: materials and thicknesses, a wavelength range, incidence and
// polarization, and optional thermal post-processing.
//
// A Config is usually read from YAML with [Load] or [Parse]:
//
//	stack: air | sio2 200nm | w 400nm | air
//	wavelength_range: [400e-9, 6e-6, 500]
//	temperature: 1500
//	polarization: unpolarized
//	bandgap_wavelength: 2.2e-6
//
// The stack may instead be given as parallel materials and thicknesses
// lists. [Config.Validate] rejects malformed input with a
// [ConfigurationError]; unknown materials surface from [Run] as
// material.UnknownMaterialError. Per-wavelength problems never abort a run
// and are reported in the spectrum diagnostics.
package simulate
