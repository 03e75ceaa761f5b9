// Package mie computes Lorenz-Mie scattering by homogeneous spheres.
//
// [Compute] returns the expansion coefficients a_n, b_n (scattered field)
// and c_n, d_n (internal field) for n = 1..NMax(x), with
//
//	NMax(x) = floor(x + 4 x^(1/3) + 2)
//
// for relative index m, relative permeability mu and size parameter x.
// Log-derivatives D_n(mx) and the spherical Bessel functions j_n are built
// by downward recurrence; y_n is built upward, where it is stable.
//
// [Coefficients.Efficiencies] turns them into the scattering, extinction,
// absorption and backscattering efficiencies. A [Driver] evaluates a
// sphere in a host medium over a wavelength grid, resolving both materials
// through optics/material, and reports efficiencies and cross sections.
package mie
