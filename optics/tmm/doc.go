// Package tmm computes the reflectance, transmittance and absorptance of
// planar multilayer stacks with the 2x2 transfer-matrix method.
//
// A [Stack] lists layers from the incident side. The first and last layers
// are semi-infinite terminal media with thickness 0; every finite layer has a
// thickness in metres. A [Solver] resolves each layer's refractive index once
// on a wavelength grid and then evaluates any number of incidence angles and
// polarizations:
//
//	stack, _ := tmm.NewStack(
//		[]string{"air", "sio2", "w", "air"},
//		[]float64{0, 200e-9, 400e-9, 0},
//	)
//	solver, err := tmm.NewSolver(stack, grid)
//	spec, err := solver.Solve(0, tmm.S)
//
// At each wavelength the solver applies the generalized Snell law in complex
// form, picks the forward-propagating branch of cos(theta) in every layer, and
// multiplies the layer matrices
//
//	M_j = (1/t_j,j+1) [[exp(-i d_j), 0], [0, exp(i d_j)]] [[1, r_j,j+1], [r_j,j+1, 1]]
//
// from the incident side. r = M10/M00 and t = 1/M00.
//
// The incident medium must be non-absorbing. Power transmitted into an
// absorbing exit medium is reported as T; A is the absorptance of the finite
// layers only, so R+T+A = 1 at every wavelength.
//
// Wavelengths where the arithmetic breaks down are reported as NaN with a
// [NumericalInstabilityError] in [Spectrum.Diagnostics]; the rest of the
// spectrum is unaffected. Layer phases with an imaginary part above 35 are
// clamped so that optically thick metals do not overflow.
//
// The interface matrices divide by Fresnel transmission coefficients, which
// vanish when cos(theta) is exactly 0 in some layer, i.e. at its critical
// angle. That single angle is reported as a non-finite transfer matrix even
// though the physical limit is finite; angles a few microradians away
// evaluate normally.
package tmm
