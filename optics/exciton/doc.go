// Package exciton models Frenkel excitons on regular molecular aggregates.
//
// An [Aggregate] places identical two-level monomers on a lattice. Its
// single-exciton Hamiltonian has the monomer energy on the diagonal and the
// point dipole-dipole coupling
//
//	V_nm = (mu.mu - 3 (mu.r)^2 / r^2) / (n^2 r^3)
//
// off the diagonal, where r joins sites n and m and n is the refractive
// index of the host. Units are whatever the caller uses consistently;
// energies and inverse times share a unit (hbar = 1).
//
// Dynamics are explicit values. A [Propagator] advances a [Wavefunction]
// or a [DensityMatrix] by one fixed fourth-order Runge-Kutta step and
// returns the new state; the input is never modified.
//
// Spectra come in three forms: the stick spectrum of eigenstates with
// their oscillator strengths, its Lorentzian broadening, and the Fourier
// transform of the bright-state autocorrelation from the dynamics.
package exciton
