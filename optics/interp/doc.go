// Package interp provides the interpolation primitives behind tabulated
// optical data.
//
//   - [Linear2]: 2-point linear interpolation
//   - [Table]:   piecewise-linear interpolant over strictly increasing knots,
//     with binary-search bracketing and exact values at knots
//
// Queries outside the knot domain are reported, never silently extrapolated;
// callers choose between rejecting them and holding the edge value ([Table.Clamp]).
package interp
