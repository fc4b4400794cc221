// Package analyze is the single call boundary of the engine: it validates a
// circuit, assembles the MNA system, solves it, and maps the solution vector
// back to physical quantities.
//
// For every component it derives:
//   - voltage  — V(From) − V(To), node potentials with ground fixed at 0
//   - current  — resistors: voltage/R; voltage sources: the solved branch
//     current, no sign flip; current sources: the declared magnitude (not
//     derived from the solve — see the gap documented in package mna)
//   - power    — |voltage × current|, magnitude only; supplied vs dissipated
//     is classified by component kind, not by the sign of V·I
//
// The verification step compares Σ power over resistors ("dissipated")
// against Σ power over voltage sources ("supplied") and flags FAIL when the
// absolute difference exceeds EnergyBalanceTolerance. The flag is purely
// informational: it never blocks the result.
//
// Failure: a singular system propagates as an error matching
// solve.ErrSingular; the returned Result then carries only the trace
// accumulated before the failure, never partial physical quantities.
//
// Each call constructs its own matrix, recorder, and result structures —
// nothing is shared or retained between analyses, so concurrent calls on
// distinct Circuit values are safe.
package analyze
