// Package solve implements a dense linear-equation solver: Gaussian
// elimination with partial pivoting over an augmented copy of the system,
// recording every transformation it performs into a trace.Recorder.
//
// Algorithm outline:
//  1. Copy (A, b) into an augmented N×(N+1) working matrix; inputs are
//     never mutated.
//  2. For each pivot column i: scan rows k ≥ i for the largest |A[k][i]|
//     (strict > keeps the first maximum, so ties resolve to the lowest row);
//     swap rows when k ≠ i and record the swap.
//  3. If the best pivot magnitude is below Options.Tolerance the system is
//     singular: return ErrSingular immediately with the trace accumulated
//     so far; back substitution is never attempted.
//  4. For each row below the pivot compute factor = A[row][i]/A[i][i];
//     factors at or below tolerance are treated as already eliminated and
//     recorded nowhere; otherwise subtract factor × pivot row across all
//     columns including the augmented one and record the exact factor.
//  5. Back-substitute from row N−1 down to 0 and record one final step
//     listing every solved unknown to 6 decimals.
//
// Numeric policy: one tolerance (DefaultTolerance = 1e-10) serves both
// pivot-degeneracy detection and factor skipping. It is exposed through
// Options only so near-singular behavior can be exercised in tests; the
// elimination logic itself is tolerance-agnostic.
//
// Determinism: fixed scan and update orders, no randomness, no time
// dependence — identical inputs produce a bit-identical solution vector
// and an identical step sequence.
//
// Complexity: O(N³) time, O(N²) memory. The package knows nothing about
// circuits; it consumes whatever square system the caller assembled.
package solve
