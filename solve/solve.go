package solve

import (
	"fmt"
	"math"

	"github.com/voltlab/voltaic/trace"
)

// Gaussian solves a·x = b by Gaussian elimination with partial pivoting and
// returns the solution vector. The inputs are never mutated: elimination
// works on a fresh augmented N×(N+1) copy.
//
// Every transformation is appended to rec (which may be nil to solve
// without a trace): each row swap with the pivot it selected, each row
// elimination with its exact factor, and one final step listing all solved
// unknowns to 6 decimals.
//
// Returns ErrSingular when no pivot of magnitude above opts.Tolerance exists
// at some stage; the trace accumulated up to that point is preserved in rec
// and back substitution is not attempted.
func Gaussian(a [][]float64, b []float64, opts Options, rec *trace.Recorder) ([]float64, error) {
	n := len(a)
	if n == 0 {
		return nil, ErrEmptySystem
	}
	for _, row := range a {
		if len(row) != n {
			return nil, ErrNotSquare
		}
	}
	if len(b) != n {
		return nil, ErrDimensionMismatch
	}

	tol := opts.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}

	// Augmented working copy [A | b]; column n holds b.
	aug := make([][]float64, n)
	for i := range a {
		aug[i] = make([]float64, n+1)
		copy(aug[i], a[i])
		aug[i][n] = b[i]
	}

	// Forward elimination.
	for i := 0; i < n; i++ {
		// Partial pivoting: strict > keeps the first maximum, so ties
		// resolve to the lowest row index.
		pivotRow := i
		maxMag := math.Abs(aug[i][i])
		for k := i + 1; k < n; k++ {
			if mag := math.Abs(aug[k][i]); mag > maxMag {
				maxMag = mag
				pivotRow = k
			}
		}
		if pivotRow != i {
			aug[i], aug[pivotRow] = aug[pivotRow], aug[i]
			record(rec, "Row swap",
				"R%d ↔ R%d (partial pivoting: %g is the largest magnitude in column %d)",
				i+1, pivotRow+1, maxMag, i+1)
		}

		if math.Abs(aug[i][i]) < tol {
			record(rec, "Singular system",
				"no usable pivot in column %d (magnitude %g < tolerance %g): the equations do not admit a unique solution",
				i+1, math.Abs(aug[i][i]), tol)
			return nil, ErrSingular
		}

		for row := i + 1; row < n; row++ {
			factor := aug[row][i] / aug[i][i]
			if math.Abs(factor) <= tol {
				continue // already eliminated, no step emitted
			}
			for col := i; col <= n; col++ {
				aug[row][col] -= factor * aug[i][col]
			}
			record(rec, "Eliminate",
				"R%d ← R%d − (%g)·R%d, clearing column %d", row+1, row+1, factor, i+1, i+1)
		}
	}

	// Back substitution, row n−1 down to 0.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := aug[i][n]
		for j := i + 1; j < n; j++ {
			sum -= aug[i][j] * x[j]
		}
		x[i] = sum / aug[i][i]
	}

	if rec != nil {
		lines := make(trace.EquationLines, n)
		for i, v := range x {
			lines[i] = fmt.Sprintf("x%d = %.6f", i+1, v)
		}
		rec.Add("Back substitution", "solved unknowns, bottom row upward", lines)
	}

	return x, nil
}

// record appends a payload-free formatted step when a recorder is present.
func record(rec *trace.Recorder, title, format string, args ...any) {
	if rec == nil {
		return
	}
	rec.Add(title, fmt.Sprintf(format, args...), nil)
}
