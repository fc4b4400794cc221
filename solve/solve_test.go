package solve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltlab/voltaic/solve"
	"github.com/voltlab/voltaic/trace"
)

// TestGaussian_TwoByTwo solves a small well-conditioned system with a known
// closed-form answer:
//
//	2x + y = 5
//	x − y  = 1   →  x = 2, y = 1
func TestGaussian_TwoByTwo(t *testing.T) {
	a := [][]float64{{2, 1}, {1, -1}}
	b := []float64{5, 1}

	x, err := solve.Gaussian(a, b, solve.DefaultOptions(), nil)
	require.NoError(t, err)
	require.Len(t, x, 2)
	assert.InDelta(t, 2.0, x[0], 1e-12)
	assert.InDelta(t, 1.0, x[1], 1e-12)
}

// TestGaussian_InputsNeverMutated pins the augmented-copy contract.
func TestGaussian_InputsNeverMutated(t *testing.T) {
	a := [][]float64{{0, 1}, {1, 0}} // forces a row swap
	b := []float64{3, 4}

	_, err := solve.Gaussian(a, b, solve.DefaultOptions(), nil)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1}, {1, 0}}, a, "coefficient matrix must stay untouched")
	assert.Equal(t, []float64{3, 4}, b, "right-hand side must stay untouched")
}

// TestGaussian_PartialPivotingSwaps verifies the largest-magnitude row is
// chosen and the swap is recorded.
func TestGaussian_PartialPivotingSwaps(t *testing.T) {
	a := [][]float64{{0.001, 1}, {1, 1}}
	b := []float64{1, 2}
	rec := &trace.Recorder{}

	x, err := solve.Gaussian(a, b, solve.DefaultOptions(), rec)
	require.NoError(t, err)

	// x = (1, 0.999...) from the exact solution of the system.
	assert.InDelta(t, 1.0/0.999, x[0], 1e-9)

	var sawSwap bool
	for _, s := range rec.Steps() {
		if s.Title == "Row swap" {
			sawSwap = true
			assert.Contains(t, s.Detail, "R1 ↔ R2")
		}
	}
	assert.True(t, sawSwap, "pivoting on |1| > |0.001| must record a swap")
}

// TestGaussian_SingularMatrix verifies a rank-deficient system returns
// ErrSingular with the partial trace, and no solution.
func TestGaussian_SingularMatrix(t *testing.T) {
	a := [][]float64{{1, 2}, {2, 4}} // second row is 2× the first
	b := []float64{3, 6}
	rec := &trace.Recorder{}

	x, err := solve.Gaussian(a, b, solve.DefaultOptions(), rec)
	assert.ErrorIs(t, err, solve.ErrSingular)
	assert.Nil(t, x)

	steps := rec.Steps()
	require.NotEmpty(t, steps, "trace up to the degenerate stage must be kept")
	assert.Equal(t, "Singular system", steps[len(steps)-1].Title)
}

// TestGaussian_ToleranceConfigurable verifies the pivot threshold is an
// option: a 1e-12 pivot is degenerate at the default tolerance but usable
// below it.
func TestGaussian_ToleranceConfigurable(t *testing.T) {
	a := [][]float64{{1e-12}}
	b := []float64{1e-12}

	_, err := solve.Gaussian(a, b, solve.DefaultOptions(), nil)
	assert.ErrorIs(t, err, solve.ErrSingular, "below the 1e-10 default the pivot is degenerate")

	x, err := solve.Gaussian(a, b, solve.Options{Tolerance: 1e-15}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, x[0], 1e-12)
}

// TestGaussian_ShapeErrors covers the input validation sentinels.
func TestGaussian_ShapeErrors(t *testing.T) {
	_, err := solve.Gaussian(nil, nil, solve.DefaultOptions(), nil)
	assert.ErrorIs(t, err, solve.ErrEmptySystem)

	_, err = solve.Gaussian([][]float64{{1, 2}}, []float64{1}, solve.DefaultOptions(), nil)
	assert.ErrorIs(t, err, solve.ErrNotSquare)

	_, err = solve.Gaussian([][]float64{{1}}, []float64{1, 2}, solve.DefaultOptions(), nil)
	assert.ErrorIs(t, err, solve.ErrDimensionMismatch)
}

// TestGaussian_Deterministic solves the same system twice and requires a
// bit-identical solution and an identical step sequence.
func TestGaussian_Deterministic(t *testing.T) {
	a := [][]float64{{3, -1, 2}, {1, 4, 0}, {-2, 1, 5}}
	b := []float64{7, 2, -3}

	rec1, rec2 := &trace.Recorder{}, &trace.Recorder{}
	x1, err1 := solve.Gaussian(a, b, solve.DefaultOptions(), rec1)
	x2, err2 := solve.Gaussian(a, b, solve.DefaultOptions(), rec2)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, x1, x2, "solution vectors must be bit-identical")
	assert.Equal(t, rec1.Steps(), rec2.Steps(), "step sequences must be identical")
}

// TestGaussian_BackSubstitutionStep verifies the final step lists every
// unknown to 6 decimals.
func TestGaussian_BackSubstitutionStep(t *testing.T) {
	a := [][]float64{{2, 0}, {0, 4}}
	b := []float64{1, 1}
	rec := &trace.Recorder{}

	_, err := solve.Gaussian(a, b, solve.DefaultOptions(), rec)
	require.NoError(t, err)

	steps := rec.Steps()
	last := steps[len(steps)-1]
	assert.Equal(t, "Back substitution", last.Title)
	lines, ok := last.Payload.(trace.EquationLines)
	require.True(t, ok, "final step payload must be equation lines")
	require.Len(t, lines, 2)
	assert.Equal(t, "x1 = 0.500000", lines[0])
	assert.Equal(t, "x2 = 0.250000", lines[1])
}
