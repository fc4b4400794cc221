package solve

// DefaultTolerance is the magnitude below which a pivot is considered
// degenerate and an elimination factor is considered already zero. One
// constant serves both roles.
const DefaultTolerance = 1e-10

// Options configures Gaussian elimination.
//
//   - Tolerance — pivot-degeneracy and factor-skip threshold. Exposed so
//     near-singular systems can be exercised in tests; production callers
//     keep the default.
type Options struct {
	Tolerance float64
}

// DefaultOptions returns the canonical solver configuration.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}
