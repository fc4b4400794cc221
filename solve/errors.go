package solve

import "errors"

var (
	// ErrSingular is returned when no pivot of usable magnitude exists at some
	// elimination stage after best-available row selection: the system has no
	// unique solution. Recoverable — callers report it, they never crash.
	ErrSingular = errors.New("solve: singular system, no unique solution")
	// ErrEmptySystem indicates a zero-size system was supplied.
	ErrEmptySystem = errors.New("solve: system must have at least one equation")
	// ErrNotSquare indicates the coefficient matrix is not square.
	ErrNotSquare = errors.New("solve: coefficient matrix must be square")
	// ErrDimensionMismatch indicates len(b) differs from the matrix size.
	ErrDimensionMismatch = errors.New("solve: right-hand side length must match matrix size")
)
