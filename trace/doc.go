// Package trace provides the append-only derivation log threaded through the
// MNA assembler, the solver, and the result interpreter.
//
// A Step carries a title, a free-text detail line, and an optional typed
// Payload — one of:
//
//   - EquationLines — a list of rendered equation strings
//   - MatrixBlock   — a rendered matrix, row by row, cell by cell
//   - PlainText     — a single free-form paragraph
//
// The variant set is sealed: the report/export layer can switch exhaustively
// on the payload type without defensive defaults.
//
// Ordering is significant. Steps are only ever appended, and Recorder.Steps
// returns a copied snapshot, so a returned trace can never be mutated by a
// later analysis. A successful analysis produces, in fixed order: circuit
// identification, conductance conversion, equation assembly, matrix display,
// elimination, interpretation, per-component calculation, and verification.
package trace
