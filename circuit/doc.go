// Package circuit defines the data model consumed by the MNA pipeline:
// nodes, two-terminal components, and the owning Circuit value, plus the
// engineering-unit normalizer and the boundary validation that makes the
// pipeline's preconditions explicit.
//
// Model:
//   - Node      — string identifier plus display label. Exactly one node per
//     circuit is the ground/reference node; its potential is 0 by convention
//     and it never receives an unknown in the linear system.
//   - Component — identifier, a Kind (Resistor, VoltageSource, CurrentSource),
//     an ordered (From, To) node pair, a magnitude and a Unit. For sources,
//     From is the positive terminal; for resistors the pair only fixes the
//     sign convention of the reported current and voltage.
//   - Circuit   — name, ground id, node set, component list.
//
// Units:
//
//	ToBase converts engineering-prefixed magnitudes to base SI units.
//	Recognized resistance multipliers: Ω=1, kΩ=1e3, MΩ=1e6, mΩ=1e-3.
//	Unrecognized units pass through unscaled — a deliberate, documented
//	identity policy, not an error.
//
// Validation:
//
//	Validate checks the invariants the rest of the pipeline assumes: unique
//	node and component identifiers, endpoints that exist in the node set,
//	a present ground node, at least one non-ground node, and nonzero
//	resistances. Downstream packages are free to index without re-checking.
//
// All values are plain data; a Circuit is built once per analysis and never
// mutated by the pipeline.
package circuit
