// Package mna translates a validated circuit into the linear system of
// Modified Nodal Analysis: one Kirchhoff current-law equation per non-ground
// node plus one constraint equation per voltage source, solved simultaneously
// for node potentials and source branch currents.
//
// Unknown vector layout (size N = #non-ground nodes + #voltage sources):
//
//	index 0 .. numNodes−1   node potentials, in node-declaration order
//	index numNodes .. N−1   voltage-source branch currents, in source order
//
// Stamping rules:
//   - Resistor between a and b with conductance G = 1/R: +G on both diagonals
//     A[a][a] and A[b][b], −G on the mutual entries A[a][b] and A[b][a].
//     A ground terminal has no row or column; only the stamp on the
//     non-ground terminal's own row is applied.
//   - Voltage source with positive terminal P and negative terminal M at
//     column col: A[P][col] = +1 and A[M][col] = −1 inject the branch current
//     into the node equations; the auxiliary row col carries A[col][P] = +1,
//     A[col][M] = −1 and b[col] = the source voltage. Ground-side
//     coefficients are omitted (a ground potential is definitionally 0).
//   - Current sources contribute no stamp. The component kind exists in the
//     data model but assembly performs no current-source handling — a known
//     gap preserved from the original design rather than silently patched.
//
// Assembly cannot fail on a circuit that passed circuit.Validate; degeneracy
// (floating sub-networks, contradictory sources) is detected downstream by
// the solver. Alongside (A, b), Assemble records the audit trail: circuit
// summary, conductance conversions, the symbolic per-node and per-source
// equations, and the rendered initial augmented matrix.
package mna
