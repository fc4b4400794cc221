package mna

import (
	"fmt"
	"strings"

	"github.com/voltlab/voltaic/circuit"
	"github.com/voltlab/voltaic/trace"
)

// Assemble builds the MNA system for a validated circuit and records the
// assembly trail into rec (which may be nil). It cannot fail: structural
// problems are rejected by circuit.Validate at the boundary, and numeric
// degeneracy is the solver's job to detect.
func Assemble(c *circuit.Circuit, rec *trace.Recorder) *System {
	nodes := c.UnknownNodes()
	sources := c.VoltageSources()

	sys := &System{
		Nodes:     nodes,
		Sources:   sources,
		NodeIndex: make(map[circuit.NodeID]int, len(nodes)),
	}
	for i, n := range nodes {
		sys.NodeIndex[n.ID] = i
	}

	n := sys.Size()
	sys.A = make([][]float64, n)
	for i := range sys.A {
		sys.A[i] = make([]float64, n)
	}
	sys.B = make([]float64, n)

	if rec != nil {
		rec.Add("Circuit", c.Name, trace.PlainText(fmt.Sprintf(
			"Modified Nodal Analysis: %d unknowns = %d node potentials (ground %q fixed at 0 V) + %d source branch currents, %d components",
			n, len(nodes), c.Ground, len(sources), len(c.Components))))
	}

	stampResistors(c, sys, rec)
	stampSources(sys)

	if rec != nil {
		rec.Add("Node equations (KCL)", "one current balance per non-ground node",
			equations(sys, 0, len(nodes)))
		rec.Add("Source equations", "one potential constraint per voltage source",
			equations(sys, len(nodes), n))
		rec.Add("Initial MNA matrix", fmt.Sprintf("augmented system [A | b], %d×%d", n, n+1),
			trace.FormatAugmented(sys.A, sys.B))
	}

	return sys
}

// stampResistors applies the nodal-conductance stamp of every resistor:
// +G on the diagonal of each non-ground terminal, −G on the mutual entry
// when the opposite terminal is also non-ground.
func stampResistors(c *circuit.Circuit, sys *System, rec *trace.Recorder) {
	conversions := make(trace.EquationLines, 0, len(c.Components))

	for _, comp := range c.Components {
		if comp.Kind != circuit.Resistor {
			continue
		}
		r := comp.BaseValue()
		g := 1 / r
		conversions = append(conversions,
			fmt.Sprintf("G(%s) = 1 / %.6f Ω = %.6f S", comp.ID, r, g))

		sys.stampConductance(comp.From, comp.To, g)
		sys.stampConductance(comp.To, comp.From, g)
	}

	if rec != nil {
		rec.Add("Conductance conversion", "G = 1/R with R in base ohms", conversions)
	}
}

// stampConductance writes the row of terminal `at` for a conductance g
// between `at` and `other`. Ground terminals own no row; they are skipped.
func (s *System) stampConductance(at, other circuit.NodeID, g float64) {
	row, ok := s.NodeIndex[at]
	if !ok {
		return // ground side: no equation row exists
	}
	s.A[row][row] += g
	if col, ok := s.NodeIndex[other]; ok {
		s.A[row][col] -= g
	}
}

// stampSources writes the branch-current columns and auxiliary constraint
// rows of every voltage source.
func stampSources(sys *System) {
	for s, src := range sys.Sources {
		col := len(sys.Nodes) + s
		if p, ok := sys.NodeIndex[src.From]; ok {
			sys.A[p][col] = 1
			sys.A[col][p] = 1
		}
		if m, ok := sys.NodeIndex[src.To]; ok {
			sys.A[m][col] = -1
			sys.A[col][m] = -1
		}
		sys.B[col] = circuit.ToBase(src.Value, src.Unit)
	}
}

// equations renders rows [from, to) of the assembled system as symbolic
// equation strings over the unknown labels, skipping zero coefficients.
func equations(sys *System, from, to int) trace.EquationLines {
	lines := make(trace.EquationLines, 0, to-from)
	for row := from; row < to; row++ {
		var b strings.Builder
		first := true
		for col := 0; col < sys.Size(); col++ {
			coeff := sys.A[row][col]
			if coeff == 0 {
				continue
			}
			switch {
			case first && coeff < 0:
				b.WriteString("−")
				coeff = -coeff
			case !first && coeff < 0:
				b.WriteString(" − ")
				coeff = -coeff
			case !first:
				b.WriteString(" + ")
			}
			first = false
			fmt.Fprintf(&b, "%.6f·%s", coeff, sys.Label(col))
		}
		if first {
			b.WriteString("0.000000") // fully floating row: all coefficients zero
		}
		fmt.Fprintf(&b, " = %.6f", sys.B[row])
		lines = append(lines, b.String())
	}
	return lines
}
