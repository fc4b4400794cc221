package mna

import (
	"fmt"

	"github.com/voltlab/voltaic/circuit"
)

// System is the assembled MNA linear system A·x = b plus the index maps
// needed to interpret the solution vector. It is built fresh per analysis
// and owned exclusively by that analysis: nothing mutates it after the
// solver takes over.
type System struct {
	A [][]float64
	B []float64

	// Nodes holds the non-ground nodes in declaration order; Nodes[i]
	// corresponds to unknown x[i].
	Nodes []circuit.Node
	// NodeIndex maps a node id to its row/column, ground excluded.
	NodeIndex map[circuit.NodeID]int
	// Sources holds the voltage sources in declaration order; Sources[s]
	// corresponds to unknown x[len(Nodes)+s].
	Sources []circuit.Component
}

// Size returns N, the number of unknowns.
func (s *System) Size() int {
	return len(s.Nodes) + len(s.Sources)
}

// Label names unknown i: "V(node)" for potentials, "I(source)" for branch
// currents.
func (s *System) Label(i int) string {
	if i < len(s.Nodes) {
		return fmt.Sprintf("V(%s)", s.Nodes[i].ID)
	}
	return fmt.Sprintf("I(%s)", s.Sources[i-len(s.Nodes)].ID)
}
