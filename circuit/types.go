package circuit

// NodeID names a node within one circuit. IDs are compared exactly; "gnd" and
// "GND" are distinct nodes.
type NodeID string

// Node is a connection point in the circuit.
type Node struct {
	ID    NodeID
	Label string // display label; falls back to ID when empty
}

// Kind tags the component variant.
//
//   - Resistor      — ohmic two-terminal element, stamped as a conductance.
//   - VoltageSource — independent source; From is the positive terminal and
//     contributes one auxiliary branch-current unknown.
//   - CurrentSource — declared in the model but not stamped into the linear
//     system by the assembler (known gap carried over from the original
//     design; its reported current is the declared magnitude).
type Kind int

const (
	Resistor Kind = iota
	VoltageSource
	CurrentSource
)

// String returns the short engineering name of the kind.
func (k Kind) String() string {
	switch k {
	case Resistor:
		return "resistor"
	case VoltageSource:
		return "voltage source"
	case CurrentSource:
		return "current source"
	default:
		return "unknown"
	}
}

// Component is a two-terminal element. The (From, To) order is
// polarity-significant for sources and fixes the reported sign convention
// for resistors: voltage across a component is V(From) − V(To).
type Component struct {
	ID    string
	Kind  Kind
	From  NodeID // positive terminal for sources
	To    NodeID
	Value float64 // magnitude in the declared Unit
	Unit  Unit
}

// Circuit is a named node set plus component list with one designated
// ground node. It is plain data: the analysis pipeline never mutates it.
type Circuit struct {
	Name       string
	Ground     NodeID
	Nodes      []Node
	Components []Component
}

// UnknownNodes returns the non-ground nodes in declaration order. Their
// positions define the node-potential block of the MNA unknown vector.
func (c *Circuit) UnknownNodes() []Node {
	out := make([]Node, 0, len(c.Nodes))
	for _, n := range c.Nodes {
		if n.ID != c.Ground {
			out = append(out, n)
		}
	}
	return out
}

// VoltageSources returns the voltage sources in declaration order. Their
// positions define the branch-current block of the MNA unknown vector.
func (c *Circuit) VoltageSources() []Component {
	out := make([]Component, 0, len(c.Components))
	for _, comp := range c.Components {
		if comp.Kind == VoltageSource {
			out = append(out, comp)
		}
	}
	return out
}

// Resistors returns the resistors in declaration order.
func (c *Circuit) Resistors() []Component {
	out := make([]Component, 0, len(c.Components))
	for _, comp := range c.Components {
		if comp.Kind == Resistor {
			out = append(out, comp)
		}
	}
	return out
}
