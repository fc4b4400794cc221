package analyze

import (
	"github.com/voltlab/voltaic/circuit"
	"github.com/voltlab/voltaic/solve"
	"github.com/voltlab/voltaic/trace"
)

// EnergyBalanceTolerance is the largest |Σ dissipated − Σ supplied| that the
// verification step reports as PASS. Informational only.
const EnergyBalanceTolerance = 0.001

// Options configures an analysis run.
type Options struct {
	// Solve is forwarded to the linear-system solver.
	Solve solve.Options
}

// DefaultOptions returns the canonical analysis configuration.
func DefaultOptions() Options {
	return Options{Solve: solve.DefaultOptions()}
}

// ComponentResult holds the derived quantities of one component, in the
// component's own sign convention (voltage = V(From) − V(To)).
type ComponentResult struct {
	ComponentID string
	Kind        circuit.Kind
	Voltage     float64 // volts
	Current     float64 // amps, signed per the node-pair orientation
	Power       float64 // watts, unsigned magnitude |V·I|
}

// Result is the immutable outcome of one analysis.
//
// On success all fields are populated and NodeVoltages maps every node,
// ground included (exactly 0). After a singular-system failure only Steps
// is populated: the trace up to the failing elimination stage.
type Result struct {
	NodeVoltages map[circuit.NodeID]float64
	Components   []ComponentResult
	Steps        []trace.Step
}
