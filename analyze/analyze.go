package analyze

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/voltlab/voltaic/circuit"
	"github.com/voltlab/voltaic/mna"
	"github.com/voltlab/voltaic/solve"
	"github.com/voltlab/voltaic/trace"
)

// Analyze runs the full pipeline on one circuit: validate, assemble, solve,
// interpret. It is a pure function of its arguments; repeated calls with the
// same circuit yield a bit-identical solution and an identical trace.
//
// On a singular system the error matches solve.ErrSingular and the returned
// Result carries the accumulated trace only.
func Analyze(c *circuit.Circuit, opts Options) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	rec := &trace.Recorder{}
	sys := mna.Assemble(c, rec)

	x, err := solve.Gaussian(sys.A, sys.B, opts.Solve, rec)
	if err != nil {
		return &Result{Steps: rec.Steps()}, fmt.Errorf("analyze: %w", err)
	}

	res := interpret(c, sys, x, rec)
	res.Steps = rec.Steps()
	return res, nil
}

// interpret maps the solution vector back to node potentials and
// per-component voltage, current, and power, then appends the
// interpretation, calculation, and verification trace phases.
func interpret(c *circuit.Circuit, sys *mna.System, x []float64, rec *trace.Recorder) *Result {
	volts := make(map[circuit.NodeID]float64, len(c.Nodes))
	volts[c.Ground] = 0 // reference potential, by definition
	for i, n := range sys.Nodes {
		volts[n.ID] = x[i]
	}

	potentials := make(trace.EquationLines, 0, len(c.Nodes))
	potentials = append(potentials, fmt.Sprintf("V(%s) = 0.000000 V (reference)", c.Ground))
	for i, n := range sys.Nodes {
		potentials = append(potentials, fmt.Sprintf("V(%s) = %.6f V", n.ID, x[i]))
	}
	rec.Add("Node potentials", "ground fixed at 0 V, others from the solution vector", potentials)

	branch := make(map[string]float64, len(sys.Sources))
	for s, src := range sys.Sources {
		branch[src.ID] = x[len(sys.Nodes)+s]
	}

	results := make([]ComponentResult, 0, len(c.Components))
	lines := make(trace.EquationLines, 0, len(c.Components))
	for _, comp := range c.Components {
		v := volts[comp.From] - volts[comp.To]

		var i float64
		switch comp.Kind {
		case circuit.Resistor:
			i = v / comp.BaseValue()
		case circuit.VoltageSource:
			i = branch[comp.ID] // solved branch current, no sign flip
		case circuit.CurrentSource:
			i = comp.BaseValue() // declared magnitude; not derived from the solve
		}

		p := math.Abs(v * i)
		results = append(results, ComponentResult{
			ComponentID: comp.ID,
			Kind:        comp.Kind,
			Voltage:     v,
			Current:     i,
			Power:       p,
		})
		lines = append(lines, fmt.Sprintf("%s (%s): V = %.6f V, I = %.6f A, P = %.6f W",
			comp.ID, comp.Kind, v, i, p))
	}
	rec.Add("Component results", "V = V(from) − V(to); I per kind; P = |V·I|", lines)

	verify(results, rec)

	return &Result{NodeVoltages: volts, Components: results}
}

// verify appends the energy-balance check: Σ resistor power ("dissipated")
// against Σ voltage-source power ("supplied"). A mismatch above
// EnergyBalanceTolerance flags FAIL but never blocks the result.
func verify(results []ComponentResult, rec *trace.Recorder) {
	var dissipated, supplied []float64
	for _, r := range results {
		switch r.Kind {
		case circuit.Resistor:
			dissipated = append(dissipated, r.Power)
		case circuit.VoltageSource:
			supplied = append(supplied, r.Power)
		}
	}

	sumD := floats.Sum(dissipated)
	sumS := floats.Sum(supplied)
	diff := math.Abs(sumD - sumS)

	verdict := "PASS"
	if diff > EnergyBalanceTolerance {
		verdict = "FAIL"
	}
	rec.Add("Verification", "energy balance (informational)", trace.EquationLines{
		fmt.Sprintf("P dissipated (resistors)       = %.6f W", sumD),
		fmt.Sprintf("P supplied (voltage sources)   = %.6f W", sumS),
		fmt.Sprintf("|difference| = %.6f W, tolerance %.3f W → %s", diff, EnergyBalanceTolerance, verdict),
	})
}
