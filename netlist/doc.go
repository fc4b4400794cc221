// Package netlist decodes YAML circuit descriptions into circuit.Circuit
// values and validates them, so example circuits can live in files instead
// of Go literals.
//
// Format:
//
//	name: Three-node ladder
//	ground: gnd
//	nodes:
//	  - gnd               # shorthand: id only
//	  - id: n1
//	    label: Input
//	components:
//	  - id: V1
//	    kind: voltage_source
//	    from: n1          # positive terminal for sources
//	    to: gnd
//	    value: 10
//	    unit: V
//
// Kinds: resistor, voltage_source, current_source. Units are passed to the
// circuit package verbatim, with ASCII conveniences (ohm, kohm, Mohm, mohm)
// mapped onto the Ω spellings; anything else follows the engine's
// pass-through policy.
//
// Parse returns the circuit only after circuit.Validate accepts it, so a
// loaded netlist always satisfies the pipeline's preconditions.
package netlist
