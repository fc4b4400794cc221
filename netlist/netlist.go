package netlist

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/voltlab/voltaic/circuit"
)

// ErrBadKind indicates a component kind outside
// {resistor, voltage_source, current_source}.
var ErrBadKind = errors.New("netlist: unknown component kind")

// document mirrors the YAML schema.
type document struct {
	Name       string         `yaml:"name"`
	Ground     string         `yaml:"ground"`
	Nodes      []nodeEntry    `yaml:"nodes"`
	Components []elementEntry `yaml:"components"`
}

// nodeEntry accepts either a bare scalar id or an {id, label} mapping.
type nodeEntry struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

func (n *nodeEntry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		n.ID = value.Value
		return nil
	}
	type plain nodeEntry // drop the method set to avoid recursion
	return value.Decode((*plain)(n))
}

type elementEntry struct {
	ID    string  `yaml:"id"`
	Kind  string  `yaml:"kind"`
	From  string  `yaml:"from"`
	To    string  `yaml:"to"`
	Value float64 `yaml:"value"`
	Unit  string  `yaml:"unit"`
}

// kinds maps the YAML kind spellings onto the model enum.
var kinds = map[string]circuit.Kind{
	"resistor":       circuit.Resistor,
	"voltage_source": circuit.VoltageSource,
	"current_source": circuit.CurrentSource,
}

// units maps ASCII spellings onto the canonical resistance units. Unlisted
// strings pass through verbatim per the engine's identity policy.
var units = map[string]circuit.Unit{
	"ohm":  circuit.Ohm,
	"kohm": circuit.Kiloohm,
	"Mohm": circuit.Megaohm,
	"mohm": circuit.Milliohm,
}

// Parse decodes a YAML netlist and returns a validated circuit.
func Parse(data []byte) (*circuit.Circuit, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("netlist: %w", err)
	}

	ckt := &circuit.Circuit{
		Name:   doc.Name,
		Ground: circuit.NodeID(doc.Ground),
	}
	for _, n := range doc.Nodes {
		ckt.Nodes = append(ckt.Nodes, circuit.Node{ID: circuit.NodeID(n.ID), Label: n.Label})
	}
	for _, e := range doc.Components {
		kind, ok := kinds[e.Kind]
		if !ok {
			return nil, fmt.Errorf("%w: %s has kind %q", ErrBadKind, e.ID, e.Kind)
		}
		unit := circuit.Unit(e.Unit)
		if u, ok := units[e.Unit]; ok {
			unit = u
		}
		ckt.Components = append(ckt.Components, circuit.Component{
			ID:    e.ID,
			Kind:  kind,
			From:  circuit.NodeID(e.From),
			To:    circuit.NodeID(e.To),
			Value: e.Value,
			Unit:  unit,
		})
	}

	if err := ckt.Validate(); err != nil {
		return nil, fmt.Errorf("netlist: %w", err)
	}
	return ckt, nil
}

// Load reads and parses a YAML netlist file.
func Load(path string) (*circuit.Circuit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("netlist: %w", err)
	}
	return Parse(data)
}
