package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltlab/voltaic/circuit"
)

// divider returns a minimal valid circuit: one source and one resistor
// between n1 and ground.
func divider() *circuit.Circuit {
	return &circuit.Circuit{
		Name:   "divider",
		Ground: "gnd",
		Nodes:  []circuit.Node{{ID: "gnd"}, {ID: "n1"}},
		Components: []circuit.Component{
			{ID: "V1", Kind: circuit.VoltageSource, From: "n1", To: "gnd", Value: 12, Unit: circuit.Volt},
			{ID: "R1", Kind: circuit.Resistor, From: "n1", To: "gnd", Value: 1, Unit: circuit.Kiloohm},
		},
	}
}

func TestValidate_AcceptsWellFormedCircuit(t *testing.T) {
	require.NoError(t, divider().Validate())
}

func TestValidate_MissingGround(t *testing.T) {
	c := divider()
	c.Ground = "earth"
	assert.ErrorIs(t, c.Validate(), circuit.ErrNoGround)
}

func TestValidate_EmptyGroundID(t *testing.T) {
	c := divider()
	c.Ground = ""
	assert.ErrorIs(t, c.Validate(), circuit.ErrNoGround)
}

func TestValidate_NoUnknowns(t *testing.T) {
	c := &circuit.Circuit{Name: "bare", Ground: "gnd", Nodes: []circuit.Node{{ID: "gnd"}}}
	assert.ErrorIs(t, c.Validate(), circuit.ErrNoUnknowns)
}

func TestValidate_DuplicateNode(t *testing.T) {
	c := divider()
	c.Nodes = append(c.Nodes, circuit.Node{ID: "n1"})
	assert.ErrorIs(t, c.Validate(), circuit.ErrDuplicateNode)
}

func TestValidate_DuplicateComponent(t *testing.T) {
	c := divider()
	c.Components = append(c.Components, circuit.Component{
		ID: "R1", Kind: circuit.Resistor, From: "n1", To: "gnd", Value: 2, Unit: circuit.Ohm,
	})
	assert.ErrorIs(t, c.Validate(), circuit.ErrDuplicateComponent)
}

func TestValidate_UnknownEndpoint(t *testing.T) {
	c := divider()
	c.Components[1].To = "n9"
	err := c.Validate()
	assert.ErrorIs(t, err, circuit.ErrUnknownNode)
	assert.Contains(t, err.Error(), "R1", "error should name the offending component")
}

func TestValidate_ZeroResistance(t *testing.T) {
	c := divider()
	c.Components[1].Value = 0
	assert.ErrorIs(t, c.Validate(), circuit.ErrZeroResistance)
}

func TestValidate_UnknownKind(t *testing.T) {
	c := divider()
	c.Components[1].Kind = circuit.Kind(42)
	assert.ErrorIs(t, c.Validate(), circuit.ErrUnknownKind)
}

// TestAccessors_PreserveDeclarationOrder pins the ordering contract the MNA
// unknown vector depends on.
func TestAccessors_PreserveDeclarationOrder(t *testing.T) {
	c := &circuit.Circuit{
		Ground: "gnd",
		Nodes:  []circuit.Node{{ID: "a"}, {ID: "gnd"}, {ID: "b"}},
		Components: []circuit.Component{
			{ID: "V2", Kind: circuit.VoltageSource, From: "a", To: "gnd", Value: 5, Unit: circuit.Volt},
			{ID: "R1", Kind: circuit.Resistor, From: "a", To: "b", Value: 1, Unit: circuit.Ohm},
			{ID: "V1", Kind: circuit.VoltageSource, From: "b", To: "gnd", Value: 3, Unit: circuit.Volt},
		},
	}

	unknown := c.UnknownNodes()
	require.Len(t, unknown, 2)
	assert.Equal(t, circuit.NodeID("a"), unknown[0].ID)
	assert.Equal(t, circuit.NodeID("b"), unknown[1].ID)

	sources := c.VoltageSources()
	require.Len(t, sources, 2)
	assert.Equal(t, "V2", sources[0].ID, "declaration order, not alphabetical")
	assert.Equal(t, "V1", sources[1].ID)

	resistors := c.Resistors()
	require.Len(t, resistors, 1)
	assert.Equal(t, "R1", resistors[0].ID)
}
