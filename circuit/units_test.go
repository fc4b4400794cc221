package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voltlab/voltaic/circuit"
)

// TestToBase_ResistanceMultipliers verifies the engineering-prefix table:
// Ω=1, kΩ=1e3, MΩ=1e6, mΩ=1e-3.
func TestToBase_ResistanceMultipliers(t *testing.T) {
	assert.Equal(t, 47.0, circuit.ToBase(47, circuit.Ohm), "Ω is already base")
	assert.Equal(t, 2000.0, circuit.ToBase(2, circuit.Kiloohm), "kΩ scales by 1e3")
	assert.Equal(t, 1.5e6, circuit.ToBase(1.5, circuit.Megaohm), "MΩ scales by 1e6")
	assert.Equal(t, 0.25, circuit.ToBase(250, circuit.Milliohm), "mΩ scales by 1e-3")
}

// TestToBase_BaseUnits verifies volts and amps pass through with scale 1.
func TestToBase_BaseUnits(t *testing.T) {
	assert.Equal(t, 12.0, circuit.ToBase(12, circuit.Volt))
	assert.Equal(t, 0.5, circuit.ToBase(0.5, circuit.Ampere))
}

// TestToBase_UnknownUnitIdentity verifies the documented pass-through policy:
// an unrecognized unit never fails and never scales.
func TestToBase_UnknownUnitIdentity(t *testing.T) {
	assert.Equal(t, 3.3, circuit.ToBase(3.3, circuit.Unit("furlong")))
	assert.Equal(t, -7.0, circuit.ToBase(-7, circuit.Unit("")))
}

// TestComponent_BaseValue verifies the component-level convenience wrapper.
func TestComponent_BaseValue(t *testing.T) {
	r := circuit.Component{ID: "R1", Kind: circuit.Resistor, Value: 4.7, Unit: circuit.Kiloohm}
	assert.Equal(t, 4700.0, r.BaseValue())
}
