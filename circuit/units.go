package circuit

// Unit is the engineering unit a component magnitude is declared in.
type Unit string

// Recognized units. Resistance prefixes scale to ohms; Volt and Ampere are
// already base units.
const (
	Ohm      Unit = "Ω"
	Kiloohm  Unit = "kΩ"
	Megaohm  Unit = "MΩ"
	Milliohm Unit = "mΩ"
	Volt     Unit = "V"
	Ampere   Unit = "A"
)

// multipliers maps a unit to its base-SI scale factor.
var multipliers = map[Unit]float64{
	Ohm:      1,
	Kiloohm:  1e3,
	Megaohm:  1e6,
	Milliohm: 1e-3,
	Volt:     1,
	Ampere:   1,
}

// ToBase converts a magnitude in the given unit to base SI units (ohms,
// volts, or amps). Total and pure: an unrecognized unit passes through
// unscaled, treated as already-base. Callers that need rejection of unknown
// units must check before conversion; this function never fails.
func ToBase(value float64, unit Unit) float64 {
	if scale, ok := multipliers[unit]; ok {
		return value * scale
	}
	return value
}

// BaseValue returns the component's magnitude in base SI units.
func (c Component) BaseValue() float64 {
	return ToBase(c.Value, c.Unit)
}
