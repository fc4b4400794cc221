package circuit

import "fmt"

// Validate checks the structural invariants the MNA pipeline assumes:
// present ground, at least one non-ground node, unique node and component
// identifiers, endpoints inside the node set, known component kinds, and
// nonzero resistances. It returns the first violation found, wrapped with
// the offending identifier; sentinels remain matchable via errors.Is.
//
// Downstream packages (mna, analyze) rely on a validated circuit and index
// freely — calling them on an unvalidated circuit is unspecified behavior.
func (c *Circuit) Validate() error {
	seen := make(map[NodeID]struct{}, len(c.Nodes))
	for _, n := range c.Nodes {
		if _, dup := seen[n.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID)
		}
		seen[n.ID] = struct{}{}
	}

	if _, ok := seen[c.Ground]; c.Ground == "" || !ok {
		return fmt.Errorf("%w: %q", ErrNoGround, c.Ground)
	}
	if len(c.Nodes) < 2 {
		return ErrNoUnknowns
	}

	ids := make(map[string]struct{}, len(c.Components))
	for _, comp := range c.Components {
		if _, dup := ids[comp.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateComponent, comp.ID)
		}
		ids[comp.ID] = struct{}{}

		if _, ok := seen[comp.From]; !ok {
			return fmt.Errorf("%w: %s → %q", ErrUnknownNode, comp.ID, comp.From)
		}
		if _, ok := seen[comp.To]; !ok {
			return fmt.Errorf("%w: %s → %q", ErrUnknownNode, comp.ID, comp.To)
		}

		switch comp.Kind {
		case Resistor:
			if comp.BaseValue() == 0 {
				return fmt.Errorf("%w: %s", ErrZeroResistance, comp.ID)
			}
		case VoltageSource, CurrentSource:
			// any magnitude is stampable
		default:
			return fmt.Errorf("%w: %s", ErrUnknownKind, comp.ID)
		}
	}

	return nil
}
