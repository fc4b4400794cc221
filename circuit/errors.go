package circuit

import "errors"

var (
	// ErrNoGround indicates the circuit's ground id is empty or absent from the node set.
	ErrNoGround = errors.New("circuit: ground node missing from node set")
	// ErrNoUnknowns indicates the circuit has no node besides ground, so there
	// is nothing to solve for.
	ErrNoUnknowns = errors.New("circuit: at least one non-ground node is required")
	// ErrDuplicateNode indicates two nodes share the same identifier.
	ErrDuplicateNode = errors.New("circuit: duplicate node identifier")
	// ErrDuplicateComponent indicates two components share the same identifier.
	ErrDuplicateComponent = errors.New("circuit: duplicate component identifier")
	// ErrUnknownNode indicates a component references a node id outside the node set.
	ErrUnknownNode = errors.New("circuit: component references unknown node")
	// ErrZeroResistance indicates a resistor with zero magnitude, which has no
	// finite conductance to stamp.
	ErrZeroResistance = errors.New("circuit: resistor magnitude must be nonzero")
	// ErrUnknownKind indicates a component kind outside the supported set.
	ErrUnknownKind = errors.New("circuit: unsupported component kind")
)
