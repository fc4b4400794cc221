package trace

import (
	"fmt"
	"strings"
)

// Payload is the typed content attached to a Step. The variant set is sealed:
// EquationLines, MatrixBlock, and PlainText are the only implementations.
type Payload interface {
	isPayload()
}

// EquationLines is an ordered list of rendered equation strings.
type EquationLines []string

// MatrixBlock is a rendered matrix: one slice of cells per row.
type MatrixBlock [][]string

// PlainText is a single free-form paragraph.
type PlainText string

func (EquationLines) isPayload() {}
func (MatrixBlock) isPayload()   {}
func (PlainText) isPayload()     {}

// Step is one entry of the derivation trace. Title identifies the phase or
// decision ("Row swap", "Eliminate row 2"), Detail states what was done, and
// Payload optionally carries structured content.
type Step struct {
	Title   string
	Detail  string
	Payload Payload
}

// String renders the step for debugging. Report formatting belongs to the
// export layer, not here.
func (s Step) String() string {
	var b strings.Builder
	b.WriteString(s.Title)
	if s.Detail != "" {
		b.WriteString(": ")
		b.WriteString(s.Detail)
	}
	switch p := s.Payload.(type) {
	case EquationLines:
		for _, eq := range p {
			b.WriteString("\n  ")
			b.WriteString(eq)
		}
	case MatrixBlock:
		for _, row := range p {
			b.WriteString("\n  [ ")
			b.WriteString(strings.Join(row, "  "))
			b.WriteString(" ]")
		}
	case PlainText:
		b.WriteString("\n  ")
		b.WriteString(string(p))
	}
	return b.String()
}

// Recorder accumulates Steps in append-only order. The zero value is ready
// to use. A Recorder belongs to exactly one analysis invocation and must not
// be shared across concurrent analyses.
type Recorder struct {
	steps []Step
}

// Add appends one step with an optional payload (nil is allowed).
func (r *Recorder) Add(title, detail string, payload Payload) {
	r.steps = append(r.steps, Step{Title: title, Detail: detail, Payload: payload})
}

// Addf appends a payload-free step with a formatted detail line.
func (r *Recorder) Addf(title, format string, args ...any) {
	r.steps = append(r.steps, Step{Title: title, Detail: fmt.Sprintf(format, args...)})
}

// Len reports the number of recorded steps.
func (r *Recorder) Len() int {
	return len(r.steps)
}

// Steps returns a copied snapshot of the recorded steps. Mutating the
// returned slice does not affect the recorder.
func (r *Recorder) Steps() []Step {
	out := make([]Step, len(r.steps))
	copy(out, r.steps)
	return out
}

// FormatAugmented renders the augmented system [A | b] as a MatrixBlock with
// fixed 6-decimal cells and a "|" separator column. Shared by the assembler
// (initial matrix display) and by callers that snapshot elimination state.
func FormatAugmented(a [][]float64, b []float64) MatrixBlock {
	block := make(MatrixBlock, len(a))
	for i, row := range a {
		cells := make([]string, 0, len(row)+2)
		for _, v := range row {
			cells = append(cells, fmt.Sprintf("%10.6f", v))
		}
		cells = append(cells, "|", fmt.Sprintf("%10.6f", b[i]))
		block[i] = cells
	}
	return block
}
