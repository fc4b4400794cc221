// Package voltaic computes steady-state DC operating points of resistive
// circuits via Modified Nodal Analysis (MNA) and records a fully auditable
// derivation trace — every assembled equation, the initial matrix, each
// pivot/swap/elimination decision, and the final interpretation — suitable
// for an academic report.
//
// 🚀 What is voltaic?
//
//	A small, pure-Go numerical engine that brings together:
//		• circuit/  — data model, validation, engineering-unit normalization
//		• mna/      — MNA stamping: circuit → (A, b) linear system
//		• solve/    — dense Gaussian elimination with partial pivoting
//		• analyze/  — node potentials, per-component V/I/P, energy balance
//		• trace/    — append-only, type-safe derivation step log
//		• netlist/  — YAML circuit descriptions → circuit.Circuit
//
// ✨ Why choose voltaic?
//
//   - Deterministic – identical input yields a bit-identical solution and trace
//   - Auditable – the trace reproduces every arithmetic decision of the solve
//   - Pure functions – one analysis per call, no shared state between calls
//   - Honest failure – singular systems return a typed error plus the partial
//     trace, never a panic or a fabricated answer
//
// Quick ASCII example (voltage divider):
//
//	    n1────R1────n2
//	    │           │
//	   V1=12V      R2
//	    │           │
//	   gnd─────────gnd
//
// Typical use:
//
//	res, err := analyze.Analyze(&ckt, analyze.DefaultOptions())
//	if err != nil { ... }             // errors.Is(err, solve.ErrSingular)
//	fmt.Println(res.NodeVoltages["n2"])
//	for _, s := range res.Steps { fmt.Println(s) }
//
// Scope: DC only. No reactive elements, no nonlinear devices, no dependent
// sources, no sparse methods — the engine targets small dense systems (tens
// of unknowns) solved exactly once per request.
//
//	go get github.com/voltlab/voltaic
package voltaic
