// Package zmec computes the zero-reward end-component quotient of a
// Markov Decision Process and lifts schedulers back across it.
//
// What is zmec?
//
//	A focused, in-memory library that brings together:
//		• model      — the MDP/rewards capability interfaces and a dense
//		               explicit reference implementation
//		• submdp     — read-through views that hide a subset of choices
//		• partition  — a state-index equivalence partition with representatives
//		• quotient   — a read-through MDP view collapsing a partition to traps
//		• ec         — maximal end-component (MEC) decomposition
//		• precomp    — Prob0E / Prob1E qualitative precomputation
//		• zmecquotient — the zero-reward EC quotient driver and strategy lifter
//		• ecquotient — the sibling all-MECs quotient (reachability precomputation)
//
// Why zmec?
//
//   - Deterministic — every externally observable iteration order is
//     ascending state/choice index; rerunning on the same input yields
//     byte-identical mappings (see quotient's tests).
//   - No hidden mutation — views and the quotient are immutable once built;
//     only caller-supplied scratch arrays (scheduler, solution vectors) are
//     ever written to.
//   - Small surface — the whole construction is expressed over the
//     capability interfaces in model, never over a concrete representation.
//
// zmec does not define a wire format, a CLI, or numerical iteration; it is
// the fixed-point/graph-theoretic core that numerical solvers sit on top of.
//
//	go get github.com/katalvlaran/zmec
package zmec
