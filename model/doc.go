// Package model defines the capability interfaces that the rest of zmec
// is built against, plus a dense, explicit reference implementation used
// by the tests and examples of every downstream package.
//
// What:
//
//   - Model: a Markov Decision Process exposed as dense state/choice
//     indices, successor distributions, and two short-circuit predicate
//     queries (AllSuccessorsMatch / SomeSuccessorInSet) used in the hot
//     paths of end-component computation and qualitative precomputation.
//   - Rewards: a state-reward and transition-reward pair, both ℝ≥0.
//   - Explicit: a concrete, builder-constructed Model+Rewards pair backed
//     by flat per-state choice slices. Not required by downstream
//     packages (they only ever see Model/Rewards), but provided so this
//     repository is buildable and testable end to end.
//
// Why:
//
//   - Every other package (submdp, partition, quotient, ec, precomp,
//     zmecquotient, ecquotient) is written purely against Model/Rewards,
//     never against Explicit, so a symbolic (decision-diagram-backed)
//     implementation can be dropped in without touching any algorithm.
//
// Errors:
//
//   - ErrStructuralInconsistency  input violates the Model contract
//     (negative/zero probability, distribution not summing to 1, a
//     declared choice with no successors).
//   - ErrNonUniformReward         an adapter fed a transition reward that
//     is not uniform across the successors of one (state, choice); see
//     ValidateUniformReward.
package model
