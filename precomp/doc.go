// Package precomp implements the qualitative MDP precomputation
// operators Prob0E and Prob1E (spec §4.5): the set of states from which
// some scheduler can, with probability one, avoid a set / reach a set.
//
// What:
//
//   - Prob0E(m, remain, avoid, strat): greatest fixed point of
//     X ↦ { s ∈ remain\avoid : ∃c. all successors of (s,c) ∈ X },
//     started from remain\avoid.
//   - Prob1E(m, remain, goal, strat): nested fixed point — an outer
//     greatest fixed point over a "still possible" set Y, and an inner
//     least fixed point over a set X of states that can reach goal via
//     choices whose successors stay inside Y.
//   - Both optionally record a witness choice per state into a
//     caller-supplied scheduler array (strat may be nil to skip this).
//
// Why:
//
//   - Prob0E on the zero-reward fragment identifies the states with a
//     strategy to never accumulate reward again (the ZMEC-reaching
//     states). Prob1E powers strategy lifting: once the zero-reward EC
//     quotient driver knows a target state inside a collapsed class, it
//     asks Prob1E for a probability-one strategy from every other class
//     member to that target, entirely within the zero-reward fragment.
//
// Complexity:
//
//   - Prob0E: O(|S|·(|S|+|E|)) worst case (a shrinking fixpoint over
//     |remain| states, each round O(|S|+|E|)).
//   - Prob1E: the same bound nested twice (outer GFP rounds, each running
//     an inner LFP to convergence).
//
// Logging:
//
//   - Options.Quiet silences per-round trace logging emitted to
//     Options.Logger (default log.Default()), mirroring the original's
//     silenced-precomputation toggle; see SPEC_FULL.md §4.
package precomp
