// Package zmecquotient implements the zero-reward end-component quotient
// driver (spec §4.6): it collapses every zero-reward maximal end
// component of an MDP to a single representative state, producing a
// smaller MDP equivalent for the purpose of computing expected
// (reachability/reward) properties, together with a lifted reward
// structure and the machinery to map results and strategies back to the
// original model.
//
// What:
//
//   - Build: drops every positive-reward choice (package submdp), finds
//     the maximal end components of what remains (package ec), and, if
//     any exist, quotients them (package quotient) under a partition that
//     keeps every other state a singleton (package partition). Returns
//     nil, nil if there are no zero-reward end components — there is
//     nothing to quotient.
//   - MapResults: broadcasts a representative's computed value to every
//     non-representative member of its class.
//   - LiftStrategy: lifts a strategy computed on the quotient back onto
//     the original model, picking for each class a target state/choice
//     from the representative's quotient choice, then certifying (via
//     Prob1E on the zero-reward sub-MDP) that every class member can
//     reach some class's target state using only zero-reward choices,
//     and lifting the resulting witnesses.
//   - ComputeZeroRewStrategyStates: a scheduler-independent helper
//     answering "from which states can some scheduler avoid every
//     positive-reward choice forever", used when only that existence
//     question — not the full quotient — is needed.
//
// Why:
//
//   - Every piece here is grounded on PRISM's ZeroRewardECQuotient: drop
//     positive-reward choices, run MEC computation, keep-singletons
//     equivalence, drop same-class-only loops, quotient, lift.
package zmecquotient
