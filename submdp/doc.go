// Package submdp implements the sub-MDP view: a read-through adapter
// that hides a subset of an underlying model.Model's choices according to
// a caller-supplied predicate, re-densifying the surviving choice indices
// and remembering the mapping back to the original choice index (spec
// §4.1).
//
// What:
//
//   - Dropped: wraps a model.Model, evaluating the drop predicate exactly
//     once per (state, choice) at construction time (cached, not
//     re-evaluated on every query).
//   - IsTrap(s): reports whether s has zero surviving choices.
//   - MapChoiceToOriginal(s, k): the inverse of the re-densification.
//   - LiftStrategy(strat): rewrites a strategy defined in the view's
//     choice-index space back into the original model's choice-index
//     space, preserving the negative sentinels from spec §7.
//
// Why:
//
//   - The zero-reward EC quotient driver (package zmecquotient) needs two
//     such views: one with every positive-reward choice dropped (the
//     zero-reward fragment), and one with zero-reward internal loops on
//     a partition's classes additionally dropped. Both are instances of
//     the same "hide some choices" operation, so it is factored out once.
//
// Complexity:
//
//   - Construction: O(sum of K(s)) to scan every choice once.
//   - NumChoices/Successors/AllSuccessorsMatch/SomeSuccessorInSet: O(1)
//     dispatch plus the underlying model's cost.
//
// Errors:
//
//   - None. A predicate that drops every choice at every state is legal;
//     it simply produces an all-trap view.
package submdp
