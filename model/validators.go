package model

// ValidateUniformReward checks that perSuccessorReward — a reward
// attributed to a single (state, choice, target) triple by some richer
// upstream model — agrees across every successor of (s, c). Adapters that
// translate a per-successor reward structure into the uniform
// (state, choice) shape Rewards assumes must call this before collapsing;
// it is the defensive check spec.md §9's Open Question resolves as fatal.
//
// perSuccessorReward is keyed by target state; targets not present are
// treated as reward 0, matching the "uniform across successors" contract
// for choices where the caller only populated the nonzero entries.
func ValidateUniformReward(s, c int, successors []Successor, perSuccessorReward map[int]float64) error {
	if len(successors) == 0 {
		return nil
	}

	want := perSuccessorReward[successors[0].Target]
	for _, succ := range successors[1:] {
		if got := perSuccessorReward[succ.Target]; got != want {
			return errorf(ErrNonUniformReward, s, c,
				"reward %g at target %d disagrees with %g at target %d",
				got, succ.Target, want, successors[0].Target)
		}
	}

	return nil
}
