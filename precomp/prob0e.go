package precomp

import "github.com/katalvlaran/zmec/model"

// Prob0E computes the greatest fixed point of
//
//	X ↦ { s ∈ remain\avoid : ∃c. all successors of (s,c) ∈ X }
//
// started from remain\avoid: the states from which some scheduler keeps
// the process in remain\avoid forever, with probability one (spec §4.5).
//
// If strat is non-nil, strat[s] is set to a witness choice for every s in
// the result. avoid and remain may be nil; a nil avoid means the empty
// set, a nil remain means every state of m.
func Prob0E(m model.Model, remain, avoid *model.BitSet, strat []int, opts Options) *model.BitSet {
	n := m.NumStates()
	if remain == nil {
		remain = model.FullBitSet(n)
	}

	x := remain.Clone()
	if avoid != nil {
		x.AndNot(avoid)
	}

	for round := 0; ; round++ {
		opts.logf("prob0e: round %d, |X|=%d", round, x.Cardinality())

		next := model.NewBitSet(n)
		changed := false
		for _, s := range x.Slice() {
			witness, ok := findWitness(m, s, x)
			if !ok {
				changed = true
				continue
			}
			next.Set(s)
			if strat != nil {
				strat[s] = witness
			}
		}

		if !changed {
			return x
		}
		x = next
	}
}

// findWitness returns a choice index at s all of whose successors lie in
// set, and true; or (0, false) if no such choice exists.
func findWitness(m model.Model, s int, set *model.BitSet) (int, bool) {
	for c := 0; c < m.NumChoices(s); c++ {
		if m.AllSuccessorsMatch(s, c, set.Contains) {
			return c, true
		}
	}

	return 0, false
}
