package precomp

import "github.com/katalvlaran/zmec/model"

// Prob1E computes the states from which some scheduler reaches goal while
// staying in remain, with probability one (spec §4.5): a nested fixed
// point, outer greatest FP over a "still possible" set Y, inner least FP
// over a set X of states that can reach goal via choices whose successors
// stay entirely within Y.
//
// If strat is non-nil, strat[s] is set to a witness choice for every s in
// the result that is not itself already in goal; goal members get
// model.StrategyArbitrary (no move is required). remain may be nil,
// meaning every state of m.
func Prob1E(m model.Model, remain, goal *model.BitSet, strat []int, opts Options) *model.BitSet {
	n := m.NumStates()
	if remain == nil {
		remain = model.FullBitSet(n)
	}

	y := remain.Clone()
	var x *model.BitSet

	for outer := 0; ; outer++ {
		x = innerLeastFixpoint(m, remain, goal, y, strat, opts)
		opts.logf("prob1e: outer round %d, |Y|=%d, |X|=%d", outer, y.Cardinality(), x.Cardinality())

		if x.Equals(y) {
			return x
		}
		y = x
	}
}

// innerLeastFixpoint grows X from goal∩remain by repeatedly adding any
// state in remain with a choice whose successors all stay in y and at
// least one successor is already in X.
func innerLeastFixpoint(m model.Model, remain, goal, y *model.BitSet, strat []int, opts Options) *model.BitSet {
	n := m.NumStates()
	x := model.NewBitSet(n)
	for _, s := range remain.Slice() {
		if goal != nil && goal.Contains(s) {
			x.Set(s)
			if strat != nil {
				strat[s] = model.StrategyArbitrary
			}
		}
	}

	for {
		changed := false
		for _, s := range remain.Slice() {
			if x.Contains(s) {
				continue
			}
			for c := 0; c < m.NumChoices(s); c++ {
				if !m.AllSuccessorsMatch(s, c, y.Contains) {
					continue
				}
				if !m.SomeSuccessorInSet(s, c, x) {
					continue
				}
				x.Set(s)
				if strat != nil {
					strat[s] = c
				}
				changed = true
				break
			}
		}
		if !changed {
			return x
		}
		opts.logf("prob1e: inner round, |X|=%d", x.Cardinality())
	}
}
