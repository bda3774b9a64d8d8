package submdp

import "github.com/katalvlaran/zmec/model"

// Dropped is a model.Model view that hides choices rejected by a
// DropPredicate, re-densifying the surviving ones (spec §4.1).
type Dropped struct {
	underlying model.Model
	kept       [][]int // kept[s] = ascending original choice indices that survived
}

var _ model.Model = (*Dropped)(nil)

// New builds a Dropped view of m, evaluating drop once per (s, c).
func New(m model.Model, drop DropPredicate) *Dropped {
	n := m.NumStates()
	kept := make([][]int, n)
	for s := 0; s < n; s++ {
		k := m.NumChoices(s)
		survivors := make([]int, 0, k)
		for c := 0; c < k; c++ {
			if !drop(s, c) {
				survivors = append(survivors, c)
			}
		}
		kept[s] = survivors
	}

	return &Dropped{underlying: m, kept: kept}
}

// NumStates implements model.Model.
func (d *Dropped) NumStates() int { return d.underlying.NumStates() }

// NumChoices implements model.Model: the re-densified count at s.
func (d *Dropped) NumChoices(s int) int { return len(d.kept[s]) }

// Successors implements model.Model, translating the view's choice index
// k back to the original choice index before delegating.
func (d *Dropped) Successors(s, k int) []model.Successor {
	return d.underlying.Successors(s, d.kept[s][k])
}

// AllSuccessorsMatch implements model.Model.
func (d *Dropped) AllSuccessorsMatch(s, k int, pred func(target int) bool) bool {
	return d.underlying.AllSuccessorsMatch(s, d.kept[s][k], pred)
}

// SomeSuccessorInSet implements model.Model.
func (d *Dropped) SomeSuccessorInSet(s, k int, set model.StateSet) bool {
	return d.underlying.SomeSuccessorInSet(s, d.kept[s][k], set)
}

// ReachableStates implements model.Model, delegating unchanged: dropping
// choices never adds states to the reachable set, and computing a tighter
// one is the caller's job via an explicit restriction set.
func (d *Dropped) ReachableStates() model.StateSet { return d.underlying.ReachableStates() }

// IsTrap reports whether s has zero surviving choices in this view.
func (d *Dropped) IsTrap(s int) bool { return len(d.kept[s]) == 0 }

// MapChoiceToOriginal translates a choice index k in this view's index
// space back to the underlying model's original choice index.
func (d *Dropped) MapChoiceToOriginal(s, k int) int { return d.kept[s][k] }

// LiftStrategy rewrites strat in place: strat[s] <- MapChoiceToOriginal(s,
// strat[s]) for every s with a non-sentinel, non-negative choice. Negative
// sentinel values (model.StrategyUnknown / model.StrategyArbitrary) are
// preserved untouched (spec §4.1, §7).
func (d *Dropped) LiftStrategy(strat []int) {
	for s, choice := range strat {
		if choice < 0 {
			continue
		}
		strat[s] = d.MapChoiceToOriginal(s, choice)
	}
}
