package ecquotient

import (
	"fmt"

	"github.com/katalvlaran/zmec/ec"
	"github.com/katalvlaran/zmec/model"
	"github.com/katalvlaran/zmec/partition"
	"github.com/katalvlaran/zmec/precomp"
	"github.com/katalvlaran/zmec/quotient"
	"github.com/katalvlaran/zmec/submdp"
)

// Quotient is the maximal end-component quotient of some MDP, built by
// Build.
type Quotient struct {
	original        model.Model
	q               *quotient.Quotient
	equiv           *partition.Partition
	selfloopDropped *submdp.Dropped
	yes, no         *model.BitSet
}

var _ model.Model = (*Quotient)(nil)

// Build computes the maximal end-component quotient of m, additionally
// collapsing yes and no (each possibly empty, and disjoint from each
// other and from every end component) to their own representative.
func Build(m model.Model, yes, no *model.BitSet) (*Quotient, error) {
	n := m.NumStates()
	if yes == nil {
		yes = model.NewBitSet(n)
	}
	if no == nil {
		no = model.NewBitSet(n)
	}

	maybe := model.FullBitSet(n)
	maybe.AndNot(yes)
	maybe.AndNot(no)

	mecs := ec.Compute(m, maybe)
	if !yes.IsEmpty() {
		mecs = append(mecs, yes.Slice())
	}
	if !no.IsEmpty() {
		mecs = append(mecs, no.Slice())
	}

	equiv := partition.New(n, mecs)

	selfloopDropped := submdp.New(m, func(s, c int) bool {
		return m.AllSuccessorsMatch(s, c, func(t int) bool {
			return equiv.MapToRepresentative(s) == equiv.MapToRepresentative(t)
		})
	})

	q := quotient.New(selfloopDropped, equiv)

	return &Quotient{original: m, q: q, equiv: equiv, selfloopDropped: selfloopDropped, yes: yes, no: no}, nil
}

// NumStates implements model.Model.
func (q *Quotient) NumStates() int { return q.q.NumStates() }

// NumChoices implements model.Model.
func (q *Quotient) NumChoices(s int) int { return q.q.NumChoices(s) }

// Successors implements model.Model.
func (q *Quotient) Successors(s, c int) []model.Successor { return q.q.Successors(s, c) }

// AllSuccessorsMatch implements model.Model.
func (q *Quotient) AllSuccessorsMatch(s, c int, pred func(target int) bool) bool {
	return q.q.AllSuccessorsMatch(s, c, pred)
}

// SomeSuccessorInSet implements model.Model.
func (q *Quotient) SomeSuccessorInSet(s, c int, set model.StateSet) bool {
	return q.q.SomeSuccessorInSet(s, c, set)
}

// ReachableStates implements model.Model.
func (q *Quotient) ReachableStates() model.StateSet { return q.q.ReachableStates() }

// NonRepresentativeStates returns the states mapped to another state's
// representative; they remain in the quotient's index space as traps.
func (q *Quotient) NonRepresentativeStates() *model.BitSet { return q.q.NonRepresentativeStates() }

// YesInQuotient returns the representative of the 'yes' class, as a
// singleton set. Panics if yes was empty, mirroring that this method is
// meaningless for an empty yes set.
func (q *Quotient) YesInQuotient() *model.BitSet {
	first := q.yes.Slice()[0]

	return model.BitSetOf(q.NumStates(), q.equiv.MapToRepresentative(first))
}

// NoInQuotient returns the representative of the 'no' class together with
// every non-representative (trap) state, since both are "already
// decided" states a solver can treat identically.
func (q *Quotient) NoInQuotient() *model.BitSet {
	first := q.no.Slice()[0]

	out := q.NonRepresentativeStates().Clone()
	out.Set(q.equiv.MapToRepresentative(first))

	return out
}

// MapResults broadcasts the value computed at each class's representative
// to every non-representative member of that class, in place.
func (q *Quotient) MapResults(soln []float64) {
	for _, s := range q.NonRepresentativeStates().Slice() {
		representative := q.equiv.MapToRepresentative(s)
		soln[s] = soln[representative]
	}
}

// LiftStrategy lifts a strategy computed on the quotient model back onto
// the original model, in place. For every end-component class other than
// 'yes'/'no' (those need no strategy — they are already decided), it
// reads the representative's chosen quotient choice to find a target
// (state, original choice) pair, certifies that every member of the
// class reaches that target with probability one on the original model,
// and lifts the resulting witnesses.
func (q *Quotient) LiftStrategy(strat []int) error {
	for i := 0; i < q.equiv.NumClasses(); i++ {
		members := q.equiv.ClassAt(i)
		representative := q.equiv.RepresentativeAt(i)

		if q.yes.Contains(representative) || q.no.Contains(representative) {
			continue
		}

		stratChoice := strat[representative]

		var targetState, targetChoice int
		if model.IsSentinel(stratChoice) {
			targetState = representative
			targetChoice = stratChoice
		} else {
			pair, ok := q.q.MapToOriginalOrNull(representative, stratChoice)
			if !ok {
				targetState = representative
				targetChoice = stratChoice
			} else {
				targetState = pair.State
				targetChoice = q.selfloopDropped.MapChoiceToOriginal(pair.State, pair.Choice)
			}
		}

		ecSet := model.BitSetOf(q.NumStates(), members...)
		target := model.BitSetOf(q.NumStates(), targetState)

		prob1inEC := precomp.Prob1E(q.original, ecSet, target, strat, precomp.Options{Quiet: true})
		if !prob1inEC.Equals(ecSet) {
			failing := ecSet.Clone()
			failing.AndNot(prob1inEC)

			return fmt.Errorf("ecquotient: class %d (representative %d): states %v failed prob1e certification: %w",
				i, representative, failing.Slice(), ErrProb1ECertificationFailed)
		}

		strat[targetState] = targetChoice
	}

	return nil
}
