package quotient

import (
	"github.com/katalvlaran/zmec/model"
	"github.com/katalvlaran/zmec/partition"
)

// Quotient is the read-through MDP view collapsing part's classes of m to
// their representatives (spec §4.3).
type Quotient struct {
	underlying       model.Model
	part             *partition.Partition
	choices          map[int][]StateChoicePair // representative -> its quotient choices, in index order
	nonRepresentative *model.BitSet
}

var _ model.Model = (*Quotient)(nil)

// New builds the quotient of m under part. See doc.go for the ordering
// and filtering contract.
func New(m model.Model, part *partition.Partition) *Quotient {
	n := m.NumStates()

	groups := make(map[int][]int)
	for s := 0; s < n; s++ {
		r := part.MapToRepresentative(s)
		groups[r] = append(groups[r], s) // s ascending since the loop is ascending
	}

	choices := make(map[int][]StateChoicePair, len(groups))
	nonRep := model.NewBitSet(n)
	for r, members := range groups {
		var pairs []StateChoicePair
		for _, s := range members {
			if s != r {
				nonRep.Set(s)
			}
			for c := 0; c < m.NumChoices(s); c++ {
				pairs = append(pairs, StateChoicePair{State: s, Choice: c})
			}
		}
		choices[r] = pairs
	}

	return &Quotient{underlying: m, part: part, choices: choices, nonRepresentative: nonRep}
}

// NumStates implements model.Model.
func (q *Quotient) NumStates() int { return q.underlying.NumStates() }

// NumChoices implements model.Model: 0 for non-representatives.
func (q *Quotient) NumChoices(s int) int { return len(q.choices[s]) }

// Successors implements model.Model. Targets are not remapped to
// representatives (spec §4.3). The upstream submdp.Dropped views built by
// the drivers remove only choices whose every target lies in the same
// class, so a surviving choice may still list a target inside its own
// class; such targets are returned unchanged.
func (q *Quotient) Successors(r, k int) []model.Successor {
	pair := q.choices[r][k]

	return q.underlying.Successors(pair.State, pair.Choice)
}

// AllSuccessorsMatch implements model.Model.
func (q *Quotient) AllSuccessorsMatch(r, k int, pred func(target int) bool) bool {
	pair := q.choices[r][k]

	return q.underlying.AllSuccessorsMatch(pair.State, pair.Choice, pred)
}

// SomeSuccessorInSet implements model.Model.
func (q *Quotient) SomeSuccessorInSet(r, k int, set model.StateSet) bool {
	pair := q.choices[r][k]

	return q.underlying.SomeSuccessorInSet(pair.State, pair.Choice, set)
}

// ReachableStates implements model.Model, delegating to the underlying
// model: the quotient shares its state index space unchanged.
func (q *Quotient) ReachableStates() model.StateSet { return q.underlying.ReachableStates() }

// MapToOriginal inverts the deterministic iteration order that assigned
// quotient-choice index k at representative r.
func (q *Quotient) MapToOriginal(r, k int) StateChoicePair {
	return q.choices[r][k]
}

// MapToOriginalOrNull is MapToOriginal, but returns ok=false instead of
// panicking when k is out of the valid surviving-choice range — the case
// where k is a scheduler sentinel rather than a real quotient-choice
// index (spec §4.3).
func (q *Quotient) MapToOriginalOrNull(r, k int) (pair StateChoicePair, ok bool) {
	pairs := q.choices[r]
	if k < 0 || k >= len(pairs) {
		return StateChoicePair{}, false
	}

	return pairs[k], true
}

// NonRepresentativeStates returns the states that are not the
// representative of their own class; these remain in the quotient's
// state index space but have zero outgoing choices.
func (q *Quotient) NonRepresentativeStates() *model.BitSet { return q.nonRepresentative }

// MapStateToRepresentative returns the representative of s's class (s
// itself if s belongs to no class), delegating to the underlying
// partition.
func (q *Quotient) MapStateToRepresentative(s int) int { return q.part.MapToRepresentative(s) }
