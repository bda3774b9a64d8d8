package zmecquotient

import (
	"fmt"
	"io"

	"github.com/katalvlaran/zmec/ec"
	"github.com/katalvlaran/zmec/model"
	"github.com/katalvlaran/zmec/partition"
	"github.com/katalvlaran/zmec/precomp"
	"github.com/katalvlaran/zmec/quotient"
	"github.com/katalvlaran/zmec/submdp"
)

// BuildOptions customizes Build. The zero value disables every optional
// feature.
type BuildOptions struct {
	// DotWriter, if non-nil, receives two Graphviz dot snapshots: the
	// zero-reward sub-MDP (graph "zero_reward_fragment") and the built
	// quotient (graph "zmec_quotient"), written back to back. When Build
	// finds no zero-reward end component, only the first is written.
	DotWriter io.Writer
}

// Quotient is the zero-reward end-component quotient of some MDP, built
// by Build.
type Quotient struct {
	q                      *quotient.Quotient
	rewards                model.Rewards
	equiv                  *partition.Partition
	zeroRewMDP             *submdp.Dropped
	droppedZeroRewardLoops *submdp.Dropped
	numberOfZMECs          int
}

var _ model.Model = (*Quotient)(nil)

func positiveRewardDrop(rewards model.Rewards) submdp.DropPredicate {
	return func(s, c int) bool { return model.IsPositiveReward(rewards, s, c) }
}

// Build computes the zero-reward end-component quotient of m restricted
// to restrict (nil meaning every reachable state), under rewards. It
// returns (nil, nil) if m has no zero-reward end components at all — the
// caller should then proceed directly on the original model. opts is
// optional; only its first element, if any, is consulted.
func Build(m model.Model, restrict *model.BitSet, rewards model.Rewards, opts ...BuildOptions) (*Quotient, error) {
	var opt BuildOptions
	if len(opts) > 0 {
		opt = opts[0]
	}

	drop := positiveRewardDrop(rewards)
	zeroRewMDP := submdp.New(m, drop)

	if opt.DotWriter != nil {
		if err := model.WriteDot(opt.DotWriter, zeroRewMDP, restrict, "zero_reward_fragment"); err != nil {
			return nil, fmt.Errorf("zmecquotient: %w", err)
		}
	}

	mecs := ec.Compute(zeroRewMDP, restrict)
	if len(mecs) == 0 {
		return nil, nil
	}

	equiv := partition.KeepSingletons(m.NumStates(), mecs)

	// Drop choices that are zero-reward AND stay entirely within the
	// chosen state's own class: these are the "internal loop" choices an
	// end-component representative never needs, since remaining in the
	// class forever earns no reward and escaping is what the quotient
	// choices express (spec §4.6 step 3).
	zeroRewardECLoop := func(s, c int) bool {
		if restrict != nil && !restrict.Contains(s) {
			return false
		}
		if drop(s, c) {
			return false
		}

		return m.AllSuccessorsMatch(s, c, func(t int) bool {
			return equiv.MapToRepresentative(s) == equiv.MapToRepresentative(t)
		})
	}
	droppedZeroRewardLoops := submdp.New(m, zeroRewardECLoop)

	q := quotient.New(droppedZeroRewardLoops, equiv)

	if opt.DotWriter != nil {
		if err := model.WriteDot(opt.DotWriter, q, nil, "zmec_quotient"); err != nil {
			return nil, fmt.Errorf("zmecquotient: %w", err)
		}
	}

	return &Quotient{
		q:                      q,
		rewards:                rewards,
		equiv:                  equiv,
		zeroRewMDP:             zeroRewMDP,
		droppedZeroRewardLoops: droppedZeroRewardLoops,
		numberOfZMECs:          len(mecs),
	}, nil
}

// NumStates implements model.Model.
func (zq *Quotient) NumStates() int { return zq.q.NumStates() }

// NumChoices implements model.Model.
func (zq *Quotient) NumChoices(s int) int { return zq.q.NumChoices(s) }

// Successors implements model.Model.
func (zq *Quotient) Successors(s, c int) []model.Successor { return zq.q.Successors(s, c) }

// AllSuccessorsMatch implements model.Model.
func (zq *Quotient) AllSuccessorsMatch(s, c int, pred func(target int) bool) bool {
	return zq.q.AllSuccessorsMatch(s, c, pred)
}

// SomeSuccessorInSet implements model.Model.
func (zq *Quotient) SomeSuccessorInSet(s, c int, set model.StateSet) bool {
	return zq.q.SomeSuccessorInSet(s, c, set)
}

// ReachableStates implements model.Model.
func (zq *Quotient) ReachableStates() model.StateSet { return zq.q.ReachableStates() }

// Rewards returns the reward structure of the quotient model: state
// rewards pass through unchanged, transition rewards are looked up on
// the original model via the quotient choice's (state, choice) mapping.
func (zq *Quotient) Rewards() model.Rewards {
	return &quotientRewards{rewards: zq.rewards, q: zq.q, dropped: zq.droppedZeroRewardLoops}
}

// NumberOfZeroRewardMECs returns the number of zero-reward end components
// collapsed into this quotient.
func (zq *Quotient) NumberOfZeroRewardMECs() int { return zq.numberOfZMECs }

// NonRepresentativeStates returns the states mapped to another state's
// representative; they remain in the quotient's index space as traps.
func (zq *Quotient) NonRepresentativeStates() *model.BitSet { return zq.q.NonRepresentativeStates() }

// MapResults broadcasts the value computed at each class's representative
// to every non-representative member of that class, in place.
func (zq *Quotient) MapResults(soln []float64) {
	for _, s := range zq.NonRepresentativeStates().Slice() {
		representative := zq.q.MapStateToRepresentative(s)
		soln[s] = soln[representative]
	}
}

type quotientRewards struct {
	rewards model.Rewards
	q       *quotient.Quotient
	dropped *submdp.Dropped
}

func (r *quotientRewards) StateReward(s int) float64 { return r.rewards.StateReward(s) }

func (r *quotientRewards) TransitionReward(s, c int) float64 {
	pair := r.q.MapToOriginal(s, c)
	original := r.dropped.MapChoiceToOriginal(pair.State, pair.Choice)

	return r.rewards.TransitionReward(pair.State, original)
}

func (r *quotientRewards) HasTransitionRewards() bool { return r.rewards.HasTransitionRewards() }

// LiftStrategy lifts a strategy computed on the quotient model back onto
// the original model, in place (spec §4.6 step 5).
//
// For each zero-reward end component, it reads the representative's
// chosen quotient choice to find a target (state, original choice) pair,
// then certifies — via Prob1E restricted to the zero-reward sub-MDP —
// that every member of every end component reaches one of these targets
// using only zero-reward choices with probability one, which must hold
// by the very definition of an end component. A failure indicates an
// internal inconsistency, not a property of the input model.
func (zq *Quotient) LiftStrategy(strat []int) error {
	n := zq.zeroRewMDP.NumStates()
	ecs := model.NewBitSet(n)
	targetStatesInEcs := model.NewBitSet(n)
	targetChoiceOf := make(map[int]int)

	for i := 0; i < zq.equiv.NumClasses(); i++ {
		members := zq.equiv.ClassAt(i)
		representative := zq.equiv.RepresentativeAt(i)

		stratChoice := strat[representative]

		var targetState, targetChoice int
		if model.IsSentinel(stratChoice) {
			targetState = representative
			targetChoice = stratChoice
		} else {
			pair, ok := zq.q.MapToOriginalOrNull(representative, stratChoice)
			if !ok {
				targetState = representative
				targetChoice = stratChoice
			} else {
				targetState = pair.State
				targetChoice = zq.droppedZeroRewardLoops.MapChoiceToOriginal(pair.State, pair.Choice)
			}
		}

		for _, s := range members {
			ecs.Set(s)
		}
		targetStatesInEcs.Set(targetState)
		strat[targetState] = targetChoice
		targetChoiceOf[targetState] = targetChoice
	}

	// Prob1E marks every goal (here: target) state's strategy as
	// model.StrategyArbitrary, since no move is required once there. That
	// would overwrite the real target choice just recorded above, so it
	// is restored afterward — target states are excluded from the final
	// lifting loop below and must keep their original-model choice index.
	prob1inEC := precomp.Prob1E(zq.zeroRewMDP, ecs, targetStatesInEcs, strat, precomp.Options{Quiet: true})
	if !prob1inEC.Equals(ecs) {
		failing := ecs.Clone()
		failing.AndNot(prob1inEC)
		failingStates := failing.Slice()

		classIdx := zq.equiv.ClassOf(failingStates[0])
		representative := zq.equiv.RepresentativeAt(classIdx)

		return fmt.Errorf("zmecquotient: class %d (representative %d): states %v failed prob1e certification: %w",
			classIdx, representative, failingStates, ErrProb1ECertificationFailed)
	}
	for s, choice := range targetChoiceOf {
		strat[s] = choice
	}

	for _, s := range ecs.Slice() {
		if targetStatesInEcs.Contains(s) {
			continue
		}
		strat[s] = zq.zeroRewMDP.MapChoiceToOriginal(s, strat[s])
	}

	return nil
}

// ComputeZeroRewStrategyStates returns the states from which some
// scheduler can avoid every positive-reward choice of m forever (spec
// §4.6's existence-only variant, used when the caller does not need the
// full quotient). If strat is non-nil, it is filled with a witness
// strategy, lifted back onto m's original choice indices.
func ComputeZeroRewStrategyStates(m model.Model, rewards model.Rewards, strat []int) *model.BitSet {
	zeroRewMDP := submdp.New(m, positiveRewardDrop(rewards))

	n := m.NumStates()
	trapStates := model.NewBitSet(n)
	for s := 0; s < n; s++ {
		if zeroRewMDP.NumChoices(s) == 0 {
			trapStates.Set(s)
		}
	}

	zeroRewStrategyStates := precomp.Prob0E(zeroRewMDP, nil, trapStates, strat, precomp.Options{Quiet: true})

	if strat != nil {
		zeroRewMDP.LiftStrategy(strat)
	}

	return zeroRewStrategyStates
}
