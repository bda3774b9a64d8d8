package precomp_test

import (
	"testing"

	"github.com/katalvlaran/zmec/model"
	"github.com/katalvlaran/zmec/precomp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProb0E_NestedAvoidance(t *testing.T) {
	// spec.md scenario 3: state 0 has a self-loop (choice 0, reward 0)
	// and an escaping choice (choice 1, to state 1). Prob0E(all, {1})
	// must return {0}.
	b := model.NewBuilder(2)
	b.AddChoice(0, model.Successor{Target: 0, Probability: 1})
	b.AddChoice(0, model.Successor{Target: 1, Probability: 1})
	m, err := b.Build()
	require.NoError(t, err)

	avoid := model.BitSetOf(2, 1)
	strat := []int{model.StrategyUnknown, model.StrategyUnknown}
	result := precomp.Prob0E(m, nil, avoid, strat, precomp.Options{Quiet: true})

	assert.Equal(t, []int{0}, result.Slice())
	assert.Equal(t, 0, strat[0]) // witness: the self-loop choice
}

func TestProb0E_TrapStateCannotAvoid(t *testing.T) {
	b := model.NewBuilder(2) // state 0: no choices (trap); state 1 unused
	m, err := b.Build()
	require.NoError(t, err)

	avoid := model.BitSetOf(2, 1)
	result := precomp.Prob0E(m, nil, avoid, nil, precomp.Options{Quiet: true})
	assert.False(t, result.Contains(0))
}

func TestProb1E_SimpleChain(t *testing.T) {
	// 0 -> 1 -> 2 (goal). Every state should certify reaching {2}.
	b := model.NewBuilder(3)
	b.AddChoice(0, model.Successor{Target: 1, Probability: 1})
	b.AddChoice(1, model.Successor{Target: 2, Probability: 1})
	m, err := b.Build()
	require.NoError(t, err)

	goal := model.BitSetOf(3, 2)
	strat := make([]int, 3)
	result := precomp.Prob1E(m, nil, goal, strat, precomp.Options{Quiet: true})

	assert.Equal(t, []int{0, 1, 2}, result.Slice())
	assert.Equal(t, 0, strat[0])
	assert.Equal(t, 0, strat[1])
	assert.Equal(t, model.StrategyArbitrary, strat[2])
}

func TestProb1E_UnreachableGoalExcluded(t *testing.T) {
	// state 0 only self-loops, never reaches goal {1}.
	b := model.NewBuilder(2)
	b.AddChoice(0, model.Successor{Target: 0, Probability: 1})
	m, err := b.Build()
	require.NoError(t, err)

	goal := model.BitSetOf(2, 1)
	result := precomp.Prob1E(m, nil, goal, nil, precomp.Options{Quiet: true})
	assert.False(t, result.Contains(0))
}

func TestProb1E_MustStayInY(t *testing.T) {
	// state 0 has two choices: one that risks leaving remain (to state 2,
	// outside remain) and one that deterministically reaches goal (state 1).
	// Only {0,1} is remain; Prob1E must pick the safe choice.
	b := model.NewBuilder(3)
	b.AddChoice(0, model.Successor{Target: 2, Probability: 1}) // leaves remain
	b.AddChoice(0, model.Successor{Target: 1, Probability: 1}) // reaches goal
	m, err := b.Build()
	require.NoError(t, err)

	remain := model.BitSetOf(3, 0, 1)
	goal := model.BitSetOf(3, 1)
	strat := make([]int, 3)
	result := precomp.Prob1E(m, remain, goal, strat, precomp.Options{Quiet: true})

	assert.True(t, result.Contains(0))
	assert.Equal(t, 1, strat[0])
}

func TestProb1E_ZMECMemberReachesAnother(t *testing.T) {
	// entire {0,1,2} is one ZMEC; Prob1E(remain=ZMEC, goal={2}) must
	// certify every member of the ZMEC (probability-one reachability
	// within an EC is guaranteed by definition, spec §4.6 step lifting).
	b := model.NewBuilder(3)
	b.AddChoice(0, model.Successor{Target: 1, Probability: 1})
	b.AddChoice(1, model.Successor{Target: 2, Probability: 1})
	b.AddChoice(2, model.Successor{Target: 0, Probability: 1})
	m, err := b.Build()
	require.NoError(t, err)

	remain := model.BitSetOf(3, 0, 1, 2)
	goal := model.BitSetOf(3, 2)
	result := precomp.Prob1E(m, remain, goal, nil, precomp.Options{Quiet: true})
	assert.Equal(t, remain.Slice(), result.Slice())
}
