package submdp_test

import (
	"testing"

	"github.com/katalvlaran/zmec/model"
	"github.com/katalvlaran/zmec/submdp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSample mirrors spec.md's two-state trivial ZMEC scenario:
// state 0 --0--> 1 (zero reward); state 1 --0--> 0 (zero reward),
// state 1 --1--> 2 (reward 5); state 2 is a sink.
func buildSample(t *testing.T) *model.Explicit {
	t.Helper()
	b := model.NewBuilder(3)
	b.AddChoice(0, model.Successor{Target: 1, Probability: 1})
	b.AddChoice(1, model.Successor{Target: 0, Probability: 1})
	c1 := b.AddChoice(1, model.Successor{Target: 2, Probability: 1})
	b.SetTransitionReward(1, c1, 5)
	m, err := b.Build()
	require.NoError(t, err)

	return m
}

func dropPositiveReward(rewards model.Rewards) submdp.DropPredicate {
	return func(s, c int) bool {
		return model.IsPositiveReward(rewards, s, c)
	}
}

func TestDropped_DropsPositiveRewardChoices(t *testing.T) {
	m := buildSample(t)
	view := submdp.New(m, dropPositiveReward(m))

	assert.Equal(t, 1, view.NumChoices(0))
	assert.Equal(t, 1, view.NumChoices(1)) // choice 1 (reward 5) dropped
	assert.Equal(t, 0, view.NumChoices(2))

	assert.False(t, view.IsTrap(0))
	assert.False(t, view.IsTrap(1))
	assert.True(t, view.IsTrap(2))

	assert.Equal(t, 0, view.MapChoiceToOriginal(1, 0))
}

func TestDropped_NoDropIsIdentityShaped(t *testing.T) {
	m := buildSample(t)
	view := submdp.New(m, func(s, c int) bool { return false })

	for s := 0; s < m.NumStates(); s++ {
		assert.Equal(t, m.NumChoices(s), view.NumChoices(s))
	}
}

func TestDropped_LiftStrategyPreservesSentinels(t *testing.T) {
	m := buildSample(t)
	view := submdp.New(m, dropPositiveReward(m))

	strat := []int{0, 0, model.StrategyUnknown}
	view.LiftStrategy(strat)

	assert.Equal(t, 0, strat[0])
	assert.Equal(t, 0, strat[1])
	assert.Equal(t, model.StrategyUnknown, strat[2])
}

func TestDropped_AllChoicesDroppedIsAllTrap(t *testing.T) {
	m := buildSample(t)
	view := submdp.New(m, func(s, c int) bool { return true })

	for s := 0; s < m.NumStates(); s++ {
		assert.True(t, view.IsTrap(s))
	}
}
