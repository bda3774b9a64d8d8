package ec_test

import (
	"testing"

	"github.com/katalvlaran/zmec/ec"
	"github.com/katalvlaran/zmec/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTrivialZMEC(t *testing.T) *model.Explicit {
	t.Helper()
	b := model.NewBuilder(3)
	b.AddChoice(0, model.Successor{Target: 1, Probability: 1})
	b.AddChoice(1, model.Successor{Target: 0, Probability: 1})
	b.AddChoice(1, model.Successor{Target: 2, Probability: 1})
	m, err := b.Build()
	require.NoError(t, err)

	return m
}

func TestCompute_TwoStateCycleIsOneMEC(t *testing.T) {
	m := buildTrivialZMEC(t)
	mecs := ec.Compute(m, nil)

	require.Len(t, mecs, 1)
	assert.Equal(t, []int{0, 1}, mecs[0])
}

func TestCompute_SiblingZMECs(t *testing.T) {
	// {0,1} cycle, {2,3} cycle, shared exit from 1 -> 4.
	b := model.NewBuilder(5)
	b.AddChoice(0, model.Successor{Target: 1, Probability: 1})
	b.AddChoice(1, model.Successor{Target: 0, Probability: 1})
	b.AddChoice(1, model.Successor{Target: 4, Probability: 1})
	b.AddChoice(2, model.Successor{Target: 3, Probability: 1})
	b.AddChoice(3, model.Successor{Target: 2, Probability: 1})
	m, err := b.Build()
	require.NoError(t, err)

	mecs := ec.Compute(m, nil)
	require.Len(t, mecs, 2)
	assert.Equal(t, []int{0, 1}, mecs[0])
	assert.Equal(t, []int{2, 3}, mecs[1])
}

func TestCompute_NoMECInAcyclicModel(t *testing.T) {
	b := model.NewBuilder(3)
	b.AddChoice(0, model.Successor{Target: 1, Probability: 1})
	b.AddChoice(1, model.Successor{Target: 2, Probability: 1})
	m, err := b.Build()
	require.NoError(t, err)

	assert.Empty(t, ec.Compute(m, nil))
}

func TestCompute_NestedAvoidance(t *testing.T) {
	// state 0: choice 0 self-loop; choice 1 -> state 1 (escape).
	b := model.NewBuilder(2)
	b.AddChoice(0, model.Successor{Target: 0, Probability: 1})
	b.AddChoice(0, model.Successor{Target: 1, Probability: 1})
	m, err := b.Build()
	require.NoError(t, err)

	mecs := ec.Compute(m, nil)
	require.Len(t, mecs, 1)
	assert.Equal(t, []int{0}, mecs[0])
}

func TestCompute_SingleStateNoSelfLoopIsNotAnEC(t *testing.T) {
	b := model.NewBuilder(2)
	b.AddChoice(0, model.Successor{Target: 1, Probability: 1})
	m, err := b.Build()
	require.NoError(t, err)

	assert.Empty(t, ec.Compute(m, nil))
}

func TestCompute_EntireModelIsOneEC(t *testing.T) {
	b := model.NewBuilder(3)
	b.AddChoice(0, model.Successor{Target: 1, Probability: 1})
	b.AddChoice(1, model.Successor{Target: 2, Probability: 1})
	b.AddChoice(2, model.Successor{Target: 0, Probability: 1})
	m, err := b.Build()
	require.NoError(t, err)

	mecs := ec.Compute(m, nil)
	require.Len(t, mecs, 1)
	assert.Equal(t, []int{0, 1, 2}, mecs[0])
}

func TestCompute_RestrictionExcludesStates(t *testing.T) {
	m := buildTrivialZMEC(t)
	restrict := model.BitSetOf(3, 2) // only state 2, a sink: no MEC
	assert.Empty(t, ec.Compute(m, restrict))
}
