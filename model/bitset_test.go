package model_test

import (
	"testing"

	"github.com/katalvlaran/zmec/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitSet_SetClearContains(t *testing.T) {
	b := model.NewBitSet(10)
	assert.True(t, b.IsEmpty())

	b.Set(3)
	b.Set(7)
	assert.True(t, b.Contains(3))
	assert.True(t, b.Contains(7))
	assert.False(t, b.Contains(4))
	assert.Equal(t, 2, b.Cardinality())

	b.Clear(3)
	assert.False(t, b.Contains(3))
	assert.Equal(t, 1, b.Cardinality())
}

func TestBitSet_OutOfRangeIsFalse(t *testing.T) {
	b := model.NewBitSet(4)
	assert.False(t, b.Contains(-1))
	assert.False(t, b.Contains(4))
}

func TestBitSet_AndOrAndNot(t *testing.T) {
	a := model.BitSetOf(8, 0, 1, 2, 3)
	b := model.BitSetOf(8, 2, 3, 4, 5)

	union := a.Clone()
	union.Or(b)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, union.Slice())

	inter := a.Clone()
	inter.And(b)
	assert.Equal(t, []int{2, 3}, inter.Slice())

	diff := a.Clone()
	diff.AndNot(b)
	assert.Equal(t, []int{0, 1}, diff.Slice())
}

func TestBitSet_Equals(t *testing.T) {
	a := model.BitSetOf(5, 1, 2)
	b := model.BitSetOf(5, 1, 2)
	c := model.BitSetOf(5, 1, 3)
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestFullBitSet(t *testing.T) {
	f := model.FullBitSet(5)
	require.Equal(t, 5, f.Cardinality())
	for i := 0; i < 5; i++ {
		assert.True(t, f.Contains(i))
	}
}
