package model_test

import (
	"fmt"

	"github.com/katalvlaran/zmec/model"
)

// ExampleBuilder demonstrates constructing a tiny three-state MDP and
// inspecting one choice's successor distribution.
func ExampleBuilder() {
	b := model.NewBuilder(3)
	b.AddChoice(0, model.Successor{Target: 1, Probability: 0.5}, model.Successor{Target: 2, Probability: 0.5})
	b.AddChoice(1, model.Successor{Target: 0, Probability: 1})

	m, err := b.Build()
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, succ := range m.Successors(0, 0) {
		fmt.Println(succ.Target, succ.Probability)
	}
	// Output:
	// 1 0.5
	// 2 0.5
}

// ExampleBitSet demonstrates the basic set operations used throughout the
// fixed-point computations.
func ExampleBitSet() {
	a := model.BitSetOf(5, 0, 1, 2)
	b := model.BitSetOf(5, 1, 2, 3)

	a.And(b)
	fmt.Println(a.Slice())
	// Output:
	// [1 2]
}
