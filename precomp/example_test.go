package precomp_test

import (
	"fmt"

	"github.com/katalvlaran/zmec/model"
	"github.com/katalvlaran/zmec/precomp"
)

// ExampleProb1E demonstrates certifying probability-one reachability of a
// goal state along a simple chain.
func ExampleProb1E() {
	b := model.NewBuilder(3)
	b.AddChoice(0, model.Successor{Target: 1, Probability: 1})
	b.AddChoice(1, model.Successor{Target: 2, Probability: 1})

	m, err := b.Build()
	if err != nil {
		fmt.Println(err)
		return
	}

	goal := model.BitSetOf(3, 2)
	result := precomp.Prob1E(m, nil, goal, nil, precomp.Options{Quiet: true})
	fmt.Println(result.Slice())
	// Output:
	// [0 1 2]
}
