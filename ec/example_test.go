package ec_test

import (
	"fmt"

	"github.com/katalvlaran/zmec/ec"
	"github.com/katalvlaran/zmec/model"
)

// ExampleCompute demonstrates finding the single maximal end component of
// a two-state cycle with an escaping choice.
func ExampleCompute() {
	b := model.NewBuilder(3)
	b.AddChoice(0, model.Successor{Target: 1, Probability: 1})
	b.AddChoice(0, model.Successor{Target: 2, Probability: 1}) // escape
	b.AddChoice(1, model.Successor{Target: 0, Probability: 1})

	m, err := b.Build()
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, mec := range ec.Compute(m, nil) {
		fmt.Println(mec)
	}
	// Output:
	// [0 1]
}
