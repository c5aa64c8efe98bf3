package prob_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/montecarlo/prob"
)

// ExampleNew shows construction failures and deterministic sampling.
func ExampleNew() {
	_, err := prob.New([]float64{0.5, 0.4})
	fmt.Println(err != nil)

	d, _ := prob.New([]float64{0, 1, 0})
	i, _ := d.Sample(rand.New(rand.NewSource(1)))
	fmt.Println(i, d.Argmax())

	// Output:
	// true
	// 1 1
}

// ExampleFromCounts normalizes a histogram of terminal states.
func ExampleFromCounts() {
	d, _ := prob.FromCounts([]int64{3, 1})
	fmt.Println(d)

	// Output:
	// [0.75 0.25]
}
