package stochastic_test

import (
	"fmt"

	"github.com/katalvlaran/montecarlo/prob"
	"github.com/katalvlaran/montecarlo/stochastic"
)

// ExampleMatrix_Propagate pushes a point mass one step forward.
func ExampleMatrix_Propagate() {
	m, _ := stochastic.New([][]float64{{0.5, 0.5}, {0.3, 0.7}})
	start, _ := prob.New([]float64{1, 0})

	next, _ := m.Propagate(start)
	fmt.Println(next)

	// Output:
	// [0.5 0.5]
}

// ExampleMatrix_Stationary approximates the long-run occupancy.
func ExampleMatrix_Stationary() {
	m, _ := stochastic.New([][]float64{{0.5, 0.5}, {0.3, 0.7}})
	pi, _ := m.Stationary(200)
	fmt.Printf("%.3f %.3f\n", pi.Values()[0], pi.Values()[1])

	// Output:
	// 0.375 0.625
}

// ExampleFromAdjacency builds a random-surfer chain over three pages.
func ExampleFromAdjacency() {
	m, _ := stochastic.FromAdjacency([][]int{{1, 2}, {2}, {0}})
	pi, _ := m.Stationary(500)
	fmt.Printf("%.3f %.3f %.3f\n", pi.Values()[0], pi.Values()[1], pi.Values()[2])

	// Output:
	// 0.400 0.200 0.400
}
