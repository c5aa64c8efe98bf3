// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/montecarlo/prob"
	"github.com/katalvlaran/montecarlo/stochastic"
)

// Chain is a Markov chain over labeled states. states[i] labels row and
// column i of the transition matrix; the current index is the only mutable
// field.
type Chain[S any] struct {
	states []S
	m      *stochastic.Matrix
	walk   *Process[int]
}

// New binds labels to m and commits to the start state initial.Argmax().
// The start is chosen, not sampled.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - prob.ErrInvalidDistribution when initial is nil.
//   - ErrDimensionMismatch when len(states) or initial.Len() differs from m.Dim().
//
// Complexity: O(n); states is copied.
func New[S any](states []S, m *stochastic.Matrix, initial *prob.Distribution) (*Chain[S], error) {
	if m == nil {
		return nil, fmt.Errorf("markov.New: %w", ErrNilMatrix)
	}
	if initial == nil {
		return nil, fmt.Errorf("markov.New: nil initial distribution: %w", prob.ErrInvalidDistribution)
	}
	if len(states) != m.Dim() {
		return nil, fmt.Errorf("markov.New: %d labels for %d states: %w", len(states), m.Dim(), ErrDimensionMismatch)
	}
	if initial.Len() != m.Dim() {
		return nil, fmt.Errorf("markov.New: initial distribution over %d states, matrix has %d: %w",
			initial.Len(), m.Dim(), ErrDimensionMismatch)
	}

	labels := make([]S, len(states))
	copy(labels, states)

	walk := &Process[int]{current: initial.Argmax(), kernel: MatrixKernel{M: m}}

	return &Chain[S]{states: labels, m: m, walk: walk}, nil
}

// NewFromWeights validates weights with prob.New and then behaves like New,
// so an invalid initial vector fails with prob.ErrInvalidDistribution.
func NewFromWeights[S any](states []S, m *stochastic.Matrix, weights []float64) (*Chain[S], error) {
	initial, err := prob.New(weights)
	if err != nil {
		return nil, fmt.Errorf("markov.NewFromWeights: %w", err)
	}

	return New(states, m, initial)
}

// Step samples the next index from the current row and moves there.
//
// Errors: prob.ErrNilRand; prob.ErrSampling if the row has no mass. The
// current state is unchanged on error.
// Complexity: O(n).
func (c *Chain[S]) Step(rng *rand.Rand) error {
	if err := c.walk.Step(rng); err != nil {
		return fmt.Errorf("Chain.Step: %w", err)
	}

	return nil
}

// Run takes steps steps and returns the label visited after each one.
// On error the labels visited so far are returned with the error.
func (c *Chain[S]) Run(rng *rand.Rand, steps int) ([]S, error) {
	if steps < 0 {
		return nil, fmt.Errorf("Chain.Run: steps=%d: %w", steps, ErrInvalidSteps)
	}
	visited := make([]S, 0, steps)

	var k int
	for k = 0; k < steps; k++ {
		if err := c.Step(rng); err != nil {
			return visited, err
		}
		visited = append(visited, c.Current())
	}

	return visited, nil
}

// Current returns the label of the current state.
func (c *Chain[S]) Current() S { return c.states[c.walk.Current()] }

// Index returns the current state index, always in [0, n).
func (c *Chain[S]) Index() int { return c.walk.Current() }

// Steps returns the number of successful steps taken.
func (c *Chain[S]) Steps() int { return c.walk.Steps() }

// States returns a copy of the state labels.
func (c *Chain[S]) States() []S {
	out := make([]S, len(c.states))
	copy(out, c.states)

	return out
}

// Matrix returns the transition matrix backing the chain.
func (c *Chain[S]) Matrix() *stochastic.Matrix { return c.m }
