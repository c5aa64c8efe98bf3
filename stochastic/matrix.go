// SPDX-License-Identifier: MIT

package stochastic

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/montecarlo/internal/numeric"
	"github.com/katalvlaran/montecarlo/prob"
	"gonum.org/v1/gonum/mat"
)

// Matrix is an immutable row-stochastic transition matrix.
type Matrix struct {
	n     int                  // number of states
	rows  []*prob.Distribution // rows[i] = transition distribution out of state i
	dense *mat.Dense           // row-major copy used by Propagate
}

// New validates rows and returns the transition matrix they describe.
//
// Implementation:
//   - Stage 1: shape check (non-empty, every row of width n).
//   - Stage 2: each row validated as a prob.Distribution.
//   - Stage 3: copy into dense storage.
//
// Errors:
//   - ErrInvalidStochasticMatrix for every failure, additionally matching
//     ErrDimensionMismatch (shape) or prob.ErrInvalidDistribution (row i).
//
// Complexity: O(n²) time and space; the input is copied.
func New(rows [][]float64) (*Matrix, error) {
	if err := numeric.ValidateSquare(rows); err != nil {
		if errors.Is(err, numeric.ErrDimensionMismatch) {
			return nil, fmt.Errorf("stochastic.New: %w: %w: %w", ErrInvalidStochasticMatrix, ErrDimensionMismatch, err)
		}

		return nil, fmt.Errorf("stochastic.New: %w: %w", ErrInvalidStochasticMatrix, err)
	}

	n := len(rows)
	m := &Matrix{
		n:    n,
		rows: make([]*prob.Distribution, n),
	}
	flat := make([]float64, 0, n*n)

	var (
		i   int
		err error
	)
	for i = 0; i < n; i++ {
		m.rows[i], err = prob.New(rows[i])
		if err != nil {
			return nil, fmt.Errorf("stochastic.New: row %d: %w: %w", i, ErrInvalidStochasticMatrix, err)
		}
		flat = append(flat, rows[i]...)
	}
	m.dense = mat.NewDense(n, n, flat)

	return m, nil
}

// FromAdjacency builds the random-surfer transition matrix of a directed
// graph given as out-link lists: row i spreads its mass evenly over links[i]
// (a repeated link counts once per occurrence), and a dead end with no links
// jumps uniformly to any state.
//
// Errors: ErrInvalidStochasticMatrix for an empty graph; ErrOutOfRange for a
// link outside [0, len(links)).
// Complexity: O(n² + L) where L is the total number of links.
func FromAdjacency(links [][]int) (*Matrix, error) {
	n := len(links)
	if n == 0 {
		return nil, fmt.Errorf("stochastic.FromAdjacency: %w: %w", ErrInvalidStochasticMatrix, numeric.ErrEmpty)
	}

	rows := make([][]float64, n)

	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		if len(links[i]) == 0 {
			for j = 0; j < n; j++ {
				rows[i][j] = 1 / float64(n)
			}
			continue
		}
		share := 1 / float64(len(links[i]))
		for _, j = range links[i] {
			if j < 0 || j >= n {
				return nil, fmt.Errorf("stochastic.FromAdjacency: link %d->%d: %w", i, j, ErrOutOfRange)
			}
			rows[i][j] += share
		}
	}

	return New(rows)
}

// Dim returns the number of states n.
func (m *Matrix) Dim() int { return m.n }

// At returns the transition probability M[i][j].
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("Matrix.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return m.dense.At(i, j), nil
}

// Row returns the transition distribution out of state i.
func (m *Matrix) Row(i int) (*prob.Distribution, error) {
	if i < 0 || i >= m.n {
		return nil, fmt.Errorf("Matrix.Row(%d): %w", i, ErrOutOfRange)
	}

	return m.rows[i], nil
}

// Rows returns a deep copy of the matrix as a slice of rows.
func (m *Matrix) Rows() [][]float64 {
	out := make([][]float64, m.n)
	for i := range out {
		out[i] = m.rows[i].Values()
	}

	return out
}

// Transition samples the state that follows state i.
//
// Errors: ErrOutOfRange for a bad i; prob.ErrNilRand; prob.ErrSampling if the
// row has no mass to sample.
// Complexity: O(n).
func (m *Matrix) Transition(i int, rng *rand.Rand) (int, error) {
	row, err := m.Row(i)
	if err != nil {
		return 0, err
	}

	return row.Sample(rng)
}

// String renders the matrix one row per line.
func (m *Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m.dense))
}
