// SPDX-License-Identifier: MIT
package stochastic_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/montecarlo/internal/numeric"
	"github.com/katalvlaran/montecarlo/prob"
	"github.com/katalvlaran/montecarlo/stochastic"
	"github.com/stretchr/testify/require"
)

// TestNew_Validation covers shape and row failures and their sentinels.
func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rows   [][]float64
		causes []error
	}{
		{"valid", twoState, nil},
		{"identity", [][]float64{{1, 0}, {0, 1}}, nil},
		{"empty", nil, []error{stochastic.ErrInvalidStochasticMatrix, numeric.ErrEmpty}},
		{"non-square wide", [][]float64{{0.5, 0.5, 0}, {0.5, 0.5, 0}},
			[]error{stochastic.ErrInvalidStochasticMatrix, stochastic.ErrDimensionMismatch}},
		{"ragged", [][]float64{{1, 0}, {1}},
			[]error{stochastic.ErrInvalidStochasticMatrix, stochastic.ErrDimensionMismatch}},
		{"row sum 0.9", [][]float64{{0.5, 0.4}, {0.3, 0.7}},
			[]error{stochastic.ErrInvalidStochasticMatrix, prob.ErrInvalidDistribution, numeric.ErrNotUnitSum}},
		{"negative entry", [][]float64{{1.2, -0.2}, {0.3, 0.7}},
			[]error{stochastic.ErrInvalidStochasticMatrix, prob.ErrInvalidDistribution, numeric.ErrNegative}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := stochastic.New(tc.rows)
			if tc.causes == nil {
				require.NoError(t, err)
				require.Equal(t, len(tc.rows), m.Dim())
				return
			}
			require.Nil(t, m)
			for _, c := range tc.causes {
				require.Truef(t, errors.Is(err, c), "expected errors.Is(%v, %v)", err, c)
			}
		})
	}
}

// TestNew_EveryRowIsDistribution checks the row invariant on random inputs.
func TestNew_EveryRowIsDistribution(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, randomRows(t, 6, 11))
	for i := 0; i < m.Dim(); i++ {
		row, err := m.Row(i)
		require.NoError(t, err)
		require.NoError(t, numeric.ValidateProbabilityVector(row.Values()))
	}
}

func TestAccessors(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, twoState)

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 0.3, v)
	_, err = m.At(2, 0)
	require.ErrorIs(t, err, stochastic.ErrOutOfRange)
	_, err = m.Row(-1)
	require.ErrorIs(t, err, stochastic.ErrOutOfRange)

	rows := m.Rows()
	require.Equal(t, twoState, rows)
	rows[0][0] = 42
	again, _ := m.At(0, 0)
	require.Equal(t, 0.5, again)
}

func TestTransition(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, [][]float64{{0, 1}, {0, 1}})
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		next, err := m.Transition(i%2, rng)
		require.NoError(t, err)
		require.Equal(t, 1, next)
	}

	_, err := m.Transition(5, rng)
	require.ErrorIs(t, err, stochastic.ErrOutOfRange)
	_, err = m.Transition(0, nil)
	require.ErrorIs(t, err, prob.ErrNilRand)
}

// TestFromAdjacency covers regular rows, dead ends, duplicates and bad links.
func TestFromAdjacency(t *testing.T) {
	t.Parallel()

	m, err := stochastic.FromAdjacency([][]int{{1, 2}, {2}, {0}})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0.5, 0.5}, {0, 0, 1}, {1, 0, 0}}, m.Rows())

	m, err = stochastic.FromAdjacency([][]int{{1}, {}})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 1}, {0.5, 0.5}}, m.Rows())

	m, err = stochastic.FromAdjacency([][]int{{1, 1, 0, 1}, {0}})
	require.NoError(t, err)
	row, _ := m.Row(0)
	require.InDeltaSlice(t, []float64{0.25, 0.75}, row.Values(), 1e-15)

	_, err = stochastic.FromAdjacency([][]int{{3}, {0}})
	require.ErrorIs(t, err, stochastic.ErrOutOfRange)

	_, err = stochastic.FromAdjacency(nil)
	require.ErrorIs(t, err, stochastic.ErrInvalidStochasticMatrix)
}
