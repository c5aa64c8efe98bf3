package stochastic_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/montecarlo/prob"
	"github.com/katalvlaran/montecarlo/stochastic"
	"github.com/stretchr/testify/require"
)

// twoState is the reference chain with stationary distribution [0.375, 0.625].
var twoState = [][]float64{
	{0.5, 0.5},
	{0.3, 0.7},
}

// mustMatrix builds a Matrix or fails the test.
func mustMatrix(tb testing.TB, rows [][]float64) *stochastic.Matrix {
	tb.Helper()
	m, err := stochastic.New(rows)
	require.NoError(tb, err)

	return m
}

// mustDist builds a Distribution or fails the test.
func mustDist(tb testing.TB, w []float64) *prob.Distribution {
	tb.Helper()
	d, err := prob.New(w)
	require.NoError(tb, err)

	return d
}

// randomRows returns an n×n row-stochastic matrix with strictly positive
// entries drawn from a seeded generator, so the chain is ergodic.
func randomRows(tb testing.TB, n int, seed int64) [][]float64 {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		w := make([]float64, n)
		for j := range w {
			w[j] = 0.05 + rng.Float64()
		}
		d, err := prob.Normalize(w)
		require.NoError(tb, err)
		rows[i] = d.Values()
	}

	return rows
}
