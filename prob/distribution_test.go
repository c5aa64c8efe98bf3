// SPDX-License-Identifier: MIT
package prob_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/montecarlo/internal/numeric"
	"github.com/katalvlaran/montecarlo/prob"
	"github.com/stretchr/testify/require"
)

// TestNew_Validation covers the construction-time invariants.
func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		weights []float64
		cause   error
	}{
		{"valid", []float64{0.25, 0.75}, nil},
		{"single state", []float64{1}, nil},
		{"empty", []float64{}, numeric.ErrEmpty},
		{"negative", []float64{-0.5, 1.5}, numeric.ErrNegative},
		{"sum 0.9", []float64{0.5, 0.4}, numeric.ErrNotUnitSum},
		{"sum 1.1", []float64{0.6, 0.5}, numeric.ErrNotUnitSum},
		{"nan", []float64{math.NaN(), 1}, numeric.ErrNaNInf},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d, err := prob.New(tc.weights)
			if tc.cause == nil {
				require.NoError(t, err)
				require.Equal(t, len(tc.weights), d.Len())
				return
			}
			require.Nil(t, d)
			require.Truef(t, errors.Is(err, prob.ErrInvalidDistribution), "got %v", err)
			require.Truef(t, errors.Is(err, tc.cause), "got %v", err)
		})
	}
}

// TestNew_CopiesInput ensures callers cannot mutate a constructed value.
func TestNew_CopiesInput(t *testing.T) {
	t.Parallel()

	w := []float64{0.5, 0.5}
	d, err := prob.New(w)
	require.NoError(t, err)
	w[0] = 7

	got := d.Values()
	require.Equal(t, []float64{0.5, 0.5}, got)
	got[1] = 9
	require.Equal(t, []float64{0.5, 0.5}, d.Values())
}

// TestInvariant_SumAndMin checks every constructor output against the
// unit-sum and non-negativity invariant.
func TestInvariant_SumAndMin(t *testing.T) {
	t.Parallel()

	var ds []*prob.Distribution
	u, err := prob.Uniform(7)
	require.NoError(t, err)
	ds = append(ds, u)
	pm, err := prob.PointMass(4, 2)
	require.NoError(t, err)
	ds = append(ds, pm)
	nz, err := prob.Normalize([]float64{3, 0, 1, 6})
	require.NoError(t, err)
	ds = append(ds, nz)
	fc, err := prob.FromCounts([]int64{10, 20, 70})
	require.NoError(t, err)
	ds = append(ds, fc)

	for _, d := range ds {
		var sum, lo float64
		lo = math.Inf(1)
		for _, w := range d.Values() {
			sum += w
			lo = math.Min(lo, w)
		}
		require.InDelta(t, 1.0, sum, numeric.Tolerance)
		require.GreaterOrEqual(t, lo, 0.0)
	}
}

func TestConstructors_Errors(t *testing.T) {
	t.Parallel()

	_, err := prob.Uniform(0)
	require.ErrorIs(t, err, prob.ErrInvalidDistribution)

	_, err = prob.PointMass(3, 3)
	require.ErrorIs(t, err, prob.ErrOutOfRange)

	_, err = prob.Normalize([]float64{0, 0})
	require.ErrorIs(t, err, prob.ErrInvalidDistribution)

	_, err = prob.FromCounts([]int64{0, 0, 0})
	require.ErrorIs(t, err, prob.ErrInvalidDistribution)
}

// TestArgmax_FirstMaxWins pins the tie-break rule.
func TestArgmax_FirstMaxWins(t *testing.T) {
	t.Parallel()

	d, err := prob.New([]float64{0.1, 0.4, 0.4, 0.1})
	require.NoError(t, err)
	require.Equal(t, 1, d.Argmax())

	d, err = prob.New([]float64{0, 0, 1})
	require.NoError(t, err)
	require.Equal(t, 2, d.Argmax())
	require.Equal(t, []int{2}, d.Support())
}

func TestMix(t *testing.T) {
	t.Parallel()

	a, _ := prob.New([]float64{1, 0})
	b, _ := prob.New([]float64{0, 1})

	m, err := prob.Mix(0.25, a, b)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.25, 0.75}, m.Values(), 1e-15)

	_, err = prob.Mix(1.5, a, b)
	require.ErrorIs(t, err, prob.ErrInvalidDistribution)

	c, _ := prob.Uniform(3)
	_, err = prob.Mix(0.5, a, c)
	require.ErrorIs(t, err, prob.ErrDimensionMismatch)
}

func TestAccessorsAndDistances(t *testing.T) {
	t.Parallel()

	a, _ := prob.New([]float64{0.5, 0.5})
	b, _ := prob.New([]float64{0.375, 0.625})

	v, err := a.At(1)
	require.NoError(t, err)
	require.Equal(t, 0.5, v)
	_, err = a.At(2)
	require.ErrorIs(t, err, prob.ErrOutOfRange)

	tv, err := a.TotalVariation(b)
	require.NoError(t, err)
	require.InDelta(t, 0.125, tv, 1e-15)

	require.True(t, a.EqualApprox(a, 0))
	require.False(t, a.EqualApprox(b, 0.1))
	require.True(t, a.EqualApprox(b, 0.13))

	u3, _ := prob.Uniform(3)
	require.False(t, a.EqualApprox(u3, 1))
	_, err = a.TotalVariation(u3)
	require.ErrorIs(t, err, prob.ErrDimensionMismatch)

	require.Equal(t, "[0.375 0.625]", b.String())
}

// TestNilOperands: binary operations reject nil instead of dereferencing it.
func TestNilOperands(t *testing.T) {
	t.Parallel()

	a, _ := prob.New([]float64{0.5, 0.5})
	var none *prob.Distribution

	_, err := prob.Mix(0.5, a, nil)
	require.ErrorIs(t, err, prob.ErrInvalidDistribution)
	_, err = prob.Mix(0.5, nil, a)
	require.ErrorIs(t, err, prob.ErrInvalidDistribution)

	_, err = a.TotalVariation(nil)
	require.ErrorIs(t, err, prob.ErrInvalidDistribution)
	_, err = none.TotalVariation(a)
	require.ErrorIs(t, err, prob.ErrInvalidDistribution)

	require.False(t, a.EqualApprox(nil, 1))
	require.False(t, none.EqualApprox(a, 1))
	require.True(t, none.EqualApprox(nil, 0))
}
