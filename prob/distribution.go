// SPDX-License-Identifier: MIT

package prob

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/montecarlo/internal/numeric"
	"gonum.org/v1/gonum/floats"
)

// Distribution is an immutable probability mass function over states 0..n-1.
// The zero value is not usable; build one with New, Uniform, PointMass,
// Normalize or FromCounts.
type Distribution struct {
	p []float64 // validated weights, owned (never aliased to caller memory)
}

// New validates weights and returns a Distribution over len(weights) states.
//
// Errors: ErrInvalidDistribution, also matching numeric.ErrEmpty,
// numeric.ErrNaNInf, numeric.ErrNegative or numeric.ErrNotUnitSum.
// Complexity: O(n) time, O(n) space (the input is copied).
func New(weights []float64) (*Distribution, error) {
	if err := numeric.ValidateProbabilityVector(weights); err != nil {
		return nil, fmt.Errorf("prob.New: %w: %w", ErrInvalidDistribution, err)
	}

	p := make([]float64, len(weights))
	copy(p, weights)

	return &Distribution{p: p}, nil
}

// Uniform returns the distribution assigning 1/n to each of n states.
func Uniform(n int) (*Distribution, error) {
	if n <= 0 {
		return nil, fmt.Errorf("prob.Uniform: n=%d: %w", n, ErrInvalidDistribution)
	}
	p := make([]float64, n)
	for i := range p {
		p[i] = 1 / float64(n)
	}

	return New(p)
}

// PointMass returns the distribution with all mass on state i of n.
func PointMass(n, i int) (*Distribution, error) {
	if n <= 0 {
		return nil, fmt.Errorf("prob.PointMass: n=%d: %w", n, ErrInvalidDistribution)
	}
	if i < 0 || i >= n {
		return nil, fmt.Errorf("prob.PointMass: i=%d, n=%d: %w", i, n, ErrOutOfRange)
	}
	p := make([]float64, n)
	p[i] = 1

	return &Distribution{p: p}, nil
}

// Normalize scales non-negative finite weights by their total.
//
// Errors: ErrInvalidDistribution when the weights are empty, non-finite,
// negative, or sum to zero.
// Complexity: O(n).
func Normalize(weights []float64) (*Distribution, error) {
	total, err := numeric.ValidateWeights(weights)
	if err != nil {
		return nil, fmt.Errorf("prob.Normalize: %w: %w", ErrInvalidDistribution, err)
	}
	p := make([]float64, len(weights))
	floats.ScaleTo(p, 1/total, weights)

	return New(p)
}

// FromCounts turns a histogram into the empirical distribution
// counts[i]/Σcounts.
//
// Errors: ErrInvalidDistribution for an empty histogram, a negative count, or
// a zero total.
func FromCounts(counts []int64) (*Distribution, error) {
	var (
		total int64
		i     int
	)
	for i = range counts {
		if counts[i] < 0 {
			return nil, fmt.Errorf("prob.FromCounts: counts[%d]=%d: %w: %w", i, counts[i], ErrInvalidDistribution, numeric.ErrNegative)
		}
		total += counts[i]
	}
	if total <= 0 {
		return nil, fmt.Errorf("prob.FromCounts: %w: %w", ErrInvalidDistribution, numeric.ErrBadTotal)
	}

	p := make([]float64, len(counts))
	for i = range counts {
		p[i] = float64(counts[i]) / float64(total)
	}

	return New(p)
}

// Mix returns the convex combination a·d1 + (1−a)·d2.
//
// Errors: ErrDimensionMismatch for different state spaces,
// ErrInvalidDistribution when a is outside [0, 1] or either input is nil.
// Complexity: O(n).
func Mix(a float64, d1, d2 *Distribution) (*Distribution, error) {
	if math.IsNaN(a) || a < 0 || a > 1 {
		return nil, fmt.Errorf("prob.Mix: coefficient %g: %w", a, ErrInvalidDistribution)
	}
	if d1 == nil || d2 == nil {
		return nil, fmt.Errorf("prob.Mix: nil distribution: %w", ErrInvalidDistribution)
	}
	if d1.Len() != d2.Len() {
		return nil, fmt.Errorf("prob.Mix: %d vs %d states: %w", d1.Len(), d2.Len(), ErrDimensionMismatch)
	}
	out := make([]float64, d1.Len())
	floats.ScaleTo(out, 1-a, d2.p)
	floats.AddScaled(out, a, d1.p)

	return New(out)
}

// Len returns the number of states.
func (d *Distribution) Len() int { return len(d.p) }

// At returns the probability of state i.
func (d *Distribution) At(i int) (float64, error) {
	if i < 0 || i >= len(d.p) {
		return 0, fmt.Errorf("Distribution.At(%d): %w", i, ErrOutOfRange)
	}

	return d.p[i], nil
}

// Values returns a copy of the weights.
func (d *Distribution) Values() []float64 {
	out := make([]float64, len(d.p))
	copy(out, d.p)

	return out
}

// Argmax returns the first index attaining the maximum weight.
func (d *Distribution) Argmax() int {
	return floats.MaxIdx(d.p)
}

// Support returns the indices with strictly positive weight, ascending.
func (d *Distribution) Support() []int {
	out := make([]int, 0, len(d.p))
	for i, w := range d.p {
		if w > 0 {
			out = append(out, i)
		}
	}

	return out
}

// EqualApprox reports whether both distributions have the same length and
// every pair of weights differs by at most tol. A nil distribution is only
// equal to another nil.
func (d *Distribution) EqualApprox(other *Distribution, tol float64) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.Len() != other.Len() {
		return false
	}

	return floats.EqualApprox(d.p, other.p, tol)
}

// TotalVariation returns ½·Σ|d[i] − other[i]|, a distance in [0, 1].
//
// Errors: ErrInvalidDistribution for a nil operand, ErrDimensionMismatch.
func (d *Distribution) TotalVariation(other *Distribution) (float64, error) {
	if d == nil || other == nil {
		return 0, fmt.Errorf("Distribution.TotalVariation: nil distribution: %w", ErrInvalidDistribution)
	}
	if d.Len() != other.Len() {
		return 0, fmt.Errorf("Distribution.TotalVariation: %d vs %d states: %w",
			d.Len(), other.Len(), ErrDimensionMismatch)
	}

	return floats.Distance(d.p, other.p, 1) / 2, nil
}

// String renders the weights as "[w0 w1 ...]".
func (d *Distribution) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, w := range d.p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(w, 'g', -1, 64))
	}
	sb.WriteByte(']')

	return sb.String()
}
