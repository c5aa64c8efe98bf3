// SPDX-License-Identifier: MIT

package prob

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/montecarlo/internal/numeric"
)

// Sample draws a state index with probability equal to its weight.
//
// Implementation:
//   - Stage 1: u ← rng.Float64()·total, u ∈ [0, total).
//   - Stage 2: scan the cumulative sum over non-zero weights; return the first
//     index whose cumulative mass exceeds u.
//
// Behavior highlights:
//   - Zero-weight indices are skipped, so they are never returned.
//   - A single non-zero weight is returned regardless of the draw.
//   - Exactly one rng.Float64 call per sample.
//
// Errors: ErrNilRand; ErrSampling if no positive mass exists (unreachable for
// a constructed Distribution, checked anyway).
// Complexity: O(n).
func (d *Distribution) Sample(rng *rand.Rand) (int, error) {
	return SampleWeights(d.p, rng)
}

// SampleWeights performs the same categorical draw as Distribution.Sample on
// a raw weight slice that has not been normalized or validated. Weights only
// need to be non-negative and finite with a positive total.
//
// Errors: ErrNilRand; ErrSampling (also matching the numeric cause) when the
// slice is empty, has a negative or non-finite entry, or sums to zero.
func SampleWeights(weights []float64, rng *rand.Rand) (int, error) {
	if rng == nil {
		return 0, ErrNilRand
	}
	total, err := numeric.ValidateWeights(weights)
	if err != nil {
		return 0, fmt.Errorf("prob.SampleWeights: %w: %w", ErrSampling, err)
	}

	return pick(weights, total, rng.Float64()), nil
}

// pick maps a uniform draw u ∈ [0,1) to an index by inverse cumulative sum.
// Requires total > 0 and at least one positive weight.
func pick(weights []float64, total, u float64) int {
	target := u * total
	last := -1

	var (
		i   int
		w   float64
		cum float64
	)
	for i, w = range weights {
		if w == 0 {
			continue
		}
		last = i
		cum += w
		if target < cum {
			return i
		}
	}

	// Rounding left target on the closing boundary: the last positive weight owns it.
	return last
}
