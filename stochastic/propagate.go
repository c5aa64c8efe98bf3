// SPDX-License-Identifier: MIT

package stochastic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/montecarlo/prob"
	"gonum.org/v1/gonum/mat"
)

// Propagate pushes d forward one step: π'[j] = Σ_i π[i]·M[i][j].
//
// Implementation:
//   - Stage 1: length check against Dim.
//   - Stage 2: π' = Mᵀ·π via a gonum matrix-vector product.
//   - Stage 3: rescale π' by its total and re-validate it as a prob.Distribution.
//     Row sums are only 1 within tolerance; the rescale keeps the total mass at
//     1 across any number of steps.
//
// Errors: ErrDimensionMismatch when d.Len() != Dim().
// Complexity: O(n²) time, O(n) space.
func (m *Matrix) Propagate(d *prob.Distribution) (*prob.Distribution, error) {
	if d == nil {
		return nil, fmt.Errorf("Matrix.Propagate: nil distribution: %w", prob.ErrInvalidDistribution)
	}
	if d.Len() != m.n {
		return nil, fmt.Errorf("Matrix.Propagate: %d states, matrix is %d×%d: %w", d.Len(), m.n, m.n, ErrDimensionMismatch)
	}

	var next mat.VecDense
	next.MulVec(m.dense.T(), mat.NewVecDense(m.n, d.Values()))

	out, err := prob.Normalize(next.RawVector().Data)
	if err != nil {
		return nil, fmt.Errorf("Matrix.Propagate: %w", err)
	}

	return out, nil
}

// Evolve applies Propagate steps times, giving the exact steps-ahead
// distribution of a chain started from d.
func (m *Matrix) Evolve(d *prob.Distribution, steps int) (*prob.Distribution, error) {
	if steps < 0 {
		return nil, fmt.Errorf("Matrix.Evolve: steps=%d: %w", steps, ErrInvalidIterations)
	}

	if d == nil {
		return nil, fmt.Errorf("Matrix.Evolve: nil distribution: %w", prob.ErrInvalidDistribution)
	}
	if d.Len() != m.n {
		return nil, fmt.Errorf("Matrix.Evolve: %d states, matrix is %d×%d: %w", d.Len(), m.n, m.n, ErrDimensionMismatch)
	}

	var (
		cur = d
		err error
		k   int
	)
	for k = 0; k < steps; k++ {
		if cur, err = m.Propagate(cur); err != nil {
			return nil, err
		}
	}

	return cur, nil
}

// Stationary approximates the stationary distribution by power iteration:
// start from the uniform distribution and apply Propagate exactly iterations
// times. There is no convergence test and no early exit; a periodic chain
// simply returns whatever iterate the budget ends on.
//
// Errors: ErrInvalidIterations for iterations < 0.
// Complexity: O(iterations·n²).
func (m *Matrix) Stationary(iterations int) (*prob.Distribution, error) {
	if iterations < 0 {
		return nil, fmt.Errorf("Matrix.Stationary: iterations=%d: %w", iterations, ErrInvalidIterations)
	}
	start, err := prob.Uniform(m.n)
	if err != nil {
		return nil, err
	}

	return m.Evolve(start, iterations)
}

// StationaryWithin runs power iteration from the uniform distribution until
// the total-variation distance between successive iterates is ≤ tol, for at
// most maxIterations products.
//
// Returns the last iterate and the number of products performed. When the
// budget is exhausted the last iterate is still returned, together with
// ErrNotConverged.
//
// Errors: ErrInvalidTolerance, ErrInvalidIterations, ErrNotConverged.
// Complexity: O(k·n²) for k ≤ maxIterations products.
func (m *Matrix) StationaryWithin(tol float64, maxIterations int) (*prob.Distribution, int, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return nil, 0, fmt.Errorf("Matrix.StationaryWithin: tol=%g: %w", tol, ErrInvalidTolerance)
	}
	if maxIterations < 0 {
		return nil, 0, fmt.Errorf("Matrix.StationaryWithin: maxIterations=%d: %w", maxIterations, ErrInvalidIterations)
	}

	cur, err := prob.Uniform(m.n)
	if err != nil {
		return nil, 0, err
	}

	var (
		next  *prob.Distribution
		delta float64
		k     int
	)
	for k = 1; k <= maxIterations; k++ {
		if next, err = m.Propagate(cur); err != nil {
			return nil, k, err
		}
		// Both iterates share the matrix dimension, so the distance cannot fail.
		delta, _ = next.TotalVariation(cur)
		cur = next
		if delta <= tol {
			return cur, k, nil
		}
	}

	return cur, maxIterations, fmt.Errorf("Matrix.StationaryWithin: %d iterations, tol=%g: %w", maxIterations, tol, ErrNotConverged)
}
