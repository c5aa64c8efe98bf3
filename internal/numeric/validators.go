// SPDX-License-Identifier: MIT
// Package: numeric
//
// Purpose:
//   - Single source of truth for the probability-vector checks used by prob,
//     stochastic and montecarlo.
//   - Return plain sentinel errors (tagged, never stringified) so call sites can
//     classify them uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Each composite validator follows a fixed sequence:
//     Empty → NaN/Inf → Negative → Sum.

package numeric

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Tolerance is the absolute tolerance for the unit-sum check. It is a fixed
// design constant; test expectations depend on it.
const Tolerance = 1e-9

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateFinite ensures every entry of x is finite.
// Returns ErrNaNInf naming the first offending index.
// Complexity: O(n).
func ValidateFinite(x []float64) error {
	var i int
	for i = range x {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite: index %d", i), ErrNaNInf)
		}
	}

	return nil
}

// ValidateNonNegative ensures every entry of x is ≥ 0.
// Assumes finite entries (run ValidateFinite first).
// Complexity: O(n).
func ValidateNonNegative(x []float64) error {
	var i int
	for i = range x {
		if x[i] < 0 {
			return validatorErrorf(fmt.Sprintf("ValidateNonNegative: index %d", i), ErrNegative)
		}
	}

	return nil
}

// ValidateUnitSum ensures |Σx − 1| ≤ Tolerance.
// Complexity: O(n).
func ValidateUnitSum(x []float64) error {
	sum := floats.Sum(x)
	if math.Abs(sum-1) > Tolerance {
		return validatorErrorf(fmt.Sprintf("ValidateUnitSum: sum %.12g", sum), ErrNotUnitSum)
	}

	return nil
}

// ValidateProbabilityVector is the composite check for a probability mass
// function: non-empty, finite, non-negative, unit sum.
//
// Errors: ErrEmpty, ErrNaNInf, ErrNegative, ErrNotUnitSum, in that priority.
// Complexity: O(n) time, O(1) space.
func ValidateProbabilityVector(x []float64) error {
	if len(x) == 0 {
		return validatorErrorf("ValidateProbabilityVector", ErrEmpty)
	}
	if err := ValidateFinite(x); err != nil {
		return err
	}
	if err := ValidateNonNegative(x); err != nil {
		return err
	}

	return ValidateUnitSum(x)
}

// ValidateWeights is the composite check for un-normalized sampling weights:
// finite, non-negative, positive total. It returns the total on success.
//
// Errors: ErrEmpty, ErrNaNInf, ErrNegative, ErrBadTotal.
// Complexity: O(n).
func ValidateWeights(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, validatorErrorf("ValidateWeights", ErrEmpty)
	}
	if err := ValidateFinite(x); err != nil {
		return 0, err
	}
	if err := ValidateNonNegative(x); err != nil {
		return 0, err
	}
	total := floats.Sum(x)
	if total <= 0 || math.IsInf(total, 0) {
		return 0, validatorErrorf("ValidateWeights", ErrBadTotal)
	}

	return total, nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Complexity: O(1).
func ValidateVecLen(got, n int) error {
	if got != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: got %d, want %d", got, n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that rows describes a non-empty n×n matrix.
//
// Errors: ErrEmpty when there are no rows, ErrNonSquare (also matching
// ErrDimensionMismatch) naming the first row whose width differs from n.
// Complexity: O(n).
func ValidateSquare(rows [][]float64) error {
	n := len(rows)
	if n == 0 {
		return validatorErrorf("ValidateSquare", ErrEmpty)
	}

	var i int
	for i = range rows {
		if len(rows[i]) != n {
			return fmt.Errorf("ValidateSquare: row %d has %d columns, want %d: %w: %w",
				i, len(rows[i]), n, ErrNonSquare, ErrDimensionMismatch)
		}
	}

	return nil
}
