// SPDX-License-Identifier: MIT

// Package numeric: sentinel error set shared by the public packages.
// Public packages classify these causes under their own sentinels with
// fmt.Errorf("%w: %w", ErrPublic, cause), so errors.Is matches both levels.
package numeric

import "errors"

var (
	// ErrEmpty is returned when a vector or matrix has no entries.
	ErrEmpty = errors.New("numeric: empty input")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("numeric: NaN or Inf encountered")

	// ErrNegative signals a strictly negative entry where weights must be ≥ 0.
	ErrNegative = errors.New("numeric: negative entry")

	// ErrNotUnitSum signals that entries do not sum to 1 within Tolerance.
	ErrNotUnitSum = errors.New("numeric: entries do not sum to 1")

	// ErrBadTotal signals that the entries do not sum to a positive finite total,
	// so nothing can be normalized or sampled.
	ErrBadTotal = errors.New("numeric: total weight is not positive and finite")

	// ErrDimensionMismatch indicates incompatible lengths between operands.
	ErrDimensionMismatch = errors.New("numeric: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("numeric: matrix is not square")
)
