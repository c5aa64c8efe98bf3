// SPDX-License-Identifier: MIT

// Package prob: sentinel errors.
// Callers branch with errors.Is. Construction failures match
// ErrInvalidDistribution and, additionally, the underlying numeric cause.
package prob

import "errors"

var (
	// ErrInvalidDistribution is returned when weights are empty, non-finite,
	// negative, or do not sum to 1 within tolerance.
	ErrInvalidDistribution = errors.New("prob: invalid distribution")

	// ErrSampling is returned when a weight vector has no positive, finite
	// mass to sample from.
	ErrSampling = errors.New("prob: sampling failed")

	// ErrDimensionMismatch indicates that two operands index different state spaces.
	ErrDimensionMismatch = errors.New("prob: dimension mismatch")

	// ErrOutOfRange indicates a state index outside [0, n).
	ErrOutOfRange = errors.New("prob: index out of range")

	// ErrNilRand is returned when a sampling call receives a nil *rand.Rand.
	ErrNilRand = errors.New("prob: nil random source")
)
