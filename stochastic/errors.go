// SPDX-License-Identifier: MIT

// Package stochastic: sentinel errors.
// Shape violations match both ErrInvalidStochasticMatrix and
// ErrDimensionMismatch; row violations match ErrInvalidStochasticMatrix and
// prob.ErrInvalidDistribution.
package stochastic

import (
	"errors"

	"github.com/katalvlaran/montecarlo/prob"
)

var (
	// ErrInvalidStochasticMatrix is returned by constructors when the input is
	// empty, not square, or has a row that is not a probability distribution.
	ErrInvalidStochasticMatrix = errors.New("stochastic: invalid stochastic matrix")

	// ErrInvalidIterations is returned for a negative iteration or step count.
	ErrInvalidIterations = errors.New("stochastic: iteration count must be >= 0")

	// ErrInvalidTolerance is returned for a negative or non-finite convergence tolerance.
	ErrInvalidTolerance = errors.New("stochastic: tolerance must be finite and >= 0")

	// ErrNotConverged is returned by StationaryWithin when the iteration budget
	// runs out before successive iterates agree within tolerance.
	ErrNotConverged = errors.New("stochastic: power iteration did not converge")
)

// ErrDimensionMismatch is the shared dimension sentinel; it aliases
// prob.ErrDimensionMismatch so one errors.Is check covers every package.
var ErrDimensionMismatch = prob.ErrDimensionMismatch

// ErrOutOfRange aliases prob.ErrOutOfRange for state indices outside [0, n).
var ErrOutOfRange = prob.ErrOutOfRange
