// SPDX-License-Identifier: MIT

package montecarlo

import (
	"errors"

	"github.com/katalvlaran/montecarlo/prob"
)

var (
	// ErrNilMatrix is returned by New when no transition matrix is given.
	ErrNilMatrix = errors.New("montecarlo: nil transition matrix")

	// ErrInvalidSteps is returned for nSteps < 0.
	ErrInvalidSteps = errors.New("montecarlo: steps must be >= 0")

	// ErrInvalidSimulations is returned for nSimulations <= 0.
	ErrInvalidSimulations = errors.New("montecarlo: simulations must be > 0")

	// ErrNilObservable is returned when an observable or energy function is nil.
	ErrNilObservable = errors.New("montecarlo: nil observable")

	// ErrNaNInf is returned for a non-finite inverse temperature.
	ErrNaNInf = errors.New("montecarlo: NaN or Inf parameter")
)

// ErrDimensionMismatch aliases prob.ErrDimensionMismatch.
var ErrDimensionMismatch = prob.ErrDimensionMismatch

// ErrNilRand aliases prob.ErrNilRand.
var ErrNilRand = prob.ErrNilRand
