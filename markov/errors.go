// SPDX-License-Identifier: MIT

package markov

import (
	"errors"

	"github.com/katalvlaran/montecarlo/prob"
)

var (
	// ErrNilMatrix is returned when a chain is built without a transition matrix.
	ErrNilMatrix = errors.New("markov: nil transition matrix")

	// ErrNilKernel is returned when a process is built without a kernel.
	ErrNilKernel = errors.New("markov: nil kernel")

	// ErrInvalidKernel is returned by a kernel whose parameters cannot produce a state.
	ErrInvalidKernel = errors.New("markov: invalid kernel parameters")

	// ErrInvalidSteps is returned for a negative step count.
	ErrInvalidSteps = errors.New("markov: step count must be >= 0")
)

// ErrDimensionMismatch aliases prob.ErrDimensionMismatch: the label count or
// the initial distribution disagrees with the matrix dimension.
var ErrDimensionMismatch = prob.ErrDimensionMismatch
