// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/montecarlo/prob"
	"github.com/katalvlaran/montecarlo/stochastic"
)

// Kernel draws the next state of a Markov process from the current one.
// Implementations must not keep per-call state; all randomness comes from rng.
type Kernel[T any] interface {
	Next(current T, rng *rand.Rand) (T, error)
}

// KernelFunc adapts an ordinary function to the Kernel interface.
type KernelFunc[T any] func(current T, rng *rand.Rand) (T, error)

// Next calls f(current, rng).
func (f KernelFunc[T]) Next(current T, rng *rand.Rand) (T, error) {
	return f(current, rng)
}

// Fixed always moves to State, whatever the current state is.
type Fixed[T any] struct {
	State T
}

// Next returns k.State.
func (k Fixed[T]) Next(_ T, _ *rand.Rand) (T, error) {
	return k.State, nil
}

// Integer is the set of types Increment can count with.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Increment moves deterministically from n to n+1.
type Increment[T Integer] struct{}

// Next returns current + 1.
func (Increment[T]) Next(current T, _ *rand.Rand) (T, error) {
	return current + 1, nil
}

// Uniform ignores the current state and draws from [Lower, Upper).
type Uniform struct {
	Lower float64
	Upper float64
}

// Next returns Lower + u·(Upper−Lower) for u ∈ [0, 1).
//
// Errors: prob.ErrNilRand; ErrInvalidKernel if the bounds are not finite or
// Upper < Lower.
func (k Uniform) Next(_ float64, rng *rand.Rand) (float64, error) {
	if rng == nil {
		return 0, prob.ErrNilRand
	}
	if math.IsNaN(k.Lower) || math.IsInf(k.Lower, 0) || math.IsNaN(k.Upper) || math.IsInf(k.Upper, 0) || k.Upper < k.Lower {
		return 0, fmt.Errorf("Uniform.Next: [%g, %g): %w", k.Lower, k.Upper, ErrInvalidKernel)
	}

	return k.Lower + rng.Float64()*(k.Upper-k.Lower), nil
}

// MatrixKernel samples the next state index from row current of M.
type MatrixKernel struct {
	M *stochastic.Matrix
}

// Next delegates to M.Transition.
//
// Errors: ErrNilMatrix; stochastic.ErrOutOfRange; prob.ErrNilRand; prob.ErrSampling.
func (k MatrixKernel) Next(current int, rng *rand.Rand) (int, error) {
	if k.M == nil {
		return 0, ErrNilMatrix
	}

	return k.M.Transition(current, rng)
}
