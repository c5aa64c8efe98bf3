// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"
	"math/rand"
)

// Process is a Markov process over states of type T driven by a Kernel.
type Process[T any] struct {
	current T
	kernel  Kernel[T]
	steps   int
}

// NewProcess returns a process sitting in initial.
func NewProcess[T any](initial T, k Kernel[T]) (*Process[T], error) {
	if k == nil {
		return nil, ErrNilKernel
	}

	return &Process[T]{current: initial, kernel: k}, nil
}

// Step replaces the current state with a draw from the kernel. On error the
// current state is left unchanged.
func (p *Process[T]) Step(rng *rand.Rand) error {
	next, err := p.kernel.Next(p.current, rng)
	if err != nil {
		return fmt.Errorf("Process.Step(%d): %w", p.steps+1, err)
	}
	p.current = next
	p.steps++

	return nil
}

// Current returns the current state.
func (p *Process[T]) Current() T { return p.current }

// Steps returns how many successful steps have been taken.
func (p *Process[T]) Steps() int { return p.steps }
