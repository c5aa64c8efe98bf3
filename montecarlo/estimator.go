// SPDX-License-Identifier: MIT

package montecarlo

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/montecarlo/prob"
	"github.com/katalvlaran/montecarlo/stochastic"
)

// Observable maps a state index to a real value (an observable f or an
// energy function H).
type Observable func(state int) float64

// Estimator runs Monte Carlo rollouts over a fixed transition matrix.
// It is safe for concurrent use.
type Estimator struct {
	m    *stochastic.Matrix
	opts Options
}

// New returns an Estimator over m.
func New(m *stochastic.Matrix, opts ...Option) (*Estimator, error) {
	if m == nil {
		return nil, fmt.Errorf("montecarlo.New: %w", ErrNilMatrix)
	}

	return &Estimator{m: m, opts: gatherOptions(opts...)}, nil
}

// Matrix returns the transition matrix the estimator samples from.
func (e *Estimator) Matrix() *stochastic.Matrix { return e.m }

// Estimate runs nSimulations rollouts of nSteps transitions each and returns
// the empirical distribution of their terminal states (count / nSimulations).
//
// As nSimulations grows the result converges to m.Evolve(initial, nSteps); as
// nSteps grows on an ergodic chain it converges to the stationary
// distribution regardless of initial.
//
// Errors: prob.ErrInvalidDistribution (nil initial), ErrDimensionMismatch,
// ErrInvalidSteps, ErrInvalidSimulations, ErrNilRand, prob.ErrSampling.
// Complexity: O(nSimulations·nSteps·n) time, O(n·workers) space.
func (e *Estimator) Estimate(initial *prob.Distribution, nSteps, nSimulations int, rng *rand.Rand) (*prob.Distribution, error) {
	const op = "Estimate"
	if err := e.validateRun(op, initial, nSteps, nSimulations, rng); err != nil {
		return nil, err
	}

	acc, err := e.simulate(op, initial, nSteps, nSimulations, rng, func(p *partial, terminal int) {
		p.counts[terminal]++
	})
	if err != nil {
		return nil, err
	}

	return prob.FromCounts(acc.counts)
}

// EstimateWeighted returns the self-normalized importance-sampling estimate
//
//	Σ f(s)/π(s) / Σ 1/π(s)
//
// over the terminal states s of nSimulations rollouts. pi is the known (or
// assumed) stationary distribution and must be positive at every reachable
// terminal state; see the package documentation.
//
// Errors: as Estimate, plus ErrNilObservable and ErrDimensionMismatch for pi.
func (e *Estimator) EstimateWeighted(
	initial *prob.Distribution,
	nSteps, nSimulations int,
	f Observable,
	pi *prob.Distribution,
	rng *rand.Rand,
) (float64, error) {
	const op = "EstimateWeighted"
	if err := e.validateRun(op, initial, nSteps, nSimulations, rng); err != nil {
		return 0, err
	}
	if err := e.validateReweighting(op, f, pi); err != nil {
		return 0, err
	}

	target := pi.Values()
	acc, err := e.simulate(op, initial, nSteps, nSimulations, rng, func(p *partial, terminal int) {
		w := 1.0 / target[terminal]
		p.num += f(terminal) * w
		p.den += w
	})
	if err != nil {
		return 0, err
	}

	return acc.num / acc.den, nil
}

// EstimateEnergy returns the canonical-ensemble average of the energy h at
// inverse temperature beta,
//
//	Σ H(s)·w(s) / Σ w(s),  w(s) = exp(−beta·H(s)) / π(s),
//
// over the terminal states of nSimulations rollouts. With beta == 0 and the
// same generator state it equals EstimateWeighted with f = h.
//
// Errors: as EstimateWeighted, plus ErrNaNInf for a non-finite beta.
func (e *Estimator) EstimateEnergy(
	initial *prob.Distribution,
	nSteps, nSimulations int,
	h Observable,
	beta float64,
	pi *prob.Distribution,
	rng *rand.Rand,
) (float64, error) {
	const op = "EstimateEnergy"
	if err := e.validateRun(op, initial, nSteps, nSimulations, rng); err != nil {
		return 0, err
	}
	if err := e.validateReweighting(op, h, pi); err != nil {
		return 0, err
	}
	if math.IsNaN(beta) || math.IsInf(beta, 0) {
		return 0, fmt.Errorf("Estimator.%s: beta=%g: %w", op, beta, ErrNaNInf)
	}

	target := pi.Values()
	acc, err := e.simulate(op, initial, nSteps, nSimulations, rng, func(p *partial, terminal int) {
		energy := h(terminal)
		w := math.Exp(-beta*energy) / target[terminal]
		p.num += energy * w
		p.den += w
	})
	if err != nil {
		return 0, err
	}

	return acc.num / acc.den, nil
}

// validateRun checks the arguments shared by every estimator.
func (e *Estimator) validateRun(op string, initial *prob.Distribution, nSteps, nSimulations int, rng *rand.Rand) error {
	switch {
	case initial == nil:
		return fmt.Errorf("Estimator.%s: nil initial distribution: %w", op, prob.ErrInvalidDistribution)
	case initial.Len() != e.m.Dim():
		return fmt.Errorf("Estimator.%s: initial over %d states, matrix has %d: %w",
			op, initial.Len(), e.m.Dim(), ErrDimensionMismatch)
	case nSteps < 0:
		return fmt.Errorf("Estimator.%s: nSteps=%d: %w", op, nSteps, ErrInvalidSteps)
	case nSimulations <= 0:
		return fmt.Errorf("Estimator.%s: nSimulations=%d: %w", op, nSimulations, ErrInvalidSimulations)
	case rng == nil:
		return fmt.Errorf("Estimator.%s: %w", op, ErrNilRand)
	}

	return nil
}

// validateReweighting checks the observable and the target distribution.
func (e *Estimator) validateReweighting(op string, f Observable, pi *prob.Distribution) error {
	if f == nil {
		return fmt.Errorf("Estimator.%s: %w", op, ErrNilObservable)
	}
	if pi == nil {
		return fmt.Errorf("Estimator.%s: nil target distribution: %w", op, prob.ErrInvalidDistribution)
	}
	if pi.Len() != e.m.Dim() {
		return fmt.Errorf("Estimator.%s: target over %d states, matrix has %d: %w",
			op, pi.Len(), e.m.Dim(), ErrDimensionMismatch)
	}

	return nil
}
