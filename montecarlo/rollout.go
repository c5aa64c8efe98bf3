// SPDX-License-Identifier: MIT

package montecarlo

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/montecarlo/internal/rng"
	"github.com/katalvlaran/montecarlo/prob"
	"golang.org/x/sync/errgroup"
)

// partial is one worker's share of a reduction. Every estimator only touches
// the fields it needs; merge combines all of them.
type partial struct {
	counts  []int64   // terminal-state histogram
	num     float64   // weighted numerator
	den     float64   // weighted denominator
	samples []float64 // per-rollout observable values, in rollout order
}

// visitFunc folds one terminal state into p.
type visitFunc func(p *partial, terminal int)

// merge adds q into p. Sums are commutative, but merging in worker order keeps
// floating-point results reproducible.
func (p *partial) merge(q *partial) {
	for i := range p.counts {
		p.counts[i] += q.counts[i]
	}
	p.num += q.num
	p.den += q.den
	p.samples = append(p.samples, q.samples...)
}

// rollout draws a start state from initial and takes nSteps transitions,
// returning the terminal state index.
func (e *Estimator) rollout(initial *prob.Distribution, nSteps int, r *rand.Rand) (int, error) {
	state, err := initial.Sample(r)
	if err != nil {
		return 0, fmt.Errorf("rollout: start: %w", err)
	}

	var k int
	for k = 0; k < nSteps; k++ {
		if state, err = e.m.Transition(state, r); err != nil {
			return 0, fmt.Errorf("rollout: step %d: %w", k+1, err)
		}
	}

	return state, nil
}

// simulate runs nSimulations rollouts and folds their terminal states with
// visit. Arguments must already be validated.
//
// Implementation:
//   - Stage 1: k = min(workers, nSimulations); k == 1 runs inline on r.
//   - Stage 2: otherwise derive k streams from r, give worker i a contiguous
//     chunk of ⌊nSimulations/k⌋ rollouts (the first nSimulations mod k
//     workers take one extra) and run them under an errgroup.
//   - Stage 3: merge partials in worker order. No partial result survives an error.
func (e *Estimator) simulate(op string, initial *prob.Distribution, nSteps, nSimulations int, r *rand.Rand, visit visitFunc) (*partial, error) {
	workers := e.opts.workers
	if workers > nSimulations {
		workers = nSimulations
	}
	started := time.Now()
	e.opts.logger.Debug("montecarlo: estimation started",
		"op", op, "steps", nSteps, "simulations", nSimulations, "workers", workers)

	parts := make([]*partial, workers)
	for i := range parts {
		parts[i] = &partial{counts: make([]int64, e.m.Dim())}
	}

	var err error
	if workers == 1 {
		err = e.runChunk(context.Background(), parts[0], initial, nSteps, nSimulations, r, visit)
	} else {
		err = e.runParallel(parts, initial, nSteps, nSimulations, r, visit)
	}
	if err != nil {
		return nil, fmt.Errorf("Estimator.%s: %w", op, err)
	}

	acc := parts[0]
	for _, p := range parts[1:] {
		acc.merge(p)
	}
	e.opts.logger.Debug("montecarlo: estimation finished",
		"op", op, "simulations", nSimulations, "elapsed", time.Since(started))

	return acc, nil
}

// runParallel fans the rollouts out over len(parts) workers.
func (e *Estimator) runParallel(parts []*partial, initial *prob.Distribution, nSteps, nSimulations int, r *rand.Rand, visit visitFunc) error {
	workers := len(parts)
	streams := rng.Streams(r, workers)
	base, extra := nSimulations/workers, nSimulations%workers

	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < workers; i++ {
		size := base
		if i < extra {
			size++
		}
		p, stream := parts[i], streams[i]
		g.Go(func() error {
			return e.runChunk(ctx, p, initial, nSteps, size, stream, visit)
		})
	}

	return g.Wait()
}

// runChunk performs n rollouts on one generator, stopping early once ctx is
// cancelled by a failing sibling.
func (e *Estimator) runChunk(ctx context.Context, p *partial, initial *prob.Distribution, nSteps, n int, r *rand.Rand, visit visitFunc) error {
	var (
		s        int
		terminal int
		err      error
	)
	for s = 0; s < n; s++ {
		if err = ctx.Err(); err != nil {
			return err
		}
		if terminal, err = e.rollout(initial, nSteps, r); err != nil {
			return err
		}
		visit(p, terminal)
	}

	return nil
}
