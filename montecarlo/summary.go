// SPDX-License-Identifier: MIT

package montecarlo

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/montecarlo/prob"
	"github.com/montanaflynn/stats"
)

// Summary describes the unweighted distribution of an observable over the
// terminal states of a batch of rollouts.
type Summary struct {
	N      int     // number of rollouts
	Mean   float64 // sample mean
	StdDev float64 // sample standard deviation (n−1 denominator); 0 when N == 1
	StdErr float64 // StdDev / √N, the standard error of Mean
	Min    float64
	Max    float64
	Median float64
}

// Summarize runs nSimulations rollouts and summarizes f over their terminal
// states without any reweighting.
//
// Errors: as Estimate, plus ErrNilObservable.
// Complexity: O(nSimulations·nSteps·n) time, O(nSimulations) space.
func (e *Estimator) Summarize(initial *prob.Distribution, nSteps, nSimulations int, f Observable, r *rand.Rand) (Summary, error) {
	const op = "Summarize"
	if err := e.validateRun(op, initial, nSteps, nSimulations, r); err != nil {
		return Summary{}, err
	}
	if f == nil {
		return Summary{}, fmt.Errorf("Estimator.%s: %w", op, ErrNilObservable)
	}

	acc, err := e.simulate(op, initial, nSteps, nSimulations, r, func(p *partial, terminal int) {
		p.samples = append(p.samples, f(terminal))
	})
	if err != nil {
		return Summary{}, err
	}

	return summarize(acc.samples)
}

// summarize computes Summary over a non-empty sample.
func summarize(data stats.Float64Data) (Summary, error) {
	var (
		s   = Summary{N: data.Len()}
		err error
	)
	if s.Mean, err = stats.Mean(data); err != nil {
		return Summary{}, fmt.Errorf("summarize: mean: %w", err)
	}
	if s.Min, err = stats.Min(data); err != nil {
		return Summary{}, fmt.Errorf("summarize: min: %w", err)
	}
	if s.Max, err = stats.Max(data); err != nil {
		return Summary{}, fmt.Errorf("summarize: max: %w", err)
	}
	if s.Median, err = stats.Median(data); err != nil {
		return Summary{}, fmt.Errorf("summarize: median: %w", err)
	}
	if s.N > 1 {
		if s.StdDev, err = stats.StandardDeviationSample(data); err != nil {
			return Summary{}, fmt.Errorf("summarize: stddev: %w", err)
		}
		s.StdErr = s.StdDev / math.Sqrt(float64(s.N))
	}

	return s, nil
}
