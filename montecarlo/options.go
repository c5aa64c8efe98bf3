// SPDX-License-Identifier: MIT

// Package montecarlo: functional configuration for Estimator.
//   - Option / Options with documented defaults,
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions resolving defaults in order (last wins).
package montecarlo

import (
	"io"
	"log/slog"
)

// DefaultWorkers runs every rollout on the caller's goroutine with the
// caller's generator.
const DefaultWorkers = 1

const (
	panicWorkersInvalid = "montecarlo: WithWorkers: workers must be >= 1"
	panicLoggerNil      = "montecarlo: WithLogger: logger must be non-nil"
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the resolved Estimator configuration.
type Options struct {
	workers int          // >= 1; DefaultWorkers
	logger  *slog.Logger // never nil after gatherOptions
}

// WithWorkers sets how many goroutines share the rollouts of one call.
//
// With workers == 1 the caller's *rand.Rand drives every rollout directly.
// With workers > 1 each worker draws from its own stream derived from the
// caller's generator, and observables must be safe for concurrent use.
// Results are reproducible for a fixed seed and worker count, but differ
// between worker counts.
//
// Panics if workers < 1.
func WithWorkers(workers int) Option {
	if workers < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

// WithLogger routes Debug records about each estimation (operation, steps,
// simulations, workers, elapsed time) to l. The default discards them.
//
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers: DefaultWorkers,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
