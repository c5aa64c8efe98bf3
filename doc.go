// Package montecarlo is a small toolkit for discrete-state stochastic
// simulation: probability vectors, row-stochastic matrices, Markov chains
// and Monte Carlo estimators over their trajectories.
//
// What is inside?
//
//	prob/         validated probability distributions, sampling, mixing, distances
//	stochastic/   row-stochastic matrices, propagation d·P, power iteration
//	markov/       transition kernels, generic processes, labelled Markov chains
//	montecarlo/   terminal-state histograms, importance-weighted and
//	              Boltzmann-weighted estimators, sample summaries
//	examples/     runnable scenarios (weather, random surfer, energy levels)
//
// Every random draw goes through a caller-supplied *rand.Rand, so a fixed
// seed reproduces a run exactly. Estimators can fan rollouts out over
// several goroutines; results then stay reproducible for a fixed seed and
// worker count.
//
// Quick example, a two-state chain:
//
//	P = | 0.5  0.5 |      π = [0.375 0.625]
//	    | 0.3  0.7 |
//
//	m, _ := stochastic.New([][]float64{{0.5, 0.5}, {0.3, 0.7}})
//	pi, _ := m.Stationary(100)
//
//	go get github.com/katalvlaran/montecarlo
package montecarlo
