// Package stochastic provides Matrix, a validated row-stochastic n×n
// transition matrix over the states 0..n-1.
//
// Row i is the transition distribution "given the chain is in state i, the
// next state is drawn from row i"; each row is stored as a prob.Distribution
// and was validated exactly like one. A Matrix is immutable after New, so a
// single value can back any number of chains and concurrent estimators.
//
// Propagation treats distributions as row vectors: Propagate(π)[j] =
// Σ_i π[i]·M[i][j]. Stationary approximates the stationary distribution by
// power iteration from the uniform distribution and always performs exactly
// the requested number of products; StationaryWithin adds a convergence test
// for callers that want one.
//
// Complexity:
//   - New: O(n²) validation and copy.
//   - Propagate: O(n²).
//   - Stationary(k): O(k·n²), no early exit.
package stochastic
