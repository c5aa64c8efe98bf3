// Package montecarlo estimates expectations under a finite Markov chain by
// repeated independent rollouts.
//
// Every estimator shares one rollout primitive: draw a start state from an
// initial distribution, then take nSteps transitions by sampling from the
// current row of the transition matrix. What differs is how the terminal
// states are reduced:
//
//   - Estimate tallies terminal states into a histogram and normalizes it, an
//     empirical estimate of the nSteps-ahead distribution.
//   - EstimateWeighted is the self-normalized importance-sampling estimator
//     Σ f(s)/π(s) / Σ 1/π(s) of E_π[f].
//   - EstimateEnergy applies canonical (Boltzmann) reweighting with weights
//     exp(−β·H(s))/π(s) and returns Σ H·w / Σ w.
//   - Summarize reports unweighted statistics of f over terminal states.
//
// An Estimator only reads its stochastic.Matrix and keeps no state between
// calls. With WithWorkers(k), k > 1, rollouts are split into k contiguous
// chunks that run concurrently, each on its own generator derived from the
// caller's *rand.Rand; partial sums are merged in worker order, so a fixed
// seed and worker count reproduce the same result bit for bit.
//
// The π passed to the weighted estimators must be positive at every terminal
// state a rollout can reach. A zero there yields an infinite weight and an
// Inf or NaN estimate; this is the caller's precondition and is not checked.
package montecarlo
