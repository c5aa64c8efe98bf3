// Package prob provides Distribution, a validated probability mass function
// over a finite state space indexed 0..n-1.
//
// A Distribution is immutable: constructors copy their input and every
// operation that "changes" a distribution (mixing, one Markov step in the
// stochastic package, normalizing a histogram) returns a new value.
//
// Invariants, enforced at construction:
//
//   - every weight is finite and ≥ 0;
//   - |Σ weights − 1| ≤ 1e-9.
//
// Sampling always takes an explicit *rand.Rand; the package holds no global
// generator state, so a fixed seed reproduces a run exactly.
//
//	d, err := prob.New([]float64{0.2, 0.8})
//	if err != nil {
//		// errors.Is(err, prob.ErrInvalidDistribution)
//	}
//	i, _ := d.Sample(rand.New(rand.NewSource(1)))
package prob
