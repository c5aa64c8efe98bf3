// SPDX-License-Identifier: MIT

// Package rng centralizes deterministic random-source construction.
//
// Goals:
//   - Determinism: same seed ⇒ identical streams across platforms.
//   - Encapsulation: no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Never share one across goroutines;
//     use Streams to give each worker its own generator.
package rng

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// goldenGamma is the SplitMix64 increment (2^64 / φ).
const goldenGamma uint64 = 0x9e3779b97f4a7c15

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func FromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed with
// the SplitMix64 finalizer, so neighbouring stream ids give unrelated seeds.
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + goldenGamma)
	x += goldenGamma
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Derive creates an independent generator from base and a stream id.
// base.Int63 is consumed once, so repeated derivations with the same id still
// differ. A nil base falls back to DefaultSeed as the parent.
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}

// Streams derives k independent generators from base, in stream order 0..k-1.
// The result is fully determined by base's state on entry.
// Complexity: O(k).
func Streams(base *rand.Rand, k int) []*rand.Rand {
	if k <= 0 {
		return nil
	}
	out := make([]*rand.Rand, k)

	var i int
	for i = 0; i < k; i++ {
		out[i] = Derive(base, uint64(i))
	}

	return out
}
