// Package markov advances first-order Markov processes one step at a time.
//
// Two layers are provided:
//
//   - Kernel[T] is the capability "given the current state, draw the next
//     one". Fixed, Increment, Uniform and MatrixKernel are the stock
//     variants; KernelFunc adapts a plain function. Process[T] owns a
//     current state and a Kernel and mutates only in Step.
//
//   - Chain[S] binds opaque state labels to a stochastic.Matrix. It starts
//     at the most likely state of an initial distribution (argmax, first
//     index on ties) and each Step samples the next index from the current
//     row of the matrix.
//
// Nothing here holds a hidden random generator: every Step takes the
// *rand.Rand to draw from. A Chain or Process is not safe for concurrent
// use; the Matrix behind it is, and can be shared between chains.
package markov
