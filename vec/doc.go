// Package vec implements the vectorized float64 kernels of go-arrayops:
// element-wise add, sub, mul, div, scalar scale, and the dot, sum, and mean
// reductions.
//
// # Algorithm
//
// Every kernel splits its input length n into floor(n/W) whole lanes and a
// scalar remainder, where W is the lane count detected by package lane:
//  1. Process W elements at a time: load, apply the operator slot-wise, store.
//  2. Finish the n mod W tail elements with an ordinary scalar loop.
//  3. Reductions keep a lane-wide accumulator and fold it into a scalar with
//     a horizontal sum before adding the tail products.
//
// Elementwise results are bit-identical to a scalar loop for any n. The dot
// product accumulates lane-interleaved, so its rounding differs from a
// left-to-right scalar sum; compare against a reference with a relative
// tolerance (1e-9), not exact equality.
//
// # Contract
//
// The exported functions validate shapes before any kernel runs: binary
// operations and reductions require len(a) == len(b), and outputs must be at
// least as long as the inputs. Violations are reported as ErrShapeMismatch or
// ErrShortOutput with the output untouched. Arithmetic edge cases (division
// by zero, overflow, NaN) are not errors; IEEE-754 results propagate into the
// output exactly as a scalar loop would produce them.
//
// Kernels never allocate and never retain state, so concurrent calls on
// disjoint buffers are safe. Callers own all buffers.
//
// # Build modes
//
// With GOEXPERIMENT=simd on amd64 the kernels use hardware AVX2 or AVX-512
// instructions via simd/archsimd. All other builds use the portable lane
// emulation from package lane, which is correct on every target.
package vec
