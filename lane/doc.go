// Package lane provides the portable SIMD-lane abstraction used by the
// go-arrayops kernels.
//
// A Lane holds one SIMD register's worth of float64 elements. The number of
// elements per lane (the lane count) is a runtime constant chosen during
// package init from the widest instruction set detected on the host CPU:
// 8 for AVX-512, 4 for AVX2, 2 for SSE2/NEON and for the scalar fallback.
//
// All lane operations follow IEEE-754 semantics exactly, so results are
// bit-identical to the equivalent scalar loop. This is what makes the
// scalar remainder loop in the kernel engine a correct completion of the
// lane loop for any input length.
//
// Set the ARRAYOPS_NO_SIMD environment variable to force scalar mode,
// e.g. for debugging or for comparing against the baseline.
package lane
