//go:build amd64 && goexperiment.simd

package vec

import (
	"simd/archsimd"
)

// AVX2 kernels over 256-bit registers: 4 float64 elements per lane.
// Each processes whole lanes with hardware instructions and finishes the
// tail with scalar code, so results match the portable kernels exactly
// (elementwise ops) or within rounding of the accumulation order (dot/sum).

// Add_AVX2_F64x4 computes dst = a + b elementwise using AVX2.
func Add_AVX2_F64x4(a, b, dst []float64) {
	n := len(dst)
	i := 0
	for ; i+4 <= n; i += 4 {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		vb := archsimd.LoadFloat64x4Slice(b[i:])
		va.Add(vb).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

// Sub_AVX2_F64x4 computes dst = a - b elementwise using AVX2.
func Sub_AVX2_F64x4(a, b, dst []float64) {
	n := len(dst)
	i := 0
	for ; i+4 <= n; i += 4 {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		vb := archsimd.LoadFloat64x4Slice(b[i:])
		va.Sub(vb).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] - b[i]
	}
}

// Mul_AVX2_F64x4 computes dst = a * b elementwise using AVX2.
func Mul_AVX2_F64x4(a, b, dst []float64) {
	n := len(dst)
	i := 0
	for ; i+4 <= n; i += 4 {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		vb := archsimd.LoadFloat64x4Slice(b[i:])
		va.Mul(vb).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

// Div_AVX2_F64x4 computes dst = a / b elementwise using AVX2.
// VDIVPD follows IEEE-754, so zero divisors produce Inf/NaN like scalar code.
func Div_AVX2_F64x4(a, b, dst []float64) {
	n := len(dst)
	i := 0
	for ; i+4 <= n; i += 4 {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		vb := archsimd.LoadFloat64x4Slice(b[i:])
		va.Div(vb).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] / b[i]
	}
}

// Scale_AVX2_F64x4 computes dst = in * factor using a broadcast register.
func Scale_AVX2_F64x4(in []float64, factor float64, dst []float64) {
	n := len(dst)
	vf := archsimd.BroadcastFloat64x4(factor)
	i := 0
	for ; i+4 <= n; i += 4 {
		archsimd.LoadFloat64x4Slice(in[i:]).Mul(vf).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = in[i] * factor
	}
}

// Dot_AVX2_F64x4 computes the dot product of two float64 vectors using AVX2,
// processing 4 elements at a time into a vector accumulator.
func Dot_AVX2_F64x4(a, b []float64) float64 {
	n := len(a)
	sum := archsimd.BroadcastFloat64x4(0.0)

	i := 0
	for ; i+4 <= n; i += 4 {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		vb := archsimd.LoadFloat64x4Slice(b[i:])
		sum = sum.Add(va.Mul(vb))
	}

	// Horizontal reduction: sum all 4 lanes
	var temp [4]float64
	sum.StoreSlice(temp[:])
	result := temp[0] + temp[1] + temp[2] + temp[3]

	// Handle tail elements with scalar code
	for ; i < n; i++ {
		result += a[i] * b[i]
	}

	return result
}

// Sum_AVX2_F64x4 sums a float64 vector using AVX2.
func Sum_AVX2_F64x4(v []float64) float64 {
	n := len(v)
	sum := archsimd.BroadcastFloat64x4(0.0)

	i := 0
	for ; i+4 <= n; i += 4 {
		sum = sum.Add(archsimd.LoadFloat64x4Slice(v[i:]))
	}

	var temp [4]float64
	sum.StoreSlice(temp[:])
	result := temp[0] + temp[1] + temp[2] + temp[3]

	for ; i < n; i++ {
		result += v[i]
	}

	return result
}
