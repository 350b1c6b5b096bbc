//go:build amd64 && goexperiment.simd

package vec

import (
	"simd/archsimd"
)

// AVX-512 kernels over 512-bit registers: 8 float64 elements per lane.

// Add_AVX512_F64x8 computes dst = a + b elementwise using AVX-512.
func Add_AVX512_F64x8(a, b, dst []float64) {
	n := len(dst)
	i := 0
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat64x8Slice(a[i:])
		vb := archsimd.LoadFloat64x8Slice(b[i:])
		va.Add(vb).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

// Sub_AVX512_F64x8 computes dst = a - b elementwise using AVX-512.
func Sub_AVX512_F64x8(a, b, dst []float64) {
	n := len(dst)
	i := 0
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat64x8Slice(a[i:])
		vb := archsimd.LoadFloat64x8Slice(b[i:])
		va.Sub(vb).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] - b[i]
	}
}

// Mul_AVX512_F64x8 computes dst = a * b elementwise using AVX-512.
func Mul_AVX512_F64x8(a, b, dst []float64) {
	n := len(dst)
	i := 0
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat64x8Slice(a[i:])
		vb := archsimd.LoadFloat64x8Slice(b[i:])
		va.Mul(vb).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

// Div_AVX512_F64x8 computes dst = a / b elementwise using AVX-512.
func Div_AVX512_F64x8(a, b, dst []float64) {
	n := len(dst)
	i := 0
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat64x8Slice(a[i:])
		vb := archsimd.LoadFloat64x8Slice(b[i:])
		va.Div(vb).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] / b[i]
	}
}

// Scale_AVX512_F64x8 computes dst = in * factor using a broadcast register.
func Scale_AVX512_F64x8(in []float64, factor float64, dst []float64) {
	n := len(dst)
	vf := archsimd.BroadcastFloat64x8(factor)
	i := 0
	for ; i+8 <= n; i += 8 {
		archsimd.LoadFloat64x8Slice(in[i:]).Mul(vf).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = in[i] * factor
	}
}

// Dot_AVX512_F64x8 computes the dot product of two float64 vectors using
// AVX-512, processing 8 elements at a time into a vector accumulator.
func Dot_AVX512_F64x8(a, b []float64) float64 {
	n := len(a)
	sum := archsimd.BroadcastFloat64x8(0.0)

	i := 0
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat64x8Slice(a[i:])
		vb := archsimd.LoadFloat64x8Slice(b[i:])
		sum = sum.Add(va.Mul(vb))
	}

	// Horizontal reduction: sum all 8 lanes
	var temp [8]float64
	sum.StoreSlice(temp[:])
	result := temp[0] + temp[1] + temp[2] + temp[3] + temp[4] + temp[5] + temp[6] + temp[7]

	// Handle tail elements with scalar code
	for ; i < n; i++ {
		result += a[i] * b[i]
	}

	return result
}

// Sum_AVX512_F64x8 sums a float64 vector using AVX-512.
func Sum_AVX512_F64x8(v []float64) float64 {
	n := len(v)
	sum := archsimd.BroadcastFloat64x8(0.0)

	i := 0
	for ; i+8 <= n; i += 8 {
		sum = sum.Add(archsimd.LoadFloat64x8Slice(v[i:]))
	}

	var temp [8]float64
	sum.StoreSlice(temp[:])
	result := temp[0] + temp[1] + temp[2] + temp[3] + temp[4] + temp[5] + temp[6] + temp[7]

	for ; i < n; i++ {
		result += v[i]
	}

	return result
}
