//go:build amd64 && goexperiment.simd

package vec

import "github.com/aslang-project/go-arrayops/lane"

// Hardware SIMD bindings. The lane package's dispatch is the single source
// of truth: it detects AVX-512/AVX2 via archsimd and honors the
// ARRAYOPS_NO_SIMD override, so forcing scalar mode also forces the
// portable kernels here. CPUs below AVX2 take the portable path as well.

func addImpl(a, b, dst []float64) {
	switch lane.CurrentLevel() {
	case lane.LevelAVX512:
		Add_AVX512_F64x8(a, b, dst)
	case lane.LevelAVX2:
		Add_AVX2_F64x4(a, b, dst)
	default:
		baseBinary(opAdd, a, b, dst)
	}
}

func subImpl(a, b, dst []float64) {
	switch lane.CurrentLevel() {
	case lane.LevelAVX512:
		Sub_AVX512_F64x8(a, b, dst)
	case lane.LevelAVX2:
		Sub_AVX2_F64x4(a, b, dst)
	default:
		baseBinary(opSub, a, b, dst)
	}
}

func mulImpl(a, b, dst []float64) {
	switch lane.CurrentLevel() {
	case lane.LevelAVX512:
		Mul_AVX512_F64x8(a, b, dst)
	case lane.LevelAVX2:
		Mul_AVX2_F64x4(a, b, dst)
	default:
		baseBinary(opMul, a, b, dst)
	}
}

func divImpl(a, b, dst []float64) {
	switch lane.CurrentLevel() {
	case lane.LevelAVX512:
		Div_AVX512_F64x8(a, b, dst)
	case lane.LevelAVX2:
		Div_AVX2_F64x4(a, b, dst)
	default:
		baseBinary(opDiv, a, b, dst)
	}
}

func scaleImpl(in []float64, factor float64, dst []float64) {
	switch lane.CurrentLevel() {
	case lane.LevelAVX512:
		Scale_AVX512_F64x8(in, factor, dst)
	case lane.LevelAVX2:
		Scale_AVX2_F64x4(in, factor, dst)
	default:
		baseScale(in, factor, dst)
	}
}

func dotImpl(a, b []float64) float64 {
	switch lane.CurrentLevel() {
	case lane.LevelAVX512:
		return Dot_AVX512_F64x8(a, b)
	case lane.LevelAVX2:
		return Dot_AVX2_F64x4(a, b)
	default:
		return baseDot(a, b)
	}
}

func sumImpl(v []float64) float64 {
	switch lane.CurrentLevel() {
	case lane.LevelAVX512:
		return Sum_AVX512_F64x8(v)
	case lane.LevelAVX2:
		return Sum_AVX2_F64x4(v)
	default:
		return baseSum(v)
	}
}
