//go:build !amd64 || !goexperiment.simd

package vec

// Portable bindings for builds without hardware SIMD. The lane package
// still picks the register width at init, so the loops below run with the
// detected lane count even though each slot is computed in pure Go.

func addImpl(a, b, dst []float64) { baseBinary(opAdd, a, b, dst) }
func subImpl(a, b, dst []float64) { baseBinary(opSub, a, b, dst) }
func mulImpl(a, b, dst []float64) { baseBinary(opMul, a, b, dst) }
func divImpl(a, b, dst []float64) { baseBinary(opDiv, a, b, dst) }

func scaleImpl(in []float64, factor float64, dst []float64) {
	baseScale(in, factor, dst)
}

func dotImpl(a, b []float64) float64 { return baseDot(a, b) }

func sumImpl(v []float64) float64 { return baseSum(v) }
