// Copyright 2026 The go-arrayops Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vec

import "fmt"

// checkBinary validates the shape contract for binary elementwise
// operations: equal input lengths and an output with enough capacity.
func checkBinary(a, b, dst []float64) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: len(a)=%d len(b)=%d", ErrShapeMismatch, len(a), len(b))
	}
	if len(dst) < len(a) {
		return fmt.Errorf("%w: len(dst)=%d, need %d", ErrShortOutput, len(dst), len(a))
	}
	return nil
}

// Add computes dst[i] = a[i] + b[i] for all i.
// Inputs must have equal length and dst must be at least as long.
//
// Example:
//
//	a := []float64{1, 2, 3}
//	b := []float64{10, 20, 30}
//	dst := make([]float64, 3)
//	_ = vec.Add(a, b, dst) // dst = [11, 22, 33]
func Add(a, b, dst []float64) error {
	if err := checkBinary(a, b, dst); err != nil {
		return err
	}
	addImpl(a, b, dst[:len(a)])
	return nil
}

// Sub computes dst[i] = a[i] - b[i] for all i.
// Inputs must have equal length and dst must be at least as long.
func Sub(a, b, dst []float64) error {
	if err := checkBinary(a, b, dst); err != nil {
		return err
	}
	subImpl(a, b, dst[:len(a)])
	return nil
}

// Mul computes dst[i] = a[i] * b[i] for all i.
// Inputs must have equal length and dst must be at least as long.
func Mul(a, b, dst []float64) error {
	if err := checkBinary(a, b, dst); err != nil {
		return err
	}
	mulImpl(a, b, dst[:len(a)])
	return nil
}

// Div computes dst[i] = a[i] / b[i] for all i.
// Division by zero is not an error: the affected element becomes +Inf,
// -Inf, or NaN per IEEE-754, exactly as scalar division would.
func Div(a, b, dst []float64) error {
	if err := checkBinary(a, b, dst); err != nil {
		return err
	}
	divImpl(a, b, dst[:len(a)])
	return nil
}

// Scale computes dst[i] = in[i] * factor for all i.
// dst must be at least as long as in.
func Scale(in []float64, factor float64, dst []float64) error {
	if len(dst) < len(in) {
		return fmt.Errorf("%w: len(dst)=%d, need %d", ErrShortOutput, len(dst), len(in))
	}
	scaleImpl(in, factor, dst[:len(in)])
	return nil
}

// Dot computes the dot product Σ a[i]*b[i].
// Inputs must have equal length; empty inputs yield 0.
//
// The lanes accumulate interleaved partial sums, so rounding can differ
// from a left-to-right scalar sum by a few ULP on large inputs.
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: len(a)=%d len(b)=%d", ErrShapeMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}
	return dotImpl(a, b), nil
}

// Sum returns Σ v[i], 0 for an empty slice.
// Like Dot, the summation order is lane-interleaved.
func Sum(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return sumImpl(v)
}

// Mean returns the arithmetic mean of v, NaN for an empty slice.
func Mean(v []float64) float64 {
	return Sum(v) / float64(len(v))
}

// MatrixAdd adds two matrices given in flattened row-major form.
// It is defined as vector addition over the flattened buffers and delegates
// directly to Add; callers flatten 2-D shapes before invocation.
func MatrixAdd(a, b, dst []float64) error {
	return Add(a, b, dst)
}
