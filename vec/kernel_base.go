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

import "github.com/aslang-project/go-arrayops/lane"

// This file contains the single portable kernel implementation,
// parameterized by operator. It is the fallback for every build without
// hardware SIMD and the reference the archsimd kernels must agree with.
//
// Each kernel processes floor(n/W) whole lanes, W = lane.Count(), then
// completes the n mod W tail with scalar arithmetic. Lane ops and scalar
// ops round identically, so the split point is unobservable in the output.

// binOp selects the operator applied by baseBinary.
type binOp uint8

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
)

func (op binOp) lanes(a, b lane.Lane) lane.Lane {
	switch op {
	case opAdd:
		return lane.Add(a, b)
	case opSub:
		return lane.Sub(a, b)
	case opMul:
		return lane.Mul(a, b)
	default:
		return lane.Div(a, b)
	}
}

func (op binOp) scalar(x, y float64) float64 {
	switch op {
	case opAdd:
		return x + y
	case opSub:
		return x - y
	case opMul:
		return x * y
	default:
		return x / y
	}
}

// baseBinary applies op elementwise. Lengths are validated by the caller:
// len(a) == len(b) == len(dst).
func baseBinary(op binOp, a, b, dst []float64) {
	n := len(dst)
	w := lane.Count()
	i := 0
	for ; i+w <= n; i += w {
		la := lane.Load(a[i:])
		lb := lane.Load(b[i:])
		lane.Store(op.lanes(la, lb), dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = op.scalar(a[i], b[i])
	}
}

// baseScale multiplies every element by factor using a broadcast lane.
// Lengths are validated by the caller: len(in) == len(dst).
func baseScale(in []float64, factor float64, dst []float64) {
	n := len(dst)
	w := lane.Count()
	vf := lane.Broadcast(factor)
	i := 0
	for ; i+w <= n; i += w {
		lane.Store(lane.Mul(lane.Load(in[i:]), vf), dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = in[i] * factor
	}
}

// baseDot accumulates a[i]*b[i] into a lane-wide accumulator, folds it with
// a horizontal sum, then adds the tail products in scalar.
// Lengths are validated by the caller: len(a) == len(b).
func baseDot(a, b []float64) float64 {
	n := len(a)
	w := lane.Count()
	acc := lane.Zero()
	i := 0
	for ; i+w <= n; i += w {
		acc = lane.MulAdd(lane.Load(a[i:]), lane.Load(b[i:]), acc)
	}
	sum := lane.ReduceSum(acc)
	for ; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// baseSum is baseDot's machinery with the multiply dropped.
func baseSum(v []float64) float64 {
	n := len(v)
	w := lane.Count()
	acc := lane.Zero()
	i := 0
	for ; i+w <= n; i += w {
		acc = lane.Add(acc, lane.Load(v[i:]))
	}
	sum := lane.ReduceSum(acc)
	for ; i < n; i++ {
		sum += v[i]
	}
	return sum
}
