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

package lane

// This file provides the pure Go implementations of all lane operations.
// They model one SIMD register of float64 values; on hardware SIMD builds
// the kernel engine bypasses them in favor of archsimd vector types, and
// they remain the portable fallback for every other target.

// Lane holds one SIMD register's worth of float64 elements. Only the first
// Count() slots are meaningful; the backing array is sized for the widest
// supported register so Lane values never allocate.
//
// Lane instances should not be created directly; use Load, Broadcast, or
// Zero instead.
type Lane struct {
	s [maxSlots]float64
}

// Load creates a lane from the first Count() elements of src.
// The caller must ensure len(src) >= Count(); the kernel engine only calls
// Load for whole-lane offsets.
func Load(src []float64) Lane {
	var v Lane
	for i := 0; i < currentCount; i++ {
		v.s[i] = src[i]
	}
	return v
}

// LoadPartial creates a lane from up to Count() elements of src.
// Slots beyond len(src) are zero.
func LoadPartial(src []float64) Lane {
	var v Lane
	n := min(len(src), currentCount)
	for i := 0; i < n; i++ {
		v.s[i] = src[i]
	}
	return v
}

// Store writes the lane's Count() elements to dst.
// The caller must ensure len(dst) >= Count().
func Store(v Lane, dst []float64) {
	for i := 0; i < currentCount; i++ {
		dst[i] = v.s[i]
	}
}

// StorePartial writes up to Count() elements of the lane to dst, stopping
// at len(dst).
func StorePartial(v Lane, dst []float64) {
	n := min(len(dst), currentCount)
	for i := 0; i < n; i++ {
		dst[i] = v.s[i]
	}
}

// Broadcast creates a lane with all slots set to the same value.
func Broadcast(value float64) Lane {
	var v Lane
	for i := 0; i < currentCount; i++ {
		v.s[i] = value
	}
	return v
}

// Zero creates a lane with all slots set to zero.
func Zero() Lane {
	return Lane{}
}

// Get returns the value in slot i. It is primarily for tests.
func (v Lane) Get(i int) float64 {
	return v.s[i]
}

// Add performs slot-wise addition.
func Add(a, b Lane) Lane {
	var r Lane
	for i := 0; i < currentCount; i++ {
		r.s[i] = a.s[i] + b.s[i]
	}
	return r
}

// Sub performs slot-wise subtraction.
func Sub(a, b Lane) Lane {
	var r Lane
	for i := 0; i < currentCount; i++ {
		r.s[i] = a.s[i] - b.s[i]
	}
	return r
}

// Mul performs slot-wise multiplication.
func Mul(a, b Lane) Lane {
	var r Lane
	for i := 0; i < currentCount; i++ {
		r.s[i] = a.s[i] * b.s[i]
	}
	return r
}

// Div performs slot-wise division. Division by zero follows IEEE-754:
// the affected slot becomes +Inf, -Inf, or NaN.
func Div(a, b Lane) Lane {
	var r Lane
	for i := 0; i < currentCount; i++ {
		r.s[i] = a.s[i] / b.s[i]
	}
	return r
}

// MulAdd computes a*b + c slot-wise. The multiply and add are separately
// rounded, so each slot is bit-identical to the same expression evaluated
// in scalar code.
func MulAdd(a, b, c Lane) Lane {
	var r Lane
	for i := 0; i < currentCount; i++ {
		r.s[i] = a.s[i]*b.s[i] + c.s[i]
	}
	return r
}

// ReduceSum horizontally sums the lane's Count() slots into a scalar.
func ReduceSum(v Lane) float64 {
	var sum float64
	for i := 0; i < currentCount; i++ {
		sum += v.s[i]
	}
	return sum
}
