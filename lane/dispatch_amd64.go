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

//go:build amd64 && !goexperiment.simd

package lane

import "golang.org/x/sys/cpu"

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	// Without GOEXPERIMENT=simd the lane loops are pure Go, but the lane
	// count still follows the widest register the CPU offers: wider lanes
	// give the compiler unrolled fixed-count inner loops to vectorize.
	switch {
	case cpu.X86.HasAVX512:
		currentLevel = LevelAVX512
		currentWidth = 64
	case cpu.X86.HasAVX2:
		currentLevel = LevelAVX2
		currentWidth = 32
	default:
		// SSE2 is baseline for amd64
		currentLevel = LevelSSE2
		currentWidth = 16
	}
	currentCount = currentWidth / 8
}

func setScalarMode() {
	currentLevel = LevelScalar
	currentWidth = 16 // Use 16-byte lanes even in scalar mode for consistency
	currentCount = 2
}
