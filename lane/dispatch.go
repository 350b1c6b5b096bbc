package lane

import (
	"os"
	"strconv"
)

// Level represents the SIMD instruction set selected at init.
type Level int

const (
	// LevelScalar indicates no SIMD, pure Go baseline.
	LevelScalar Level = iota

	// LevelSSE2 indicates SSE2 instructions (x86-64 baseline).
	LevelSSE2

	// LevelAVX2 indicates AVX2 instructions (256-bit SIMD).
	LevelAVX2

	// LevelAVX512 indicates AVX-512 instructions (512-bit SIMD).
	LevelAVX512

	// LevelNEON indicates ARM NEON instructions (128-bit SIMD).
	LevelNEON
)

// String returns a human-readable name for the dispatch level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// maxSlots is the widest register this package models: 8 float64 slots
// for a 512-bit AVX-512 register. Lane values are sized for it regardless
// of the active width.
const maxSlots = 8

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel Level

// currentWidth is the SIMD register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// currentCount is the number of float64 slots per lane (currentWidth / 8).
var currentCount int

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// Width returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func Width() int {
	return currentWidth
}

// Count returns the number of float64 elements per lane with the current
// register width. For example: 4 with AVX2 (32 bytes / 8).
func Count() int {
	return currentCount
}

// NoSimdEnv checks if the ARRAYOPS_NO_SIMD environment variable is set.
// When set, the scalar fallback is used regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("ARRAYOPS_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
