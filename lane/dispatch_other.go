//go:build !amd64 && !arm64

package lane

func init() {
	// Other architectures fall back to scalar mode for now.
	// Future implementations may add:
	// - wasm: SIMD128 support
	// - riscv64: Vector extension support

	currentLevel = LevelScalar
	currentWidth = 16 // Use 16-byte lanes even in scalar mode for consistency
	currentCount = 2
}
