package vec

import (
	"math"
	"math/rand"
	"testing"

	"github.com/viterin/vek"

	"github.com/aslang-project/go-arrayops/lane"
)

// kernelSizes covers empty inputs, sub-lane sizes, exact lane multiples,
// and off-by-one around large power-of-two sizes.
var kernelSizes = []int{0, 1, 2, 3, 4, 5, 7, 16, 1023, 1024, 1025}

func randomSlice(rng *rand.Rand, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = rng.Float64()*200 - 100
	}
	return s
}

// relDiff returns |a-b| / max(|a|,|b|), 0 when bit-equal.
func relDiff(a, b float64) float64 {
	if a == b {
		return 0
	}
	m := math.Max(math.Abs(a), math.Abs(b))
	if m == 0 {
		return 0
	}
	return math.Abs(a-b) / m
}

func TestElementwiseMatchesScalar(t *testing.T) {
	ops := []struct {
		name   string
		fn     func(a, b, dst []float64) error
		scalar func(x, y float64) float64
	}{
		{"add", Add, func(x, y float64) float64 { return x + y }},
		{"sub", Sub, func(x, y float64) float64 { return x - y }},
		{"mul", Mul, func(x, y float64) float64 { return x * y }},
		{"div", Div, func(x, y float64) float64 { return x / y }},
	}

	rng := rand.New(rand.NewSource(42))
	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			for _, n := range kernelSizes {
				a := randomSlice(rng, n)
				b := randomSlice(rng, n)
				dst := make([]float64, n)

				if err := op.fn(a, b, dst); err != nil {
					t.Fatalf("n=%d: unexpected error: %v", n, err)
				}

				// Elementwise ops reorder nothing, so results are bit-exact
				for i := 0; i < n; i++ {
					want := op.scalar(a[i], b[i])
					if dst[i] != want {
						t.Fatalf("n=%d index %d: got %v, want %v", n, i, dst[i], want)
					}
				}
			}
		})
	}
}

func TestScaleMatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range kernelSizes {
		in := randomSlice(rng, n)
		factor := rng.Float64()*10 - 5
		dst := make([]float64, n)

		if err := Scale(in, factor, dst); err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		for i := 0; i < n; i++ {
			if want := in[i] * factor; dst[i] != want {
				t.Fatalf("n=%d index %d: got %v, want %v", n, i, dst[i], want)
			}
		}
	}
}

func TestDotWithinToleranceOfScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for _, n := range kernelSizes {
		a := randomSlice(rng, n)
		b := randomSlice(rng, n)

		got, err := Dot(a, b)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}

		var want float64
		for i := 0; i < n; i++ {
			want += a[i] * b[i]
		}

		// Lane-interleaved accumulation reorders the sum, so compare with
		// a relative tolerance rather than exact equality.
		if relDiff(got, want) > 1e-9 {
			t.Errorf("n=%d: got %v, scalar reference %v", n, got, want)
		}
	}
}

func TestSumMeanMatchScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, n := range kernelSizes {
		v := randomSlice(rng, n)

		var want float64
		for _, x := range v {
			want += x
		}

		if got := Sum(v); relDiff(got, want) > 1e-9 {
			t.Errorf("Sum n=%d: got %v, scalar reference %v", n, got, want)
		}
		if n > 0 {
			if got := Mean(v); relDiff(got, want/float64(n)) > 1e-9 {
				t.Errorf("Mean n=%d: got %v, want %v", n, got, want/float64(n))
			}
		}
	}

	if got := Sum(nil); got != 0 {
		t.Errorf("Sum(nil) = %v, want 0", got)
	}
	if got := Mean(nil); !math.IsNaN(got) {
		t.Errorf("Mean(nil) = %v, want NaN", got)
	}
}

func TestAgreesWithVek(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for _, n := range []int{3, 16, 1023, 1024} {
		a := randomSlice(rng, n)
		b := randomSlice(rng, n)

		got, err := Dot(a, b)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		if want := vek.Dot(a, b); relDiff(got, want) > 1e-9 {
			t.Errorf("Dot n=%d: got %v, vek %v", n, got, want)
		}

		dst := make([]float64, n)
		if err := Add(a, b, dst); err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		want := vek.Add(a, b)
		for i := range dst {
			if dst[i] != want[i] {
				t.Errorf("Add n=%d index %d: got %v, vek %v", n, i, dst[i], want[i])
			}
		}
	}
}

func TestKernelsMatchPortableFallback(t *testing.T) {
	// Whichever binding dispatch selected, results must agree with the
	// portable lane kernels: bit-exact for elementwise ops, within the
	// accumulation tolerance for reductions.
	rng := rand.New(rand.NewSource(64))
	for _, n := range []int{0, 5, 64, 1023} {
		a := randomSlice(rng, n)
		b := randomSlice(rng, n)
		got := make([]float64, n)
		want := make([]float64, n)

		ops := []struct {
			name string
			fn   func(a, b, dst []float64) error
			op   binOp
		}{
			{"add", Add, opAdd},
			{"sub", Sub, opSub},
			{"mul", Mul, opMul},
			{"div", Div, opDiv},
		}
		for _, op := range ops {
			if err := op.fn(a, b, got); err != nil {
				t.Fatalf("%s n=%d: unexpected error: %v", op.name, n, err)
			}
			baseBinary(op.op, a, b, want)
			for i := 0; i < n; i++ {
				if got[i] != want[i] {
					t.Fatalf("%s n=%d index %d: got %v, portable %v",
						op.name, n, i, got[i], want[i])
				}
			}
		}

		if err := Scale(a, 1.75, got); err != nil {
			t.Fatalf("scale n=%d: unexpected error: %v", n, err)
		}
		baseScale(a, 1.75, want)
		for i := 0; i < n; i++ {
			if got[i] != want[i] {
				t.Fatalf("scale n=%d index %d: got %v, portable %v", n, i, got[i], want[i])
			}
		}

		dot, err := Dot(a, b)
		if err != nil {
			t.Fatalf("dot n=%d: unexpected error: %v", n, err)
		}
		if want := baseDot(a, b); relDiff(dot, want) > 1e-9 {
			t.Errorf("dot n=%d: got %v, portable %v", n, dot, want)
		}
		if got, want := Sum(a), baseSum(a); relDiff(got, want) > 1e-9 {
			t.Errorf("sum n=%d: got %v, portable %v", n, got, want)
		}
	}
}

func TestDivisionByZeroSemantics(t *testing.T) {
	a := []float64{1.5, -2.0, 0.0, 42.0, -0.5}
	zeros := make([]float64, len(a))
	dst := make([]float64, len(a))

	if err := Div(a, zeros, dst); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range a {
		want := a[i] / 0.0
		// Compare bit patterns so NaN == NaN
		if math.Float64bits(dst[i]) != math.Float64bits(want) {
			t.Errorf("index %d: %v / 0 = %v, want %v", i, a[i], dst[i], want)
		}
	}
	if !math.IsInf(dst[0], 1) || !math.IsInf(dst[1], -1) || !math.IsNaN(dst[2]) {
		t.Errorf("IEEE signs wrong: got %v", dst[:3])
	}
}

func TestBoundaryLaneWidths(t *testing.T) {
	w := lane.Count()
	rng := rand.New(rand.NewSource(21))

	// Exactly one lane: zero remainder elements.
	// One past a lane: exactly one remainder element.
	for _, n := range []int{w, w + 1} {
		a := randomSlice(rng, n)
		b := randomSlice(rng, n)
		dst := make([]float64, n)

		if err := Add(a, b, dst); err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		for i := 0; i < n; i++ {
			if want := a[i] + b[i]; dst[i] != want {
				t.Errorf("n=%d index %d: got %v, want %v", n, i, dst[i], want)
			}
		}
	}
}

func TestEmptyInputs(t *testing.T) {
	if err := Add(nil, nil, nil); err != nil {
		t.Errorf("Add(nil, nil, nil): %v", err)
	}
	if err := Scale(nil, 2.0, nil); err != nil {
		t.Errorf("Scale(nil): %v", err)
	}
	got, err := Dot(nil, nil)
	if err != nil {
		t.Errorf("Dot(nil, nil): %v", err)
	}
	if got != 0 {
		t.Errorf("Dot(nil, nil) = %v, want 0", got)
	}
}

func TestInputsNotMutated(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	a := randomSlice(rng, 37)
	b := randomSlice(rng, 37)
	aCopy := append([]float64(nil), a...)
	bCopy := append([]float64(nil), b...)
	dst := make([]float64, 37)

	if err := Mul(a, b, dst); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Dot(a, b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range a {
		if a[i] != aCopy[i] || b[i] != bCopy[i] {
			t.Fatalf("inputs mutated at index %d", i)
		}
	}
}

func TestNoWritesBeyondInputLength(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	n := 10
	a := randomSlice(rng, n)
	b := randomSlice(rng, n)

	const sentinel = -12345.0
	dst := make([]float64, n+6)
	for i := range dst {
		dst[i] = sentinel
	}

	if err := Add(a, b, dst); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := n; i < len(dst); i++ {
		if dst[i] != sentinel {
			t.Errorf("dst[%d] overwritten: %v", i, dst[i])
		}
	}
}
