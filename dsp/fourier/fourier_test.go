package fourier

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-contour/internal/testutil"
)

func naiveDFT(x []float64) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := range out {
		var sum complex128
		for i, v := range x {
			arg := -2 * math.Pi * float64(k) * float64(i) / float64(n)
			sum += complex(v, 0) * cmplx.Exp(complex(0, arg))
		}
		out[k] = sum
	}
	return out
}

func TestTransformMatchesNaiveDFT(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 8, 64, 100, 200} {
		x := testutil.DeterministicNoise(int64(n), 5, n)

		got, err := Transform(x)
		if err != nil {
			t.Fatalf("n=%d: Transform error: %v", n, err)
		}
		testutil.RequireBinsNearlyEqual(t, got, naiveDFT(x), 1e-9)
	}
}

func TestTransformConjugateSymmetry(t *testing.T) {
	for _, n := range []int{16, 25} {
		x := testutil.DeterministicNoise(3, 1, n)
		coeffs, err := Transform(x)
		if err != nil {
			t.Fatalf("Transform error: %v", err)
		}
		for k := 1; k < n; k++ {
			if cmplx.Abs(coeffs[k]-cmplx.Conj(coeffs[n-k])) > 1e-9 {
				t.Fatalf("n=%d: X[%d]=%v is not conj of X[%d]=%v", n, k, coeffs[k], n-k, coeffs[n-k])
			}
		}
	}
}

func TestTransformEmpty(t *testing.T) {
	if _, err := Transform(nil); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestTransformDoesNotModifyInput(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	orig := append([]float64(nil), x...)
	if _, err := Transform(x); err != nil {
		t.Fatalf("Transform error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, x, orig, 0)
}

func TestSampleAngles(t *testing.T) {
	got := SampleAngles(4)
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2}, 1e-15)

	if SampleAngles(0) != nil {
		t.Fatal("expected nil for n=0")
	}
}

func TestReconstructRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 5, 8, 31, 64, 200} {
		x := testutil.DeterministicNoise(int64(10+n), 3, n)
		got, err := Approximate(x, n)
		if err != nil {
			t.Fatalf("n=%d: Approximate error: %v", n, err)
		}
		testutil.RequireSliceNearlyEqual(t, got, x, 1e-9)
	}
}

func TestReconstructSingleTermIsMean(t *testing.T) {
	x := testutil.DeterministicNoise(42, 2, 37)
	mean := 0.0
	for _, v := range x {
		mean += v
	}
	mean /= float64(len(x))

	got, err := Approximate(x, 1)
	if err != nil {
		t.Fatalf("Approximate error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, testutil.DC(mean, len(x)), 1e-12)
}

func TestReconstructErrorNonIncreasing(t *testing.T) {
	for _, n := range []int{32, 45} {
		x := testutil.DeterministicNoise(int64(n), 1, n)
		coeffs, err := Transform(x)
		if err != nil {
			t.Fatalf("Transform error: %v", err)
		}
		angles := SampleAngles(n)

		prev := math.Inf(1)
		for terms := 1; terms <= n; terms++ {
			y, err := Reconstruct(angles, coeffs, terms)
			if err != nil {
				t.Fatalf("Reconstruct(%d) error: %v", terms, err)
			}
			sse := 0.0
			for i := range x {
				d := y[i] - x[i]
				sse += d * d
			}
			if sse > prev+1e-9 {
				t.Fatalf("n=%d terms=%d: error increased %g -> %g", n, terms, prev, sse)
			}
			prev = sse
		}
		if prev > 1e-12 {
			t.Fatalf("n=%d: full reconstruction error too large: %g", n, prev)
		}
	}
}

func TestReconstructPeriodFour(t *testing.T) {
	x := []float64{0, 1, 0, -1}
	got, err := Approximate(x, 2)
	if err != nil {
		t.Fatalf("Approximate error: %v", err)
	}

	mae := 0.0
	for i := range x {
		mae += math.Abs(got[i] - x[i])
	}
	mae /= float64(len(x))
	if mae > 1e-9 {
		t.Fatalf("mean abs error too large: %g (got %v)", mae, got)
	}
}

func TestReconstructMatchesDoubledHarmonicFormula(t *testing.T) {
	// Below n/2 every harmonic carries weight 2.
	n := 200
	x := testutil.Harmonic(3, 1, n)
	coeffs, err := Transform(x)
	if err != nil {
		t.Fatalf("Transform error: %v", err)
	}
	angles := SampleAngles(n)
	got, err := Reconstruct(angles, coeffs, 50)
	if err != nil {
		t.Fatalf("Reconstruct error: %v", err)
	}

	want := make([]float64, n)
	for i, ti := range angles {
		want[i] = real(coeffs[0]) / float64(n)
		for k := 1; k < 50; k++ {
			ak := real(coeffs[k]) / float64(n)
			bk := imag(coeffs[k]) / float64(n)
			want[i] += 2 * (ak*math.Cos(float64(k)*ti) - bk*math.Sin(float64(k)*ti))
		}
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
	testutil.RequireSliceNearlyEqual(t, got, x, 1e-9)
}

func TestReconstructValidation(t *testing.T) {
	coeffs := []complex128{1, 2, 3}
	angles := SampleAngles(3)

	tests := []struct {
		name   string
		coeffs []complex128
		terms  int
	}{
		{"empty coefficients", nil, 1},
		{"zero terms", coeffs, 0},
		{"too many terms", coeffs, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Reconstruct(angles, tt.coeffs, tt.terms); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestHarmonicWeight(t *testing.T) {
	tests := []struct {
		k, n int
		want float64
	}{
		{1, 4, 2},
		{2, 4, 1},
		{3, 4, 0},
		{2, 5, 2},
		{3, 5, 0},
	}
	for _, tt := range tests {
		if got := harmonicWeight(tt.k, tt.n); got != tt.want {
			t.Errorf("harmonicWeight(%d, %d) = %v, want %v", tt.k, tt.n, got, tt.want)
		}
	}
}
