package fourier

import (
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/mjibson/go-dsp/fft"
)

// Transform returns the n complex DFT coefficients of the real sequence x.
//
// Power-of-two lengths run through an algo-fft plan; any other length is
// handled by go-dsp's Bluestein-backed real FFT. The input is not modified.
func Transform(x []float64) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, fmt.Errorf("transform requires non-empty input")
	}
	if n == 1 {
		return []complex128{complex(x[0], 0)}, nil
	}

	if !isPowerOf2(n) {
		return fft.FFTReal(x), nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("transform fft plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("transform forward: %w", err)
	}
	return out, nil
}

// SampleAngles returns n evenly spaced angles in [0, 2*pi).
func SampleAngles(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	step := 2 * math.Pi / float64(n)
	for i := range out {
		out[i] = step * float64(i)
	}
	return out
}

// Reconstruct evaluates the truncated Fourier series of coeffs at the angles
// t using the DC term and harmonics 1..terms-1.
//
// terms must be in [1, len(coeffs)].
func Reconstruct(t []float64, coeffs []complex128, terms int) ([]float64, error) {
	n := len(coeffs)
	if n == 0 {
		return nil, fmt.Errorf("reconstruct requires non-empty coefficients")
	}
	if terms < 1 {
		return nil, fmt.Errorf("reconstruct terms must be >= 1: %d", terms)
	}
	if terms > n {
		return nil, fmt.Errorf("reconstruct terms must be <= %d: %d", n, terms)
	}

	invN := 1 / float64(n)
	a0 := real(coeffs[0]) * invN

	out := make([]float64, len(t))
	for i := range out {
		out[i] = a0
	}

	for k := 1; k < terms; k++ {
		w := harmonicWeight(k, n)
		if w == 0 {
			continue
		}
		ak := real(coeffs[k]) * invN
		bk := imag(coeffs[k]) * invN
		fk := float64(k)
		for i, ti := range t {
			out[i] += w * (ak*math.Cos(fk*ti) - bk*math.Sin(fk*ti))
		}
	}
	return out, nil
}

// Approximate transforms x and rebuilds it from the first terms harmonics
// sampled at SampleAngles(len(x)).
func Approximate(x []float64, terms int) ([]float64, error) {
	coeffs, err := Transform(x)
	if err != nil {
		return nil, err
	}
	return Reconstruct(SampleAngles(len(x)), coeffs, terms)
}

// harmonicWeight is 2 for bins with a distinct mirror, 1 for the Nyquist bin
// of an even length, and 0 for the mirrored upper half.
func harmonicWeight(k, n int) float64 {
	switch m := n - k; {
	case k < m:
		return 2
	case k == m:
		return 1
	default:
		return 0
	}
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
