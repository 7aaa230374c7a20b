package spectrum

import (
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// The kernel is SIMD-accelerated through algo-vecmath when available.
// Scratch buffers are pooled, so in steady state this allocates only the
// output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Phase returns arg(X[k]) = atan2(imag, real) for each bin in radians.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = math.Atan2(imag(c), real(c))
	}
	return out
}

// NormalizedMagnitude returns |X[k]|/n for the first count bins, where n is
// the full transform length len(in). This is the amplitude of each term of
// an unnormalized DFT.
func NormalizedMagnitude(in []complex128, count int) ([]float64, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("normalized magnitude requires non-empty bins")
	}
	if count < 0 || count > len(in) {
		return nil, fmt.Errorf("normalized magnitude count must be in [0, %d]: %d", len(in), count)
	}

	out := Magnitude(in[:count])
	invN := 1 / float64(len(in))
	for i := range out {
		out[i] *= invN
	}
	return out, nil
}
