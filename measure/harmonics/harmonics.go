package harmonics

import (
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/algo-contour/dsp/spectrum"
)

// DefaultReportTerms is the number of terms listed by default: DC plus the
// first 50 harmonics.
const DefaultReportTerms = 51

// Term describes one DFT bin.
type Term struct {
	Index     int
	Magnitude float64 // |X[k]| / n
	Phase     float64 // atan2(Im X[k], Re X[k]) in radians
}

// Analyze returns the first count terms of coeffs. count is clamped to
// len(coeffs); a non-positive count yields no terms.
func Analyze(coeffs []complex128, count int) ([]Term, error) {
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("harmonics require non-empty coefficients")
	}
	if count <= 0 {
		return nil, nil
	}
	if count > len(coeffs) {
		count = len(coeffs)
	}

	mag, err := spectrum.NormalizedMagnitude(coeffs, count)
	if err != nil {
		return nil, err
	}
	phase := spectrum.Phase(coeffs[:count])

	out := make([]Term, count)
	for k := range out {
		out[k] = Term{Index: k, Magnitude: mag[k], Phase: phase[k]}
	}
	return out, nil
}

// Write prints x and y terms side by side, one block per term. Only the
// indices present in both slices are written.
func Write(w io.Writer, x, y []Term) error {
	count := min(len(x), len(y))
	sep := strings.Repeat("-", 30)

	if _, err := fmt.Fprintf(w, "Fourier Series Coefficients (First %d terms):\n", count); err != nil {
		return fmt.Errorf("harmonics write header: %w", err)
	}
	for k := 0; k < count; k++ {
		if _, err := fmt.Fprintf(w,
			"Term %d:\n  X: Magnitude = %.4f, Phase = %.4f\n  Y: Magnitude = %.4f, Phase = %.4f\n%s\n",
			x[k].Index+1,
			x[k].Magnitude, x[k].Phase,
			y[k].Magnitude, y[k].Phase,
			sep,
		); err != nil {
			return fmt.Errorf("harmonics write term %d: %w", k, err)
		}
	}
	return nil
}
