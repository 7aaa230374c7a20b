package boundary

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Curve is an ordered sequence of (X[i], Y[i]) points. Order defines the
// traversal direction.
type Curve struct {
	X []float64
	Y []float64
}

// Len returns the number of points.
func (c Curve) Len() int { return len(c.X) }

// Validate reports whether c holds at least one point, has matching X/Y
// lengths and only finite coordinates.
func (c Curve) Validate() error {
	if len(c.X) != len(c.Y) {
		return fmt.Errorf("curve x/y length mismatch: %d != %d", len(c.X), len(c.Y))
	}
	if len(c.X) == 0 {
		return fmt.Errorf("curve must have at least 1 point")
	}
	for i := range c.X {
		if !isFinite(c.X[i]) || !isFinite(c.Y[i]) {
			return fmt.Errorf("curve point %d is not finite: (%v, %v)", i, c.X[i], c.Y[i])
		}
	}
	return nil
}

// FromRing converts an orb ring into a Curve, keeping the closing point.
func FromRing(r orb.Ring) Curve {
	c := Curve{
		X: make([]float64, len(r)),
		Y: make([]float64, len(r)),
	}
	for i, p := range r {
		c.X[i] = p.X()
		c.Y[i] = p.Y()
	}
	return c
}

// linspace returns n evenly spaced values over [start, stop], endpoints
// included.
func linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
