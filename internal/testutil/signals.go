package testutil

import (
	"math"
	"math/rand"
)

// Harmonic returns amplitude*sin(2*pi*cycles*i/n) for i in [0, n).
func Harmonic(cycles, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi * cycles / float64(n)
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued sequence.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ellipse samples n points of an axis-aligned ellipse centred at (cx, cy).
// The first point is repeated at the end when closed is true, the way GeoJSON
// rings are written.
func Ellipse(n int, cx, cy, rx, ry float64, closed bool) (x, y []float64) {
	size := n
	if closed {
		size++
	}
	x = make([]float64, size)
	y = make([]float64, size)
	for i := 0; i < size; i++ {
		theta := 2 * math.Pi * float64(i%n) / float64(n)
		x[i] = cx + rx*math.Cos(theta)
		y[i] = cy + ry*math.Sin(theta)
	}
	return x, y
}
