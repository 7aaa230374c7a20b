package boundary

import "math"

// Parameters of the fallback loop: two turns of a unit circle centred at
// longitude -80 whose centre drifts from latitude 25 to 30.
const (
	DefaultSyntheticPoints = 200

	syntheticLon      = -80.0
	syntheticLatStart = 25.0
	syntheticLatStop  = 30.0
	syntheticRadius   = 1.0
	syntheticTurns    = 2
)

// Synthetic returns the deterministic fallback curve sampled at n points.
// n <= 0 selects DefaultSyntheticPoints.
func Synthetic(n int) Curve {
	if n <= 0 {
		n = DefaultSyntheticPoints
	}
	theta := linspace(0, syntheticTurns*2*math.Pi, n)
	lat := linspace(syntheticLatStart, syntheticLatStop, n)

	c := Curve{
		X: make([]float64, n),
		Y: make([]float64, n),
	}
	for i, th := range theta {
		c.X[i] = syntheticLon + syntheticRadius*math.Cos(th)
		c.Y[i] = lat[i] + syntheticRadius*math.Sin(th)
	}
	return c
}
