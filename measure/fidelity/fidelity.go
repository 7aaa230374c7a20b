// Package fidelity measures how closely an approximated sequence follows the
// original it was derived from.
package fidelity

import (
	"fmt"
	"math"
)

// Stats holds pointwise error statistics between two sequences.
type Stats struct {
	Length       int
	SquaredError float64 // sum of squared differences
	MeanAbsError float64
	RMSError     float64
	MaxAbsError  float64
}

// Compare returns error statistics of approx against orig. Both sequences
// must have the same length.
func Compare(orig, approx []float64) (Stats, error) {
	if len(orig) != len(approx) {
		return Stats{}, fmt.Errorf("fidelity length mismatch: %d != %d", len(orig), len(approx))
	}
	if len(orig) == 0 {
		return Stats{}, nil
	}

	var sumSq, sumAbs, maxAbs float64
	for i := range orig {
		d := approx[i] - orig[i]
		a := math.Abs(d)
		sumSq += d * d
		sumAbs += a
		if a > maxAbs {
			maxAbs = a
		}
	}

	n := float64(len(orig))
	return Stats{
		Length:       len(orig),
		SquaredError: sumSq,
		MeanAbsError: sumAbs / n,
		RMSError:     math.Sqrt(sumSq / n),
		MaxAbsError:  maxAbs,
	}, nil
}

// SquaredError returns the sum of squared differences, or +Inf when the
// lengths differ.
func SquaredError(orig, approx []float64) float64 {
	s, err := Compare(orig, approx)
	if err != nil {
		return math.Inf(1)
	}
	return s.SquaredError
}

// MeanAbsError returns the mean absolute difference, or +Inf when the
// lengths differ.
func MeanAbsError(orig, approx []float64) float64 {
	s, err := Compare(orig, approx)
	if err != nil {
		return math.Inf(1)
	}
	return s.MeanAbsError
}
