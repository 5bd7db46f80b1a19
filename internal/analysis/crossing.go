package analysis

import (
	"github.com/san-kum/springlab/internal/curve"
)

// Crossings returns the interpolated times at which y passes through level.
func Crossings(points []curve.Point, level float64) []float64 {
	crossings := make([]float64, 0)
	for i := 1; i < len(points); i++ {
		prev, curr := points[i-1].Y-level, points[i].Y-level
		if prev == 0 || (prev < 0) == (curr < 0) {
			continue
		}

		frac := prev / (prev - curr)
		t0, t1 := points[i-1].T, points[i].T
		crossings = append(crossings, t0+frac*(t1-t0))
	}
	return crossings
}

// CrossingFrequency measures the damped frequency from successive target
// crossings, which sit exactly half a damped period apart.
func CrossingFrequency(points []curve.Point) (float64, error) {
	if len(points) < minSamples {
		return 0, ErrTooFewSamples
	}

	c := Crossings(points, 1)
	if len(c) < 2 {
		return 0, ErrNoOscillation
	}

	halfPeriods := float64(len(c) - 1)
	return halfPeriods / (2 * (c[len(c)-1] - c[0])), nil
}
