package curve

import (
	"github.com/san-kum/springlab/internal/spring"
)

const (
	DefaultSteps      = 200
	DefaultSpanFactor = 2.0
)

// Point is one sample of the step response.
type Point struct {
	T float64
	Y float64
}

// Span is how long to sample a spring of the given duration: the clamped
// duration in seconds times factor.
func Span(durationMillis, factor float64) float64 {
	return spring.DurationSeconds(durationMillis) * factor
}

// Sample evaluates p at steps+1 evenly spaced times from 0 to span inclusive.
func Sample(p spring.Params, span float64, steps int) []Point {
	if steps < 1 {
		steps = 1
	}

	points := make([]Point, steps+1)
	for i := range points {
		t := span * float64(i) / float64(steps)
		points[i] = Point{T: t, Y: p.At(t)}
	}
	return points
}

// Values projects points onto their displacements.
func Values(points []Point) []float64 {
	ys := make([]float64, len(points))
	for i, p := range points {
		ys[i] = p.Y
	}
	return ys
}

// Times projects points onto their sample times.
func Times(points []Point) []float64 {
	ts := make([]float64, len(points))
	for i, p := range points {
		ts[i] = p.T
	}
	return ts
}
