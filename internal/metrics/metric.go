// Package metrics summarizes a sampled step response.
//
// Each [Metric] observes (t, y) samples in increasing t order and reports a
// single value. Metrics carry state between Observe calls, so one instance
// must not be shared between goroutines; [Default] hands out a fresh set.
package metrics

import (
	"github.com/san-kum/springlab/internal/curve"
)

// Metric accumulates one summary value over a stream of samples.
type Metric interface {
	Name() string
	Observe(t, y float64)
	Value() float64
	Reset()
}

// DefaultBand is the settling tolerance around the target, as a fraction.
const DefaultBand = 0.02

// Default returns a fresh instance of every metric, in print order.
func Default() []Metric {
	return []Metric{
		NewPeak(),
		NewOvershoot(),
		NewPeakTime(),
		NewRiseTime(),
		NewSettlingTime(DefaultBand),
		NewFloor(),
	}
}

// Evaluate resets ms, feeds every point through them and collects the values
// by name. With no metrics given it uses Default.
func Evaluate(points []curve.Point, ms ...Metric) map[string]float64 {
	if len(ms) == 0 {
		ms = Default()
	}

	for _, m := range ms {
		m.Reset()
	}
	for _, p := range points {
		for _, m := range ms {
			m.Observe(p.T, p.Y)
		}
	}

	values := make(map[string]float64, len(ms))
	for _, m := range ms {
		values[m.Name()] = m.Value()
	}
	return values
}

// Names lists the metric names of ms in order, for stable printing.
func Names(ms []Metric) []string {
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = m.Name()
	}
	return names
}
