// Package reference produces an independent trace of the same oscillator by
// stepping a harmonica spring frame by frame, for checking the closed-form
// response against it.
//
// harmonica solves the exact damped oscillator in every regime. The closed
// form in package spring is exact only below critical damping, so the two
// agree to rounding for bouncy springs and drift apart at ζ >= 1.
package reference

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/san-kum/springlab/internal/curve"
	"github.com/san-kum/springlab/internal/spring"
)

// Trace steps a spring from rest at 0 toward 1, one frame per sample.
// It returns ceil(span·fps)+1 points starting at t = 0. Sample times use
// harmonica's frame delta, which is truncated to whole nanoseconds.
func Trace(p spring.Params, fps int, span float64) []curve.Point {
	if fps < 1 {
		fps = 1
	}
	steps := int(math.Ceil(span * float64(fps)))
	if steps < 0 {
		steps = 0
	}

	dt := harmonica.FPS(fps)
	s := harmonica.NewSpring(dt, p.OmegaN, p.Zeta)

	points := make([]curve.Point, steps+1)
	pos, vel := 0.0, 0.0
	for i := 1; i <= steps; i++ {
		pos, vel = s.Update(pos, vel, 1)
		points[i] = curve.Point{T: float64(i) * dt, Y: pos}
	}
	return points
}

// Tracker follows a moving target with a harmonica spring. The interactive
// player uses it for a ghost marker next to the closed-form position.
type Tracker struct {
	spring harmonica.Spring
	Pos    float64
	Vel    float64
}

func NewTracker(p spring.Params, fps int) *Tracker {
	if fps < 1 {
		fps = 1
	}
	return &Tracker{spring: harmonica.NewSpring(harmonica.FPS(fps), p.OmegaN, p.Zeta)}
}

func (tr *Tracker) Step(target float64) float64 {
	tr.Pos, tr.Vel = tr.spring.Update(tr.Pos, tr.Vel, target)
	return tr.Pos
}

func (tr *Tracker) Reset() {
	tr.Pos, tr.Vel = 0, 0
}

type Comparison struct {
	MaxDeviation float64
	RMS          float64
	At           float64
	Samples      int
}

// Compare evaluates the closed form at every reference sample time.
func Compare(p spring.Params, ref []curve.Point) Comparison {
	var c Comparison
	sum := 0.0
	for _, pt := range ref {
		d := math.Abs(p.At(pt.T) - pt.Y)
		if d > c.MaxDeviation {
			c.MaxDeviation = d
			c.At = pt.T
		}
		sum += d * d
	}
	c.Samples = len(ref)
	if c.Samples > 0 {
		c.RMS = math.Sqrt(sum / float64(c.Samples))
	}
	return c
}
