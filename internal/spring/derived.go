package spring

import (
	"fmt"
	"math"
)

// Regime classifies the damping ratio.
type Regime int

const (
	Underdamped Regime = iota
	Critical
	Overdamped
)

func (r Regime) String() string {
	switch r {
	case Underdamped:
		return "underdamped"
	case Critical:
		return "critical"
	case Overdamped:
		return "overdamped"
	default:
		return fmt.Sprintf("regime(%d)", int(r))
	}
}

// Regime classifies p by its damping ratio.
func (p Params) Regime() Regime {
	switch {
	case p.Zeta < 1:
		return Underdamped
	case p.Zeta == 1:
		return Critical
	default:
		return Overdamped
	}
}

// Stiffness is k = ω_n² for the unit mass.
func (p Params) Stiffness() float64 {
	return p.OmegaN * p.OmegaN
}

// DampedFrequency returns ω_d in rad/s, or 0 when the response does not oscillate.
func (p Params) DampedFrequency() float64 {
	if p.Zeta < 0 || p.Zeta >= 1 {
		return 0
	}
	return p.OmegaN * math.Sqrt(1-p.Zeta*p.Zeta)
}

// PeakTime is the time of the first overshoot peak, +Inf without oscillation.
func (p Params) PeakTime() float64 {
	wd := p.DampedFrequency()
	if wd == 0 {
		return math.Inf(1)
	}
	return math.Pi / wd
}

// PeakOvershoot is the forward overshoot formula exp(-ζπ/sqrt(1-ζ²)),
// the inverse of the bounce mapping in Compute.
func PeakOvershoot(zeta float64) float64 {
	if zeta < 0 || zeta >= 1 {
		return 0
	}
	return math.Exp(-zeta * math.Pi / math.Sqrt(1-zeta*zeta))
}
