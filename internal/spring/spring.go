package spring

import "math"

// Clamps applied by Compute and StepResponse.
const (
	MinDurationMillis = 1.0
	MinOvershoot      = 1e-3
	MaxOvershoot      = 0.99
	MaxDampingFactor  = 3.0
)

// Params is a unit-mass oscillator: y'' + 2ζω_n y' + ω_n² y = ω_n² u(t).
type Params struct {
	Zeta   float64
	OmegaN float64
}

// Compute converts a perceptual duration and bounce into oscillator
// parameters. It never fails; out-of-range inputs are clamped.
func Compute(durationMillis, bounce float64) Params {
	omegaN := 2 * math.Pi / DurationSeconds(durationMillis)

	var zeta float64
	if bounce <= 0 {
		zeta = 1 + clamp(-bounce, 0, 1)
	} else {
		mp := clamp(bounce, MinOvershoot, MaxOvershoot)
		lnMp := math.Log(mp)
		zeta = -lnMp / math.Sqrt(math.Pi*math.Pi+lnMp*lnMp)
	}

	return Params{Zeta: zeta, OmegaN: omegaN}
}

// DurationSeconds applies the duration floor and converts to seconds.
func DurationSeconds(durationMillis float64) float64 {
	return math.Max(durationMillis, MinDurationMillis) / 1000
}

// StepResponse returns y(t) for a system at rest before t = 0, settling at 1.
func StepResponse(t, zeta, omegaN float64) float64 {
	if t <= 0 {
		return 0
	}

	if zeta >= 0 && zeta < 1 {
		a := math.Sqrt(1 - zeta*zeta)
		omegaD := omegaN * a
		expTerm := math.Exp(-zeta * omegaN * t)
		return 1 - expTerm*(math.Cos(omegaD*t)+(zeta/a)*math.Sin(omegaD*t))
	}

	factor := math.Min(zeta, MaxDampingFactor)
	return 1 - math.Exp(-(omegaN/factor)*t)
}

// At is StepResponse for p.
func (p Params) At(t float64) float64 {
	return StepResponse(t, p.Zeta, p.OmegaN)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
