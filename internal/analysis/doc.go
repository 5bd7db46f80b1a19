// Package analysis inspects sampled step responses.
//
//   - [Spectrum]: magnitude spectrum of the residual y-1 (go-dsp FFT)
//   - [DominantFrequency]: spectral peak with parabolic refinement
//   - [CrossingFrequency]: ω_d/2π measured from target crossings
//   - [NewPhasePortrait]: (y, dy/dt) trajectory spiralling into (1, 0)
//
// The spectral peak of a decaying oscillation sits below the damped
// frequency and the gap widens with damping, so for ζ above roughly 0.3 the
// crossing estimate is the one to compare against [ExpectedFrequency].
//
//	points := curve.Sample(p, 4, 2000)
//	hz, err := analysis.CrossingFrequency(points)
package analysis
