// Package spring maps perceptual spring controls onto a damped harmonic
// oscillator and evaluates its unit-step response.
//
// Two pure functions make up the package:
//
//   - [Compute]: (duration, bounce) to damping ratio and natural frequency
//   - [StepResponse]: closed-form displacement at time t
//
// Duration is the perceived length of the motion in milliseconds. Bounce is
// a signed amount: negative values ask for a heavier, slower-than-critical
// settle, zero is critical damping, positive values are the fraction the
// response should overshoot its target by.
//
//	p := spring.Compute(500, 0.3)
//	for i := 0; i <= 200; i++ {
//	    t := 1.0 * float64(i) / 200
//	    fmt.Printf("%.3f %.4f\n", t, p.At(t))
//	}
//
// # Numeric domain
//
// Every finite input is clamped into a safe range before use: duration has a
// 1 ms floor, positive bounce is limited to [MinOvershoot, MaxOvershoot] and
// the over-damped rate divisor is capped at [MaxDampingFactor]. NaN and Inf
// inputs are outside the contract and propagate into the result unchecked.
//
// # Over-damped branch
//
// For ζ >= 1 the response is a single exponential, 1 - exp(-(ω_n/min(ζ,3))·t),
// rather than the exact two-root solution. Callers rely on that shape.
//
// # Thread Safety
//
// All functions are stateless and safe to call from any goroutine.
package spring
