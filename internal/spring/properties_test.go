package spring_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/springlab/internal/spring"
)

var durations = []float64{1, 10, 200, 300, 500, 700, 1000, 5000}

var bounces = []float64{-5, -1, -0.6, -0.25, 0, 0.001, 0.1, 0.3, 0.5, 0.6, 0.99, 3}

// grid returns n evenly spaced sample times in (0, span].
func grid(span float64, n int) []float64 {
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = span * float64(i+1) / float64(n)
	}
	return ts
}

var _ = Describe("Compute", func() {
	It("decreases the natural frequency as duration grows", func() {
		for _, b := range bounces {
			prev := math.Inf(1)
			for _, d := range durations {
				omegaN := spring.Compute(d, b).OmegaN
				Expect(omegaN).To(BeNumerically("<", prev), "duration %v bounce %v", d, b)
				prev = omegaN
			}
		}
	})

	It("keeps non-positive bounce critically damped or slower", func() {
		for _, b := range []float64{0, -0.01, -0.3, -0.999, -1, -2, -100} {
			zeta := spring.Compute(500, b).Zeta
			Expect(zeta).To(BeNumerically(">=", 1))
			Expect(zeta).To(BeNumerically("<=", 2))
		}
		Expect(spring.Compute(500, 0).Zeta).To(Equal(1.0))
	})

	It("keeps positive bounce strictly under-damped", func() {
		for _, b := range []float64{1e-12, 1e-3, 0.05, 0.3, 0.6, 0.99, 1, 42} {
			zeta := spring.Compute(500, b).Zeta
			Expect(zeta).To(BeNumerically(">", 0))
			Expect(zeta).To(BeNumerically("<", 1))
		}
	})

	DescribeTable("reference scenarios",
		func(duration, bounce, zeta, omegaN float64) {
			p := spring.Compute(duration, bounce)
			Expect(p.Zeta).To(BeNumerically("~", zeta, 1e-3))
			Expect(p.OmegaN).To(BeNumerically("~", omegaN, 1e-3))
		},
		Entry("bouncy", 500.0, 0.3, 0.358, 12.566),
		Entry("no bounce", 500.0, 0.0, 1.0, 12.566),
		Entry("floor with heavy clamp", 1.0, -5.0, 2.0, 6283.185),
	)
})

var _ = Describe("StepResponse", func() {
	It("starts at exactly zero", func() {
		Expect(spring.StepResponse(0.0, 0.358, 12.566)).To(Equal(0.0))
		for _, b := range bounces {
			Expect(spring.Compute(500, b).At(0)).To(Equal(0.0))
		}
	})

	It("never goes negative after the step", func() {
		for _, d := range durations {
			for _, b := range bounces {
				p := spring.Compute(d, b)
				for _, t := range grid(4*spring.DurationSeconds(d), 400) {
					Expect(p.At(t)).To(BeNumerically(">=", 0), "d=%v b=%v t=%v", d, b, t)
				}
			}
		}
	})

	It("settles at one", func() {
		for _, b := range bounces {
			p := spring.Compute(500, b)
			Expect(p.At(1e4)).To(BeNumerically("~", 1, 1e-9), "bounce %v", b)
		}
	})

	It("is non-decreasing without oscillation", func() {
		for _, b := range []float64{0, -0.2, -0.5, -1} {
			p := spring.Compute(500, b)
			prev := 0.0
			for _, t := range grid(2, 1000) {
				y := p.At(t)
				Expect(y).To(BeNumerically(">=", prev))
				prev = y
			}
		}
	})

	DescribeTable("overshoots by the requested bounce",
		func(bounce float64) {
			p := spring.Compute(500, bounce)
			want := 1 + math.Exp(-p.Zeta*math.Pi/math.Sqrt(1-p.Zeta*p.Zeta))

			Expect(p.At(p.PeakTime())).To(BeNumerically("~", want, 1e-9))
			Expect(want).To(BeNumerically("~", 1+bounce, 1e-9))

			peak := 0.0
			for _, t := range grid(2*spring.DurationSeconds(500), 20000) {
				peak = math.Max(peak, p.At(t))
			}
			Expect(peak).To(BeNumerically(">", 1))
			Expect(peak).To(BeNumerically("~", want, 1e-4))
		},
		Entry("snappy", 0.1),
		Entry("bouncy", 0.3),
		Entry("extra bouncy", 0.5),
		Entry("upper reference", 0.6),
	)
})
