package analysis

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/springlab/internal/curve"
	"github.com/san-kum/springlab/internal/spring"
)

var (
	// ErrTooFewSamples indicates fewer points than the analysis needs.
	ErrTooFewSamples = errors.New("analysis: too few samples")

	// ErrNoOscillation indicates the response never crossed its target twice.
	ErrNoOscillation = errors.New("analysis: no oscillation detected")
)

const minSamples = 4

// Spectrum is a one-sided magnitude spectrum with its bin spacing in Hz.
type Spectrum struct {
	Magnitudes []float64
	BinHz      float64
}

// NewSpectrum transforms the mean-removed residual y-1, zero padded to a
// power of two at least pad times the sample count. Points must be evenly
// spaced in t.
func NewSpectrum(points []curve.Point, pad int) (*Spectrum, error) {
	if len(points) < minSamples {
		return nil, ErrTooFewSamples
	}
	if pad < 1 {
		pad = 1
	}

	dt := points[1].T - points[0].T
	if dt <= 0 {
		return nil, ErrTooFewSamples
	}

	mean := 0.0
	for _, p := range points {
		mean += p.Y - 1
	}
	mean /= float64(len(points))

	n := 1
	for n < len(points)*pad {
		n *= 2
	}
	residual := make([]float64, n)
	for i, p := range points {
		residual[i] = p.Y - 1 - mean
	}

	bins := fft.FFTReal(residual)
	mags := make([]float64, n/2)
	for i := range mags {
		mags[i] = cmplx.Abs(bins[i])
	}

	return &Spectrum{
		Magnitudes: mags,
		BinHz:      1 / (float64(n) * dt),
	}, nil
}

// Peak returns the strongest non-DC frequency, refined by fitting a
// parabola through the neighbouring bins.
func (s *Spectrum) Peak() float64 {
	if len(s.Magnitudes) < 3 {
		return 0
	}

	k := 1
	for i := 2; i < len(s.Magnitudes)-1; i++ {
		if s.Magnitudes[i] > s.Magnitudes[k] {
			k = i
		}
	}

	a, b, c := s.Magnitudes[k-1], s.Magnitudes[k], s.Magnitudes[k+1]
	offset := 0.0
	if denom := a - 2*b + c; denom != 0 {
		offset = 0.5 * (a - c) / denom
	}
	return (float64(k) + offset) * s.BinHz
}

// DominantFrequency is NewSpectrum(points, 4).Peak().
func DominantFrequency(points []curve.Point) (float64, error) {
	s, err := NewSpectrum(points, 4)
	if err != nil {
		return 0, err
	}
	return s.Peak(), nil
}

// ExpectedFrequency is the damped frequency in Hz, 0 at or above critical.
func ExpectedFrequency(p spring.Params) float64 {
	return p.DampedFrequency() / (2 * math.Pi)
}
