package metrics

import "math"

type Peak struct {
	name    string
	max     float64
	at      float64
	samples int
}

func NewPeak() *Peak {
	return &Peak{name: "peak"}
}

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(t, y float64) {
	if p.samples == 0 || y > p.max {
		p.max = y
		p.at = t
	}
	p.samples++
}

func (p *Peak) Value() float64 {
	if p.samples == 0 {
		return 0
	}
	return p.max
}

func (p *Peak) Reset() {
	p.max = 0
	p.at = 0
	p.samples = 0
}

// Overshoot is how far the peak rises above the settled value of 1.
type Overshoot struct {
	peak Peak
}

func NewOvershoot() *Overshoot {
	return &Overshoot{peak: Peak{name: "overshoot"}}
}

func (o *Overshoot) Name() string         { return o.peak.name }
func (o *Overshoot) Observe(t, y float64) { o.peak.Observe(t, y) }
func (o *Overshoot) Reset()               { o.peak.Reset() }

func (o *Overshoot) Value() float64 {
	return math.Max(0, o.peak.Value()-1)
}

type PeakTime struct {
	peak Peak
}

func NewPeakTime() *PeakTime {
	return &PeakTime{peak: Peak{name: "peak_time"}}
}

func (p *PeakTime) Name() string         { return p.peak.name }
func (p *PeakTime) Observe(t, y float64) { p.peak.Observe(t, y) }
func (p *PeakTime) Reset()               { p.peak.Reset() }
func (p *PeakTime) Value() float64       { return p.peak.at }

// Floor is the lowest displacement seen. A step response from rest never
// drops below zero.
type Floor struct {
	name    string
	min     float64
	samples int
}

func NewFloor() *Floor {
	return &Floor{name: "floor"}
}

func (f *Floor) Name() string { return f.name }

func (f *Floor) Observe(t, y float64) {
	if f.samples == 0 || y < f.min {
		f.min = y
	}
	f.samples++
}

func (f *Floor) Value() float64 {
	if f.samples == 0 {
		return 0
	}
	return f.min
}

func (f *Floor) Reset() {
	f.min = 0
	f.samples = 0
}
