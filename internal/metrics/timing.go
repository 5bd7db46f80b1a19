package metrics

import "math"

// RiseTime is the time taken to go from 10% to 90% of the target.
// It reports +Inf when the window ends before reaching 90%.
type RiseTime struct {
	name     string
	t10, t90 float64
	seen10   bool
	seen90   bool
}

func NewRiseTime() *RiseTime {
	return &RiseTime{name: "rise_time"}
}

func (r *RiseTime) Name() string { return r.name }

func (r *RiseTime) Observe(t, y float64) {
	if !r.seen10 && y >= 0.1 {
		r.t10 = t
		r.seen10 = true
	}
	if !r.seen90 && y >= 0.9 {
		r.t90 = t
		r.seen90 = true
	}
}

func (r *RiseTime) Value() float64 {
	if !r.seen10 || !r.seen90 {
		return math.Inf(1)
	}
	return r.t90 - r.t10
}

func (r *RiseTime) Reset() {
	*r = RiseTime{name: r.name}
}

// SettlingTime is the last time the response sat outside |y-1| <= band.
// If the final sample is still outside the band the value is +Inf.
type SettlingTime struct {
	name        string
	band        float64
	lastOutside float64
	outside     bool
	samples     int
}

func NewSettlingTime(band float64) *SettlingTime {
	return &SettlingTime{
		name: "settling_time",
		band: band,
	}
}

func (s *SettlingTime) Name() string { return s.name }

func (s *SettlingTime) Observe(t, y float64) {
	s.samples++
	s.outside = math.Abs(y-1) > s.band
	if s.outside {
		s.lastOutside = t
	}
}

func (s *SettlingTime) Value() float64 {
	if s.samples == 0 || s.outside {
		return math.Inf(1)
	}
	return s.lastOutside
}

func (s *SettlingTime) Reset() {
	s.lastOutside = 0
	s.outside = false
	s.samples = 0
}
