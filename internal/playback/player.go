// Package playback drives a spring over time.
//
// A [Player] samples the step response at increasing t, from 0 up to a span,
// and hands every sample to its observers and metrics. In realtime mode
// samples are paced by a ticker at the configured frame rate; otherwise
// they are produced as fast as the observers accept them.
//
// # Example
//
//	p := spring.Compute(500, 0.3)
//	pl := playback.New(p, playback.Config{Span: 1, FPS: 60, Realtime: true}, nil)
//	pl.AddObserver(renderer)
//	summary, err := pl.Run(ctx)
//
// Players are not safe for concurrent use. Run one per goroutine.
package playback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/san-kum/springlab/internal/curve"
	"github.com/san-kum/springlab/internal/metrics"
	"github.com/san-kum/springlab/internal/spring"
)

// ErrInvalidConfig indicates a span or frame rate the player cannot run with.
var ErrInvalidConfig = errors.New("playback: invalid config")

type Observer interface {
	OnSample(t, y float64)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(t, y float64)

func (f ObserverFunc) OnSample(t, y float64) { f(t, y) }

type Config struct {
	Span     float64
	FPS      int
	Realtime bool
}

func (c Config) Validate() error {
	if c.Span <= 0 || math.IsInf(c.Span, 0) || math.IsNaN(c.Span) {
		return fmt.Errorf("%w: span must be positive, got %f", ErrInvalidConfig, c.Span)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	}
	return nil
}

// Frames is the number of samples a run produces, including t = 0.
func (c Config) Frames() int {
	return int(math.Ceil(c.Span*float64(c.FPS))) + 1
}

type Summary struct {
	Frames  int
	Last    curve.Point
	Metrics map[string]float64
	Elapsed time.Duration
}

type Player struct {
	params    spring.Params
	cfg       Config
	logger    *slog.Logger
	observers []Observer
	metrics   []metrics.Metric
}

func New(p spring.Params, cfg Config, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}
	return &Player{
		params:    p,
		cfg:       cfg,
		logger:    logger,
		observers: make([]Observer, 0),
		metrics:   make([]metrics.Metric, 0),
	}
}

func (pl *Player) AddObserver(o Observer)     { pl.observers = append(pl.observers, o) }
func (pl *Player) AddMetric(m metrics.Metric) { pl.metrics = append(pl.metrics, m) }

// Run samples the response until the span is covered or ctx is done. On
// cancellation it returns ctx.Err() together with what was sampled so far.
func (pl *Player) Run(ctx context.Context) (*Summary, error) {
	if err := pl.cfg.Validate(); err != nil {
		return nil, err
	}

	for _, m := range pl.metrics {
		m.Reset()
	}

	summary := &Summary{Metrics: make(map[string]float64)}
	frames := pl.cfg.Frames()
	start := time.Now()

	var tick <-chan time.Time
	if pl.cfg.Realtime {
		ticker := time.NewTicker(time.Second / time.Duration(pl.cfg.FPS))
		defer ticker.Stop()
		tick = ticker.C
	}

	pl.logger.Debug("playback started",
		"zeta", pl.params.Zeta,
		"omega_n", pl.params.OmegaN,
		"span", pl.cfg.Span,
		"frames", frames,
		"realtime", pl.cfg.Realtime)

	var err error
	for i := 0; i < frames; i++ {
		if i > 0 && tick != nil {
			select {
			case <-ctx.Done():
			case <-tick:
			}
		}
		if err = ctx.Err(); err != nil {
			break
		}

		t := math.Min(float64(i)/float64(pl.cfg.FPS), pl.cfg.Span)
		y := pl.params.At(t)

		for _, m := range pl.metrics {
			m.Observe(t, y)
		}
		for _, o := range pl.observers {
			o.OnSample(t, y)
		}

		summary.Frames++
		summary.Last = curve.Point{T: t, Y: y}
	}

	for _, m := range pl.metrics {
		summary.Metrics[m.Name()] = m.Value()
	}
	summary.Elapsed = time.Since(start)

	if err != nil {
		pl.logger.Debug("playback interrupted", "frames", summary.Frames, "err", err)
		return summary, err
	}

	pl.logger.Debug("playback finished", "frames", summary.Frames, "elapsed", summary.Elapsed)
	return summary, nil
}
