// Package sweep evaluates spring metrics over a grid of durations and
// bounces, one worker per grid cell up to a limit.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/springlab/internal/curve"
	"github.com/san-kum/springlab/internal/metrics"
	"github.com/san-kum/springlab/internal/spring"
)

var ErrEmptyGrid = errors.New("sweep: empty grid")

type Grid struct {
	Durations []float64
	Bounces   []float64
}

func (g Grid) Size() int {
	return len(g.Durations) * len(g.Bounces)
}

type Options struct {
	Workers    int
	Steps      int
	SpanFactor float64
	Logger     *slog.Logger
}

func DefaultOptions() Options {
	return Options{
		Workers:    runtime.NumCPU(),
		Steps:      curve.DefaultSteps,
		SpanFactor: curve.DefaultSpanFactor,
	}
}

// Row is the result for one grid cell.
type Row struct {
	DurationMillis float64
	Bounce         float64
	Params         spring.Params
	Overshoot      float64
	SettlingTime   float64
}

// Run evaluates every (duration, bounce) pair. Rows come back in grid order,
// durations outermost, regardless of which worker finished first.
func Run(ctx context.Context, grid Grid, opts Options) ([]Row, error) {
	if grid.Size() == 0 {
		return nil, ErrEmptyGrid
	}

	defaults := DefaultOptions()
	if opts.Workers < 1 {
		opts.Workers = defaults.Workers
	}
	if opts.Steps < 1 {
		opts.Steps = defaults.Steps
	}
	if opts.SpanFactor <= 0 {
		opts.SpanFactor = defaults.SpanFactor
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	rows := make([]Row, grid.Size())

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	logger.Debug("sweep started", "cells", len(rows), "workers", opts.Workers)

	for i, d := range grid.Durations {
		for j, b := range grid.Bounces {
			idx := i*len(grid.Bounces) + j
			d, b := d, b // per-iteration copy; go directive lowered to 1.21 for the local toolchain
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				rows[idx] = evaluate(d, b, opts)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}

	logger.Debug("sweep finished", "cells", len(rows))
	return rows, nil
}

func evaluate(durationMillis, bounce float64, opts Options) Row {
	p := spring.Compute(durationMillis, bounce)
	points := curve.Sample(p, curve.Span(durationMillis, opts.SpanFactor), opts.Steps)

	values := metrics.Evaluate(points,
		metrics.NewOvershoot(),
		metrics.NewSettlingTime(metrics.DefaultBand),
	)

	return Row{
		DurationMillis: durationMillis,
		Bounce:         bounce,
		Params:         p,
		Overshoot:      values["overshoot"],
		SettlingTime:   values["settling_time"],
	}
}

// Linspace returns n evenly spaced values from lo to hi inclusive. n == 1
// yields just lo.
func Linspace(lo, hi float64, n int) []float64 {
	if n < 1 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}

	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	out[n-1] = hi
	return out
}
