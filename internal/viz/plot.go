package viz

import (
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/springlab/internal/curve"
)

// PlotCurve draws points onto c, t stretched across the full width and y
// from 0 at the bottom to maxY at the top. The target y = 1 is dotted and a
// vertical cursor marks cursorT when it falls inside the sampled range.
// Samples above maxY or below 0 are clipped.
func PlotCurve(c *Canvas, points []curve.Point, maxY, cursorT float64) {
	if len(points) == 0 {
		return
	}
	if maxY <= 0 {
		maxY = 1
	}

	w, h := c.DotWidth(), c.DotHeight()
	t0, t1 := points[0].T, points[len(points)-1].T
	tSpan := t1 - t0
	if tSpan <= 0 {
		tSpan = 1
	}

	col := func(t float64) int {
		return int(math.Round((t - t0) / tSpan * float64(w-1)))
	}
	row := func(y float64) int {
		return h - 1 - int(math.Round(y/maxY*float64(h-1)))
	}

	if target := row(1); target >= 0 {
		for x := 0; x < w; x += 3 {
			c.Set(x, target)
		}
	}

	if cursorT >= t0 && cursorT <= t1 {
		x := col(cursorT)
		for y := 0; y < h; y += 2 {
			c.Set(x, y)
		}
	}

	px, py := col(points[0].T), row(points[0].Y)
	c.Set(px, py)
	for _, p := range points[1:] {
		x, y := col(p.T), row(p.Y)
		c.Line(px, py, x, y)
		px, py = x, y
	}
}

// Graph renders the response with asciigraph, y axis labelled.
func Graph(points []curve.Point, width, height int, caption string) string {
	if len(points) == 0 {
		return ""
	}
	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(2),
	}
	if caption != "" {
		opts = append(opts, asciigraph.Caption(caption))
	}
	return asciigraph.Plot(curve.Values(points), opts...)
}
