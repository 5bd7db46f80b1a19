package analysis

import (
	"strings"

	"github.com/san-kum/springlab/internal/curve"
)

// PhasePortrait holds (displacement, velocity) pairs of a sampled response.
type PhasePortrait struct {
	Points []struct{ X, Y float64 }
}

// NewPhasePortrait estimates velocity with central differences (one-sided
// at the ends). Fewer than two samples yield an empty portrait.
func NewPhasePortrait(points []curve.Point) *PhasePortrait {
	portrait := &PhasePortrait{
		Points: make([]struct{ X, Y float64 }, 0, len(points)),
	}
	if len(points) < 2 {
		return portrait
	}

	last := len(points) - 1
	for i, p := range points {
		lo, hi := i-1, i+1
		if lo < 0 {
			lo = 0
		}
		if hi > last {
			hi = last
		}
		v := (points[hi].Y - points[lo].Y) / (points[hi].T - points[lo].T)
		portrait.Points = append(portrait.Points, struct{ X, Y float64 }{X: p.Y, Y: v})
	}
	return portrait
}

// ToASCII draws the portrait with axes through zero when visible.
func (portrait *PhasePortrait) ToASCII(width, height int) string {
	if portrait == nil || len(portrait.Points) == 0 || width < 2 || height < 2 {
		return ""
	}

	minX, maxX := portrait.Points[0].X, portrait.Points[0].X
	minY, maxY := portrait.Points[0].Y, portrait.Points[0].Y

	for _, p := range portrait.Points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for _, p := range portrait.Points {
		col := int((p.X - minX) / rangeX * float64(width-1))
		row := height - 1 - int((p.Y-minY)/rangeY*float64(height-1))

		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	// target line at displacement 1, zero-velocity axis
	if minX <= 1 && maxX >= 1 {
		col := int((1 - minX) / rangeX * float64(width-1))
		for row := 0; row < height; row++ {
			if col >= 0 && col < width && canvas[row][col] == ' ' {
				canvas[row][col] = '│'
			}
		}
	}
	if minY <= 0 && maxY >= 0 {
		row := height - 1 - int((0-minY)/rangeY*float64(height-1))
		for col := 0; col < width; col++ {
			if row >= 0 && row < height && canvas[row][col] == ' ' {
				canvas[row][col] = '─'
			}
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
