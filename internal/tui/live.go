package tui

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/san-kum/springlab/internal/playback"
)

const (
	trackWidth  = 60
	trailLength = 8
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"

	BoxRune    = '■'
	TargetRune = '|'
)

// Column maps a displacement onto a track of the given width, 0 at the left
// edge and maxY at the right. Positions outside the track are clamped.
func Column(width int, y, maxY float64) int {
	if width < 1 {
		return 0
	}
	if maxY <= 0 {
		maxY = 1
	}
	col := int(math.Round(y / maxY * float64(width-1)))
	if col < 0 {
		return 0
	}
	if col > width-1 {
		return width - 1
	}
	return col
}

// Track draws a dashed rail with the target marked at displacement 1 and
// the box at y.
func Track(width int, y, maxY float64) []rune {
	if width < 1 {
		return nil
	}
	rail := make([]rune, width)
	for i := range rail {
		if i%2 == 0 {
			rail[i] = '-'
		} else {
			rail[i] = ' '
		}
	}
	rail[Column(width, 1, maxY)] = TargetRune
	rail[Column(width, y, maxY)] = BoxRune
	return rail
}

// LiveRenderer prints the box sliding along its track, at most frameRate
// frames per second. It satisfies playback.Observer.
type LiveRenderer struct {
	Out io.Writer

	label     string
	frameRate int
	maxY      float64
	lastFrame time.Time
	trail     []int
	now       func() time.Time

	pending      bool
	pendT, pendY float64
}

// NewLiveRenderer writes to stdout. A frameRate of 0 draws every sample.
func NewLiveRenderer(label string, frameRate int, maxY float64) *LiveRenderer {
	if maxY <= 0 {
		maxY = 1.2
	}
	return &LiveRenderer{
		Out:       os.Stdout,
		label:     label,
		frameRate: frameRate,
		maxY:      maxY,
		trail:     make([]int, 0, trailLength),
		now:       time.Now,
	}
}

// NewPlaybackRenderer sizes frame gating for a playback run. A realtime run
// is already paced by its ticker, so every sample is drawn.
func NewPlaybackRenderer(label string, cfg playback.Config, maxY float64) *LiveRenderer {
	frameRate := cfg.FPS
	if cfg.Realtime {
		frameRate = 0
	}
	return NewLiveRenderer(label, frameRate, maxY)
}

// OnSample draws a frame unless the previous one was less than a frame
// interval ago. A dropped sample is kept and drawn by Stop.
func (r *LiveRenderer) OnSample(t, y float64) {
	now := r.now()
	if r.frameRate > 0 && !r.lastFrame.IsZero() &&
		now.Sub(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
		r.pending, r.pendT, r.pendY = true, t, y
		return
	}
	r.lastFrame = now
	r.pending = false
	r.render(t, y)
}

func (r *LiveRenderer) render(t, y float64) {
	col := Column(trackWidth, y, r.maxY)
	rail := Track(trackWidth, y, r.maxY)
	for _, c := range r.trail {
		if rail[c] != BoxRune && rail[c] != TargetRune {
			rail[c] = '·'
		}
	}

	r.trail = append(r.trail, col)
	if len(r.trail) > trailLength {
		r.trail = r.trail[1:]
	}

	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  %s  t=%.3fs  y=%.4f\n", r.label, t, y))
	b.WriteString("  " + strings.Repeat("=", trackWidth) + "\n")
	b.WriteString("  " + string(rail) + "\n")
	b.WriteString("  " + strings.Repeat("=", trackWidth) + "\n")

	fmt.Fprint(r.Out, b.String())
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.Out, hideCursor) }

// Stop draws any sample dropped by frame gating and restores the cursor.
func (r *LiveRenderer) Stop() {
	if r.pending {
		r.pending = false
		r.render(r.pendT, r.pendY)
	}
	fmt.Fprint(r.Out, showCursor)
}
