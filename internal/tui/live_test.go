package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/springlab/internal/playback"
	"github.com/san-kum/springlab/internal/spring"
)

func TestColumn(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		want int
	}{
		{"start", 0, 0},
		{"target", 1, 50},
		{"top", 1.2, 60},
		{"below", -0.3, 0},
		{"above", 2, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Column(61, tt.y, 1.2); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestTrack(t *testing.T) {
	rail := Track(61, 0.6, 1.2)
	if len(rail) != 61 {
		t.Fatalf("expected 61 cells, got %d", len(rail))
	}
	if rail[30] != BoxRune {
		t.Errorf("expected box at column 30, got %q", rail[30])
	}
	if rail[50] != TargetRune {
		t.Errorf("expected target at column 50, got %q", rail[50])
	}

	// box covers the target once it arrives
	if rail := Track(61, 1, 1.2); rail[50] != BoxRune {
		t.Errorf("expected box over target, got %q", rail[50])
	}
}

func TestLiveRenderer_Frames(t *testing.T) {
	var out bytes.Buffer
	r := NewLiveRenderer("bouncy", 0, 1.2)
	r.Out = &out

	r.Start()
	r.OnSample(0, 0)
	r.OnSample(0.5, 1.1)
	r.Stop()

	s := out.String()
	if got := strings.Count(s, clearScreen); got != 2 {
		t.Errorf("expected 2 frames, got %d", got)
	}
	if !strings.Contains(s, "y=1.1000") {
		t.Error("expected last sample in output")
	}
	if !strings.HasPrefix(s, hideCursor) || !strings.HasSuffix(s, showCursor) {
		t.Error("expected cursor hidden then restored")
	}
}

func TestLiveRenderer_FrameGating(t *testing.T) {
	var out bytes.Buffer
	r := NewLiveRenderer("bouncy", 10, 1.2)
	r.Out = &out

	clock := time.Unix(0, 0)
	r.now = func() time.Time { return clock }

	r.OnSample(0, 0)
	clock = clock.Add(50 * time.Millisecond)
	r.OnSample(0.05, 0.2)
	clock = clock.Add(20 * time.Millisecond)
	r.OnSample(0.07, 0.3)

	if got := strings.Count(out.String(), clearScreen); got != 1 {
		t.Fatalf("expected 1 frame before stop, got %d", got)
	}

	r.Stop()
	s := out.String()
	if got := strings.Count(s, clearScreen); got != 2 {
		t.Errorf("expected dropped sample drawn on stop, got %d frames", got)
	}
	if !strings.Contains(s, "y=0.3000") {
		t.Error("expected most recent dropped sample")
	}
}

func TestPlaybackRenderer_RealtimeDrawsEverySample(t *testing.T) {
	cfg := playback.Config{Span: 0.25, FPS: 60, Realtime: true}

	var out bytes.Buffer
	r := NewPlaybackRenderer("bouncy", cfg, 1.2)
	r.Out = &out

	pl := playback.New(spring.Compute(500, 0.3), cfg, nil)
	pl.AddObserver(r)

	summary, err := pl.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if summary.Frames != cfg.Frames() {
		t.Fatalf("expected %d samples, got %d", cfg.Frames(), summary.Frames)
	}
	if got := strings.Count(out.String(), clearScreen); got != summary.Frames {
		t.Errorf("expected %d frames drawn, got %d", summary.Frames, got)
	}
}

func TestPlaybackRenderer_FastRunIsGated(t *testing.T) {
	r := NewPlaybackRenderer("bouncy", playback.Config{Span: 1, FPS: 30}, 1.2)
	if r.frameRate != 30 {
		t.Errorf("expected gating at 30 fps, got %d", r.frameRate)
	}

	r = NewPlaybackRenderer("bouncy", playback.Config{Span: 1, FPS: 30, Realtime: true}, 1.2)
	if r.frameRate != 0 {
		t.Errorf("expected no gating for a paced run, got %d", r.frameRate)
	}
}
