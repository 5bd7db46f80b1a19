package viz

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/springlab/internal/config"
	"github.com/san-kum/springlab/internal/curve"
	"github.com/san-kum/springlab/internal/spring"
)

func TestCanvas_SetAndLine(t *testing.T) {
	c := NewCanvas(4, 2)
	if c.DotWidth() != 8 || c.DotHeight() != 8 {
		t.Fatalf("expected 8x8 dots, got %dx%d", c.DotWidth(), c.DotHeight())
	}

	c.Set(0, 0)
	if got := c.Lines()[0][0:3]; got != "⠁" {
		t.Errorf("expected ⠁ in first cell, got %q", got)
	}

	c.Set(-1, 3)
	c.Set(8, 0)
	c.Line(0, 7, 7, 7)
	for x := 0; x < 8; x++ {
		if !c.IsSet(x, 7) {
			t.Errorf("expected dot (%d, 7) set", x)
		}
	}

	c.Clear()
	if strings.Trim(c.String(), "⠀\n") != "" {
		t.Error("expected blank canvas after clear")
	}
}

func TestPlotCurve(t *testing.T) {
	p := spring.Compute(500, 0.3)
	points := curve.Sample(p, 1.0, 200)

	c := NewCanvas(40, 10)
	PlotCurve(c, points, 1.5, -1)

	// starts bottom left
	if !c.IsSet(0, c.DotHeight()-1) {
		t.Error("expected first sample at bottom left")
	}
	// ends at the target row on the right edge
	targetRow := c.DotHeight() - 1 - int(math.Round(1/1.5*float64(c.DotHeight()-1)))
	if !c.IsSet(c.DotWidth()-1, targetRow) {
		t.Errorf("expected last sample on target row %d", targetRow)
	}
}

func TestPlotCurve_Cursor(t *testing.T) {
	points := curve.Sample(spring.Compute(500, 0), 1.0, 100)

	c := NewCanvas(21, 4)
	PlotCurve(c, points, 1.2, 0.5)

	x := int(math.Round(0.5 * float64(c.DotWidth()-1)))
	for y := 0; y < c.DotHeight(); y += 2 {
		if !c.IsSet(x, y) {
			t.Errorf("expected cursor dot at (%d, %d)", x, y)
		}
	}
}

func TestGraph(t *testing.T) {
	points := curve.Sample(spring.Compute(500, 0.3), 1.0, 50)
	g := Graph(points, 40, 8, "bouncy")
	if !strings.Contains(g, "bouncy") {
		t.Error("expected caption in graph")
	}
	if Graph(nil, 40, 8, "") != "" {
		t.Error("expected empty graph for no points")
	}
}

func TestThemes(t *testing.T) {
	if _, ok := GetTheme(config.DefaultTheme); !ok {
		t.Errorf("default theme %q missing", config.DefaultTheme)
	}
	if _, ok := GetTheme("nope"); ok {
		t.Error("expected unknown theme to report false")
	}

	names := ThemeNames()
	if len(names) != len(config.Themes) {
		t.Fatalf("expected %d themes, got %d", len(config.Themes), len(names))
	}
	for i, n := range config.Themes {
		if names[i] != n {
			t.Errorf("expected theme %s at %d, got %s", n, i, names[i])
		}
	}

	name := Themes[0].Name
	for range Themes {
		name = NextTheme(name).Name
	}
	if name != Themes[0].Name {
		t.Errorf("expected cycle back to %s, got %s", Themes[0].Name, name)
	}
}

func press(m Player, keys ...tea.KeyMsg) (Player, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(Player)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPlayer_AdjustDuration(t *testing.T) {
	m := NewPlayer(config.DefaultConfig())

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Config().DurationMillis; got != 550 {
		t.Errorf("expected 550ms, got %v", got)
	}
	if math.Abs(m.Params().OmegaN-2*math.Pi/0.55) > 1e-9 {
		t.Errorf("params not recomputed: %+v", m.Params())
	}

	for i := 0; i < 20; i++ {
		m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})
	}
	if got := m.Config().DurationMillis; got != MaxDurationMillis {
		t.Errorf("expected clamp at %v, got %v", MaxDurationMillis, got)
	}

	for i := 0; i < 30; i++ {
		m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	if got := m.Config().DurationMillis; got != MinDurationMillis {
		t.Errorf("expected clamp at %v, got %v", MinDurationMillis, got)
	}
}

func TestPlayer_AdjustBounce(t *testing.T) {
	m := NewPlayer(config.DefaultConfig())

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp})
	if got := m.Config().Bounce; got != 0.35 {
		t.Errorf("expected 0.35, got %v", got)
	}

	for i := 0; i < 10; i++ {
		m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp})
	}
	if got := m.Config().Bounce; got != MaxBounce {
		t.Errorf("expected clamp at %v, got %v", MaxBounce, got)
	}

	for i := 0; i < 40; i++ {
		m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if got := m.Config().Bounce; got != MinBounce {
		t.Errorf("expected clamp at %v, got %v", MinBounce, got)
	}
	if m.Params().Zeta != 2 {
		t.Errorf("expected zeta 2 at bounce -1, got %v", m.Params().Zeta)
	}
}

func TestPlayer_Presets(t *testing.T) {
	m := NewPlayer(config.DefaultConfig())
	if got := m.Config().Preset; got != "bouncy" {
		t.Fatalf("expected default spring to match bouncy, got %q", got)
	}
	if !strings.Contains(m.View(), "Bouncy") {
		t.Error("expected preset label in view")
	}

	want := []string{"extra-bouncy", "no-bounce", "heavy", "snappy", "bouncy"}
	for _, name := range want {
		m, _ = press(m, runes("p"))
		if got := m.Config().Preset; got != name {
			t.Fatalf("expected preset %s, got %s", name, got)
		}
		preset, _ := config.GetPreset(name)
		if m.Config().DurationMillis != preset.DurationMillis || m.Config().Bounce != preset.Bounce {
			t.Errorf("preset values not applied: %+v", m.Config())
		}
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Config().Preset != "" {
		t.Error("manual edit should clear the preset name")
	}
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.Config().Preset != "bouncy" {
		t.Errorf("expected bouncy after editing back, got %q", m.Config().Preset)
	}
}

func TestPlayer_ExplicitPreset(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Preset = "no-bounce"
	cfg.DurationMillis, cfg.Bounce = 500, 0
	m := NewPlayer(cfg)

	m, _ = press(m, runes("p"))
	if got := m.Config().Preset; got != "heavy" {
		t.Errorf("expected heavy after no-bounce, got %s", got)
	}
}

func TestPlayer_Playback(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.SpanFactor = 0.1 // 50ms at 60fps
	m := NewPlayer(cfg)

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeySpace})
	if !m.Playing() || cmd == nil {
		t.Fatal("expected playback to start with a tick")
	}

	frames := 0
	for m.Playing() && frames < 100 {
		var next tea.Model
		next, _ = m.Update(FrameMsg{Run: m.run})
		m = next.(Player)
		frames++
	}
	if frames != 3 {
		t.Errorf("expected 3 frames over 50ms, got %d", frames)
	}
	if m.Progress() != 1 {
		t.Errorf("expected progress 1, got %f", m.Progress())
	}

	// stale frames are ignored
	next, cmd := m.Update(FrameMsg{Run: m.run - 1})
	if cmd != nil || next.(Player).Progress() != 1 {
		t.Error("stale frame should not advance playback")
	}
}

func TestPlayer_ThemeAndQuit(t *testing.T) {
	m := NewPlayer(config.DefaultConfig())

	m, _ = press(m, runes("t"))
	if m.ThemeName() != NextTheme(config.DefaultTheme).Name {
		t.Errorf("expected next theme, got %s", m.ThemeName())
	}

	_, cmd := press(m, runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestPlayer_View(t *testing.T) {
	m := NewPlayer(config.DefaultConfig())
	view := m.View()

	for _, want := range []string{"SPRINGLAB", "500ms", "+0.30", "underdamped"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}
