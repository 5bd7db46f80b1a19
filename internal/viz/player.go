package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/springlab/internal/config"
	"github.com/san-kum/springlab/internal/curve"
	"github.com/san-kum/springlab/internal/metrics"
	"github.com/san-kum/springlab/internal/reference"
	"github.com/san-kum/springlab/internal/spring"
	"github.com/san-kum/springlab/internal/tui"
)

const (
	MinDurationMillis = 200.0
	MaxDurationMillis = 1000.0
	DurationStep      = 50.0

	MinBounce  = -1.0
	MaxBounce  = 0.6
	BounceStep = 0.05

	plotRows    = 10
	minPlotCols = 20
	maxPlotCols = 100
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
)

// FrameMsg advances playback. Frames from an earlier run are ignored so a
// quick pause and resume never leaves two tick chains going.
type FrameMsg struct {
	Run int
	At  time.Time
}

// Player is the interactive spring editor: arrow keys reshape the spring,
// space plays the box along its track next to a harmonica-driven ghost.
type Player struct {
	cfg     config.Config
	params  spring.Params
	points  []curve.Point
	span    float64
	summary map[string]float64

	presets   []string
	presetIdx int
	theme     Theme

	playing bool
	run     int
	t       float64
	ghost   *reference.Tracker
	bar     progress.Model

	width, height int
}

func NewPlayer(cfg *config.Config) Player {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	theme, _ := GetTheme(cfg.Theme)

	c := *cfg
	if c.FPS < 1 {
		c.FPS = config.DefaultFPS
	}

	p := Player{
		cfg:       c,
		presets:   config.ListPresets(),
		presetIdx: -1,
		theme:     theme,
		width:     80,
		height:    24,
	}
	if _, ok := config.GetPreset(c.Preset); ok {
		p.setPreset(c.Preset)
	} else {
		p.matchPreset()
	}
	p.bar = newBar(theme)
	p.recompute()
	return p
}

func newBar(theme Theme) progress.Model {
	bar := progress.New(
		progress.WithScaledGradient(theme.Gradient[0], theme.Gradient[1]),
		progress.WithoutPercentage(),
	)
	bar.Width = 40
	return bar
}

func (m *Player) recompute() {
	m.params = spring.Compute(m.cfg.DurationMillis, m.cfg.Bounce)
	m.span = curve.Span(m.cfg.DurationMillis, m.cfg.SpanFactor)
	m.points = curve.Sample(m.params, m.span, m.cfg.Steps)
	m.summary = metrics.Evaluate(m.points)
	m.ghost = reference.NewTracker(m.params, m.cfg.FPS)
	m.t = 0
}

func (m Player) tick() tea.Cmd {
	run := m.run
	return tea.Tick(time.Second/time.Duration(m.cfg.FPS), func(t time.Time) tea.Msg {
		return FrameMsg{Run: run, At: t}
	})
}

func (m Player) Init() tea.Cmd { return nil }

func (m Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.bar.Width = clampInt(msg.Width-8, 20, 60)
		return m, nil
	case FrameMsg:
		if !m.playing || msg.Run != m.run {
			return m, nil
		}
		m.t += 1 / float64(m.cfg.FPS)
		m.ghost.Step(1)
		if m.t >= m.span {
			m.t = m.span
			m.playing = false
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Player) handleKey(msg tea.KeyMsg) (Player, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		m.setShape(m.cfg.DurationMillis-DurationStep, m.cfg.Bounce)
	case "right", "l":
		m.setShape(m.cfg.DurationMillis+DurationStep, m.cfg.Bounce)
	case "up", "k":
		m.setShape(m.cfg.DurationMillis, m.cfg.Bounce+BounceStep)
	case "down", "j":
		m.setShape(m.cfg.DurationMillis, m.cfg.Bounce-BounceStep)
	case "p":
		m.presetIdx = (m.presetIdx + 1) % len(m.presets)
		name := m.presets[m.presetIdx]
		preset, _ := config.GetPreset(name)
		m.cfg.DurationMillis, m.cfg.Bounce = preset.DurationMillis, preset.Bounce
		m.setPreset(name)
		m.recompute()
		m.playing = false
	case "t":
		m.theme = NextTheme(m.theme.Name)
		m.cfg.Theme = m.theme.Name
		m.bar = newBar(m.theme)
		m.bar.Width = clampInt(m.width-8, 20, 60)
	case " ", "enter":
		if m.playing {
			m.playing = false
			return m, nil
		}
		if m.t >= m.span {
			m.t = 0
			m.ghost.Reset()
		}
		m.playing = true
		m.run++
		return m, m.tick()
	case "r":
		m.t = 0
		m.ghost.Reset()
		m.playing = false
	}
	return m, nil
}

// setShape clamps to the editor's range. The preset name follows the shape:
// it is kept only while duration and bounce equal a preset's.
func (m *Player) setShape(durationMillis, bounce float64) {
	durationMillis = math.Max(MinDurationMillis, math.Min(MaxDurationMillis, durationMillis))
	bounce = math.Round(bounce*100) / 100
	bounce = math.Max(MinBounce, math.Min(MaxBounce, bounce))
	if durationMillis == m.cfg.DurationMillis && bounce == m.cfg.Bounce {
		return
	}
	m.cfg.DurationMillis, m.cfg.Bounce = durationMillis, bounce
	m.matchPreset()
	m.recompute()
	m.playing = false
}

func (m *Player) setPreset(name string) {
	m.cfg.Preset = ""
	m.presetIdx = -1
	for i, n := range m.presets {
		if n == name {
			m.cfg.Preset = name
			m.presetIdx = i
		}
	}
}

func (m *Player) matchPreset() {
	name, _ := config.MatchPreset(m.cfg.DurationMillis, m.cfg.Bounce)
	m.setPreset(name)
}

func (m Player) View() string {
	title := lipgloss.NewStyle().Foreground(m.theme.Title).Bold(true)
	text := lipgloss.NewStyle().Foreground(m.theme.Text)
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)

	var b strings.Builder

	name := "custom"
	if m.cfg.Preset != "" {
		if preset, ok := config.GetPreset(m.cfg.Preset); ok {
			name = preset.Label
		}
	}
	b.WriteString("\n  " + title.Render("SPRINGLAB") + "  " + muted.Render(name) + "\n\n")

	b.WriteString(fmt.Sprintf("  %s %s  %s %s  %s %s  %s %s\n",
		labelStyle.Render("duration"), text.Render(fmt.Sprintf("%4.0fms", m.cfg.DurationMillis)),
		labelStyle.Render("bounce"), text.Render(fmt.Sprintf("%+.2f", m.cfg.Bounce)),
		labelStyle.Render("ζ"), text.Render(fmt.Sprintf("%.4f", m.params.Zeta)),
		labelStyle.Render("ω"), text.Render(fmt.Sprintf("%.2f rad/s", m.params.OmegaN)),
	))
	b.WriteString(fmt.Sprintf("  %s %s  %s %s  %s %s\n\n",
		labelStyle.Render("regime"), text.Render(m.params.Regime().String()),
		labelStyle.Render("overshoot"), text.Render(fmt.Sprintf("%.1f%%", m.summary["overshoot"]*100)),
		labelStyle.Render("settle"), text.Render(formatSeconds(m.summary["settling_time"])),
	))

	cols := clampInt(m.width-4, minPlotCols, maxPlotCols)
	canvas := NewCanvas(cols, plotRows)
	cursor := -1.0
	if m.playing || m.t > 0 {
		cursor = m.t
	}
	PlotCurve(canvas, m.points, m.cfg.MaxY, cursor)
	plot := lipgloss.NewStyle().Foreground(m.theme.Curve)
	for _, line := range canvas.Lines() {
		b.WriteString("  " + plot.Render(line) + "\n")
	}
	b.WriteString("\n")

	b.WriteString("  " + m.renderTrack(cols) + "\n\n")
	b.WriteString("  " + m.bar.ViewAs(m.Progress()) + "  " + muted.Render(fmt.Sprintf("t=%.3fs", m.t)) + "\n\n")

	hints := []struct{ key, desc string }{
		{"←/→", "duration"}, {"↑/↓", "bounce"}, {"space", "play"},
		{"p", "preset"}, {"t", "theme"}, {"q", "quit"},
	}
	b.WriteString("  ")
	for _, h := range hints {
		b.WriteString(keyStyle.Render(h.key) + hintStyle.Render(" "+h.desc+"  "))
	}
	b.WriteString("\n")
	return b.String()
}

// renderTrack draws the box at the closed-form position and the ghost at
// the harmonica position where they differ.
func (m Player) renderTrack(width int) string {
	y := m.params.At(m.t)
	rail := tui.Track(width, y, m.cfg.MaxY)
	ghost := tui.Column(width, m.ghost.Pos, m.cfg.MaxY)
	if rail[ghost] != tui.BoxRune {
		rail[ghost] = '□'
	}

	box := lipgloss.NewStyle().Foreground(m.theme.Box).Bold(true)
	shade := lipgloss.NewStyle().Foreground(m.theme.Ghost)
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)

	var b strings.Builder
	for _, r := range rail {
		switch r {
		case tui.BoxRune:
			b.WriteString(box.Render(string(r)))
		case '□':
			b.WriteString(shade.Render(string(r)))
		default:
			b.WriteString(muted.Render(string(r)))
		}
	}
	return b.String()
}

// Progress is the playback position as a fraction of the sampled span.
func (m Player) Progress() float64 {
	if m.span <= 0 {
		return 0
	}
	return math.Min(1, m.t/m.span)
}

func (m Player) Params() spring.Params { return m.params }
func (m Player) Config() config.Config { return m.cfg }
func (m Player) Playing() bool         { return m.playing }
func (m Player) ThemeName() string     { return m.theme.Name }

func formatSeconds(s float64) string {
	if math.IsInf(s, 1) {
		return "not settled"
	}
	return fmt.Sprintf("%.3fs", s)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RunInteractive opens the player full screen until the user quits.
func RunInteractive(cfg *config.Config) error {
	_, err := tea.NewProgram(NewPlayer(cfg), tea.WithAltScreen()).Run()
	return err
}
