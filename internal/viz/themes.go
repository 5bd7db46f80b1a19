package viz

import "github.com/charmbracelet/lipgloss"

// Theme colours the player. Gradient feeds the progress bar.
type Theme struct {
	Name     string
	Curve    lipgloss.Color
	Ghost    lipgloss.Color
	Box      lipgloss.Color
	Title    lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Gradient [2]string
}

var (
	ThemeCyberpunk = Theme{
		Name:     "cyberpunk",
		Curve:    lipgloss.Color("#ff00ff"),
		Ghost:    lipgloss.Color("#00ffff"),
		Box:      lipgloss.Color("#ffff00"),
		Title:    lipgloss.Color("#00ffff"),
		Text:     lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#666666"),
		Gradient: [2]string{"#ff00ff", "#00ffff"},
	}

	ThemeRetro = Theme{
		Name:     "retro",
		Curve:    lipgloss.Color("#00ff00"),
		Ghost:    lipgloss.Color("#008800"),
		Box:      lipgloss.Color("#88ff88"),
		Title:    lipgloss.Color("#00ff00"),
		Text:     lipgloss.Color("#00ff00"),
		Muted:    lipgloss.Color("#005500"),
		Gradient: [2]string{"#005500", "#00ff00"},
	}

	ThemeMinimal = Theme{
		Name:     "minimal",
		Curve:    lipgloss.Color("#ffffff"),
		Ghost:    lipgloss.Color("#888888"),
		Box:      lipgloss.Color("#0088ff"),
		Title:    lipgloss.Color("#ffffff"),
		Text:     lipgloss.Color("#cccccc"),
		Muted:    lipgloss.Color("#888888"),
		Gradient: [2]string{"#444444", "#ffffff"},
	}

	ThemeOcean = Theme{
		Name:     "ocean",
		Curve:    lipgloss.Color("#00a8cc"),
		Ghost:    lipgloss.Color("#4488aa"),
		Box:      lipgloss.Color("#ffd700"),
		Title:    lipgloss.Color("#0077be"),
		Text:     lipgloss.Color("#e0f0ff"),
		Muted:    lipgloss.Color("#4488aa"),
		Gradient: [2]string{"#0077be", "#00ff88"},
	}

	ThemeSunset = Theme{
		Name:     "sunset",
		Curve:    lipgloss.Color("#ff6b6b"),
		Ghost:    lipgloss.Color("#ff9ff3"),
		Box:      lipgloss.Color("#feca57"),
		Title:    lipgloss.Color("#ff6b6b"),
		Text:     lipgloss.Color("#fff5f5"),
		Muted:    lipgloss.Color("#8b6b8c"),
		Gradient: [2]string{"#FF8C00", "#FF5F1F"},
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetro,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns the named theme, or cyberpunk with ok false.
func GetTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return ThemeCyberpunk, false
}

// NextTheme cycles through Themes in order.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
