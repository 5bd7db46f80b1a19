package config

type Preset struct {
	Label          string
	DurationMillis float64
	Bounce         float64
}

var Presets = map[string]Preset{
	"snappy":       {Label: "Snappy", DurationMillis: 300, Bounce: 0.1},
	"bouncy":       {Label: "Bouncy", DurationMillis: 500, Bounce: 0.3},
	"extra-bouncy": {Label: "Extra Bouncy", DurationMillis: 700, Bounce: 0.5},
	"no-bounce":    {Label: "No Bounce", DurationMillis: 500, Bounce: 0},
	"heavy":        {Label: "Heavy", DurationMillis: 600, Bounce: -0.5},
}

// presetOrder is the display and cycling order. Every key of Presets
// appears exactly once.
var presetOrder = []string{"snappy", "bouncy", "extra-bouncy", "no-bounce", "heavy"}

// GetPreset looks up a preset by name.
func GetPreset(name string) (Preset, bool) {
	p, ok := Presets[name]
	return p, ok
}

// ListPresets returns preset names in display order.
func ListPresets() []string {
	names := make([]string, len(presetOrder))
	copy(names, presetOrder)
	return names
}

// MatchPreset returns the first preset, in display order, with exactly the
// given duration and bounce.
func MatchPreset(durationMillis, bounce float64) (string, bool) {
	for _, name := range presetOrder {
		p := Presets[name]
		if p.DurationMillis == durationMillis && p.Bounce == bounce {
			return name, true
		}
	}
	return "", false
}
