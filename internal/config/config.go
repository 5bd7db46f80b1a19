package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDurationMillis = 500.0
	DefaultBounce         = 0.3
	DefaultSteps          = 200
	DefaultSpanFactor     = 2.0
	DefaultFPS            = 60
	DefaultTheme          = "cyberpunk"
	DefaultMaxY           = 1.2

	MaxFPS = 240
)

// Themes lists the colour themes the player and SVG export know about.
var Themes = []string{"cyberpunk", "retro", "minimal", "ocean", "sunset"}

type Config struct {
	DurationMillis float64 `yaml:"duration_ms"`
	Bounce         float64 `yaml:"bounce"`
	Preset         string  `yaml:"preset"`
	Steps          int     `yaml:"steps"`
	SpanFactor     float64 `yaml:"span_factor"`
	FPS            int     `yaml:"fps"`
	Theme          string  `yaml:"theme"`
	MaxY           float64 `yaml:"max_y"`
}

func DefaultConfig() *Config {
	return &Config{
		DurationMillis: DefaultDurationMillis,
		Bounce:         DefaultBounce,
		Steps:          DefaultSteps,
		SpanFactor:     DefaultSpanFactor,
		FPS:            DefaultFPS,
		Theme:          DefaultTheme,
		MaxY:           DefaultMaxY,
	}
}

// Load reads a YAML file over the defaults. Fields missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Steps < 2 {
		return &FieldError{Field: "steps", Value: c.Steps, Err: ErrInvalidValue}
	}
	if c.SpanFactor <= 0 {
		return &FieldError{Field: "span_factor", Value: c.SpanFactor, Err: ErrInvalidValue}
	}
	if c.FPS < 1 || c.FPS > MaxFPS {
		return &FieldError{Field: "fps", Value: c.FPS, Err: ErrInvalidValue}
	}
	if c.MaxY <= 0 {
		return &FieldError{Field: "max_y", Value: c.MaxY, Err: ErrInvalidValue}
	}
	if !knownTheme(c.Theme) {
		return &FieldError{Field: "theme", Value: c.Theme, Err: ErrUnknownTheme}
	}
	if c.Preset != "" {
		if _, ok := GetPreset(c.Preset); !ok {
			return &FieldError{Field: "preset", Value: c.Preset, Err: ErrUnknownPreset}
		}
	}
	return nil
}

func knownTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}

// Resolve applies the named preset, if any, over duration and bounce.
func (c *Config) Resolve() error {
	if c.Preset == "" {
		return nil
	}
	p, ok := GetPreset(c.Preset)
	if !ok {
		return &FieldError{Field: "preset", Value: c.Preset, Err: ErrUnknownPreset}
	}
	c.DurationMillis = p.DurationMillis
	c.Bounce = p.Bounce
	return nil
}
