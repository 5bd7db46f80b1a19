package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/springlab/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LogLevelDebug, false},
		{"WARNING", LogLevelWarn, false},
		{"error", LogLevelError, false},
		{"loud", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSetupLogger(t *testing.T) {
	var buf bytes.Buffer
	l := setupLogger(&buf, LogLevelWarn)

	l.Info("hidden")
	l.Warn("shown", "k", 1)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info record should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "k=1") {
		t.Errorf("expected warn record, got %q", out)
	}
}

func newTestCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	configFile = ""
	cmd := &cobra.Command{Use: "test"}
	addSpringFlags(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return cmd
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spring.yaml")
	if err := os.WriteFile(path, []byte("duration_ms: 800\nbounce: 0.2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name         string
		args         []string
		file         bool
		wantDuration float64
		wantBounce   float64
	}{
		{"defaults", nil, false, config.DefaultDurationMillis, config.DefaultBounce},
		{"file", nil, true, 800, 0.2},
		{"preset over file", []string{"--preset", "snappy"}, true, 300, 0.1},
		{"flag over preset", []string{"--preset", "snappy", "--bounce", "0.4"}, true, 300, 0.4},
		{"flag over file", []string{"--duration", "250"}, true, 250, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newTestCommand(t, tt.args...)
			if tt.file {
				configFile = path
			}
			defer func() { configFile = "" }()

			cfg, err := loadConfig(cmd)
			if err != nil {
				t.Fatalf("load failed: %v", err)
			}
			if cfg.DurationMillis != tt.wantDuration || cfg.Bounce != tt.wantBounce {
				t.Errorf("expected (%v, %v), got (%v, %v)",
					tt.wantDuration, tt.wantBounce, cfg.DurationMillis, cfg.Bounce)
			}
		})
	}
}

func TestLoadConfig_UnknownPreset(t *testing.T) {
	cmd := newTestCommand(t, "--preset", "wobbly")

	_, err := loadConfig(cmd)
	if !errors.Is(err, config.ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestLoadConfig_UnknownTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spring.yaml")
	if err := os.WriteFile(path, []byte("theme: neon\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newTestCommand(t)
	configFile = path
	defer func() { configFile = "" }()

	_, err := loadConfig(cmd)
	if !errors.Is(err, config.ErrUnknownTheme) {
		t.Errorf("expected ErrUnknownTheme, got %v", err)
	}
}

func TestCheckAnalyzeFlags(t *testing.T) {
	tests := []struct {
		name    string
		span    float64
		samples int
		wantErr bool
	}{
		{"defaults", 8, 2048, false},
		{"zero span", 0, 2048, true},
		{"negative span", -1, 2048, true},
		{"zero samples", 8, 0, true},
		{"negative samples", 8, -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkAnalyzeFlags(tt.span, tt.samples)
			if (err != nil) != tt.wantErr {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
