package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/vi-mandel/constant"
	"github.com/lixenwraith/vi-mandel/input"
	"github.com/lixenwraith/vi-mandel/render"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vi-mandel.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   error
	}{
		{"Negative width", func(c *Config) { c.Width = -1 }, ErrViewportSize},
		{"Zero iterations", func(c *Config) { c.MaxIterations = 0 }, ErrIterations},
		{"Zero radius", func(c *Config) { c.EscapeRadius = 0 }, ErrRadius},
		{"Inf radius", func(c *Config) { c.EscapeRadius = math.Inf(1) }, ErrRadius},
		{"Negative scale", func(c *Config) { c.InitialScale = -0.01 }, ErrScale},
		{"NaN scale", func(c *Config) { c.InitialScale = math.NaN() }, ErrScale},
		{"NaN center", func(c *Config) { c.CenterY = math.NaN() }, ErrCenter},
		{"Zero pan step", func(c *Config) { c.PanStep = 0 }, ErrPanStep},
		{"Tiny interval", func(c *Config) { c.FrameInterval = time.Microsecond }, ErrInterval},
		{"Unknown preset", func(c *Config) { c.Palette = "neon" }, ErrPalette},
		{"Single color", func(c *Config) { c.Colors = []string{"#ffffff"} }, ErrPalette},
		{"Bad hex", func(c *Config) { c.Colors = []string{"#ffffff", "#zz0000"} }, ErrPalette},
		{"Bad key", func(c *Config) { c.Keys.Runes = map[string]string{"w": "warp"} }, ErrKeys},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			if err := c.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateJoinsAllErrors(t *testing.T) {
	c := Default()
	c.MaxIterations = -1
	c.EscapeRadius = -2
	c.Palette = "nope"

	err := c.Validate()
	for _, want := range []error{ErrIterations, ErrRadius, ErrPalette} {
		if !errors.Is(err, want) {
			t.Errorf("Joined error missing %v: %v", want, err)
		}
	}
	if errors.Is(err, ErrScale) {
		t.Error("Unexpected ErrScale")
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
max_iterations = 1000
escape_radius = 4.0
center_x = -0.75
center_y = 0.1
palette = "fire"
frame_interval = "33ms"
workers = 3
marks_file = "marks.db"

[keys.runes]
w = "pan_up"

[keys.special]
f1 = "reset"
`)

	c, err := Load(path, true)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if c.MaxIterations != 1000 || c.EscapeRadius != 4 || c.CenterX != -0.75 || c.CenterY != 0.1 {
		t.Errorf("Numeric fields not loaded: %+v", c)
	}
	if c.Palette != "fire" || c.Workers != 3 || c.MarksFile != "marks.db" {
		t.Errorf("Fields not loaded: %+v", c)
	}
	if c.FrameInterval != 33*time.Millisecond {
		t.Errorf("FrameInterval = %v", c.FrameInterval)
	}
	// Untouched fields keep their defaults
	if c.PanStep != Default().PanStep {
		t.Errorf("PanStep = %v, want default", c.PanStep)
	}

	km, err := c.KeyMap()
	if err != nil {
		t.Fatal(err)
	}
	if km.Lookup(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)) != input.ActionPanUp {
		t.Error("Rune rebinding not applied")
	}
	if km.Lookup(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone)) != input.ActionReset {
		t.Error("Special key rebinding not applied")
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")

	c, err := Load(path, false)
	if err != nil {
		t.Fatalf("Implicit missing file should fall back to defaults: %v", err)
	}
	if c.MaxIterations != Default().MaxIterations {
		t.Error("Expected defaults")
	}

	if _, err := Load(path, true); err == nil {
		t.Error("Explicit missing file should fail")
	}

	if _, err := Load("", true); err != nil {
		t.Errorf("Empty path should load defaults: %v", err)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"Unknown key", "max_iteration = 10\n"},
		{"Wrong type", "max_iterations = \"many\"\n"},
		{"Syntax", "max_iterations = \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body), true); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		cols, rows    int
		wantW, wantH  int
		wantErr       bool
	}{
		{"From terminal", 0, 0, 120, 40, 120, 78, false},
		{"Fixed", 200, 100, 80, 24, 200, 100, false},
		{"Mixed", 0, 50, 80, 24, 80, 50, false},
		{"Status bar only", 0, 0, 80, 1, 0, 0, true},
		{"Unknown terminal size", 0, 0, 0, 0, constant.FallbackWidth, constant.FallbackHeight, false},
		{"Unknown rows", 0, 0, 80, 0, 80, constant.FallbackHeight, false},
		{"Fixed ignores unknown size", 64, 32, 0, 0, 64, 32, false},
		{"Negative width", -1, 0, 80, 24, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			c.Width, c.Height = tt.width, tt.height
			w, h, err := c.Dimensions(tt.cols, tt.rows)
			if tt.wantErr {
				if !errors.Is(err, ErrViewportSize) {
					t.Errorf("Expected ErrViewportSize, got %v", err)
				}
				return
			}
			if err != nil || w != tt.wantW || h != tt.wantH {
				t.Errorf("Dimensions = %dx%d, %v; want %dx%d", w, h, err, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestScale(t *testing.T) {
	c := Default()
	if got := c.Scale(160, 96); got != 3.5/96 {
		t.Errorf("Fit scale = %v", got)
	}
	c.InitialScale = 0.002
	if got := c.Scale(160, 96); got != 0.002 {
		t.Errorf("Explicit scale = %v", got)
	}
}

func TestPresets(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			colors, err := Preset(name)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := render.NewPalette(colors); err != nil {
				t.Errorf("Preset does not build a palette: %v", err)
			}
		})
	}

	if _, err := Preset("CLASSIC"); err != nil {
		t.Errorf("Preset lookup should be case-insensitive: %v", err)
	}

	fire, _ := Preset("fire")
	if fire[0] != render.RGBBlack || fire[len(fire)-1] != render.RGBBlack {
		t.Errorf("Fire ramp endpoints = %v, %v", fire[0], fire[len(fire)-1])
	}
	if fire[rampSteps-1] != (render.RGB{255, 255, 224}) {
		t.Errorf("Fire ramp should end on its last stop, got %v", fire[rampSteps-1])
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    render.RGB
		wantErr bool
	}{
		{"#ff8000", render.RGB{255, 128, 0}, false},
		{"00ff00", render.RGB{0, 255, 0}, false},
		{" #fff ", render.RGB{255, 255, 255}, false},
		{"#12345", render.RGB{}, true},
		{"red", render.RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrPalette) {
					t.Errorf("Expected ErrPalette, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseHex(%q) = %v, %v", tt.in, got, err)
			}
		})
	}
}

func TestMergePrecedence(t *testing.T) {
	// File layer
	cfg := Default()
	cfg.MaxIterations = 500
	cfg.Workers = 2
	cfg.Palette = "ocean"

	// Command line: --iterations set, --workers and --palette left alone
	flagCfg := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs, &flagCfg)
	if err := fs.Parse([]string{"--iterations=64", "--colors=#000000,#ffffff"}); err != nil {
		t.Fatal(err)
	}

	env := map[string]string{
		"VI_MANDEL_ITERATIONS": "9999", // shadowed by the flag
		"VI_MANDEL_WORKERS":    "6",
		"VI_MANDEL_INTERVAL":   "40ms",
	}
	getenv := func(k string) string { return env[k] }

	if err := Merge(&cfg, fs, getenv); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	if cfg.MaxIterations != 64 {
		t.Errorf("Flag should win: MaxIterations = %d", cfg.MaxIterations)
	}
	if cfg.Workers != 6 {
		t.Errorf("Env should override file: Workers = %d", cfg.Workers)
	}
	if cfg.FrameInterval != 40*time.Millisecond {
		t.Errorf("FrameInterval = %v", cfg.FrameInterval)
	}
	if cfg.Palette != "ocean" {
		t.Errorf("Unset flag without env must keep file value: Palette = %q", cfg.Palette)
	}
	if len(cfg.Colors) != 2 || cfg.Colors[1] != "#ffffff" {
		t.Errorf("Colors = %v", cfg.Colors)
	}
}

func TestMergeBadEnv(t *testing.T) {
	cfg := Default()
	flagCfg := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs, &flagCfg)
	fs.String("config", "", "not a config field")

	getenv := func(k string) string {
		if k == "VI_MANDEL_WORKERS" {
			return "lots"
		}
		return ""
	}
	if err := Merge(&cfg, fs, getenv); err == nil {
		t.Error("Expected error for unparsable environment value")
	}
}

func TestEnvKey(t *testing.T) {
	if got := EnvKey("center-x"); got != "VI_MANDEL_CENTER_X" {
		t.Errorf("EnvKey = %q", got)
	}
}
