// Package config holds the startup configuration: defaults, TOML file, environment and flags
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-mandel/constant"
	"github.com/lixenwraith/vi-mandel/input"
)

// Sentinel errors, wrapped with the offending value
var (
	ErrPalette      = errors.New("invalid palette")
	ErrScale        = errors.New("invalid initial scale")
	ErrViewportSize = errors.New("invalid viewport size")
	ErrIterations   = errors.New("invalid max iterations")
	ErrRadius       = errors.New("invalid escape radius")
	ErrCenter       = errors.New("invalid center")
	ErrPanStep      = errors.New("invalid pan step")
	ErrInterval     = errors.New("invalid frame interval")
	ErrKeys         = errors.New("invalid key binding")
)

// Keys holds optional key rebinding tables, key → action name
type Keys struct {
	Runes   map[string]string `toml:"runes"`
	Special map[string]string `toml:"special"`
}

// Config is the complete startup configuration
type Config struct {
	// Width and Height are the frame size in pixels; 0 derives it from the terminal
	Width  int `toml:"width"`
	Height int `toml:"height"`

	MaxIterations int     `toml:"max_iterations"`
	EscapeRadius  float64 `toml:"escape_radius"`

	// InitialScale is plane units per pixel; 0 fits DefaultFitSpan into the shorter side
	InitialScale float64 `toml:"initial_scale"`
	CenterX      float64 `toml:"center_x"`
	CenterY      float64 `toml:"center_y"`

	// Palette names a preset; Colors, when set, overrides it
	Palette string   `toml:"palette"`
	Colors  []string `toml:"colors"`

	PanStep       float64       `toml:"pan_step"`
	FrameInterval time.Duration `toml:"frame_interval"`
	Workers       int           `toml:"workers"`

	Sound     bool   `toml:"sound"`
	Debug     bool   `toml:"debug"`
	MarksFile string `toml:"marks_file"`

	Keys Keys `toml:"keys"`
}

// Default returns the compiled-in configuration
func Default() Config {
	return Config{
		MaxIterations: constant.DefaultMaxIterations,
		EscapeRadius:  constant.EscapeRadius,
		CenterX:       constant.DefaultCenterX,
		CenterY:       constant.DefaultCenterY,
		Palette:       DefaultPreset,
		PanStep:       constant.DefaultPanStep,
		FrameInterval: constant.FrameUpdateInterval,
	}
}

// Load decodes the TOML file at path over the defaults
// A missing file is tolerated unless explicit is set
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Default(), nil
		}
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Default(), fmt.Errorf("config %s: unknown keys %v", path, undecoded)
	}

	return cfg, nil
}

// Validate checks every field and returns all failures joined
func (c Config) Validate() error {
	var errs []error

	if c.Width < 0 || c.Height < 0 {
		errs = append(errs, fmt.Errorf("%w: %dx%d", ErrViewportSize, c.Width, c.Height))
	}
	if c.MaxIterations <= 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrIterations, c.MaxIterations))
	}
	if !positiveFinite(c.EscapeRadius) {
		errs = append(errs, fmt.Errorf("%w: %v", ErrRadius, c.EscapeRadius))
	}
	if c.InitialScale != 0 && !positiveFinite(c.InitialScale) {
		errs = append(errs, fmt.Errorf("%w: %v", ErrScale, c.InitialScale))
	}
	if !finite(c.CenterX) || !finite(c.CenterY) {
		errs = append(errs, fmt.Errorf("%w: (%v, %v)", ErrCenter, c.CenterX, c.CenterY))
	}
	if !positiveFinite(c.PanStep) {
		errs = append(errs, fmt.Errorf("%w: %v", ErrPanStep, c.PanStep))
	}
	if c.FrameInterval < constant.MinFrameInterval {
		errs = append(errs, fmt.Errorf("%w: %v, minimum %v", ErrInterval, c.FrameInterval, constant.MinFrameInterval))
	}
	if _, err := c.PaletteColors(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.KeyMap(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Dimensions returns the frame size, deriving unset sides from a terminal of cols×rows cells
// A terminal reporting no size on an axis yields the fallback for that axis
func (c Config) Dimensions(cols, rows int) (width, height int, err error) {
	width, height = c.Width, c.Height
	if width == 0 {
		width = cols
		if cols <= 0 {
			width = constant.FallbackWidth
		}
	}
	if height == 0 {
		height = (rows - constant.StatusBarRows) * constant.PixelsPerCell
		if rows <= 0 {
			height = constant.FallbackHeight
		}
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d from terminal %dx%d", ErrViewportSize, width, height, cols, rows)
	}
	return width, height, nil
}

// Scale returns InitialScale, or the scale that fits DefaultFitSpan into the shorter side
func (c Config) Scale(width, height int) float64 {
	if c.InitialScale > 0 {
		return c.InitialScale
	}
	return constant.DefaultFitSpan / float64(min(width, height))
}

// KeyMap returns the default bindings with the [keys] tables merged in
func (c Config) KeyMap() (*input.KeyMap, error) {
	km := input.DefaultKeyMap()
	if err := km.Merge(c.Keys.Runes, c.Keys.Special); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeys, err)
	}
	return km, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
