package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// EnvPrefix prefixes environment variables that stand in for unset flags
const EnvPrefix = "VI_MANDEL_"

// colorList is a comma-separated flag value whose String round-trips through Set
type colorList struct {
	p *[]string
}

func (l colorList) String() string {
	if l.p == nil {
		return ""
	}
	return strings.Join(*l.p, ",")
}

func (l colorList) Set(s string) error {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	*l.p = out
	return nil
}

func (colorList) Type() string {
	return "colors"
}

// BindFlags registers one flag per configurable field, defaulting to c's current values
func BindFlags(fs *pflag.FlagSet, c *Config) {
	fs.IntVar(&c.Width, "width", c.Width, "frame width in pixels (0 = terminal width)")
	fs.IntVar(&c.Height, "height", c.Height, "frame height in pixels (0 = 2 × terminal rows above the status bar)")
	fs.IntVar(&c.MaxIterations, "iterations", c.MaxIterations, "iteration cap per pixel")
	fs.Float64Var(&c.EscapeRadius, "radius", c.EscapeRadius, "escape radius")
	fs.Float64Var(&c.InitialScale, "scale", c.InitialScale, "initial plane units per pixel (0 = fit)")
	fs.Float64Var(&c.CenterX, "center-x", c.CenterX, "initial center, real part")
	fs.Float64Var(&c.CenterY, "center-y", c.CenterY, "initial center, imaginary part")
	fs.StringVar(&c.Palette, "palette", c.Palette, "palette preset: "+strings.Join(PresetNames(), ", "))
	fs.Var(colorList{&c.Colors}, "colors", "comma-separated hex control colors, last is the in-set color (overrides --palette)")
	fs.Float64Var(&c.PanStep, "pan-step", c.PanStep, "pixels moved per pan key press")
	fs.DurationVar(&c.FrameInterval, "interval", c.FrameInterval, "frame interval")
	fs.IntVar(&c.Workers, "workers", c.Workers, "render goroutines (0 = number of CPUs)")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play navigation cues")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write a debug log under logs/")
	fs.StringVar(&c.MarksFile, "marks", c.MarksFile, "bolt database for persistent marks (empty = memory only)")
}

// EnvKey returns the environment variable consulted for a flag
func EnvKey(flagName string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

// Merge overlays onto cfg, in increasing precedence, environment values for flags
// left unset on the command line, then the flags that were set
func Merge(cfg *Config, cmdFlags *pflag.FlagSet, getenv func(string) string) error {
	overlay := pflag.NewFlagSet("overlay", pflag.ContinueOnError)
	BindFlags(overlay, cfg)

	var errs []error
	cmdFlags.VisitAll(func(f *pflag.Flag) {
		if overlay.Lookup(f.Name) == nil {
			return
		}

		value, source := f.Value.String(), "flag"
		if !f.Changed {
			value, source = getenv(EnvKey(f.Name)), EnvKey(f.Name)
			if value == "" {
				return
			}
		}

		if err := overlay.Set(f.Name, value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", source, err))
		}
	})

	return errors.Join(errs...)
}
