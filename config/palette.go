package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-mandel/render"
)

// DefaultPreset is the palette used when none is configured
const DefaultPreset = "classic"

// rampSteps is the number of control colors generated for blended presets
const rampSteps = 12

// presets build control colors; the last one is the in-set color
var presets = map[string]func() []render.RGB{
	"classic": func() []render.RGB {
		return mustHexList("#000764", "#206bcb", "#edffff", "#ffaa00", "#000200", "#000000")
	},
	"fire": func() []render.RGB {
		return append(ramp(rampSteps, "#000000", "#8b0000", "#ff4500", "#ffd700", "#ffffe0"), render.RGBBlack)
	},
	"ocean": func() []render.RGB {
		return append(ramp(rampSteps, "#000814", "#001d3d", "#003566", "#00b4d8", "#caf0f8"), render.RGBBlack)
	},
	"mono": func() []render.RGB {
		return []render.RGB{render.RGBBlack, render.RGBWhite, render.RGBBlack}
	},
}

// PresetNames returns the known preset names, sorted
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Preset returns the control colors of a named preset
func Preset(name string) ([]render.RGB, error) {
	build, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: unknown preset %q (have %s)", ErrPalette, name, strings.Join(PresetNames(), ", "))
	}
	return build(), nil
}

// PaletteColors resolves Colors, or the Palette preset when Colors is empty
func (c Config) PaletteColors() ([]render.RGB, error) {
	if len(c.Colors) == 0 {
		return Preset(c.Palette)
	}
	if len(c.Colors) < 2 {
		return nil, fmt.Errorf("%w: need at least two colors, got %d", ErrPalette, len(c.Colors))
	}

	out := make([]render.RGB, 0, len(c.Colors))
	for _, s := range c.Colors {
		rgb, err := ParseHex(s)
		if err != nil {
			return nil, err
		}
		out = append(out, rgb)
	}
	return out, nil
}

// ParseHex parses "#rrggbb", "#rgb" or the same without the leading '#'
func ParseHex(s string) (render.RGB, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return render.RGB{}, fmt.Errorf("%w: %q: %v", ErrPalette, s, err)
	}
	return toRGB(c), nil
}

func toRGB(c colorful.Color) render.RGB {
	r, g, b := c.Clamped().RGB255()
	return render.RGB{R: r, G: g, B: b}
}

func mustHexList(hex ...string) []render.RGB {
	out := make([]render.RGB, len(hex))
	for i, h := range hex {
		rgb, err := ParseHex(h)
		if err != nil {
			panic(err)
		}
		out[i] = rgb
	}
	return out
}

// ramp samples steps colors evenly along stops, blending in Lab space
func ramp(steps int, stops ...string) []render.RGB {
	cols := make([]colorful.Color, len(stops))
	for i, s := range stops {
		c, err := colorful.Hex(s)
		if err != nil {
			panic(err)
		}
		cols[i] = c
	}

	out := make([]render.RGB, steps)
	segments := float64(len(cols) - 1)
	for i := range out {
		pos := float64(i) / float64(steps-1) * segments
		seg := min(int(pos), len(cols)-2)
		out[i] = toRGB(cols[seg].BlendLab(cols[seg+1], pos-float64(seg)))
	}
	return out
}
