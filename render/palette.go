package render

import (
	"errors"
	"fmt"
	"math"
)

// ErrPaletteSize reports a palette with fewer than two control colors
var ErrPaletteSize = errors.New("palette needs at least two colors")

// Palette is an immutable ordered list of control colors
// The last color is the in-set color
type Palette struct {
	colors []RGB
}

// NewPalette copies colors into a new palette
func NewPalette(colors []RGB) (Palette, error) {
	if len(colors) < 2 {
		return Palette{}, fmt.Errorf("palette: %w, got %d", ErrPaletteSize, len(colors))
	}
	owned := make([]RGB, len(colors))
	copy(owned, colors)
	return Palette{colors: owned}, nil
}

// Len returns the number of control colors
func (p Palette) Len() int {
	return len(p.colors)
}

// Last returns the in-set color
func (p Palette) Last() RGB {
	return p.colors[len(p.colors)-1]
}

// ColorFor maps an iteration count in [0, cap] onto the ramp
// idx = (N-1)·iterations/cap; the integer part picks the segment, the fraction the blend
// iterations == cap yields Last() exactly; out-of-range counts are clamped
func (p Palette) ColorFor(iterations, cap int) RGB {
	if cap <= 0 || iterations >= cap {
		return p.Last()
	}
	if iterations < 0 {
		iterations = 0
	}

	last := len(p.colors) - 1
	idxDec := float64(last) * float64(iterations) / float64(cap)
	idx := int(math.Floor(idxDec))
	if idx >= last {
		return p.Last()
	}
	frac := idxDec - float64(idx)

	return Lerp(p.colors[idx], p.colors[idx+1], frac)
}
