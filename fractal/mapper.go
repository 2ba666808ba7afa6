package fractal

import (
	"fmt"

	"github.com/lixenwraith/vi-mandel/viewport"
	"github.com/lixenwraith/vi-mandel/vmath"
)

// Mapper converts pixel coordinates of a fixed W×H viewport into plane points
type Mapper struct {
	width, height int
	center        vmath.Pixel
}

// NewMapper creates a mapper for a width×height pixel grid
// Center uses integer division so the center pixel exists for odd sizes
func NewMapper(width, height int) (Mapper, error) {
	if width <= 0 || height <= 0 {
		return Mapper{}, fmt.Errorf("mapper: invalid viewport %dx%d", width, height)
	}
	return Mapper{
		width:  width,
		height: height,
		center: vmath.Pixel{X: width / 2, Y: height / 2},
	}, nil
}

// Size returns the pixel dimensions the mapper was built for
func (m Mapper) Size() (width, height int) {
	return m.width, m.height
}

// Center returns the pixel that maps exactly onto the viewport offset
func (m Mapper) Center() vmath.Pixel {
	return m.center
}

// Map returns offset + (pixel - center) * scale
func (m Mapper) Map(px vmath.Pixel, st viewport.State) vmath.Point {
	c := m.Center()
	return vmath.Point{
		X: st.Offset.X + float64(px.X-c.X)*st.Scale,
		Y: st.Offset.Y + float64(px.Y-c.Y)*st.Scale,
	}
}
