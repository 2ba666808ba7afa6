package render

import (
	"fmt"

	"github.com/lixenwraith/vi-mandel/vmath"
)

// bytesPerPixel is the RGBA8 stride
const bytesPerPixel = 4

// FrameBuffer is a row-major W×H RGBA8 image
type FrameBuffer struct {
	Width, Height int
	Pix           []byte
}

// NewFrameBuffer allocates a zeroed buffer
func NewFrameBuffer(width, height int) (*FrameBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("frame buffer: invalid size %dx%d", width, height)
	}
	return &FrameBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*bytesPerPixel),
	}, nil
}

// offset returns the byte index of pixel (x, y)
func (fb *FrameBuffer) offset(x, y int) int {
	return vmath.Pixel{X: x, Y: y}.Index(fb.Width) * bytesPerPixel
}

// Set writes an opaque pixel
func (fb *FrameBuffer) Set(x, y int, c RGB) {
	i := fb.offset(x, y)
	p := fb.Pix[i : i+bytesPerPixel : i+bytesPerPixel]
	p[0] = c.R
	p[1] = c.G
	p[2] = c.B
	p[3] = 255
}

// At returns the color of pixel (x, y), alpha dropped
func (fb *FrameBuffer) At(x, y int) RGB {
	i := fb.offset(x, y)
	return RGB{R: fb.Pix[i], G: fb.Pix[i+1], B: fb.Pix[i+2]}
}
