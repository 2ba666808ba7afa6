package render

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/lixenwraith/vi-mandel/fractal"
	"github.com/lixenwraith/vi-mandel/viewport"
	"github.com/lixenwraith/vi-mandel/vmath"
)

// ErrBufferSize reports a frame buffer whose dimensions differ from the rasterizer's
var ErrBufferSize = errors.New("frame buffer size mismatch")

// Rasterizer composes mapper → evaluator → palette for every pixel of a fixed viewport
type Rasterizer struct {
	mapper    fractal.Mapper
	evaluator fractal.Evaluator
	palette   Palette
	workers   int
}

// NewRasterizer creates a rasterizer; workers <= 0 selects runtime.NumCPU()
func NewRasterizer(mapper fractal.Mapper, evaluator fractal.Evaluator, palette Palette, workers int) *Rasterizer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Rasterizer{
		mapper:    mapper,
		evaluator: evaluator,
		palette:   palette,
		workers:   workers,
	}
}

// Size returns the pixel dimensions of every frame
func (r *Rasterizer) Size() (width, height int) {
	return r.mapper.Size()
}

// Workers returns the goroutine count used per frame
func (r *Rasterizer) Workers() int {
	return r.workers
}

// Render returns a freshly allocated frame for st
func (r *Rasterizer) Render(st viewport.State) *FrameBuffer {
	w, h := r.mapper.Size()
	fb := &FrameBuffer{Width: w, Height: h, Pix: make([]byte, w*h*bytesPerPixel)}
	r.fill(fb, st)
	return fb
}

// RenderInto overwrites every pixel of fb, which must match the rasterizer size
func (r *Rasterizer) RenderInto(fb *FrameBuffer, st viewport.State) error {
	w, h := r.mapper.Size()
	if fb == nil || fb.Width != w || fb.Height != h || len(fb.Pix) != w*h*bytesPerPixel {
		if fb == nil {
			return fmt.Errorf("rasterizer: %w: nil buffer", ErrBufferSize)
		}
		return fmt.Errorf("rasterizer: %w: have %dx%d, want %dx%d", ErrBufferSize, fb.Width, fb.Height, w, h)
	}
	r.fill(fb, st)
	return nil
}

// fill hands rows to workers and blocks until every row is written
// Each pixel lands at its own row-major offset, so completion order does not matter
func (r *Rasterizer) fill(fb *FrameBuffer, st viewport.State) {
	_, h := r.mapper.Size()

	workers := r.workers
	if workers > h {
		workers = h
	}
	if workers <= 1 {
		for y := 0; y < h; y++ {
			r.row(fb, y, st)
		}
		return
	}

	rows := make(chan int, h)
	for y := 0; y < h; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for y := range rows {
				r.row(fb, y, st)
			}
		}()
	}
	wg.Wait()
}

// row renders one scanline
func (r *Rasterizer) row(fb *FrameBuffer, y int, st viewport.State) {
	maxIter := r.evaluator.MaxIterations()
	for x := 0; x < fb.Width; x++ {
		c := r.mapper.Map(vmath.Pixel{X: x, Y: y}, st)
		res := r.evaluator.Evaluate(c)
		fb.Set(x, y, r.palette.ColorFor(res.Iterations, maxIter))
	}
}
