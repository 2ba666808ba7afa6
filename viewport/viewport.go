// Package viewport holds the pan/zoom state of the explorer
package viewport

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/vi-mandel/input"
	"github.com/lixenwraith/vi-mandel/vmath"
)

// ErrScale reports a zoom scale that is not a positive finite number
var ErrScale = errors.New("scale must be positive and finite")

// Zoom stops at the normal float64 range so halving and doubling stay exact and Scale never reaches 0 or +Inf
const (
	minScale = 0x1p-1022
	maxScale = math.MaxFloat64 / 2
)

// State is an immutable snapshot of the viewport
// Scale is plane units per pixel; larger means zoomed out
// Offset is the plane point under the viewport center
type State struct {
	Scale  float64
	Offset vmath.Point
}

// Magnification returns initialScale / Scale
func (s State) Magnification(initialScale float64) float64 {
	return initialScale / s.Scale
}

// Viewport owns the mutable State; only Apply and Reset change it
// Scale only ever halves or doubles from a positive start, so Scale > 0 holds
type Viewport struct {
	state   State
	initial State
	panStep float64
}

// New creates a viewport; panStep is in pixels per key edge
func New(scale float64, offset vmath.Point, panStep float64) (*Viewport, error) {
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("viewport: %w: %v", ErrScale, scale)
	}
	if !offset.IsFinite() {
		return nil, fmt.Errorf("viewport: offset must be finite: %v", offset)
	}
	if !(panStep > 0) || math.IsInf(panStep, 0) {
		return nil, fmt.Errorf("viewport: pan step must be positive and finite: %v", panStep)
	}

	st := State{Scale: scale, Offset: offset}
	return &Viewport{state: st, initial: st, panStep: panStep}, nil
}

// State returns the current snapshot by value
func (v *Viewport) State() State {
	return v.state
}

// Initial returns the startup snapshot
func (v *Viewport) Initial() State {
	return v.initial
}

// Apply advances the state from one frame of navigation input and reports whether it changed
// A reset edge restores the initial state and discards the rest of the frame
func (v *Viewport) Apply(f input.Frame) bool {
	if f.Edges.Has(input.ActionReset) {
		changed := v.state != v.initial
		v.Reset()
		return changed
	}

	before := v.state

	switch f.Scroll {
	case input.ScrollUp:
		if v.state.Scale/2 >= minScale {
			v.state.Scale /= 2
		}
	case input.ScrollDown:
		if v.state.Scale <= maxScale {
			v.state.Scale *= 2
		}
	}

	// Every pan edge applies, at the scale after this frame's zoom; opposite edges cancel exactly
	var dx, dy int
	for _, pd := range input.PanDirections {
		if f.Edges.Has(pd.Action) {
			dx += pd.Dir.DX
			dy += pd.Dir.DY
		}
	}
	if dx != 0 || dy != 0 {
		step := v.state.Scale * v.panStep
		next := vmath.Point{
			X: v.state.Offset.X + float64(dx)*step,
			Y: v.state.Offset.Y + float64(dy)*step,
		}
		if next.IsFinite() {
			v.state.Offset = next
		}
	}

	return v.state != before
}

// Jump replaces the state with st, typically a recalled mark, and reports whether it changed
func (v *Viewport) Jump(st State) (bool, error) {
	if !(st.Scale >= minScale) || math.IsInf(st.Scale, 0) {
		return false, fmt.Errorf("viewport: jump: %w: %v", ErrScale, st.Scale)
	}
	if !st.Offset.IsFinite() {
		return false, fmt.Errorf("viewport: jump: offset must be finite: %v", st.Offset)
	}
	changed := v.state != st
	v.state = st
	return changed, nil
}

// Reset restores the initial state
func (v *Viewport) Reset() {
	v.state = v.initial
}
