package engine

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-mandel/audio"
	"github.com/lixenwraith/vi-mandel/render"
	"github.com/lixenwraith/vi-mandel/viewport"
)

// Sink receives whole frames; render.ScreenPresenter is the terminal implementation
type Sink interface {
	Present(fb *render.FrameBuffer, st viewport.State)
	// Size is the pixel area the sink can show; larger frames are clipped
	Size() (width, height int)
	Resize()
	// NeedsRedraw forces the next frame to render even if the state is unchanged
	NeedsRedraw() bool
}

// EventSource blocks for the next terminal event; nil means the source is closed
// tcell.Screen satisfies it
type EventSource interface {
	PollEvent() tcell.Event
}

// CuePlayer plays navigation sounds; audio.CuePlayer satisfies it
type CuePlayer interface {
	Play(c audio.Cue)
}

type silentCues struct{}

func (silentCues) Play(audio.Cue) {}
