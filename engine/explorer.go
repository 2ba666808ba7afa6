// Package engine drives the explorer frame loop: input, navigation, rendering, presentation
package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-mandel/audio"
	"github.com/lixenwraith/vi-mandel/constant"
	"github.com/lixenwraith/vi-mandel/core"
	"github.com/lixenwraith/vi-mandel/input"
	"github.com/lixenwraith/vi-mandel/marks"
	"github.com/lixenwraith/vi-mandel/render"
	"github.com/lixenwraith/vi-mandel/status"
	"github.com/lixenwraith/vi-mandel/viewport"
)

// ErrEventsClosed is returned by Run when the event source shuts down
var ErrEventsClosed = errors.New("event source closed")

// Options wires an Explorer; Tracker, Viewport, Rasterizer and Sink are required
type Options struct {
	Tracker    *input.Tracker
	Viewport   *viewport.Viewport
	Rasterizer *render.Rasterizer
	Sink       Sink

	Marks   marks.Store      // nil keeps marks in memory
	Cues    CuePlayer        // nil plays nothing
	Metrics *status.Registry // nil allocates a private registry
	Clock   Clock            // nil reads the system clock
}

// Explorer owns the viewport and runs one navigation + render step per frame
// Every method runs on the frame goroutine
type Explorer struct {
	tracker *input.Tracker
	view    *viewport.Viewport
	raster  *render.Rasterizer
	sink    Sink
	marks   marks.Store
	cues    CuePlayer
	metrics *status.Registry
	clock   Clock

	// last is the most recent frame, re-presented when only the status line changes
	last *render.FrameBuffer
}

// NewExplorer validates the wiring and creates an explorer
func NewExplorer(opts Options) (*Explorer, error) {
	switch {
	case opts.Tracker == nil:
		return nil, fmt.Errorf("explorer: tracker is required")
	case opts.Viewport == nil:
		return nil, fmt.Errorf("explorer: viewport is required")
	case opts.Rasterizer == nil:
		return nil, fmt.Errorf("explorer: rasterizer is required")
	case opts.Sink == nil:
		return nil, fmt.Errorf("explorer: sink is required")
	}

	e := &Explorer{
		tracker: opts.Tracker,
		view:    opts.Viewport,
		raster:  opts.Rasterizer,
		sink:    opts.Sink,
		marks:   opts.Marks,
		cues:    opts.Cues,
		metrics: opts.Metrics,
		clock:   opts.Clock,
	}
	if e.marks == nil {
		e.marks = marks.NewMemory()
	}
	if e.cues == nil {
		e.cues = silentCues{}
	}
	if e.metrics == nil {
		e.metrics = status.NewRegistry()
	}
	if e.clock == nil {
		e.clock = systemClock{}
	}
	return e, nil
}

// Metrics returns the registry the explorer writes to
func (e *Explorer) Metrics() *status.Registry {
	return e.metrics
}

// State returns the current viewport snapshot
func (e *Explorer) State() viewport.State {
	return e.view.State()
}

// Feed hands one terminal event to the input tracker
func (e *Explorer) Feed(ev tcell.Event) {
	e.tracker.Feed(ev)
}

// Update runs one frame: input snapshot, navigation, then render and present
// Navigation always completes before rendering, and the rasterizer gets a copy of the state
// Returns false once quit was requested
func (e *Explorer) Update(dt time.Duration) bool {
	e.metrics.Frames.Add(1)
	e.metrics.Interval.Store(int64(dt))

	f := e.tracker.Snapshot()
	if f.Quit {
		return false
	}

	if f.Resized {
		e.sink.Resize()
		if sw, sh := e.sink.Size(); sw > 0 && sh > 0 {
			w, h := e.raster.Size()
			log.Printf("resize: screen %dx%d px, frame %dx%d px", sw, sh, w, h)
		}
	}

	moved := e.view.Apply(f)
	if moved {
		e.playNavigation(f)
	}
	jumped, noted := e.applyMark(f.Mark)
	moved = moved || jumped

	st := e.view.State()
	switch {
	case moved || e.last == nil || e.sink.NeedsRedraw():
		start := e.clock.Now()
		fb := e.raster.Render(st)
		e.metrics.RecordRender(e.clock.Now().Sub(start))

		initial := e.view.Initial()
		e.metrics.RecordView(st.Scale, st.Offset.X, st.Offset.Y, st.Magnification(initial.Scale))

		e.sink.Present(fb, st)
		e.last = fb

	case noted:
		e.sink.Present(e.last, st)
	}
	return true
}

// playNavigation sounds one cue for the navigation that changed the state
func (e *Explorer) playNavigation(f input.Frame) {
	var cue audio.Cue
	switch {
	case f.Edges.Has(input.ActionReset):
		cue = audio.CueReset
	case f.Scroll == input.ScrollUp:
		cue = audio.CueZoomIn
	case f.Scroll == input.ScrollDown:
		cue = audio.CueZoomOut
	default:
		cue = audio.CuePan
	}
	e.metrics.Count(cue.String())
	e.cues.Play(cue)
}

// applyMark stores or recalls a mark
// moved reports a viewport change, noted a new status message
// Store failures are logged and shown, never fatal
func (e *Explorer) applyMark(op input.MarkOp) (moved, noted bool) {
	switch op.Kind {
	case input.MarkSet:
		if err := e.marks.Set(op.Name, e.view.State()); err != nil {
			log.Printf("marks: set %q: %v", op.Name, err)
			e.metrics.Message.Store("mark error")
			return false, true
		}
		e.metrics.Message.Store(fmt.Sprintf("mark %c set", op.Name))
		e.metrics.Count(audio.CueMarkSet.String())
		e.cues.Play(audio.CueMarkSet)
		return false, true

	case input.MarkJump:
		st, ok, err := e.marks.Get(op.Name)
		if err != nil {
			log.Printf("marks: get %q: %v", op.Name, err)
			e.metrics.Message.Store("mark error")
			return false, true
		}
		if !ok {
			e.metrics.Message.Store(fmt.Sprintf("mark %c not set", op.Name))
			return false, true
		}
		moved, err := e.view.Jump(st)
		if err != nil {
			log.Printf("marks: jump %q: %v", op.Name, err)
			e.metrics.Message.Store(fmt.Sprintf("mark %c invalid", op.Name))
			return false, true
		}
		e.metrics.Message.Store(fmt.Sprintf("mark %c", op.Name))
		e.metrics.Count(audio.CueMarkJump.String())
		e.cues.Play(audio.CueMarkJump)
		return moved, true
	}
	return false, false
}

// Run renders the first frame, then alternates between feeding events and ticking frames
// Returns nil on quit, ctx.Err() on cancellation, ErrEventsClosed when the source closes
func (e *Explorer) Run(ctx context.Context, src EventSource, interval time.Duration) error {
	if interval < constant.MinFrameInterval {
		interval = constant.MinFrameInterval
	}
	e.tracker.SetFrameInterval(interval)

	events := make(chan tcell.Event, constant.EventQueueSize)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		defer close(events)
		for {
			ev := src.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	if !e.Update(0) {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return ErrEventsClosed
			}
			e.tracker.Feed(ev)

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if !e.Update(dt) {
				return nil
			}
		}
	}
}
