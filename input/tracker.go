package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-mandel/constant"
)

// Tracker accumulates terminal events between frames and turns them into a Frame
// Terminals report no key releases, so a key seen again within holdFrames of its
// last report is auto-repeat of a held key, not a new press edge
// Not safe for concurrent use; the frame goroutine owns it
type Tracker struct {
	keys *KeyMap

	curr Actions

	// frame counts snapshots; lastSeen holds the frame each action was last reported, 0 = never
	frame      uint64
	lastSeen   [actionCount]uint64
	holdFrames uint64

	scroll    Scroll
	zoomOrder [2]Action
	zoomCount int
	resized   bool

	// pending survives Snapshot so a prefix and its letter may land in different frames
	pending Action
	mark    MarkOp
}

// NewTracker creates a tracker, nil selects DefaultKeyMap
func NewTracker(keys *KeyMap) *Tracker {
	if keys == nil {
		keys = DefaultKeyMap()
	}
	return &Tracker{
		keys:       keys,
		holdFrames: framesFor(constant.FrameUpdateInterval),
	}
}

// Feed records one event; unrecognized events are ignored
func (t *Tracker) Feed(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if t.pending != ActionNone {
			prefix := t.pending
			t.pending = ActionNone
			if ev.Key() == tcell.KeyRune && IsMarkName(ev.Rune()) {
				t.recordMark(prefix, ev.Rune())
				return
			}
			// Any other key cancels the prefix and is handled normally
		}

		a := t.keys.Lookup(ev)
		if a == ActionNone {
			return
		}
		if a == ActionMarkSet || a == ActionMarkJump {
			t.pending = a
			return
		}
		if (a == ActionZoomIn || a == ActionZoomOut) && !t.curr.Has(a) && t.zoomCount < len(t.zoomOrder) {
			t.zoomOrder[t.zoomCount] = a
			t.zoomCount++
		}
		t.curr = t.curr.With(a)

	case *tcell.EventMouse:
		if t.scroll != ScrollNone {
			return
		}
		buttons := ev.Buttons()
		switch {
		case buttons&tcell.WheelUp != 0:
			t.scroll = ScrollUp
		case buttons&tcell.WheelDown != 0:
			t.scroll = ScrollDown
		}

	case *tcell.EventResize:
		t.resized = true
	}
}

// recordMark keeps the first mark operation of the frame
func (t *Tracker) recordMark(prefix Action, name rune) {
	if t.mark.Kind != MarkNone {
		return
	}
	kind := MarkSet
	if prefix == ActionMarkJump {
		kind = MarkJump
	}
	t.mark = MarkOp{Kind: kind, Name: name}
}

// SetFrameInterval sizes the hold window in frames for a loop ticking every d
// Non-positive intervals are ignored
func (t *Tracker) SetFrameInterval(d time.Duration) {
	if d > 0 {
		t.holdFrames = framesFor(d)
	}
}

// framesFor is the number of frames of the given interval covering KeyRepeatWindow, at least 1
func framesFor(interval time.Duration) uint64 {
	n := (constant.KeyRepeatWindow + interval - 1) / interval
	return max(uint64(n), 1)
}

// Snapshot closes the current frame and returns its navigation input
func (t *Tracker) Snapshot() Frame {
	t.frame++

	var edges Actions
	for a := ActionNone + 1; a < actionCount; a++ {
		if !t.curr.Has(a) {
			continue
		}
		if seen := t.lastSeen[a]; seen == 0 || t.frame-seen > t.holdFrames {
			edges = edges.With(a)
		}
		t.lastSeen[a] = t.frame
	}

	f := Frame{
		Scroll:  t.scroll,
		Edges:   edges,
		Mark:    t.mark,
		Quit:    t.curr.Has(ActionQuit),
		Resized: t.resized,
	}

	// Zoom keys stand in for the wheel when no wheel event arrived
	if f.Scroll == ScrollNone {
		for i := 0; i < t.zoomCount; i++ {
			a := t.zoomOrder[i]
			if !edges.Has(a) {
				continue
			}
			if a == ActionZoomIn {
				f.Scroll = ScrollUp
			} else {
				f.Scroll = ScrollDown
			}
			break
		}
	}

	t.curr = 0
	t.scroll = ScrollNone
	t.zoomCount = 0
	t.resized = false
	t.mark = MarkOp{}

	return f
}
