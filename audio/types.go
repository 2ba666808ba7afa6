package audio

import (
	"errors"
)

// Cue identifies a navigation sound
type Cue int

const (
	CueZoomIn   Cue = iota // Rising note pair
	CueZoomOut             // Falling note pair
	CuePan                 // Short click
	CueReset               // Major chord
	CueMarkSet             // High blip
	CueMarkJump            // Low blip
	cueCount
)

var cueNames = [cueCount]string{
	CueZoomIn:   "zoom_in",
	CueZoomOut:  "zoom_out",
	CuePan:      "pan",
	CueReset:    "reset",
	CueMarkSet:  "mark_set",
	CueMarkJump: "mark_jump",
}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// Sentinel errors
var (
	ErrUnknownCue = errors.New("unknown audio cue")
)
