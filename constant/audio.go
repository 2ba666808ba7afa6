package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines cue latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue envelope, shared by every tone
const (
	CueAttack  = 4 * time.Millisecond
	CueRelease = 30 * time.Millisecond
	CueGain    = 0.18
)

// Zoom cues: two notes, rising for zoom in, falling for zoom out
const (
	ZoomNoteDuration = 60 * time.Millisecond
	ZoomGap          = 15 * time.Millisecond
	ZoomLowFreq      = 440.0
	ZoomHighFreq     = 660.0
)

// Pan click
const (
	PanClickDuration = 18 * time.Millisecond
	PanClickFreq     = 1200.0
)

// Reset chord (A major)
const (
	ResetChordDuration = 180 * time.Millisecond
)

var ResetChordFreqs = [...]float64{440.0, 554.37, 659.25}

// Mark cues
const (
	MarkNoteDuration = 40 * time.Millisecond
	MarkSetFreq      = 880.0
	MarkJumpFreq     = 330.0
)
