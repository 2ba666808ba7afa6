package constant

import "time"

// Frame loop timing
const (
	// FrameUpdateInterval is the frame tick (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MinFrameInterval guards against a busy loop from a misconfigured interval
	MinFrameInterval = time.Millisecond

	// EventQueueSize is the buffered capacity between the poll goroutine and the frame loop
	EventQueueSize = 256
)

// Terminal layout
const (
	// PixelsPerCell is the number of framebuffer rows packed into one terminal row (upper half block)
	PixelsPerCell = 2

	// StatusBarRows is the number of terminal rows reserved below the fractal
	StatusBarRows = 1
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "vi-mandel.log"

	// MaxLogSize triggers rotation of the existing log file at startup
	MaxLogSize = 10 * 1024 * 1024
)

// Input
const (
	// KeyRepeatWindow is the longest gap between reports of one key still treated as held
	// Terminal auto-repeat runs at roughly 25-33 Hz once it starts
	KeyRepeatWindow = 100 * time.Millisecond
)
