package status

import (
	"sync/atomic"
	"unicode/utf8"
)

// MaxMessageLen bounds the status message in bytes
const MaxMessageLen = 32

// AtomicString holds a short message shown on the status bar
// Zero value is ready to use (represents empty string)
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the value, truncated to MaxMessageLen on a rune boundary
func (s *AtomicString) Store(val string) {
	if len(val) > MaxMessageLen {
		cut := MaxMessageLen
		for cut > 0 && !utf8.RuneStart(val[cut]) {
			cut--
		}
		val = val[:cut]
	}
	s.ptr.Store(&val)
}

// Load returns the current value
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
