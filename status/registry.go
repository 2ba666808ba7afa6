// Package status holds frame metrics written by the frame loop and read by the status bar and debug log
package status

import (
	"sync/atomic"
	"time"
)

// Registry is the metrics facade shared by the explorer and its readers
// Every field is atomic so readers on other goroutines never see torn values
type Registry struct {
	Frames     atomic.Int64 // frame hooks run
	Interval   atomic.Int64 // nanoseconds since the previous frame hook
	Renders    atomic.Int64 // frames actually rasterized
	LastRender atomic.Int64 // nanoseconds
	RenderTime AtomicFloat  // cumulative seconds

	Scale         AtomicFloat
	CenterX       AtomicFloat
	CenterY       AtomicFloat
	Magnification AtomicFloat

	Message AtomicString

	Counters *Counters
}

// Snapshot is a consistent-enough copy for display; fields are read one by one
type Snapshot struct {
	Frames        int64
	Interval      time.Duration
	Renders       int64
	LastRender    time.Duration
	AverageRender time.Duration
	Scale         float64
	CenterX       float64
	CenterY       float64
	Magnification float64
	Message       string
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewCounters(),
	}
}

// RecordRender accounts for one rasterized frame
func (r *Registry) RecordRender(d time.Duration) {
	r.Renders.Add(1)
	r.LastRender.Store(int64(d))
	r.RenderTime.Add(d.Seconds())
}

// RecordView publishes the viewport being displayed
func (r *Registry) RecordView(scale, centerX, centerY, magnification float64) {
	r.Scale.Set(scale)
	r.CenterX.Set(centerX)
	r.CenterY.Set(centerY)
	r.Magnification.Set(magnification)
}

// Count increments the named counter
func (r *Registry) Count(name string) {
	r.Counters.Add(name, 1)
}

// Snapshot reads every metric
func (r *Registry) Snapshot() Snapshot {
	s := Snapshot{
		Frames:        r.Frames.Load(),
		Interval:      time.Duration(r.Interval.Load()),
		Renders:       r.Renders.Load(),
		LastRender:    time.Duration(r.LastRender.Load()),
		Scale:         r.Scale.Get(),
		CenterX:       r.CenterX.Get(),
		CenterY:       r.CenterY.Get(),
		Magnification: r.Magnification.Get(),
		Message:       r.Message.Load(),
	}
	if s.Renders > 0 {
		s.AverageRender = time.Duration(r.RenderTime.Get() / float64(s.Renders) * float64(time.Second))
	}
	return s
}
