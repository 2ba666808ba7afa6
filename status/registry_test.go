package status

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()

	if got := f.Get(); got != 4000 {
		t.Errorf("Get() = %v, want 4000", got)
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"Short", "mark a", 6},
		{"Exact", strings.Repeat("x", MaxMessageLen), MaxMessageLen},
		{"Long ascii", strings.Repeat("x", 50), MaxMessageLen},
		// 3-byte runes: 10 fit in 30 bytes, the 11th would split
		{"Long multibyte", strings.Repeat("▀", 20), 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s AtomicString
			s.Store(tt.in)
			if got := len(s.Load()); got != tt.want {
				t.Errorf("len = %d, want %d", got, tt.want)
			}
		})
	}

	var empty AtomicString
	if empty.Load() != "" {
		t.Error("Zero value should load empty")
	}
}

func TestCountersConcurrentAdd(t *testing.T) {
	c := NewCounters()
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add("pan", 1)
		}()
	}
	wg.Wait()

	if got := c.Load("pan"); got != 16 {
		t.Errorf("Counter = %d, want 16", got)
	}
	if c.Load("zoom_in") != 0 || c.Len() != 1 {
		t.Error("Load registered an unknown name")
	}
}

func TestCountersRangeSorted(t *testing.T) {
	c := NewCounters()
	c.Add("zoom_in", 2)
	c.Add("pan", 1)
	c.Add("mark_set", 3)

	var got []string
	c.Range(func(name string, n int64) {
		got = append(got, fmt.Sprintf("%s=%d", name, n))
	})
	if strings.Join(got, ",") != "mark_set=3,pan=1,zoom_in=2" {
		t.Errorf("Range = %v", got)
	}
}

func TestRegistrySnapshot(t *testing.T) {
	r := NewRegistry()

	if s := r.Snapshot(); s.AverageRender != 0 || s.Renders != 0 {
		t.Errorf("Empty snapshot = %+v", s)
	}

	r.Frames.Add(3)
	r.RecordRender(10 * time.Millisecond)
	r.RecordRender(30 * time.Millisecond)
	r.RecordView(0.25, -0.5, 0.1, 4)
	r.Message.Store("mark a set")
	r.Count("pan")
	r.Count("pan")

	s := r.Snapshot()
	if s.Frames != 3 || s.Renders != 2 {
		t.Errorf("Frames/Renders = %d/%d", s.Frames, s.Renders)
	}
	if s.LastRender != 30*time.Millisecond {
		t.Errorf("LastRender = %v", s.LastRender)
	}
	if d := s.AverageRender - 20*time.Millisecond; d < -time.Microsecond || d > time.Microsecond {
		t.Errorf("AverageRender = %v", s.AverageRender)
	}
	if s.Scale != 0.25 || s.CenterX != -0.5 || s.CenterY != 0.1 || s.Magnification != 4 {
		t.Errorf("View = %+v", s)
	}
	if s.Message != "mark a set" {
		t.Errorf("Message = %q", s.Message)
	}
	if r.Counters.Load("pan") != 2 || r.Counters.Len() != 1 {
		t.Error("Counter not recorded")
	}
}
