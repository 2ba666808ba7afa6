package status

import (
	"slices"
	"sync"
	"sync/atomic"
)

// Counters is a set of named event counts (zoom_in, pan, mark_set, ...)
// A name is registered on first increment; later increments only touch its atomic
type Counters struct {
	mu    sync.RWMutex
	items map[string]*atomic.Int64
}

// NewCounters creates an empty set
func NewCounters() *Counters {
	return &Counters{items: make(map[string]*atomic.Int64)}
}

// counter returns the cell for name, registering it when absent
func (c *Counters) counter(name string) *atomic.Int64 {
	c.mu.RLock()
	n, ok := c.items[name]
	c.mu.RUnlock()
	if ok {
		return n
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if n, ok = c.items[name]; !ok {
		n = new(atomic.Int64)
		c.items[name] = n
	}
	return n
}

// Add increments name by delta
func (c *Counters) Add(name string, delta int64) {
	c.counter(name).Add(delta)
}

// Load returns the count for name; unregistered names read 0 and stay unregistered
func (c *Counters) Load(name string) int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if n, ok := c.items[name]; ok {
		return n.Load()
	}
	return 0
}

// Names returns the registered names, sorted
func (c *Counters) Names() []string {
	c.mu.RLock()
	names := make([]string, 0, len(c.items))
	for name := range c.items {
		names = append(names, name)
	}
	c.mu.RUnlock()

	slices.Sort(names)
	return names
}

// Range visits every counter in name order with its current value
func (c *Counters) Range(fn func(name string, count int64)) {
	for _, name := range c.Names() {
		fn(name, c.Load(name))
	}
}

// Len returns the number of registered names
func (c *Counters) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
