// Package marks stores viewport states under single-letter names
package marks

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lixenwraith/vi-mandel/input"
	"github.com/lixenwraith/vi-mandel/viewport"
)

// ErrName reports a mark name outside a-z
var ErrName = errors.New("mark name must be a lowercase letter")

// Store persists named viewport states
type Store interface {
	Set(name rune, st viewport.State) error
	// Get reports ok=false for an unset mark
	Get(name rune) (st viewport.State, ok bool, err error)
	List() (map[rune]viewport.State, error)
	Close() error
}

func checkName(name rune) error {
	if !input.IsMarkName(name) {
		return fmt.Errorf("%w: %q", ErrName, name)
	}
	return nil
}

// Memory keeps marks for the lifetime of the process
type Memory struct {
	mu    sync.RWMutex
	marks map[rune]viewport.State
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{marks: make(map[rune]viewport.State)}
}

func (m *Memory) Set(name rune, st viewport.State) error {
	if err := checkName(name); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.marks[name] = st
	return nil
}

func (m *Memory) Get(name rune) (viewport.State, bool, error) {
	if err := checkName(name); err != nil {
		return viewport.State{}, false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.marks[name]
	return st, ok, nil
}

func (m *Memory) List() (map[rune]viewport.State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[rune]viewport.State, len(m.marks))
	for k, v := range m.marks {
		out[k] = v
	}
	return out, nil
}

func (m *Memory) Close() error {
	return nil
}
