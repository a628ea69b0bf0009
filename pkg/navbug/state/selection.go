// Package state holds the host's selection state: which tab is current.
//
// Selection is the single source of truth for the bottom navigation bar.
// Widgets subscribe to it and re-derive their animation targets whenever it
// changes. Store persists it so the selection survives a restart.
package state

import (
	"sync"

	"go.uber.org/atomic"

	"github.com/milchschlumpf/navbug/pkg/navbug/sections"
)

// Listener is called after the current tab changed.
type Listener func(previous, current sections.Section)

// Selection is the observable current tab.
//
// Current may be read from any goroutine. Set and the listeners it triggers
// belong to the UI loop.
type Selection struct {
	registry *sections.Registry
	current  *atomic.Int32

	mu        sync.Mutex
	nextID    int
	listeners map[int]Listener
	order     []int
}

// NewSelection creates a selection resting on the registry's first section.
func NewSelection(registry *sections.Registry) *Selection {
	return &Selection{
		registry:  registry,
		current:   atomic.NewInt32(int32(registry.First().ID)),
		listeners: make(map[int]Listener),
	}
}

// Registry returns the sections this selection chooses from.
func (s *Selection) Registry() *sections.Registry {
	return s.registry
}

// CurrentID returns the id of the current tab.
func (s *Selection) CurrentID() int {
	return int(s.current.Load())
}

// Current returns the current tab.
func (s *Selection) Current() sections.Section {
	section, _ := s.registry.At(s.CurrentID())
	return section
}

// Set makes id the current tab and notifies listeners. It returns false when
// id is unknown or already current.
func (s *Selection) Set(id int) bool {
	next, ok := s.registry.At(id)
	if !ok {
		return false
	}

	prevID := int(s.current.Swap(int32(id)))
	if prevID == id {
		return false
	}

	prev, _ := s.registry.At(prevID)
	for _, fn := range s.snapshot() {
		fn(prev, next)
	}
	return true
}

// Subscribe registers fn and returns a function that removes it.
// Listeners run in subscription order.
func (s *Selection) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.order = append(s.order, id)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

func (s *Selection) snapshot() []Listener {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Listener, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.listeners[id])
	}
	return out
}
