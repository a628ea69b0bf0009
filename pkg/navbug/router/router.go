package router

import (
	"errors"
	"fmt"
)

// ErrUnknownRoute is returned when navigating to a route that was never registered.
var ErrUnknownRoute = errors.New("router: unknown route")

// ScreenFunc produces the content for a destination.
// It receives the stack entry being shown, including any resume state.
type ScreenFunc func(entry StackEntry) (content any, err error)

// NavOptions controls how Navigate treats the existing back stack.
type NavOptions struct {
	PopUpToStart     bool // Pop every entry above the start destination first
	PopUpToInclusive bool // Also pop the start destination itself
	SaveState        bool // Keep the popped entries so they can be restored later
	RestoreState     bool // Bring back a saved stack containing the target, if any
	SingleTop        bool // Do not push the target when it is already on top
}

// Controller owns the back stack and the registered destinations.
//
// All methods must be called from the UI loop.
type Controller struct {
	start     string
	screens   map[string]ScreenFunc
	stack     *Stack
	listeners []func(StackEntry)

	savedIDs    map[string]int
	savedStacks map[int][]StackEntry
	nextSavedID int
}

// New creates a Controller whose back stack starts at the given route.
func New(start string) *Controller {
	c := &Controller{
		start:       start,
		screens:     make(map[string]ScreenFunc),
		stack:       NewStack(),
		savedIDs:    make(map[string]int),
		savedStacks: make(map[int][]StackEntry),
	}
	c.stack.Push(start, nil, nil)
	return c
}

// Register adds a destination.
func (c *Controller) Register(route string, fn ScreenFunc) *Controller {
	c.screens[route] = fn
	return c
}

// OnDestinationChanged adds a listener called whenever the top entry changes.
func (c *Controller) OnDestinationChanged(fn func(entry StackEntry)) *Controller {
	c.listeners = append(c.listeners, fn)
	return c
}

// StartRoute returns the route at the bottom of the graph.
func (c *Controller) StartRoute() string {
	return c.start
}

// Navigate moves to route, applying opts to the back stack.
func (c *Controller) Navigate(route string, opts NavOptions) error {
	if _, ok := c.screens[route]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRoute, route)
	}

	before := c.topRoute()

	if opts.PopUpToStart {
		popped := c.stack.PopAbove(c.start, opts.PopUpToInclusive)
		if opts.SaveState && len(popped) > 0 {
			c.save(popped)
		}
	}

	changed := true
	switch {
	case opts.RestoreState && c.restore(route):
	case opts.SingleTop && c.topRoute() == route:
		changed = false
	default:
		c.stack.Push(route, nil, nil)
	}

	if top := c.stack.Peek(); top != nil && (changed || top.Route != before) {
		c.notify(*top)
	}

	return nil
}

// PopBackStack removes the top entry. The start destination is never popped;
// false means there was nothing to go back to.
func (c *Controller) PopBackStack() bool {
	if c.stack.Len() <= 1 {
		return false
	}
	c.stack.Pop()
	c.notify(*c.stack.Peek())
	return true
}

// Current returns the entry on top of the stack.
func (c *Controller) Current() *StackEntry {
	return c.stack.Peek()
}

// SetResume stores transient state on the current entry.
func (c *Controller) SetResume(resume any) {
	if top := c.stack.Peek(); top != nil {
		top.Resume = resume
	}
}

// Content runs the current destination's screen function.
func (c *Controller) Content() (any, error) {
	top := c.stack.Peek()
	if top == nil {
		return nil, fmt.Errorf("router: empty back stack")
	}

	fn, ok := c.screens[top.Route]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRoute, top.Route)
	}

	content, err := fn(*top)
	if err != nil {
		return nil, fmt.Errorf("router: screen %q error: %w", top.Route, err)
	}
	return content, nil
}

// Stack returns the navigation stack.
func (c *Controller) Stack() *Stack {
	return c.stack
}

// HasSavedState reports whether a saved stack exists for route.
func (c *Controller) HasSavedState(route string) bool {
	_, ok := c.savedIDs[route]
	return ok
}

// SavedStates returns a copy of the saved stacks keyed by every route they
// contain. Routes popped together share the same entries.
func (c *Controller) SavedStates() map[string][]StackEntry {
	out := make(map[string][]StackEntry, len(c.savedIDs))
	for route, id := range c.savedIDs {
		entries := make([]StackEntry, len(c.savedStacks[id]))
		copy(entries, c.savedStacks[id])
		out[route] = entries
	}
	return out
}

func (c *Controller) save(entries []StackEntry) {
	id := c.nextSavedID
	c.nextSavedID++

	c.savedStacks[id] = entries
	for _, e := range entries {
		if old, ok := c.savedIDs[e.Route]; ok && old != id {
			c.dropSaved(old)
		}
		c.savedIDs[e.Route] = id
	}
}

func (c *Controller) restore(route string) bool {
	id, ok := c.savedIDs[route]
	if !ok {
		return false
	}

	entries := c.savedStacks[id]
	c.dropSaved(id)
	c.stack.PushEntries(entries)
	return true
}

func (c *Controller) dropSaved(id int) {
	delete(c.savedStacks, id)
	for route, saved := range c.savedIDs {
		if saved == id {
			delete(c.savedIDs, route)
		}
	}
}

func (c *Controller) topRoute() string {
	if top := c.stack.Peek(); top != nil {
		return top.Route
	}
	return ""
}

func (c *Controller) notify(entry StackEntry) {
	for _, fn := range c.listeners {
		fn(entry)
	}
}
