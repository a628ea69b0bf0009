package router

// StackEntry represents a single entry in the navigation stack.
// It stores the route, the input the destination was opened with,
// and any resume state the destination handed back (scroll position and
// similar transient state).
type StackEntry struct {
	Route  string
	Input  any
	Resume any
}

// Stack manages navigation history for back navigation.
// The bottom entry is the start destination; the top entry is what is
// currently shown.
type Stack struct {
	entries []StackEntry
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]StackEntry, 0),
	}
}

// Push adds a new entry to the stack.
func (s *Stack) Push(route string, input any, resume any) {
	s.entries = append(s.entries, StackEntry{
		Route:  route,
		Input:  input,
		Resume: resume,
	})
}

// PushEntries appends previously saved entries in order.
func (s *Stack) PushEntries(entries []StackEntry) {
	s.entries = append(s.entries, entries...)
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// PopAbove removes every entry above the first entry for route and returns
// them bottom to top. With inclusive set, that entry is removed as well.
// Returns nil if route is not on the stack.
func (s *Stack) PopAbove(route string, inclusive bool) []StackEntry {
	idx := s.IndexOf(route)
	if idx < 0 {
		return nil
	}
	if !inclusive {
		idx++
	}

	popped := make([]StackEntry, len(s.entries)-idx)
	copy(popped, s.entries[idx:])
	s.entries = s.entries[:idx]
	return popped
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IndexOf returns the position of the lowest entry for route, or -1.
func (s *Stack) IndexOf(route string) int {
	for i, e := range s.entries {
		if e.Route == route {
			return i
		}
	}
	return -1
}

// Routes returns the routes on the stack, bottom to top.
func (s *Stack) Routes() []string {
	routes := make([]string, len(s.entries))
	for i, e := range s.entries {
		routes[i] = e.Route
	}
	return routes
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
