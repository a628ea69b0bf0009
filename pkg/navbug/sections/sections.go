// Package sections defines the fixed, ordered set of tabs shown in the
// bottom navigation bar.
package sections

import (
	"errors"
	"fmt"

	"github.com/milchschlumpf/navbug/pkg/navbug/icons"
)

var (
	// ErrEmptyRegistry is returned when a registry is built without sections.
	ErrEmptyRegistry = errors.New("sections: registry must contain at least one section")

	// ErrDuplicateRoute is returned when two sections share a route.
	ErrDuplicateRoute = errors.New("sections: duplicate route")
)

// Section describes a single tab. Values are immutable once part of a Registry.
type Section struct {
	ID             int       // Ordinal position, assigned by the registry
	IconUnselected icons.Ref // Icon drawn while the tab is inactive
	IconSelected   icons.Ref // Icon drawn while the tab is active
	Route          string    // Destination this tab navigates to
	TitleID        string    // Message id of the localized title
}

// Icon returns the icon reference for the given selection state.
func (s Section) Icon(selected bool) icons.Ref {
	if selected {
		return s.IconSelected
	}
	return s.IconUnselected
}

// Registry is an ordered, read-only list of sections.
type Registry struct {
	sections []Section
	byRoute  map[string]int
}

// New builds a registry. IDs are derived from position and overwrite
// whatever the caller set.
func New(sections ...Section) (*Registry, error) {
	if len(sections) == 0 {
		return nil, ErrEmptyRegistry
	}

	r := &Registry{
		sections: make([]Section, len(sections)),
		byRoute:  make(map[string]int, len(sections)),
	}

	for i, s := range sections {
		if _, exists := r.byRoute[s.Route]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRoute, s.Route)
		}
		s.ID = i
		r.sections[i] = s
		r.byRoute[s.Route] = i
	}

	return r, nil
}

// Default returns the four interchangeable home sections.
func Default() *Registry {
	r, err := New(
		Section{IconUnselected: icons.OutlineHome, IconSelected: icons.BaselineHome, Route: "home1", TitleID: "Home1"},
		Section{IconUnselected: icons.OutlineHome, IconSelected: icons.BaselineHome, Route: "home2", TitleID: "Home2"},
		Section{IconUnselected: icons.OutlineHome, IconSelected: icons.BaselineHome, Route: "home3", TitleID: "Home3"},
		Section{IconUnselected: icons.OutlineHome, IconSelected: icons.BaselineHome, Route: "home4", TitleID: "Home4"},
	)
	if err != nil {
		panic(err)
	}
	return r
}

// All returns a copy of the sections in order.
func (r *Registry) All() []Section {
	out := make([]Section, len(r.sections))
	copy(out, r.sections)
	return out
}

// Len returns the number of sections.
func (r *Registry) Len() int {
	return len(r.sections)
}

// First returns the section shown at startup.
func (r *Registry) First() Section {
	return r.sections[0]
}

// At returns the section with the given id.
func (r *Registry) At(id int) (Section, bool) {
	if id < 0 || id >= len(r.sections) {
		return Section{}, false
	}
	return r.sections[id], true
}

// ByRoute looks a section up by its route.
func (r *Registry) ByRoute(route string) (Section, bool) {
	i, ok := r.byRoute[route]
	if !ok {
		return Section{}, false
	}
	return r.sections[i], true
}

// Routes returns the routes in section order.
func (r *Registry) Routes() []string {
	routes := make([]string, len(r.sections))
	for i, s := range r.sections {
		routes[i] = s.Route
	}
	return routes
}
