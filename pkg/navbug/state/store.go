package state

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultFileName is the state file name used when no path is configured.
const DefaultFileName = "navbug_state.toml"

// savedState is the on-disk form of the selection.
type savedState struct {
	CurrentTab int    `toml:"current_tab"`
	Route      string `toml:"route"`
}

// Store saves and restores a Selection to a TOML file.
type Store struct {
	path string
}

// NewStore creates a store for path. An empty path uses DefaultFileName in
// the working directory.
func NewStore(path string) *Store {
	if strings.TrimSpace(path) == "" {
		path = DefaultFileName
	}
	return &Store{path: path}
}

// Path returns the file the store writes to.
func (s *Store) Path() string {
	return s.path
}

// Save writes the current selection. The file is replaced atomically.
func (s *Store) Save(sel *Selection) error {
	current := sel.Current()

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(savedState{
		CurrentTab: current.ID,
		Route:      current.Route,
	}); err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write state file %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace state file %q: %w", s.path, err)
	}
	return nil
}

// Load restores the saved selection into sel. A missing file leaves sel
// untouched and is not an error. It reports whether anything was restored.
//
// The stored id wins when it still names the same route. Otherwise the route
// is looked up, and failing that the selection stays where it is.
func (s *Store) Load(sel *Selection) (bool, error) {
	var saved savedState
	if _, err := toml.DecodeFile(s.path, &saved); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read state file %q: %w", s.path, err)
	}

	registry := sel.Registry()

	if section, ok := registry.At(saved.CurrentTab); ok && (saved.Route == "" || section.Route == saved.Route) {
		sel.Set(section.ID)
		return true, nil
	}

	if section, ok := registry.ByRoute(saved.Route); ok {
		sel.Set(section.ID)
		return true, nil
	}

	return false, nil
}
