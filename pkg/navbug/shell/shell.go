// Package shell assembles the pieces a host needs to show the bottom
// navigation demo: the tab registry, the persisted selection, the navigation
// controller with one screen per tab, and the bar's animation controller.
//
// Hosts (the SDL window and the terminal UI) own the frame loop and drawing.
// Everything they react to goes through a Shell.
package shell

import (
	"fmt"
	"log/slog"

	"github.com/milchschlumpf/navbug/pkg/navbug/bottomnav"
	"github.com/milchschlumpf/navbug/pkg/navbug/locale"
	"github.com/milchschlumpf/navbug/pkg/navbug/router"
	"github.com/milchschlumpf/navbug/pkg/navbug/sections"
	"github.com/milchschlumpf/navbug/pkg/navbug/spring"
	"github.com/milchschlumpf/navbug/pkg/navbug/state"
)

// Screen is the content of one destination.
type Screen struct {
	Section sections.Section
	Title   string
	Hint    string
	Counter string
	Presses int
}

// Options configures a Shell.
type Options struct {
	Registry  *sections.Registry // Defaults to sections.Default()
	Strings   *locale.Strings    // Defaults to the English strings
	StatePath string             // Empty disables persistence
	Spec      spring.Spec
	FPS       int
	Logger    *slog.Logger
}

// Shell wires selection, navigation and the bar together.
type Shell struct {
	Registry  *sections.Registry
	Selection *state.Selection
	Router    *router.Controller
	Bar       *bottomnav.Controller
	Strings   *locale.Strings

	store  *state.Store
	logger *slog.Logger
	unbind func()
}

// New builds a Shell. A saved selection is restored before the bar is
// created: the restored tab's fraction starts at rest while the indicator
// starts at zero and slides over.
func New(opts Options) (*Shell, error) {
	registry := opts.Registry
	if registry == nil {
		registry = sections.Default()
	}

	texts := opts.Strings
	if texts == nil {
		var err error
		if texts, err = locale.New(); err != nil {
			return nil, fmt.Errorf("load strings: %w", err)
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	spec := opts.Spec
	if spec == (spring.Spec{}) {
		spec = spring.DefaultSpec()
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = spring.DefaultFPS
	}

	s := &Shell{
		Registry:  registry,
		Selection: state.NewSelection(registry),
		Strings:   texts,
		logger:    logger,
	}

	if opts.StatePath != "" {
		s.store = state.NewStore(opts.StatePath)
		restored, err := s.store.Load(s.Selection)
		if err != nil {
			logger.Warn("Ignoring unreadable state file", "path", s.store.Path(), "error", err)
		} else if restored {
			logger.Debug("Restored selection", "tab", s.Selection.CurrentID())
		}
	}

	s.Router = router.New(registry.First().Route)
	for _, section := range registry.All() {
		s.Router.Register(section.Route, s.screen(section))
	}
	s.Router.OnDestinationChanged(func(entry router.StackEntry) {
		logger.Debug("Destination changed", "route", entry.Route, "depth", s.Router.Stack().Len())
	})

	if current := s.Selection.Current(); current.Route != s.Router.StartRoute() {
		if err := s.Router.Navigate(current.Route, bottomnav.TabNavOptions); err != nil {
			return nil, fmt.Errorf("navigate to restored tab: %w", err)
		}
	}

	s.Bar = bottomnav.New(registry, s.Selection.CurrentID(), func(section sections.Section) {
		s.Selection.Set(section.ID)
	}, s.Router, bottomnav.WithSpec(spec), bottomnav.WithFPS(fps), bottomnav.WithLogger(logger))
	s.unbind = s.Bar.Bind(s.Selection)

	return s, nil
}

func (s *Shell) screen(section sections.Section) router.ScreenFunc {
	return func(entry router.StackEntry) (any, error) {
		presses, _ := entry.Resume.(int)
		return Screen{
			Section: section,
			Title:   s.Strings.Title(section),
			Hint:    s.Strings.Hint(),
			Counter: s.Strings.Counter(presses),
			Presses: presses,
		}, nil
	}
}

// Screen returns the content of the current destination.
func (s *Shell) Screen() (Screen, error) {
	content, err := s.Router.Content()
	if err != nil {
		return Screen{}, err
	}
	screen, ok := content.(Screen)
	if !ok {
		return Screen{}, fmt.Errorf("route %q produced %T", s.Router.Current().Route, content)
	}
	return screen, nil
}

// Press bumps the current screen's counter. The count lives on the back
// stack entry, so it survives switching away and back.
func (s *Shell) Press() int {
	presses := 0
	if top := s.Router.Current(); top != nil {
		presses, _ = top.Resume.(int)
	}
	presses++
	s.Router.SetResume(presses)
	return presses
}

// Back pops the navigation stack. The bar's selection is left alone, so
// after popping back to the start destination the bar may still highlight
// another tab. It reports whether anything was popped.
func (s *Shell) Back() bool {
	if !s.Router.PopBackStack() {
		return false
	}
	s.logger.Debug("Popped back stack", "route", s.Router.Current().Route, "selected_tab", s.Selection.CurrentID())
	return true
}

// Save persists the selection when a state path was configured.
func (s *Shell) Save() error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Save(s.Selection); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// Close saves the selection and detaches the bar from it.
func (s *Shell) Close() error {
	if s.unbind != nil {
		s.unbind()
		s.unbind = nil
	}
	return s.Save()
}
