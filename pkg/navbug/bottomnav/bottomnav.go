// Package bottomnav implements the bottom navigation bar's state machine:
// per-tab selection fractions, the sliding indicator and tab selection.
//
// The Controller does not draw anything. Renderers call Tick once per frame,
// then Layout and Items to find out what to draw where.
package bottomnav

import (
	"log/slog"

	"github.com/milchschlumpf/navbug/pkg/navbug/layout"
	"github.com/milchschlumpf/navbug/pkg/navbug/router"
	"github.com/milchschlumpf/navbug/pkg/navbug/sections"
	"github.com/milchschlumpf/navbug/pkg/navbug/spring"
	"github.com/milchschlumpf/navbug/pkg/navbug/state"
)

// Navigator changes the visible destination. *router.Controller satisfies it.
type Navigator interface {
	Navigate(route string, opts router.NavOptions) error
}

// SelectFunc is called when the user picks a tab that is not already active.
type SelectFunc func(section sections.Section)

// TabNavOptions are the options every tab switch navigates with: unwind to
// the start destination while saving what was popped, never stack the same
// tab twice, and bring back a tab's saved history.
var TabNavOptions = router.NavOptions{
	PopUpToStart: true,
	SaveState:    true,
	SingleTop:    true,
	RestoreState: true,
}

// Item is a tab as a renderer needs it.
type Item struct {
	Section  sections.Section
	Selected bool
	Fraction float64
}

// Option configures a Controller.
type Option func(*Controller)

// WithSpec sets the spring used for every animation.
func WithSpec(spec spring.Spec) Option {
	return func(c *Controller) { c.spec = spec }
}

// WithFPS sets the frame rate Tick is called at.
func WithFPS(fps int) Option {
	return func(c *Controller) { c.fps = fps }
}

// WithLogger sets the logger used for navigation failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// Controller owns the bar's animated state.
type Controller struct {
	sections   []sections.Section
	current    int
	onSelected SelectFunc
	nav        Navigator

	spec   spring.Spec
	fps    int
	logger *slog.Logger

	fractions []*spring.Animatable
	indicator *spring.Animatable
}

// New creates a Controller for the registry's sections with current active.
func New(registry *sections.Registry, current int, onSelected SelectFunc, nav Navigator, opts ...Option) *Controller {
	c := &Controller{
		sections:   registry.All(),
		onSelected: onSelected,
		nav:        nav,
		spec:       spring.DefaultSpec(),
		fps:        spring.DefaultFPS,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if _, ok := registry.At(current); !ok {
		current = 0
	}
	c.current = current

	c.fractions = c.restingFractions()
	c.indicator = spring.New(0, c.spec, c.fps)
	c.indicator.AnimateTo(float64(c.current))

	return c
}

// Current returns the id of the tab the bar treats as active.
func (c *Controller) Current() int {
	return c.current
}

// Sections returns the tabs in order.
func (c *Controller) Sections() []sections.Section {
	out := make([]sections.Section, len(c.sections))
	copy(out, c.sections)
	return out
}

// SetCurrent moves the selection to id and retargets every animation toward
// it. It reports whether any animation was retargeted.
func (c *Controller) SetCurrent(id int) bool {
	if id < 0 || id >= len(c.sections) {
		return false
	}
	c.current = id

	retargeted := false
	for i, fraction := range c.fractions {
		if fraction.AnimateTo(restingFraction(i, id)) {
			retargeted = true
		}
	}
	if c.indicator.AnimateTo(float64(id)) {
		retargeted = true
	}
	return retargeted
}

// SetSections replaces the tab list. When the number of tabs changes every
// selection fraction is recreated at rest for the current selection.
//
// If the list shrinks below the current tab, the first tab becomes current
// and is raised through the selection callback and the navigator like a click,
// so the selection the bar is bound to follows.
func (c *Controller) SetSections(list []sections.Section) {
	resized := len(list) != len(c.sections)

	c.sections = make([]sections.Section, len(list))
	copy(c.sections, list)

	fellBack := false
	if c.current >= len(c.sections) {
		c.current = 0
		c.indicator.AnimateTo(0)
		fellBack = len(c.sections) > 0
	}
	if resized {
		c.fractions = c.restingFractions()
	}

	if fellBack {
		c.logger.Debug("Selected tab was removed; falling back to the first tab", "route", c.sections[0].Route)
		c.raise(c.sections[0])
	}
}

// Select handles a click on tab id. Clicking the active tab does nothing.
// Otherwise the selection callback runs first, then the navigator is asked to
// show the tab's route. It reports whether the click was accepted.
func (c *Controller) Select(id int) bool {
	if id == c.current || id < 0 || id >= len(c.sections) {
		return false
	}
	c.raise(c.sections[id])
	return true
}

func (c *Controller) raise(section sections.Section) {
	if c.onSelected != nil {
		c.onSelected(section)
	}

	if c.nav != nil {
		if err := c.nav.Navigate(section.Route, TabNavOptions); err != nil {
			c.logger.Error("Failed to navigate to tab", "route", section.Route, "error", err)
		}
	}
}

// SelectNext selects the tab right of the current one, wrapping around.
func (c *Controller) SelectNext() bool {
	return c.Select((c.current + 1) % len(c.sections))
}

// SelectPrevious selects the tab left of the current one, wrapping around.
func (c *Controller) SelectPrevious() bool {
	return c.Select((c.current - 1 + len(c.sections)) % len(c.sections))
}

// Bind makes the bar follow sel. The returned function undoes it.
func (c *Controller) Bind(sel *state.Selection) (unbind func()) {
	c.SetCurrent(sel.CurrentID())
	return sel.Subscribe(func(_, current sections.Section) {
		c.SetCurrent(current.ID)
	})
}

// Tick advances every animation one frame and reports whether any is still
// running.
func (c *Controller) Tick() bool {
	running := false
	for _, fraction := range c.fractions {
		if fraction.Tick() {
			running = true
		}
	}
	if c.indicator.Tick() {
		running = true
	}
	return running
}

// Settled reports whether every animation has come to rest.
func (c *Controller) Settled() bool {
	for _, fraction := range c.fractions {
		if fraction.IsRunning() {
			return false
		}
	}
	return !c.indicator.IsRunning()
}

// Fractions returns how selected each tab currently is.
func (c *Controller) Fractions() []float64 {
	out := make([]float64, len(c.fractions))
	for i, fraction := range c.fractions {
		out[i] = fraction.Value()
	}
	return out
}

// FractionTargets returns the value each fraction is animating toward.
func (c *Controller) FractionTargets() []float64 {
	out := make([]float64, len(c.fractions))
	for i, fraction := range c.fractions {
		out[i] = fraction.Target()
	}
	return out
}

// IndicatorPosition returns the indicator's position in slot units.
func (c *Controller) IndicatorPosition() float64 {
	return c.indicator.Value()
}

// IndicatorTarget returns the slot the indicator is moving toward.
func (c *Controller) IndicatorTarget() float64 {
	return c.indicator.Target()
}

// Items returns the tabs with their current selection state.
func (c *Controller) Items() []Item {
	items := make([]Item, len(c.sections))
	for i, s := range c.sections {
		items[i] = Item{
			Section:  s,
			Selected: i == c.current,
			Fraction: c.fractions[i].Value(),
		}
	}
	return items
}

// Layout places the tabs and the indicator inside cons.
func (c *Controller) Layout(cons layout.Constraints) layout.Result {
	return layout.Arrange(cons, len(c.sections), len(c.fractions)+1, c.indicator.Value(), c.Fractions())
}

// HitTest maps a horizontal position inside the bar to a tab id.
func (c *Controller) HitTest(cons layout.Constraints, x int32) (int, bool) {
	id := c.Layout(cons).HitTest(x)
	return id, id >= 0
}

func (c *Controller) restingFractions() []*spring.Animatable {
	fractions := make([]*spring.Animatable, len(c.sections))
	for i := range fractions {
		fractions[i] = spring.NewBounded(restingFraction(i, c.current), c.spec, c.fps, 0, 1)
	}
	return fractions
}

func restingFraction(index, current int) float64 {
	if index == current {
		return 1
	}
	return 0
}
