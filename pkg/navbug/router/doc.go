// Package router provides the back stack that the bottom navigation bar
// drives.
//
// A Controller starts at a fixed start destination. Each destination is
// registered with a ScreenFunc that produces its content, and Navigate moves
// between them while applying NavOptions to the history.
//
// # Basic Usage
//
//	nav := router.New("home1")
//	nav.Register("home1", homeScreen)
//	nav.Register("home2", homeScreen)
//
//	nav.OnDestinationChanged(func(entry router.StackEntry) {
//	    logger.Info("destination changed", "route", entry.Route)
//	})
//
//	err := nav.Navigate("home2", router.NavOptions{
//	    PopUpToStart: true,
//	    SaveState:    true,
//	    RestoreState: true,
//	    SingleTop:    true,
//	})
//
// # Saved State
//
// With SaveState, entries popped by PopUpToStart are kept as one saved stack.
// Navigating later to any route in that stack with RestoreState pushes the
// whole saved stack back, including each entry's Resume value, instead of
// creating a fresh entry. A saved stack is consumed when it is restored.
//
// # Single Top
//
// SingleTop prevents a second entry for the route that is already on top,
// so reselecting a tab never grows the history.
package router
