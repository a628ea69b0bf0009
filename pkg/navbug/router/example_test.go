package router_test

import (
	"fmt"

	"github.com/milchschlumpf/navbug/pkg/navbug/router"
)

// Resume state kept by a screen, e.g. its scroll position.
type ScrollResume struct {
	Offset int
}

var tabOptions = router.NavOptions{
	PopUpToStart: true,
	SaveState:    true,
	RestoreState: true,
	SingleTop:    true,
}

func newController() *router.Controller {
	nav := router.New("home1")
	for _, route := range []string{"home1", "home2", "home3", "home4", "detail"} {
		route := route
		nav.Register(route, func(entry router.StackEntry) (any, error) {
			return "content of " + route, nil
		})
	}
	return nav
}

// Example demonstrates switching tabs without growing the back stack.
func Example() {
	nav := newController()

	_ = nav.Navigate("home2", tabOptions)
	fmt.Println(nav.Stack().Routes())

	_ = nav.Navigate("home3", tabOptions)
	fmt.Println(nav.Stack().Routes())

	_ = nav.Navigate("home1", tabOptions)
	fmt.Println(nav.Stack().Routes())

	content, _ := nav.Content()
	fmt.Println(content)

	// Output:
	// [home1 home2]
	// [home1 home3]
	// [home1]
	// content of home1
}

// Example_restoreState demonstrates that leaving a tab saves its history and
// coming back restores it, resume state included.
func Example_restoreState() {
	nav := newController()

	_ = nav.Navigate("home2", tabOptions)
	_ = nav.Navigate("detail", router.NavOptions{})
	nav.SetResume(&ScrollResume{Offset: 240})
	fmt.Println(nav.Stack().Routes())

	_ = nav.Navigate("home4", tabOptions)
	fmt.Println(nav.Stack().Routes(), nav.HasSavedState("home2"))

	_ = nav.Navigate("home2", tabOptions)
	fmt.Println(nav.Stack().Routes(), nav.HasSavedState("home2"))
	fmt.Println(nav.Current().Resume.(*ScrollResume).Offset)

	// Output:
	// [home1 home2 detail]
	// [home1 home4] true
	// [home1 home2 detail] false
	// 240
}

// Example_backNavigation demonstrates popping back to the start destination.
func Example_backNavigation() {
	nav := newController()

	nav.OnDestinationChanged(func(entry router.StackEntry) {
		fmt.Println("now at", entry.Route)
	})

	_ = nav.Navigate("home3", tabOptions)
	fmt.Println(nav.PopBackStack())
	fmt.Println(nav.PopBackStack())

	// Output:
	// now at home3
	// now at home1
	// true
	// false
}
