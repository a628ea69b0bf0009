// Package layout computes where the bottom navigation bar places its tabs and
// its selection indicator.
//
// Arrange is a pure function of the container constraints and the current
// animated values, so it can be exercised without any rendering backend.
package layout

import (
	"fmt"
	"math"
)

// DefaultHeight is the nominal bar height in pixels.
const DefaultHeight int32 = 56

// Constraints bound the space the bar may occupy.
type Constraints struct {
	MaxWidth int32
	Height   int32
}

// Rect is a placed element, relative to the bar's top-left corner.
type Rect struct {
	X int32
	Y int32
	W int32
	H int32
}

// Contains reports whether the horizontal position x falls inside r.
func (r Rect) Contains(x int32) bool {
	return x >= r.X && x < r.X+r.W
}

// Result holds the placements of one layout pass.
type Result struct {
	Width     int32
	Height    int32
	SlotWidth int32
	Items     []Rect
	Indicator Rect
}

// ConsistencyError reports a mismatch between the declared tab count and the
// elements handed to the layout pass.
type ConsistencyError struct {
	ItemCount int
	Measured  int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("layout: %d tabs declared but %d elements measured (expected tabs + 1 indicator)", e.ItemCount, e.Measured)
}

// Arrange lays out itemCount equally sized tab slots and one indicator.
//
// measured is the number of elements being placed, which must be the tab
// count plus the indicator. fractions holds the per-tab selection fraction.
// indicator is the indicator position in slot units.
//
// A count mismatch is a programming error and panics with *ConsistencyError.
func Arrange(c Constraints, itemCount, measured int, indicator float64, fractions []float64) Result {
	if itemCount != measured-1 || len(fractions) != itemCount || itemCount <= 0 {
		panic(&ConsistencyError{ItemCount: itemCount, Measured: measured})
	}

	slotWidth := c.MaxWidth / int32(itemCount)

	items := make([]Rect, itemCount)
	x := int32(0)
	for i, fraction := range fractions {
		// Selected and unselected widths are the same today, so the
		// interpolation always yields slotWidth.
		w := Lerp(slotWidth, slotWidth, fraction)
		items[i] = Rect{X: x, Y: 0, W: w, H: c.Height}
		x += w
	}

	return Result{
		Width:     c.MaxWidth,
		Height:    c.Height,
		SlotWidth: slotWidth,
		Items:     items,
		Indicator: Rect{
			X: int32(indicator * float64(slotWidth)),
			Y: 0,
			W: slotWidth,
			H: c.Height,
		},
	}
}

// Lerp interpolates between start and stop, rounding to the nearest pixel.
func Lerp(start, stop int32, fraction float64) int32 {
	return start + int32(math.Round(float64(stop-start)*fraction))
}

// HitTest returns the index of the tab slot under x, or -1.
func (r Result) HitTest(x int32) int {
	for i, item := range r.Items {
		if item.Contains(x) {
			return i
		}
	}
	return -1
}
