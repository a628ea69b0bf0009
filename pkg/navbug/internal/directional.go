package internal

import (
	"time"

	"github.com/milchschlumpf/navbug/pkg/navbug/constants"
)

// Direction is a horizontal step across the tabs.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionPrevious
	DirectionNext
)

// DirectionalInput tracks held tab-switching buttons and fires repeats while
// one stays down. Left and L1 step back, Right and R1 step forward.
type DirectionalInput struct {
	held struct {
		previous, next bool
	}
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewDirectionalInput creates a DirectionalInput with default timing:
// 400ms before the first repeat, then 150ms between repeats. Slower than a
// list scroll since every step starts an animation.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(400*time.Millisecond, 150*time.Millisecond)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: time.Now(),
		now:            time.Now,
	}
}

// DirectionOf maps a virtual button to the step it triggers.
func DirectionOf(button constants.VirtualButton) Direction {
	switch button {
	case constants.VirtualButtonLeft, constants.VirtualButtonL1:
		return DirectionPrevious
	case constants.VirtualButtonRight, constants.VirtualButtonR1:
		return DirectionNext
	}
	return DirectionNone
}

// SetHeld updates the held state for a button. It returns the direction the
// press should step in immediately, or DirectionNone for releases and
// non-directional buttons.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) Direction {
	dir := DirectionOf(button)
	switch dir {
	case DirectionPrevious:
		d.held.previous = held
	case DirectionNext:
		d.held.next = held
	default:
		return DirectionNone
	}

	d.hasRepeated = false
	d.lastRepeatTime = d.now()
	if !held {
		return DirectionNone
	}
	return dir
}

// IsHeld returns true if any direction is currently held.
func (d *DirectionalInput) IsHeld() bool {
	return d.held.previous || d.held.next
}

// HeldDirection returns the currently held direction, previous winning
// when both are down.
func (d *DirectionalInput) HeldDirection() Direction {
	if d.held.previous {
		return DirectionPrevious
	}
	if d.held.next {
		return DirectionNext
	}
	return DirectionNone
}

// Update checks if a repeat should fire. Call it every frame.
func (d *DirectionalInput) Update() Direction {
	if !d.IsHeld() {
		d.lastRepeatTime = d.now()
		d.hasRepeated = false
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if d.now().Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = d.now()
		d.hasRepeated = true
		return d.HeldDirection()
	}

	return DirectionNone
}

// Reset clears all held directions and timing state.
func (d *DirectionalInput) Reset() {
	d.held.previous = false
	d.held.next = false
	d.hasRepeated = false
	d.lastRepeatTime = d.now()
}

func (d Direction) String() string {
	switch d {
	case DirectionPrevious:
		return "previous"
	case DirectionNext:
		return "next"
	default:
		return ""
	}
}
