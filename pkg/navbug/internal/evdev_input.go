package internal

import (
	"github.com/milchschlumpf/navbug/pkg/navbug/config"
	"github.com/milchschlumpf/navbug/pkg/navbug/constants"
)

// EvdevKeyMap maps raw evdev key codes to virtual buttons.
type EvdevKeyMap map[uint16]constants.VirtualButton

// EvdevKeyMapFrom builds the key map from the input section of the config.
func EvdevKeyMapFrom(cfg config.InputConfig) EvdevKeyMap {
	return EvdevKeyMap{
		cfg.PreviousKey: constants.VirtualButtonL1,
		cfg.NextKey:     constants.VirtualButtonR1,
		cfg.BackKey:     constants.VirtualButtonB,
	}
}

// evdev key values: 0 release, 1 press, 2 autorepeat.
const (
	evdevRelease = 0
	evdevPress   = 1
)

func (m EvdevKeyMap) translate(code uint16, value int32) (InputEvent, bool) {
	button, ok := m[code]
	if !ok || (value != evdevRelease && value != evdevPress) {
		return InputEvent{}, false
	}
	return InputEvent{Button: button, Pressed: value == evdevPress, Source: InputSourceEvdev}, true
}

// post delivers event to the UI loop. Presses are dropped when the loop is
// behind. Releases wait for room until stop is closed, so a held direction is
// always let go. It reports whether the event was delivered.
func post(events chan<- InputEvent, stop <-chan struct{}, event InputEvent) bool {
	if event.Pressed {
		select {
		case events <- event:
			return true
		default:
			return false
		}
	}

	select {
	case events <- event:
		return true
	case <-stop:
		return false
	}
}
