//go:build linux

package internal

import (
	"fmt"

	evdev "github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// EvdevReader reads button presses from a raw input device, such as the
// shoulder buttons of a handheld that SDL does not expose as a controller.
// Events are posted to a channel; the UI loop drains it.
type EvdevReader struct {
	device  *evdev.InputDevice
	keys    EvdevKeyMap
	events  chan InputEvent
	stopped atomic.Bool
	stop    chan struct{}
	done    chan struct{}
}

// OpenEvdevReader opens path and starts reading in the background.
func OpenEvdevReader(path string, keys EvdevKeyMap) (*EvdevReader, error) {
	device, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open evdev device %q: %w", path, err)
	}

	name, _ := device.Name()
	GetInternalLogger().Debug("Opened evdev device", "path", path, "name", name)

	r := &EvdevReader{
		device: device,
		keys:   keys,
		events: make(chan InputEvent, 16),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go r.run()
	return r, nil
}

// Events returns the channel translated button events arrive on. It is
// closed when the reader stops.
func (r *EvdevReader) Events() <-chan InputEvent {
	return r.events
}

func (r *EvdevReader) run() {
	defer close(r.done)
	defer close(r.events)

	for {
		event, err := r.device.ReadOne()
		if err != nil {
			if !r.stopped.Load() {
				GetInternalLogger().Error("Evdev read failed; stopping reader", "error", err)
			}
			return
		}
		if event.Type != evdev.EV_KEY {
			continue
		}
		translated, ok := r.keys.translate(uint16(event.Code), event.Value)
		if !ok {
			continue
		}
		if !post(r.events, r.stop, translated) && translated.Pressed {
			GetInternalLogger().Debug("Dropping evdev press; UI loop is behind", "button", translated.Button.GetName())
		}
	}
}

// Close stops the reader and waits for its goroutine to exit.
func (r *EvdevReader) Close() error {
	if !r.stopped.CompareAndSwap(false, true) {
		return nil
	}
	close(r.stop)
	err := r.device.Close()
	<-r.done
	return err
}
