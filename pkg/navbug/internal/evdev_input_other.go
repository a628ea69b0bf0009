//go:build !linux

package internal

import "errors"

// ErrEvdevUnsupported is returned on platforms without evdev.
var ErrEvdevUnsupported = errors.New("evdev input is only available on linux")

type EvdevReader struct{}

func OpenEvdevReader(path string, keys EvdevKeyMap) (*EvdevReader, error) {
	return nil, ErrEvdevUnsupported
}

func (r *EvdevReader) Events() <-chan InputEvent {
	return nil
}

func (r *EvdevReader) Close() error {
	return nil
}
