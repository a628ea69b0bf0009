package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/milchschlumpf/navbug/pkg/navbug/config"
	"github.com/milchschlumpf/navbug/pkg/navbug/constants"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestDirectionalRepeats(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	d := NewDirectionalInputWithTiming(300*time.Millisecond, 100*time.Millisecond)
	d.now = clock.now
	d.Reset()

	assert.Equal(t, DirectionNext, d.SetHeld(constants.VirtualButtonR1, true))
	assert.Equal(t, DirectionNone, d.Update())

	clock.advance(300 * time.Millisecond)
	assert.Equal(t, DirectionNext, d.Update(), "first repeat after the delay")

	clock.advance(50 * time.Millisecond)
	assert.Equal(t, DirectionNone, d.Update())
	clock.advance(50 * time.Millisecond)
	assert.Equal(t, DirectionNext, d.Update(), "then every interval")

	assert.Equal(t, DirectionNone, d.SetHeld(constants.VirtualButtonR1, false))
	clock.advance(time.Second)
	assert.Equal(t, DirectionNone, d.Update())
}

func TestDirectionOf(t *testing.T) {
	assert.Equal(t, DirectionPrevious, DirectionOf(constants.VirtualButtonLeft))
	assert.Equal(t, DirectionPrevious, DirectionOf(constants.VirtualButtonL1))
	assert.Equal(t, DirectionNext, DirectionOf(constants.VirtualButtonRight))
	assert.Equal(t, DirectionNext, DirectionOf(constants.VirtualButtonR1))
	assert.Equal(t, DirectionNone, DirectionOf(constants.VirtualButtonA))
}

func TestEvdevTranslate(t *testing.T) {
	keys := EvdevKeyMapFrom(config.Default().Input)

	event, ok := keys.translate(311, evdevPress)
	assert.True(t, ok)
	assert.Equal(t, InputEvent{Button: constants.VirtualButtonR1, Pressed: true, Source: InputSourceEvdev}, event)

	event, ok = keys.translate(305, evdevRelease)
	assert.True(t, ok)
	assert.Equal(t, constants.VirtualButtonB, event.Button)
	assert.False(t, event.Pressed)

	_, ok = keys.translate(311, 2)
	assert.False(t, ok, "autorepeat is handled by DirectionalInput")

	_, ok = keys.translate(116, evdevPress)
	assert.False(t, ok, "unmapped keys are dropped")
}

func TestHexToColor(t *testing.T) {
	c := HexToColor(0x12AB34)
	assert.Equal(t, uint8(0x12), c.R)
	assert.Equal(t, uint8(0xAB), c.G)
	assert.Equal(t, uint8(0x34), c.B)
	assert.Equal(t, uint8(0xFF), c.A)
}

func TestPostDropsPressesButNotReleases(t *testing.T) {
	events := make(chan InputEvent, 1)
	stop := make(chan struct{})
	press := InputEvent{Button: constants.VirtualButtonR1, Pressed: true, Source: InputSourceEvdev}
	release := InputEvent{Button: constants.VirtualButtonR1, Source: InputSourceEvdev}

	assert.True(t, post(events, stop, press))
	assert.False(t, post(events, stop, press), "presses are dropped when the loop is behind")

	delivered := make(chan bool)
	go func() { delivered <- post(events, stop, release) }()

	assert.Equal(t, press, <-events)
	assert.True(t, <-delivered, "the release waits for room")
	assert.Equal(t, release, <-events)

	events <- press
	close(stop)
	assert.False(t, post(events, stop, release), "a stopped reader gives up")
}
