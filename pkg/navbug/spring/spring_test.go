package spring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// settle ticks a until it stops and returns the number of frames it took.
func settle(t *testing.T, a *Animatable) int {
	t.Helper()
	for frames := 1; frames <= 600; frames++ {
		if !a.Tick() {
			return frames
		}
	}
	t.Fatalf("animation did not settle: value=%v velocity=%v target=%v", a.Value(), a.Velocity(), a.Target())
	return 0
}

func TestNewRestsAtInitialValue(t *testing.T) {
	a := New(3, DefaultSpec(), DefaultFPS)

	assert.Equal(t, 3.0, a.Value())
	assert.Equal(t, 3.0, a.Target())
	assert.False(t, a.IsRunning())
	assert.False(t, a.Tick())
}

func TestAnimateToSettlesExactlyOnTarget(t *testing.T) {
	a := New(0, DefaultSpec(), DefaultFPS)

	require.True(t, a.AnimateTo(2))
	frames := settle(t, a)

	assert.Equal(t, 2.0, a.Value())
	assert.Equal(t, 0.0, a.Velocity())
	assert.Less(t, frames, 60, "a stiff spring should settle in well under a second")
}

func TestAnimateToSameTargetIsNoop(t *testing.T) {
	a := New(0, DefaultSpec(), DefaultFPS)

	require.True(t, a.AnimateTo(1))
	a.Tick()
	v, vel := a.Value(), a.Velocity()

	assert.False(t, a.AnimateTo(1))
	assert.Equal(t, v, a.Value())
	assert.Equal(t, vel, a.Velocity())
}

func TestRetargetKeepsValueAndVelocity(t *testing.T) {
	a := New(0, DefaultSpec(), DefaultFPS)
	a.AnimateTo(3)
	for i := 0; i < 2; i++ {
		a.Tick()
	}

	v, vel := a.Value(), a.Velocity()
	require.Greater(t, vel, 0.0)

	require.True(t, a.AnimateTo(0))
	assert.Equal(t, v, a.Value(), "retarget must not jump")
	assert.Equal(t, vel, a.Velocity(), "retarget must carry momentum")

	// Momentum carries the value further away before it turns around.
	a.Tick()
	assert.Greater(t, a.Value(), v)

	settle(t, a)
	assert.Equal(t, 0.0, a.Value())
}

func TestUnboundedOvershoots(t *testing.T) {
	a := New(0, DefaultSpec(), DefaultFPS)
	a.AnimateTo(2)

	peak := 0.0
	for a.Tick() {
		if a.Value() > peak {
			peak = a.Value()
		}
	}

	assert.Greater(t, peak, 2.0, "an underdamped spring passes its target")
	assert.Equal(t, 2.0, a.Value())
}

func TestBoundedStaysInRange(t *testing.T) {
	for _, target := range []float64{0, 1} {
		a := NewBounded(1-target, DefaultSpec(), DefaultFPS, 0, 1)
		a.AnimateTo(target)

		for a.Tick() {
			assert.GreaterOrEqual(t, a.Value(), 0.0)
			assert.LessOrEqual(t, a.Value(), 1.0)
		}
		assert.Equal(t, target, a.Value())
	}
}

func TestBoundedClampsTargets(t *testing.T) {
	a := NewBounded(0.5, DefaultSpec(), DefaultFPS, 0, 1)

	a.AnimateTo(5)
	assert.Equal(t, 1.0, a.Target())

	a.Snap(-2)
	assert.Equal(t, 0.0, a.Value())
	assert.False(t, a.IsRunning())
}

func TestSnapStopsMotion(t *testing.T) {
	a := New(0, DefaultSpec(), DefaultFPS)
	a.AnimateTo(4)
	a.Tick()

	a.Snap(1)

	assert.Equal(t, 1.0, a.Value())
	assert.Equal(t, 1.0, a.Target())
	assert.Equal(t, 0.0, a.Velocity())
	assert.False(t, a.Tick())
}

func TestFPSDefaultsWhenInvalid(t *testing.T) {
	a := New(0, DefaultSpec(), 0)
	a.AnimateTo(1)
	settle(t, a)
	assert.Equal(t, 1.0, a.Value())
}

func TestDefaultSpec(t *testing.T) {
	s := DefaultSpec()
	assert.Equal(t, 800.0, s.Stiffness)
	assert.Equal(t, 0.8, s.DampingRatio)
	assert.InDelta(t, 28.284, s.AngularFrequency(), 0.001)
}
