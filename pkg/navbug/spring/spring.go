// Package spring provides spring-driven animated values.
//
// An Animatable owns its current value, velocity and target. Setting a new
// target never restarts the motion: the spring keeps the instantaneous value
// and velocity and simply pulls toward the new equilibrium. There is no queue
// and no external cancel; retargeting replaces whatever was in flight.
//
// Animatables are advanced explicitly with Tick, once per frame, by whatever
// loop owns them. They are not safe for concurrent use.
package spring

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	// DefaultFPS is the frame rate Tick assumes unless told otherwise.
	DefaultFPS = 60

	// VisibilityThreshold is the distance and speed under which an animation
	// is considered settled and snapped onto its target.
	VisibilityThreshold = 0.001
)

// Spec holds the physical parameters of a spring with unit mass.
type Spec struct {
	Stiffness    float64
	DampingRatio float64
}

// DefaultSpec is a snappy, barely oscillating spring.
func DefaultSpec() Spec {
	return Spec{
		Stiffness:    800,
		DampingRatio: 0.8,
	}
}

// AngularFrequency is the undamped angular frequency of the spring.
func (s Spec) AngularFrequency() float64 {
	return math.Sqrt(s.Stiffness)
}

// Animatable is a single animated float value.
type Animatable struct {
	value    float64
	velocity float64
	target   float64
	running  bool

	bounded    bool
	lowerBound float64
	upperBound float64

	spec   Spec
	spring harmonica.Spring
}

// New creates an Animatable resting at initial.
func New(initial float64, spec Spec, fps int) *Animatable {
	if fps <= 0 {
		fps = DefaultFPS
	}

	return &Animatable{
		value:  initial,
		target: initial,
		spec:   spec,
		spring: harmonica.NewSpring(harmonica.FPS(fps), spec.AngularFrequency(), spec.DampingRatio),
	}
}

// NewBounded creates an Animatable whose value is clamped to [lower, upper].
func NewBounded(initial float64, spec Spec, fps int, lower, upper float64) *Animatable {
	a := New(initial, spec, fps)
	a.bounded = true
	a.lowerBound = lower
	a.upperBound = upper
	a.value = a.clamp(initial)
	a.target = a.value
	return a
}

// AnimateTo points the spring at a new target. It returns false when the
// target is unchanged, in which case the running motion is left alone.
func (a *Animatable) AnimateTo(target float64) bool {
	if a.bounded {
		target = a.clamp(target)
	}
	if target == a.target {
		return false
	}

	a.target = target
	a.running = true
	return true
}

// Snap jumps to v and stops any motion.
func (a *Animatable) Snap(v float64) {
	if a.bounded {
		v = a.clamp(v)
	}
	a.value = v
	a.target = v
	a.velocity = 0
	a.running = false
}

// Tick advances the animation by one frame and reports whether it is still
// running afterwards.
func (a *Animatable) Tick() bool {
	if !a.running {
		return false
	}

	a.value, a.velocity = a.spring.Update(a.value, a.velocity, a.target)

	if a.bounded {
		if clamped := a.clamp(a.value); clamped != a.value {
			a.value = clamped
			a.velocity = 0
		}
	}

	if math.Abs(a.value-a.target) < VisibilityThreshold && math.Abs(a.velocity) < VisibilityThreshold {
		a.value = a.target
		a.velocity = 0
		a.running = false
	}

	return a.running
}

// Value returns the current animated value.
func (a *Animatable) Value() float64 { return a.value }

// Velocity returns the current velocity in units per second.
func (a *Animatable) Velocity() float64 { return a.velocity }

// Target returns the value the spring is pulling toward.
func (a *Animatable) Target() float64 { return a.target }

// IsRunning reports whether the value is still moving.
func (a *Animatable) IsRunning() bool { return a.running }

// Spec returns the spring parameters.
func (a *Animatable) Spec() Spec { return a.spec }

func (a *Animatable) clamp(v float64) float64 {
	return math.Max(a.lowerBound, math.Min(a.upperBound, v))
}
