package flocking

import (
	"math"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

// Integrate advances the agent's position by velocity*dt, optionally wraps
// it back toward the domain origin, and derives its heading from the
// velocity. It returns true when a non-finite coordinate had to be replaced.
func Integrate(a *Agent, dt float64, b geometry.Bounds, wrap bool) bool {
	old := a.Position
	next := old.Add(a.Velocity.Mul(dt))

	var rx, ry bool
	next.X, rx = recoverAxis(next.X, old.X)
	next.Y, ry = recoverAxis(next.Y, old.Y)

	if wrap {
		next = geometry.Wrap(next, b)
	}

	a.Position = next
	a.Heading = HeadingOf(a.Velocity)
	return rx || ry
}

// recoverAxis falls back to the previous coordinate, or to 0 when that one
// is broken too.
func recoverAxis(next, old float64) (float64, bool) {
	if !math.IsNaN(next) && !math.IsInf(next, 0) {
		return next, false
	}
	if !math.IsNaN(old) && !math.IsInf(old, 0) {
		return old, true
	}
	return 0, true
}

// HeadingOf returns the facing angle of a velocity in [-Pi, Pi].
// A zero velocity faces 0: the previous heading is not kept.
func HeadingOf(v geometry.Vector2D) float64 {
	if v.IsZero() || !v.IsFinite() {
		return 0
	}
	n := v.Normalize()
	// |n.X| can exceed 1 by an ulp
	c := math.Max(-1, math.Min(1, n.X))

	heading := math.Acos(c)
	if n.Y < 0 {
		heading = -heading
	}
	if math.IsNaN(heading) || math.IsInf(heading, 0) {
		return 0
	}
	return heading
}
