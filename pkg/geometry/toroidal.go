package geometry

import (
	"fmt"
	"math"
)

// Bounds is the rectangular domain of a toroidal (wrap-around) plane.
// Leaving through one edge re-enters through the opposite one.
type Bounds struct {
	Lower Vector2D `json:"lower"`
	Upper Vector2D `json:"upper"`
}

// NewBounds returns the domain of a viewport of the given size, centered
// on the origin: lower = (-w/2, -h/2), upper = (w/2, h/2).
func NewBounds(width, height float64) Bounds {
	hw, hh := width/2, height/2
	return Bounds{
		Lower: Vector2D{X: -hw, Y: -hh},
		Upper: Vector2D{X: hw, Y: hh},
	}
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%s..%s]", b.Lower, b.Upper)
}

// Width of the domain along X.
func (b Bounds) Width() float64 { return b.Upper.X - b.Lower.X }

// Height of the domain along Y.
func (b Bounds) Height() float64 { return b.Upper.Y - b.Lower.Y }

// Contains reports whether p lies inside the closed rectangle.
func (b Bounds) Contains(p Vector2D) bool {
	return p.X >= b.Lower.X && p.X <= b.Upper.X && p.Y >= b.Lower.Y && p.Y <= b.Upper.Y
}

// WrapToCenter returns the representative of point, translated by whole
// domain widths/heights on each axis independently, that lies within half a
// domain of center. It re-centers relative to an arbitrary center, which is
// what lets a flock be "unwrapped" around its own centroid.
//
// Points already inside [center-half, center+half] are returned untouched,
// so the function is idempotent. Non-finite coordinates are left alone.
func WrapToCenter(point, center Vector2D, b Bounds) Vector2D {
	return Vector2D{
		X: wrapAxis(point.X, center.X, b.Width()),
		Y: wrapAxis(point.Y, center.Y, b.Height()),
	}
}

// Wrap re-normalises point toward the domain origin, i.e. a classic
// wrap-around of positions that left the viewport.
func Wrap(point Vector2D, b Bounds) Vector2D {
	return WrapToCenter(point, Zero, b)
}

// Delta returns the shortest displacement going from one point to another
// on the torus.
func Delta(from, to Vector2D, b Bounds) Vector2D {
	return WrapToCenter(to, from, b).Sub(from)
}

func wrapAxis(p, c, full float64) float64 {
	if full <= 0 || !isFinite(p) || !isFinite(c) {
		return p
	}
	half := full / 2
	switch {
	case p < c-half:
		p += full * math.Ceil((c-half-p)/full)
	case p > c+half:
		p -= full * math.Ceil((p-c-half)/full)
	}
	return p
}
