// Package core provides fundamental types and utilities for the funfair
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D point or direction in world space.
// Games simulate in normalized device coordinates: [-1, 1] on both axes,
// +y pointing up.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the component-wise difference.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the Euclidean length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns the unit vector, or the zero vector for zero input.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rotated returns the vector rotated by the given angle in radians.
func (v Vec2) Rotated(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Box is an axis-aligned rectangle given by its center and full extents.
type Box struct {
	Center Vec2
	Size   Vec2
}

// Contains reports whether p lies within the box (half-extent test).
func (b Box) Contains(p Vec2) bool {
	return math.Abs(p.X-b.Center.X) <= b.Size.X*0.5 &&
		math.Abs(p.Y-b.Center.Y) <= b.Size.Y*0.5
}

// Scaled returns a box with the same center and extents multiplied by f.
func (b Box) Scaled(f float64) Box {
	return Box{Center: b.Center, Size: b.Size.Scale(f)}
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Clamp restricts an integer value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// SmoothStep is the cubic ease-in/ease-out blend of t in [0, 1].
func SmoothStep(t float64) float64 {
	t = ClampF(t, 0, 1)
	return t * t * (3 - 2*t)
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Viewport maps between terminal cells and world (NDC) coordinates.
// The mapping samples cell centers so that a click on a drawn cell
// resolves to the world position it was drawn from.
type Viewport struct {
	W, H int
}

// ToWorld converts a cell coordinate to NDC.
func (vp Viewport) ToWorld(x, y int) Vec2 {
	if vp.W <= 0 || vp.H <= 0 {
		return Vec2{}
	}
	return Vec2{
		X: (float64(x)+0.5)/float64(vp.W)*2 - 1,
		Y: 1 - (float64(y)+0.5)/float64(vp.H)*2,
	}
}

// ToCell converts an NDC position to the enclosing cell coordinate.
// Results may lie outside the screen; callers clip on draw.
func (vp Viewport) ToCell(p Vec2) (int, int) {
	x := int((p.X + 1) * 0.5 * float64(vp.W))
	y := int((1 - p.Y) * 0.5 * float64(vp.H))
	return x, y
}

// SpanW converts a world-space width to a cell count (at least 1).
func (vp Viewport) SpanW(w float64) int {
	n := int(w * 0.5 * float64(vp.W))
	return Max(n, 1)
}

// SpanH converts a world-space height to a cell count (at least 1).
func (vp Viewport) SpanH(h float64) int {
	n := int(h * 0.5 * float64(vp.H))
	return Max(n, 1)
}
