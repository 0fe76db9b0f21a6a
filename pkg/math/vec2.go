// Package math provides the 2D vector, rectangle and matrix types used for
// screen-space drawing and movement.
package math

import "math"

// Vec2 is a 2D vector in pixels.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Normalize returns a unit vector, or the zero vector for zero input.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Limit shortens v to at most length max.
func (v Vec2) Limit(max float32) Vec2 {
	if l := v.Length(); l > max {
		return v.Scale(max / l)
	}
	return v
}

// Rect is an axis-aligned rectangle with its origin at the top-left.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Clamp moves p to the nearest point inside r, edges included.
func (r Rect) Clamp(p Vec2) Vec2 {
	return Vec2{clamp(p.X, r.X, r.X+r.W), clamp(p.Y, r.Y, r.Y+r.H)}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
