// Package core provides fundamental types and utilities for the arkanoid game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned bounding box used for collision detection.
// Coordinates are integer pixels; the size is fixed at construction and only
// MoveTo changes a rectangle afterwards.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() int {
	return r.X
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() int {
	return r.Y
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// CenterX returns the horizontal center (integer-divided).
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// MoveTo returns the rectangle relocated to (x, y) with the same size.
func (r Rect) MoveTo(x, y int) Rect {
	return Rect{X: x, Y: y, W: r.W, H: r.H}
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection; touching edges do not overlap.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Overlap returns the intersection of two rectangles.
// Width and height are clamped to zero when the rectangles are disjoint.
func (r Rect) Overlap(other Rect) Rect {
	left := Max(r.Left(), other.Left())
	top := Max(r.Top(), other.Top())
	right := Min(r.Right(), other.Right())
	bottom := Min(r.Bottom(), other.Bottom())

	return Rect{
		X: left,
		Y: top,
		W: Max(0, right-left),
		H: Max(0, bottom-top),
	}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
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
