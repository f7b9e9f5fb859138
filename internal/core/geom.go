// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Box is an axis-aligned rectangle in continuous (pixel) space.
// Simulations work in Box space and renderers project it onto cells.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewBox creates a box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// CenterX returns the horizontal center.
func (b Box) CenterX() float64 {
	return b.X + b.W/2
}

// Intersects reports whether two boxes overlap. Touching edges do not count.
func (b Box) Intersects(other Box) bool {
	return b.X < other.Right() && other.X < b.Right() &&
		b.Y < other.Bottom() && other.Y < b.Bottom()
}

// OverlapsX reports whether the horizontal extents of two boxes overlap.
func (b Box) OverlapsX(other Box) bool {
	return SpansOverlap(b.X, b.W, other.X, other.W)
}

// Shrink returns the box reduced by frac of its size on every side.
// frac 0.1 removes 10% of the width from the left and 10% from the right.
func (b Box) Shrink(frac float64) Box {
	if frac <= 0 {
		return b
	}
	dx := b.W * frac
	dy := b.H * frac
	return Box{X: b.X + dx, Y: b.Y + dy, W: math.Max(0, b.W-2*dx), H: math.Max(0, b.H-2*dy)}
}

// CircleIntersects reports whether a circle at (cx, cy) with radius r overlaps the box.
// The circle center is clamped to the box and the squared distance compared to r².
func (b Box) CircleIntersects(cx, cy, r float64) bool {
	nx := ClampF(cx, b.X, b.Right())
	ny := ClampF(cy, b.Y, b.Bottom())
	dx := cx - nx
	dy := cy - ny
	return dx*dx+dy*dy <= r*r
}

// Cells projects the box onto a cell grid of cellW x cellH pixels per cell.
// Partially covered cells are included.
func (b Box) Cells(cellW, cellH float64) Rect {
	x0 := int(math.Floor(b.X / cellW))
	y0 := int(math.Floor(b.Y / cellH))
	x1 := int(math.Ceil(b.Right() / cellW))
	y1 := int(math.Ceil(b.Bottom() / cellH))
	return NewRect(x0, y0, Max(1, x1-x0), Max(1, y1-y0))
}

// SpansOverlap reports whether [x1, x1+w1) and [x2, x2+w2) intersect.
func SpansOverlap(x1, w1, x2, w2 float64) bool {
	return x1 < x2+w2 && x2 < x1+w1
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
