// Package geom provides the small set of 2D primitives shared by the
// simulation: points, grid coordinates and axis-aligned rectangles.
package geom

import "math"

// Point represents a 2D point in world space (pixels)
type Point struct {
	X, Y float64
}

// Coord represents a grid cell coordinate
type Coord struct {
	Row, Col int
}

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the midpoint of the rectangle
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Overlaps reports whether two rectangles share a region of positive area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() &&
		r.Right() > o.X &&
		r.Y < o.Bottom() &&
		r.Bottom() > o.Y
}

// OverlapsX reports whether the horizontal spans of two rectangles overlap
func (r Rect) OverlapsX(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X
}

// Translate returns the rectangle moved by (dx, dy)
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Sign returns -1, 0 or +1 matching the sign of v
func Sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
