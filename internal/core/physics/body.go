// Package physics integrates actor velocities and resolves their bounding
// boxes against the solid cells of the level grid.
//
// Resolution is axis-separated: the horizontal displacement is applied and
// fully corrected before the vertical one. Every actor type uses the same
// policy. Each pass is a single correction with no re-check, which is
// sufficient because velocities stay below one tile per tick.
package physics

import (
	"math"

	"chosenoffset.com/dungeon/internal/core/geom"
)

// Body is the kinematic state shared by every actor.
// (X, Y) is the top-left corner of the bounding box.
type Body struct {
	X, Y   float64
	VX, VY float64
	W, H   float64

	// Facing is +1 for right and -1 for left
	Facing int

	// Grounded is recomputed by every vertical pass: true only when that
	// pass snapped the body onto the top of a solid cell.
	Grounded bool
}

// NewBody creates a body at rest facing right
func NewBody(x, y, w, h float64) Body {
	return Body{X: x, Y: y, W: w, H: h, Facing: 1}
}

// Rect returns the bounding box
func (b *Body) Rect() geom.Rect {
	return geom.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Center returns the center of the bounding box
func (b *Body) Center() geom.Point {
	return b.Rect().Center()
}

// Stop zeroes both velocity components
func (b *Body) Stop() {
	b.VX = 0
	b.VY = 0
}

// ApplyGravity accelerates the body downward, capped at maxFall
func (b *Body) ApplyGravity(gravity, maxFall float64) {
	b.VY = math.Min(b.VY+gravity, maxFall)
}
