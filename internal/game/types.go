package game

import "chosenoffset.com/dungeon/internal/core/geom"

// Camera tracks the viewport position for scrolling large levels.
type Camera struct {
	X, Y float64 // Camera position (top-left corner of viewport in world coords)
}

// Follow centers the camera on target and clamps it to the world bounds.
// A world smaller than the view pins the camera to the origin.
func (c *Camera) Follow(target geom.Point, viewW, viewH, worldW, worldH float64) {
	c.X = target.X - viewW/2
	c.Y = target.Y - viewH/2

	if c.X > worldW-viewW {
		c.X = worldW - viewW
	}
	if c.Y > worldH-viewH {
		c.Y = worldH - viewH
	}
	if c.X < 0 {
		c.X = 0
	}
	if c.Y < 0 {
		c.Y = 0
	}
}

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}
