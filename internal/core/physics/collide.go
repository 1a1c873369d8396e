package physics

import (
	"math"

	"chosenoffset.com/dungeon/internal/core/geom"
	"chosenoffset.com/dungeon/internal/world/level"
)

// edgeEpsilon absorbs float error when an edge sits on a cell boundary (in cells)
const edgeEpsilon = 1e-6

// CellRange returns the inclusive range of cells a rectangle overlaps with
// positive area. An edge lying exactly on a cell boundary does not claim
// the neighbouring cell, so a body resting on a floor does not occupy the
// floor row.
func CellRange(r geom.Rect, tileSize float64) (top, bottom, left, right int) {
	left = int(math.Floor(r.X/tileSize + edgeEpsilon))
	right = int(math.Ceil(r.Right()/tileSize-edgeEpsilon)) - 1
	top = int(math.Floor(r.Y/tileSize + edgeEpsilon))
	bottom = int(math.Ceil(r.Bottom()/tileSize-edgeEpsilon)) - 1
	return top, bottom, left, right
}

// Cell returns the grid cell containing a point
func Cell(p geom.Point, tileSize float64) geom.Coord {
	return geom.Coord{
		Row: int(math.Floor(p.Y / tileSize)),
		Col: int(math.Floor(p.X / tileSize)),
	}
}

// Resolver moves bodies through a grid, keeping them out of solid cells
type Resolver struct {
	Grid     *level.Grid
	TileSize float64
}

// NewResolver creates a resolver for the grid
func NewResolver(grid *level.Grid, tileSize float64) *Resolver {
	return &Resolver{Grid: grid, TileSize: tileSize}
}

// Move applies the horizontal pass then the vertical pass
func (r *Resolver) Move(b *Body) {
	r.MoveX(b)
	r.MoveY(b)
}

// MoveX applies VX and pushes the body back out of any solid cell it now
// overlaps. Moving right clamps the right edge to the cell's left boundary;
// moving left clamps the left edge to the cell's right boundary. Either
// clamp zeroes VX.
func (r *Resolver) MoveX(b *Body) {
	b.X += b.VX

	dir := geom.Sign(b.VX)
	if dir == 0 {
		return
	}

	hit := false
	r.eachSolid(b.Rect(), func(row, col int) {
		tileX := float64(col) * r.TileSize
		if dir > 0 {
			b.X = math.Min(b.X, tileX-b.W)
		} else {
			b.X = math.Max(b.X, tileX+r.TileSize)
		}
		hit = true
	})

	if hit {
		b.VX = 0
	}
}

// MoveY resets Grounded, applies VY and pushes the body back out of any
// solid cell it now overlaps. Landing on a cell sets Grounded; hitting a
// ceiling does not. Either clamp zeroes VY.
func (r *Resolver) MoveY(b *Body) {
	b.Grounded = false
	b.Y += b.VY

	dir := geom.Sign(b.VY)
	if dir == 0 {
		return
	}

	hit := false
	r.eachSolid(b.Rect(), func(row, col int) {
		tileY := float64(row) * r.TileSize
		if dir > 0 {
			b.Y = math.Min(b.Y, tileY-b.H)
			b.Grounded = true
		} else {
			b.Y = math.Max(b.Y, tileY+r.TileSize)
		}
		hit = true
	})

	if hit {
		b.VY = 0
	}
}

// Fits reports whether a rectangle overlaps no solid cell
func (r *Resolver) Fits(rect geom.Rect) bool {
	fits := true
	r.eachSolid(rect, func(int, int) {
		fits = false
	})
	return fits
}

// SolidAt reports whether the cell containing the point is solid
func (r *Resolver) SolidAt(p geom.Point) bool {
	c := Cell(p, r.TileSize)
	return r.Grid.IsSolid(c.Row, c.Col)
}

// eachSolid calls fn for every solid cell overlapped by rect
func (r *Resolver) eachSolid(rect geom.Rect, fn func(row, col int)) {
	top, bottom, left, right := CellRange(rect, r.TileSize)
	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			if r.Grid.IsSolid(row, col) {
				fn(row, col)
			}
		}
	}
}
