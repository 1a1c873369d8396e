package entity

import "chosenoffset.com/dungeon/internal/core/geom"

// Hazard is a fixed damage zone. It is derived once from the grid and
// never changes.
type Hazard struct {
	geom.Rect
	Cell geom.Coord
}

// NewSpike builds the hazard for a spike cell: the lower half of the cell
func NewSpike(cell geom.Coord, tileSize float64) Hazard {
	return Hazard{
		Rect: geom.Rect{
			X: float64(cell.Col) * tileSize,
			Y: float64(cell.Row)*tileSize + tileSize/2,
			W: tileSize,
			H: tileSize / 2,
		},
		Cell: cell,
	}
}

// SpikesFrom builds one hazard per spike cell
func SpikesFrom(cells []geom.Coord, tileSize float64) []Hazard {
	hazards := make([]Hazard, 0, len(cells))
	for _, c := range cells {
		hazards = append(hazards, NewSpike(c, tileSize))
	}
	return hazards
}

// Hits reports whether a bounding box overlaps the hazard
func (h Hazard) Hits(box geom.Rect) bool {
	return h.Rect.Overlaps(box)
}

// touchesAny reports whether box overlaps at least one hazard
func touchesAny(hazards []Hazard, box geom.Rect) bool {
	for _, h := range hazards {
		if h.Hits(box) {
			return true
		}
	}
	return false
}
