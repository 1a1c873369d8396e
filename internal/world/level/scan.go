package level

import "chosenoffset.com/dungeon/internal/core/geom"

// Spawns is the result of scanning a grid for materialized features
type Spawns struct {
	Guards []geom.Point // Top-left pixel origin of each guard cell
	Spikes []geom.Coord // Cells holding spike traps
}

// Scan walks the grid once, collecting guard spawns and spike cells.
// Guard cells are cleared to Empty; spike cells stay in the grid so they
// keep being drawn.
func Scan(g *Grid, tileSize float64) Spawns {
	var s Spawns
	g.Each(func(row, col int, t Tile) {
		switch t {
		case GuardSpawn:
			s.Guards = append(s.Guards, geom.Point{
				X: float64(col) * tileSize,
				Y: float64(row) * tileSize,
			})
			g.ClearTile(row, col)
		case Spike:
			s.Spikes = append(s.Spikes, geom.Coord{Row: row, Col: col})
		}
	})
	return s
}
