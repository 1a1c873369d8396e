package level

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid is returned when a tile table is empty or ragged
var ErrInvalidGrid = errors.New("invalid grid")

// Grid is a fixed-size rectangular table of tiles addressed as [row][col].
// Dimensions never change after construction.
type Grid struct {
	cells [][]Tile
	rows  int
	cols  int
}

// New builds a grid from a tile table. The table is copied so later edits
// to the caller's slices do not leak into the grid.
func New(rows [][]Tile) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidGrid)
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrInvalidGrid)
	}

	cells := make([][]Tile, len(rows))
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrInvalidGrid, r, len(row), cols)
		}
		for c, t := range row {
			if !t.Valid() {
				return nil, fmt.Errorf("%w: unknown tile code %d at (%d, %d)", ErrInvalidGrid, int(t), r, c)
			}
		}
		cells[r] = append([]Tile(nil), row...)
	}

	return &Grid{cells: cells, rows: len(rows), cols: cols}, nil
}

// MustNew is New for tables known to be valid at compile time
func MustNew(rows [][]Tile) *Grid {
	g, err := New(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of rows
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether (row, col) addresses a cell of the grid
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// TileAt returns the tile at (row, col), or Empty outside the grid
func (g *Grid) TileAt(row, col int) Tile {
	if !g.InBounds(row, col) {
		return Empty
	}
	return g.cells[row][col]
}

// IsSolid reports whether the cell at (row, col) blocks movement
func (g *Grid) IsSolid(row, col int) bool {
	return g.TileAt(row, col).Solid()
}

// ClearTile sets the cell at (row, col) to Empty.
// Out-of-bounds cells are ignored and clearing twice is harmless.
func (g *Grid) ClearTile(row, col int) {
	if !g.InBounds(row, col) {
		return
	}
	g.cells[row][col] = Empty
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	cells := make([][]Tile, g.rows)
	for r := range g.cells {
		cells[r] = append([]Tile(nil), g.cells[r]...)
	}
	return &Grid{cells: cells, rows: g.rows, cols: g.cols}
}

// Each calls fn for every cell in row-major order
func (g *Grid) Each(fn func(row, col int, t Tile)) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			fn(r, c, g.cells[r][c])
		}
	}
}
