package maploader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"chosenoffset.com/dungeon/internal/core/geom"
	"chosenoffset.com/dungeon/internal/world/level"
)

// ErrInvalidLevel is wrapped by every validation failure
var ErrInvalidLevel = errors.New("invalid level")

// SpawnPoint defines the player's start cell
type SpawnPoint struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// LevelData represents the level file as stored on disk
type LevelData struct {
	Name        string     `json:"name"`
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	TileSize    int        `json:"tile_size"` // Pixel size of one cell
	PlayerSpawn SpawnPoint `json:"player_spawn"`
	Tiles       [][]int    `json:"tiles"` // Tile codes [row][col]
}

// Level represents a loaded level with its grid materialized
type Level struct {
	Data *LevelData
	Grid *level.Grid
}

// LoadLevel loads a level from a JSON file
func LoadLevel(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}

	lvl, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("level file %s: %w", path, err)
	}
	return lvl, nil
}

// ParseLevel decodes and validates level JSON
func ParseLevel(data []byte) (*Level, error) {
	var levelData LevelData
	if err := json.Unmarshal(data, &levelData); err != nil {
		return nil, fmt.Errorf("failed to parse level: %w", err)
	}

	if err := validateLevelData(&levelData); err != nil {
		return nil, err
	}

	rows := make([][]level.Tile, len(levelData.Tiles))
	for r, row := range levelData.Tiles {
		rows[r] = make([]level.Tile, len(row))
		for c, code := range row {
			rows[r][c] = level.Tile(code)
		}
	}

	grid, err := level.New(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLevel, err)
	}

	return &Level{Data: &levelData, Grid: grid}, nil
}

// Builtin wraps the compiled-in dungeon as a Level
func Builtin(tileSize int) *Level {
	g := level.Dungeon()
	return &Level{
		Data: &LevelData{
			Name:     "dungeon",
			Width:    g.Cols(),
			Height:   g.Rows(),
			TileSize: tileSize,
			PlayerSpawn: SpawnPoint{
				Row: level.DungeonSpawn.Row,
				Col: level.DungeonSpawn.Col,
			},
		},
		Grid: g,
	}
}

// validateLevelData checks if the level data is valid
func validateLevelData(data *LevelData) error {
	if data.Width <= 0 || data.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidLevel, data.Width, data.Height)
	}

	if data.TileSize <= 0 {
		return fmt.Errorf("%w: tile size %d", ErrInvalidLevel, data.TileSize)
	}

	if len(data.Tiles) != data.Height {
		return fmt.Errorf("%w: tiles height mismatch: expected %d, got %d", ErrInvalidLevel, data.Height, len(data.Tiles))
	}

	for r, row := range data.Tiles {
		if len(row) != data.Width {
			return fmt.Errorf("%w: tiles width mismatch at row %d: expected %d, got %d", ErrInvalidLevel, r, data.Width, len(row))
		}
		for c, code := range row {
			if !level.Tile(code).Valid() {
				return fmt.Errorf("%w: unknown tile code %d at (%d, %d)", ErrInvalidLevel, code, r, c)
			}
		}
	}

	spawn := data.PlayerSpawn
	if spawn.Row < 0 || spawn.Row >= data.Height || spawn.Col < 0 || spawn.Col >= data.Width {
		return fmt.Errorf("%w: player spawn (%d, %d) outside level", ErrInvalidLevel, spawn.Row, spawn.Col)
	}
	if level.Tile(data.Tiles[spawn.Row][spawn.Col]).Solid() {
		return fmt.Errorf("%w: player spawn (%d, %d) is inside a wall", ErrInvalidLevel, spawn.Row, spawn.Col)
	}

	return nil
}

// SpawnCoord returns the player spawn cell
func (l *Level) SpawnCoord() geom.Coord {
	return geom.Coord{Row: l.Data.PlayerSpawn.Row, Col: l.Data.PlayerSpawn.Col}
}

// TileSize returns the cell size in pixels
func (l *Level) TileSize() float64 {
	return float64(l.Data.TileSize)
}
