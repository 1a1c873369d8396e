package game

import (
	"fmt"

	"chosenoffset.com/dungeon/internal/entity/tick"
	"chosenoffset.com/dungeon/internal/simulation"
	"chosenoffset.com/dungeon/internal/world/maploader"
)

// NewSession starts a simulation of lvl under rules. The level's tile size
// overrides the rules; a nil rules uses the defaults.
func NewSession(lvl *maploader.Level, rules *simulation.Config) (*tick.Manager, error) {
	cfg := *simulation.DefaultConfig()
	if rules != nil {
		cfg = *rules
	}
	cfg.Physics.TileSize = lvl.TileSize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("level %q: %w", lvl.Data.Name, err)
	}

	return tick.NewManager(lvl.Grid, lvl.SpawnCoord(), &cfg), nil
}
