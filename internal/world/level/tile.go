// Package level holds the static tile grid the dungeon is built from.
// The grid is the only world state shared by every actor: it answers
// tile lookups by cell and lets pickups and spawns clear their origin cell.
package level

import "fmt"

// Tile is the integer code stored in each grid cell
type Tile int

const (
	Empty      Tile = iota // Open air
	Wall                   // Stone block, the only solid tile
	Pillar                 // Background column
	Torch                  // Wall-mounted torch
	Door                   // Exit door
	Sword                  // Sword pickup
	GuardSpawn             // Guard start position, cleared when scanned
	Spike                  // Spike trap, materialized as a hazard
)

// tileNames maps codes to the names used in logs and level files
var tileNames = map[Tile]string{
	Empty:      "empty",
	Wall:       "wall",
	Pillar:     "pillar",
	Torch:      "torch",
	Door:       "door",
	Sword:      "sword",
	GuardSpawn: "guard",
	Spike:      "spike",
}

// String returns the tile name
func (t Tile) String() string {
	if name, ok := tileNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tile(%d)", int(t))
}

// Valid reports whether t is one of the known tile codes
func (t Tile) Valid() bool {
	return t >= Empty && t <= Spike
}

// Solid reports whether the tile blocks movement.
// Only walls are solid; decorations, pickups and spikes are passable.
func (t Tile) Solid() bool {
	return t == Wall
}
