// Package entity provides the actors of the dungeon: the player, the
// patrolling guards and the static hazards they can run into.
//
// Actors are plain state machines. Each Update is a function of the actor,
// the tick's input and the shared World; nothing here schedules work or
// keeps global state.
package entity

import (
	"chosenoffset.com/dungeon/internal/core/geom"
	"chosenoffset.com/dungeon/internal/core/physics"
	"chosenoffset.com/dungeon/internal/simulation"
	"chosenoffset.com/dungeon/internal/world/level"
)

// Actor is the capability set shared by the player and the guards
type Actor interface {
	// Kinematics exposes the actor's body for collision and drawing
	Kinematics() *physics.Body
	// StateName returns the current state tag
	StateName() string
	// Alive returns false once the actor has entered its dead state
	Alive() bool
	// Health returns the remaining health points
	Health() int
}

// World is everything an actor may read or mutate during its update
type World struct {
	Grid     *level.Grid
	Resolver *physics.Resolver
	Config   *simulation.Config
	Hazards  []Hazard
}

// NewWorld binds a grid and rules into an update context
func NewWorld(grid *level.Grid, cfg *simulation.Config, hazards []Hazard) *World {
	return &World{
		Grid:     grid,
		Resolver: physics.NewResolver(grid, cfg.Physics.TileSize),
		Config:   cfg,
		Hazards:  hazards,
	}
}

// TileSize returns the cell size in pixels
func (w *World) TileSize() float64 {
	return w.Config.Physics.TileSize
}

// CellAt returns the cell containing a world point
func (w *World) CellAt(p geom.Point) geom.Coord {
	return physics.Cell(p, w.TileSize())
}

// Health is a counter that only goes down and never below zero
type Health struct {
	current int
	max     int
}

// NewHealth creates a full health counter
func NewHealth(max int) Health {
	return Health{current: max, max: max}
}

// Current returns the remaining points
func (h Health) Current() int { return h.current }

// Max returns the starting points
func (h Health) Max() int { return h.max }

// Depleted reports whether no points remain
func (h Health) Depleted() bool { return h.current <= 0 }

// Damage removes n points, clamping at zero. It reports whether the
// counter changed.
func (h *Health) Damage(n int) bool {
	if n <= 0 || h.current == 0 {
		return false
	}
	h.current -= n
	if h.current < 0 {
		h.current = 0
	}
	return true
}
