package tick

import (
	"chosenoffset.com/dungeon/internal/core/geom"
	"chosenoffset.com/dungeon/internal/entity"
	"chosenoffset.com/dungeon/internal/world/level"
)

// ActorKind distinguishes actors in a snapshot
type ActorKind string

const (
	KindPlayer ActorKind = "player"
	KindGuard  ActorKind = "guard"
)

// ActorView is the drawable state of one actor
type ActorView struct {
	Kind      ActorKind
	ID        int
	Rect      geom.Rect
	Facing    int
	State     string
	Health    int
	MaxHealth int
	Alive     bool
	HasSword  bool
	Attacking bool
}

// Snapshot is everything a renderer needs to draw one tick. Actor views
// are copies; Grid is the live grid and must be treated as read-only.
type Snapshot struct {
	Tick      int
	Player    ActorView
	Enemies   []ActorView
	Hazards   []geom.Rect
	Grid      *level.Grid
	TileSize  float64
	RestartIn int
}

// Snapshot captures the session state after the last step
func (m *Manager) Snapshot() Snapshot {
	p := m.player
	snap := Snapshot{
		Tick: m.tick,
		Player: ActorView{
			Kind:      KindPlayer,
			Rect:      p.Rect(),
			Facing:    p.Facing,
			State:     p.StateName(),
			Health:    p.Health(),
			MaxHealth: p.MaxHealth(),
			Alive:     p.Alive(),
			HasSword:  p.HasSword,
			Attacking: p.IsAttacking(),
		},
		Enemies:   make([]ActorView, 0, len(m.enemies)),
		Hazards:   make([]geom.Rect, 0, len(m.world.Hazards)),
		Grid:      m.world.Grid,
		TileSize:  m.cfg.Physics.TileSize,
		RestartIn: m.restartIn,
	}

	for _, e := range m.enemies {
		snap.Enemies = append(snap.Enemies, viewOf(KindGuard, e.ID, e))
	}
	for _, h := range m.world.Hazards {
		snap.Hazards = append(snap.Hazards, h.Rect)
	}
	return snap
}

// viewOf builds the common part of a view from any actor
func viewOf(kind ActorKind, id int, a entity.Actor) ActorView {
	b := a.Kinematics()
	return ActorView{
		Kind:   kind,
		ID:     id,
		Rect:   b.Rect(),
		Facing: b.Facing,
		State:  a.StateName(),
		Health: a.Health(),
		Alive:  a.Alive(),
	}
}
