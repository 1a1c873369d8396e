// Package tick provides the fixed-step simulation loop.
// It owns the session's actors and advances them one tick at a time in a
// fixed order: every guard, then the player.
package tick

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/dungeon/internal/core/geom"
	"chosenoffset.com/dungeon/internal/entity"
	"chosenoffset.com/dungeon/internal/input"
	"chosenoffset.com/dungeon/internal/logger"
	"chosenoffset.com/dungeon/internal/simulation"
	"chosenoffset.com/dungeon/internal/world/level"
)

// noRestart marks a countdown that is not running
const noRestart = -1

// Manager handles the simulation session
type Manager struct {
	cfg      *simulation.Config
	pristine *level.Grid
	spawn    geom.Coord

	world   *entity.World
	player  *entity.Player
	enemies []*entity.Enemy

	tick      int
	restartIn int

	// Callbacks
	OnHealthChange func(health int)      // Player health after a hit, and full health on restart
	OnPlayerDeath  func()                // Player entered the dead state
	OnEnemyDeath   func(e *entity.Enemy) // A guard entered the dead state
	OnRestart      func()                // Session rebuilt from the level

	log *logrus.Entry
}

// NewManager creates a session over a copy of grid. The grid itself is
// kept untouched so the session can be rebuilt on restart. A nil cfg
// uses the default rules.
func NewManager(grid *level.Grid, spawn geom.Coord, cfg *simulation.Config) *Manager {
	if cfg == nil {
		cfg = simulation.DefaultConfig()
	}

	m := &Manager{
		cfg:      cfg,
		pristine: grid.Clone(),
		spawn:    spawn,
		log:      logger.Component("tick"),
	}
	m.build()
	return m
}

// build materializes the actors and hazards from a fresh copy of the level
func (m *Manager) build() {
	t := m.cfg.Physics.TileSize
	grid := m.pristine.Clone()
	spawns := level.Scan(grid, t)

	m.world = entity.NewWorld(grid, m.cfg, entity.SpikesFrom(spawns.Spikes, t))
	m.player = entity.NewPlayer(float64(m.spawn.Col)*t, float64(m.spawn.Row)*t, m.cfg)
	m.player.OnHealthChange = m.healthChanged
	m.player.OnDeath = m.playerDied

	m.enemies = make([]*entity.Enemy, 0, len(spawns.Guards))
	for i, pos := range spawns.Guards {
		e := entity.NewEnemy(i, pos.X, pos.Y, m.cfg)
		e.OnDeath = m.enemyDied
		m.enemies = append(m.enemies, e)
	}

	m.tick = 0
	m.restartIn = noRestart

	m.log.WithFields(logrus.Fields{
		"guards":  len(m.enemies),
		"hazards": len(m.world.Hazards),
		"spawn":   m.spawn,
	}).Debug("session built")
}

// Step advances the simulation by one tick.
// A pending restart is applied first; then every guard updates in
// collection order and finally the player, whose update resolves pickups
// and hazards.
func (m *Manager) Step(in input.Intent) {
	m.advanceRestart()

	m.tick++

	n := len(m.enemies)
	for i := 0; i < n; i++ {
		m.enemies[i].Update(m.player, m.world)
		if len(m.enemies) != n {
			panic(fmt.Sprintf("tick %d: enemy collection changed from %d to %d during update", m.tick, n, len(m.enemies)))
		}
	}

	m.player.Update(in, m.world)
}

// advanceRestart runs the death countdown and rebuilds the session when it
// expires with auto restart enabled
func (m *Manager) advanceRestart() {
	if m.restartIn == noRestart {
		return
	}
	if m.restartIn > 0 {
		m.restartIn--
	}
	if m.restartIn == 0 && m.cfg.Timing.AutoRestart {
		m.Restart()
	}
}

// Restart rebuilds the session from the level as it was loaded
func (m *Manager) Restart() {
	m.build()
	m.log.Info("session restarted")

	if m.OnRestart != nil {
		m.OnRestart()
	}
	m.healthChanged(m.player.Health())
}

func (m *Manager) healthChanged(health int) {
	if m.OnHealthChange != nil {
		m.OnHealthChange(health)
	}
}

func (m *Manager) playerDied() {
	m.restartIn = m.cfg.Timing.RestartDelayTicks
	m.log.WithFields(logrus.Fields{
		"tick":       m.tick,
		"restart_in": m.restartIn,
	}).Info("player died")

	if m.OnPlayerDeath != nil {
		m.OnPlayerDeath()
	}
}

func (m *Manager) enemyDied(e *entity.Enemy) {
	m.log.WithFields(logrus.Fields{
		"tick":  m.tick,
		"guard": e.ID,
	}).Info("guard died")

	if m.OnEnemyDeath != nil {
		m.OnEnemyDeath(e)
	}
}

// Tick returns the number of steps taken since the session was built
func (m *Manager) Tick() int {
	return m.tick
}

// Player returns the player
func (m *Manager) Player() *entity.Player {
	return m.player
}

// Enemies returns the guards, dead ones included
func (m *Manager) Enemies() []*entity.Enemy {
	return m.enemies
}

// Hazards returns the spike zones
func (m *Manager) Hazards() []entity.Hazard {
	return m.world.Hazards
}

// Grid returns the live grid. Callers must not modify it.
func (m *Manager) Grid() *level.Grid {
	return m.world.Grid
}

// Config returns the rules the session runs with
func (m *Manager) Config() *simulation.Config {
	return m.cfg
}

// RestartIn returns the ticks left before an automatic restart, zero when a
// restart is due, or -1 when no restart is pending
func (m *Manager) RestartIn() int {
	return m.restartIn
}
