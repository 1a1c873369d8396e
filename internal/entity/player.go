package entity

import (
	"math"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/dungeon/internal/core/geom"
	"chosenoffset.com/dungeon/internal/core/physics"
	"chosenoffset.com/dungeon/internal/input"
	"chosenoffset.com/dungeon/internal/logger"
	"chosenoffset.com/dungeon/internal/simulation"
	"chosenoffset.com/dungeon/internal/world/level"
)

// PlayerState is the player's state machine tag
type PlayerState int

const (
	PlayerIdle PlayerState = iota
	PlayerRunning
	PlayerJumping
	PlayerFalling
	PlayerHanging
	PlayerDead
)

func (s PlayerState) String() string {
	switch s {
	case PlayerIdle:
		return "idle"
	case PlayerRunning:
		return "running"
	case PlayerJumping:
		return "jumping"
	case PlayerFalling:
		return "falling"
	case PlayerHanging:
		return "hanging"
	case PlayerDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Player is the controllable actor
type Player struct {
	physics.Body

	State    PlayerState
	HasSword bool

	// OnHealthChange is called with the remaining health after every hit
	OnHealthChange func(health int)
	// OnDeath is called once, on the transition to dead
	OnDeath func()

	cfg            simulation.PlayerConfig
	health         Health
	attackTicks    int
	hazardCooldown int

	ledge    geom.Coord  // Ledge currently gripped
	released *geom.Coord // Ledge let go of, not grabbable until landing

	log *logrus.Entry
}

// NewPlayer creates a player at rest with full health, no sword, facing right
func NewPlayer(x, y float64, cfg *simulation.Config) *Player {
	return &Player{
		Body:   physics.NewBody(x, y, cfg.Player.Width, cfg.Player.Height),
		State:  PlayerIdle,
		cfg:    cfg.Player,
		health: NewHealth(cfg.Player.Health),
		log:    logger.Component("entity").WithField("actor", "player"),
	}
}

// Kinematics implements Actor
func (p *Player) Kinematics() *physics.Body { return &p.Body }

// StateName implements Actor
func (p *Player) StateName() string { return p.State.String() }

// Alive implements Actor
func (p *Player) Alive() bool { return p.State != PlayerDead }

// Health implements Actor
func (p *Player) Health() int { return p.health.Current() }

// MaxHealth returns the starting health
func (p *Player) MaxHealth() int { return p.health.Max() }

// IsAttacking reports whether a sword swing window is open
func (p *Player) IsAttacking() bool { return p.attackTicks > 0 }

// Update advances the player by one tick
func (p *Player) Update(in input.Intent, w *World) {
	if p.State == PlayerDead {
		return
	}

	if p.attackTicks > 0 {
		p.attackTicks--
	}
	if p.hazardCooldown > 0 {
		p.hazardCooldown--
	}

	if p.State != PlayerHanging {
		p.ApplyGravity(w.Config.Physics.Gravity, w.Config.Physics.MaxFallSpeed)
		p.steer(in.Horizontal())
		w.Resolver.Move(&p.Body)
		if p.Grounded {
			p.released = nil
		}
	}

	if in.Jump && p.Grounded {
		p.VY = p.cfg.JumpForce
		p.Grounded = false
		p.setState(PlayerJumping)
	}

	if in.Attack && p.HasSword && !p.IsAttacking() {
		p.attackTicks = p.cfg.AttackTicks
		p.log.Debug("attack")
	}

	switch {
	case p.State == PlayerHanging:
		p.hang(in, w)
	case !p.Grounded && p.State == PlayerFalling:
		p.grabLedge(w)
	}

	if !p.Grounded && p.State != PlayerHanging {
		if p.VY < 0 {
			p.setState(PlayerJumping)
		} else {
			p.setState(PlayerFalling)
		}
	}

	p.interact(w)
}

// steer eases the horizontal velocity toward the held direction, or damps
// it when nothing is held. Grounded state is the previous tick's.
func (p *Player) steer(dir int) {
	if dir != 0 {
		target := float64(dir) * p.cfg.Speed
		p.VX += (target - p.VX) * p.cfg.BlendFactor
		p.Facing = dir
		if p.Grounded {
			p.setState(PlayerRunning)
		}
		return
	}

	p.VX *= p.cfg.Friction
	if p.Grounded && math.Abs(p.VX) < p.cfg.StopEpsilon {
		p.VX = 0
		p.setState(PlayerIdle)
	}
}

// hang handles climb and release while gripping a ledge
func (p *Player) hang(in input.Intent, w *World) {
	switch {
	case in.Up:
		t := w.TileSize()
		dest := p.Rect().Translate(float64(p.Facing)*t/2, -t)
		if !w.Resolver.Fits(dest) {
			return
		}
		p.X, p.Y = dest.X, dest.Y
		p.setState(PlayerIdle)
	case in.Down:
		ledge := p.ledge
		p.released = &ledge
		p.setState(PlayerFalling)
	}
}

// grabLedge looks one tile ahead at hand height for a solid cell with open
// space above it, and grips it when the snapped box fits.
func (p *Player) grabLedge(w *World) {
	if p.VY < 0 {
		return
	}

	t := w.TileSize()
	probe := geom.Point{X: p.Center().X + float64(p.Facing)*t, Y: p.Y}
	cell := w.CellAt(probe)
	if p.released != nil && *p.released == cell {
		return
	}
	if !w.Grid.IsSolid(cell.Row, cell.Col) || w.Grid.IsSolid(cell.Row-1, cell.Col) {
		return
	}

	snapped := p.Rect()
	snapped.Y = float64(cell.Row) * t
	if !w.Resolver.Fits(snapped) {
		return
	}

	p.Y = snapped.Y
	p.Stop()
	p.ledge = cell
	p.released = nil
	p.setState(PlayerHanging)
}

// interact picks up a sword under the body center and applies hazard damage.
// At most one point of hazard damage is taken per tick.
func (p *Player) interact(w *World) {
	c := w.CellAt(p.Center())
	if w.Grid.TileAt(c.Row, c.Col) == level.Sword {
		w.Grid.ClearTile(c.Row, c.Col)
		if !p.HasSword {
			p.HasSword = true
			p.log.WithField("cell", c).Info("picked up sword")
		}
	}

	if p.hazardCooldown > 0 || !touchesAny(w.Hazards, p.Rect()) {
		return
	}
	p.hazardCooldown = w.Config.Hazard.CooldownTicks
	p.TakeDamage()
}

// TakeDamage removes one point of health. It is a no-op once dead.
func (p *Player) TakeDamage() {
	if p.State == PlayerDead || !p.health.Damage(1) {
		return
	}

	p.log.WithField("health", p.health.Current()).Debug("hit")
	if p.OnHealthChange != nil {
		p.OnHealthChange(p.health.Current())
	}

	if p.health.Depleted() {
		p.setState(PlayerDead)
		p.attackTicks = 0
		if p.OnDeath != nil {
			p.OnDeath()
		}
	}
}

// faces reports whether the target lies in the player's facing direction.
// A target exactly above or below counts as faced.
func (p *Player) faces(target geom.Point) bool {
	side := geom.Sign(target.X - p.Center().X)
	return side == 0 || side == p.Facing
}

func (p *Player) setState(s PlayerState) {
	if p.State == s {
		return
	}
	p.log.WithFields(logrus.Fields{
		"from":  p.State.String(),
		"state": s.String(),
	}).Debug("state change")
	p.State = s
}
