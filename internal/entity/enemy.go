package entity

import (
	"math"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/dungeon/internal/core/geom"
	"chosenoffset.com/dungeon/internal/core/physics"
	"chosenoffset.com/dungeon/internal/logger"
	"chosenoffset.com/dungeon/internal/simulation"
)

// EnemyState is a guard's state machine tag
type EnemyState int

const (
	EnemyPatrolling EnemyState = iota
	EnemyDead
)

func (s EnemyState) String() string {
	switch s {
	case EnemyPatrolling:
		return "patrolling"
	case EnemyDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Enemy is a guard that walks back and forth on its platform and fights
// the player when close. A dead guard stays in its collection and is
// simply skipped.
type Enemy struct {
	physics.Body

	ID    int
	State EnemyState

	// OnDeath is called once, on the transition to dead
	OnDeath func(e *Enemy)

	cfg      simulation.EnemyConfig
	health   Health
	cooldown int

	log *logrus.Entry
}

// NewEnemy creates a patrolling guard facing right
func NewEnemy(id int, x, y float64, cfg *simulation.Config) *Enemy {
	e := &Enemy{
		Body:   physics.NewBody(x, y, cfg.Enemy.Width, cfg.Enemy.Height),
		ID:     id,
		State:  EnemyPatrolling,
		cfg:    cfg.Enemy,
		health: NewHealth(cfg.Enemy.Health),
		log: logger.Component("entity").WithFields(logrus.Fields{
			"actor": "guard",
			"id":    id,
		}),
	}
	e.VX = cfg.Enemy.PatrolSpeed
	return e
}

// Kinematics implements Actor
func (e *Enemy) Kinematics() *physics.Body { return &e.Body }

// StateName implements Actor
func (e *Enemy) StateName() string { return e.State.String() }

// Alive implements Actor
func (e *Enemy) Alive() bool { return e.State != EnemyDead }

// Health implements Actor
func (e *Enemy) Health() int { return e.health.Current() }

// Cooldown returns the ticks left before the guard can engage again
func (e *Enemy) Cooldown() int { return e.cooldown }

// Update advances the guard by one tick. It reads the player's state as
// left by the player's previous update.
func (e *Enemy) Update(p *Player, w *World) {
	if e.State == EnemyDead {
		return
	}

	e.VX = e.cfg.PatrolSpeed * float64(e.Facing)
	w.Resolver.MoveX(&e.Body)

	if e.shouldTurn(w) {
		e.Facing = -e.Facing
	}

	e.ApplyGravity(w.Config.Physics.Gravity, w.Config.Physics.MaxFallSpeed)
	w.Resolver.MoveY(&e.Body)

	if e.cooldown <= 0 && e.nearby(p, w.TileSize()) {
		e.engage(p)
		e.cooldown = e.cfg.AttackCooldownTicks
	} else {
		e.cooldown--
	}
}

// shouldTurn probes just past the leading foot. The guard turns when there
// is no floor ahead or the column ahead is blocked at head height.
func (e *Enemy) shouldTurn(w *World) bool {
	aheadX := e.X - e.cfg.ProbeMargin
	if e.Facing > 0 {
		aheadX = e.X + e.W + e.cfg.ProbeMargin
	}

	foot := w.CellAt(geom.Point{X: aheadX, Y: e.Y + e.H + e.cfg.ProbeMargin})
	head := w.CellAt(geom.Point{X: aheadX, Y: e.Y})

	return !w.Grid.IsSolid(foot.Row, foot.Col) || w.Grid.IsSolid(head.Row, head.Col)
}

// nearby reports whether the player is inside the engagement window,
// measured between the top-left corners of the two bodies.
func (e *Enemy) nearby(p *Player, tileSize float64) bool {
	dx := math.Abs(e.X - p.X)
	dy := math.Abs(e.Y - p.Y)
	return dx < tileSize*e.cfg.ReachX && dy < tileSize*e.cfg.ReachY
}

// engage resolves one exchange of blows. A swinging, armed player facing
// the guard with overlapping horizontal spans lands the hit; otherwise the
// guard does. A dead player is not hit.
func (e *Enemy) engage(p *Player) {
	if !p.Alive() {
		return
	}

	if p.IsAttacking() && p.HasSword && p.faces(e.Center()) && p.Rect().OverlapsX(e.Rect()) {
		e.TakeDamage()
		return
	}
	p.TakeDamage()
}

// TakeDamage removes one point of health. It is a no-op once dead.
func (e *Enemy) TakeDamage() {
	if e.State == EnemyDead || !e.health.Damage(1) {
		return
	}

	e.log.WithField("health", e.health.Current()).Debug("hit")
	if !e.health.Depleted() {
		return
	}

	e.State = EnemyDead
	e.Stop()
	e.log.Info("guard defeated")
	if e.OnDeath != nil {
		e.OnDeath(e)
	}
}
