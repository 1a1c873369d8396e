package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/dungeon/internal/input"
	"chosenoffset.com/dungeon/internal/simulation"
	"chosenoffset.com/dungeon/internal/world/level"
)

const tile = 64.0

var (
	o = level.Empty
	W = level.Wall
	S = level.Sword
	K = level.Spike
)

// newWorld builds a world over the rows with default rules. Spike cells
// become hazards and guard cells are cleared.
func newWorld(t *testing.T, rows [][]level.Tile) *World {
	t.Helper()
	g, err := level.New(rows)
	require.NoError(t, err)

	cfg := simulation.DefaultConfig()
	spawns := level.Scan(g, cfg.Physics.TileSize)
	return NewWorld(g, cfg, SpikesFrom(spawns.Spikes, cfg.Physics.TileSize))
}

// floorWorld is three open rows over a solid floor
func floorWorld(t *testing.T) *World {
	return newWorld(t, [][]level.Tile{
		{o, o, o, o, o, o, o, o},
		{o, o, o, o, o, o, o, o},
		{o, o, o, o, o, o, o, o},
		{W, W, W, W, W, W, W, W},
	})
}

// standingPlayer places a grounded player on top of row 3 at x
func standingPlayer(w *World, x float64) *Player {
	p := NewPlayer(x, 3*tile-w.Config.Player.Height, w.Config)
	p.Grounded = true
	return p
}

func TestHealthDamage(t *testing.T) {
	h := NewHealth(3)
	assert.Equal(t, 3, h.Current())
	assert.Equal(t, 3, h.Max())

	assert.False(t, h.Damage(0))
	assert.False(t, h.Damage(-2))
	assert.Equal(t, 3, h.Current())

	assert.True(t, h.Damage(2))
	assert.True(t, h.Damage(5))
	assert.Equal(t, 0, h.Current())
	assert.True(t, h.Depleted())

	assert.False(t, h.Damage(1), "an empty counter does not change")
	assert.Equal(t, 0, h.Current())
}

func TestPlayerSettlesToIdle(t *testing.T) {
	w := floorWorld(t)
	p := standingPlayer(w, 2*tile)
	p.VX = 5
	p.State = PlayerRunning

	settled := 0
	for tick := 1; tick <= 30; tick++ {
		p.Update(input.Intent{}, w)
		if p.State == PlayerIdle && p.VX == 0 {
			settled = tick
			break
		}
	}

	require.NotZero(t, settled, "player never came to rest")
	assert.Equal(t, 18, settled)
	assert.True(t, p.Grounded)
	assert.Equal(t, 3*tile-p.H, p.Y)

	for i := 0; i < 5; i++ {
		p.Update(input.Intent{}, w)
		assert.Equal(t, PlayerIdle, p.State)
		assert.Zero(t, p.VX)
	}
}

func TestPlayerRunsAndFaces(t *testing.T) {
	w := floorWorld(t)
	p := standingPlayer(w, 3*tile)

	p.Update(input.Intent{Left: true}, w)
	assert.Equal(t, PlayerRunning, p.State)
	assert.Equal(t, -1, p.Facing)
	assert.InDelta(t, -2.0, p.VX, 1e-9)

	for i := 0; i < 10; i++ {
		p.Update(input.Intent{Left: true}, w)
	}
	assert.InDelta(t, -5.0, p.VX, 0.05, "velocity eases toward the target speed")

	p.Update(input.Intent{Right: true}, w)
	assert.Equal(t, 1, p.Facing)
}

func TestPlayerJump(t *testing.T) {
	w := floorWorld(t)
	p := standingPlayer(w, 2*tile)

	p.Update(input.Intent{Jump: true}, w)

	assert.Equal(t, w.Config.Player.JumpForce, p.VY)
	assert.False(t, p.Grounded)
	assert.Equal(t, PlayerJumping, p.State)

	// no double jump while airborne
	p.Update(input.Intent{Jump: true}, w)
	assert.Greater(t, p.VY, w.Config.Player.JumpForce)
	assert.Equal(t, PlayerJumping, p.State)
}

func TestPlayerJumpArcLands(t *testing.T) {
	w := floorWorld(t)
	p := standingPlayer(w, 2*tile)

	p.Update(input.Intent{Jump: true}, w)
	sawFalling := false
	for i := 0; i < 120 && !p.Grounded; i++ {
		p.Update(input.Intent{}, w)
		if p.State == PlayerFalling {
			sawFalling = true
		}
	}

	assert.True(t, sawFalling)
	assert.True(t, p.Grounded)
	assert.Equal(t, 3*tile-p.H, p.Y)
}

func TestPlayerAttackWindow(t *testing.T) {
	w := floorWorld(t)

	t.Run("needs the sword", func(t *testing.T) {
		p := standingPlayer(w, 2*tile)
		p.Update(input.Intent{Attack: true}, w)
		assert.False(t, p.IsAttacking())
	})

	tests := []struct {
		name     string
		heldFor  int
		expected int
	}{
		{"single press", 1, 18},
		{"press repeated while swinging is ignored", 10, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := standingPlayer(w, 2*tile)
			p.HasSword = true

			swinging := 0
			for tick := 1; tick <= 40; tick++ {
				p.Update(input.Intent{Attack: tick <= tt.heldFor}, w)
				if !p.IsAttacking() {
					break
				}
				swinging++
			}
			assert.Equal(t, tt.expected, swinging)
		})
	}
}

func TestSpikesKillInThreeTicks(t *testing.T) {
	w := newWorld(t, [][]level.Tile{
		{o, o, o, o, o},
		{o, o, o, o, o},
		{o, o, K, o, o},
		{W, W, W, W, W},
	})
	require.Len(t, w.Hazards, 1)

	p := standingPlayer(w, 2*tile+10)
	var reported []int
	deaths := 0
	p.OnHealthChange = func(health int) { reported = append(reported, health) }
	p.OnDeath = func() { deaths++ }

	for i := 0; i < 3; i++ {
		p.Update(input.Intent{}, w)
	}

	assert.Equal(t, []int{2, 1, 0}, reported)
	assert.Equal(t, 0, p.Health())
	assert.Equal(t, PlayerDead, p.State)
	assert.Equal(t, 1, deaths)

	p.Update(input.Intent{}, w)
	assert.Len(t, reported, 3, "no damage once dead")
}

func TestSpikeDamageOncePerTick(t *testing.T) {
	w := newWorld(t, [][]level.Tile{
		{o, o, o, o, o},
		{o, o, o, o, o},
		{o, K, K, o, o},
		{W, W, W, W, W},
	})
	require.Len(t, w.Hazards, 2)

	// straddles both spike cells
	p := standingPlayer(w, tile+40)
	p.Update(input.Intent{}, w)

	assert.Equal(t, 2, p.Health())
}

func TestSpikeCooldown(t *testing.T) {
	w := newWorld(t, [][]level.Tile{
		{o, o, o, o, o},
		{o, o, o, o, o},
		{o, o, K, o, o},
		{W, W, W, W, W},
	})
	w.Config.Hazard.CooldownTicks = 2

	p := standingPlayer(w, 2*tile+10)
	for i := 0; i < 3; i++ {
		p.Update(input.Intent{}, w)
	}

	assert.Equal(t, 1, p.Health(), "hits on ticks 1 and 3 only")
}

func TestSwordPickup(t *testing.T) {
	w := newWorld(t, [][]level.Tile{
		{o, o, o, o, o},
		{o, o, o, o, o},
		{o, o, S, o, o},
		{W, W, W, W, W},
	})

	p := standingPlayer(w, 2*tile+12)
	p.Update(input.Intent{}, w)

	assert.True(t, p.HasSword)
	assert.Equal(t, level.Empty, w.Grid.TileAt(2, 2))

	for i := 0; i < 3; i++ {
		p.Update(input.Intent{}, w)
		assert.True(t, p.HasSword)
		assert.Equal(t, level.Empty, w.Grid.TileAt(2, 2))
	}
}

func TestDeadIsAbsorbing(t *testing.T) {
	w := floorWorld(t)
	p := standingPlayer(w, 2*tile)
	p.VX = 3

	changes := 0
	p.OnHealthChange = func(int) { changes++ }
	for i := 0; i < 3; i++ {
		p.TakeDamage()
	}
	require.Equal(t, PlayerDead, p.State)
	require.False(t, p.Alive())

	before := p.Body
	p.TakeDamage()
	for i := 0; i < 10; i++ {
		p.Update(input.Intent{Right: true, Jump: true}, w)
	}

	assert.Equal(t, before, p.Body)
	assert.Equal(t, 0, p.Health())
	assert.Equal(t, 3, changes)
	assert.Equal(t, PlayerDead, p.State)
}

// ledgeWorld has a raised block starting at column 3 with its top at row 2
func ledgeWorld(t *testing.T) *World {
	return newWorld(t, [][]level.Tile{
		{o, o, o, o, o, o},
		{o, o, o, o, o, o},
		{o, o, o, W, W, W},
		{o, o, o, W, W, W},
		{o, o, o, W, W, W},
		{W, W, W, W, W, W},
	})
}

// fallingBeside places a falling player in column 2, hands level with row 2
func fallingBeside(w *World, vy float64) *Player {
	p := NewPlayer(140, 2*tile+10, w.Config)
	p.VY = vy
	p.State = PlayerFalling
	if vy < 0 {
		p.State = PlayerJumping
	}
	return p
}

func TestLedgeGrab(t *testing.T) {
	w := ledgeWorld(t)
	p := fallingBeside(w, 2)

	p.Update(input.Intent{}, w)

	assert.Equal(t, PlayerHanging, p.State)
	assert.Equal(t, 2*tile, p.Y, "top edge snaps to the ledge row")
	assert.Zero(t, p.VX)
	assert.Zero(t, p.VY)

	for i := 0; i < 5; i++ {
		p.Update(input.Intent{}, w)
	}
	assert.Equal(t, PlayerHanging, p.State)
	assert.Equal(t, 2*tile, p.Y, "hanging ignores gravity")
}

func TestLedgeNotGrabbedWhileRising(t *testing.T) {
	w := ledgeWorld(t)
	p := fallingBeside(w, -5)

	p.Update(input.Intent{}, w)

	assert.Equal(t, PlayerJumping, p.State)
	assert.Less(t, p.VY, 0.0)
}

func TestLedgeNotGrabbedFacingAway(t *testing.T) {
	w := ledgeWorld(t)
	p := fallingBeside(w, 2)
	p.Facing = -1

	p.Update(input.Intent{}, w)

	assert.Equal(t, PlayerFalling, p.State)
}

func TestLedgeClimb(t *testing.T) {
	w := ledgeWorld(t)
	p := fallingBeside(w, 2)
	p.Update(input.Intent{}, w)
	require.Equal(t, PlayerHanging, p.State)

	p.Update(input.Intent{Up: true}, w)
	assert.NotEqual(t, PlayerHanging, p.State)
	assert.Equal(t, 140+tile/2, p.X)
	assert.Equal(t, tile, p.Y)

	for i := 0; i < 30; i++ {
		p.Update(input.Intent{}, w)
	}
	assert.True(t, p.Grounded)
	assert.Equal(t, 2*tile-p.H, p.Y, "standing on top of the block")
	assert.Equal(t, PlayerIdle, p.State)
}

func TestLedgeClimbBlocked(t *testing.T) {
	w := newWorld(t, [][]level.Tile{
		{o, o, o, o, o, o},
		{o, o, W, o, o, o},
		{o, o, o, W, W, W},
		{o, o, o, W, W, W},
		{o, o, o, W, W, W},
		{W, W, W, W, W, W},
	})
	p := fallingBeside(w, 2)
	p.Update(input.Intent{}, w)
	require.Equal(t, PlayerHanging, p.State)

	p.Update(input.Intent{Up: true}, w)

	assert.Equal(t, PlayerHanging, p.State)
	assert.Equal(t, 140.0, p.X)
	assert.Equal(t, 2*tile, p.Y)
}

func TestLedgeRelease(t *testing.T) {
	w := ledgeWorld(t)
	p := fallingBeside(w, 2)
	p.Update(input.Intent{}, w)
	require.Equal(t, PlayerHanging, p.State)

	p.Update(input.Intent{Down: true}, w)
	assert.Equal(t, PlayerFalling, p.State)

	for i := 0; i < 120 && !p.Grounded; i++ {
		p.Update(input.Intent{}, w)
		require.NotEqual(t, PlayerHanging, p.State, "released ledge regrabbed on tick %d", i)
	}
	assert.True(t, p.Grounded)
	assert.Equal(t, 5*tile-p.H, p.Y)
}
