// Package simulation provides configuration for the game simulation rules.
// Rules are loaded from a YAML file so levels can be tuned without rebuilding.
package simulation

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid simulation config")

// Config holds all simulation rules for a game
type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Timing  TimingConfig  `yaml:"timing"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Hazard  HazardConfig  `yaml:"hazard"`
}

// PhysicsConfig defines world-wide movement constants. Velocities are in
// pixels per tick and accelerations in pixels per tick squared.
type PhysicsConfig struct {
	TileSize     float64 `yaml:"tile_size"`      // Cell size in pixels
	Gravity      float64 `yaml:"gravity"`        // Added to vertical velocity every tick
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal velocity, must stay below TileSize
}

// TimingConfig defines the tick rate and tick-counted session timers
type TimingConfig struct {
	TicksPerSecond    int  `yaml:"ticks_per_second"`
	RestartDelayTicks int  `yaml:"restart_delay_ticks"` // Ticks between player death and restart
	AutoRestart       bool `yaml:"auto_restart"`
}

// PlayerConfig defines the player's body and controller tuning
type PlayerConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Health      int     `yaml:"health"`
	Speed       float64 `yaml:"speed"`        // Target horizontal speed while a direction is held
	BlendFactor float64 `yaml:"blend_factor"` // Per-tick easing toward the target speed
	Friction    float64 `yaml:"friction"`     // Per-tick damping when no direction is held
	StopEpsilon float64 `yaml:"stop_epsilon"` // Speed below which the player snaps to rest
	JumpForce   float64 `yaml:"jump_force"`   // Vertical velocity applied on jump (negative is up)
	AttackTicks int     `yaml:"attack_ticks"` // Length of the sword swing window
}

// EnemyConfig defines guard tuning
type EnemyConfig struct {
	Width               float64 `yaml:"width"`
	Height              float64 `yaml:"height"`
	Health              int     `yaml:"health"`
	PatrolSpeed         float64 `yaml:"patrol_speed"`
	ProbeMargin         float64 `yaml:"probe_margin"`          // Look-ahead distance past the leading edge
	AttackCooldownTicks int     `yaml:"attack_cooldown_ticks"` // Ticks between engagements
	ReachX              float64 `yaml:"reach_x"`               // Engagement window, in tile widths
	ReachY              float64 `yaml:"reach_y"`               // Engagement window, in tile heights
}

// HazardConfig defines spike behavior
type HazardConfig struct {
	// CooldownTicks is the number of ticks after a spike hit during which
	// further spike contact is ignored. Zero damages on every tick of contact.
	CooldownTicks int `yaml:"cooldown_ticks"`
}

// DefaultConfig returns the stock dungeon rules
func DefaultConfig() *Config {
	return &Config{
		Physics: PhysicsConfig{
			TileSize:     64,
			Gravity:      0.5,
			MaxFallSpeed: 24,
		},
		Timing: TimingConfig{
			TicksPerSecond:    60,
			RestartDelayTicks: 120,
			AutoRestart:       true,
		},
		Player: PlayerConfig{
			Width:       40,
			Height:      60,
			Health:      3,
			Speed:       5,
			BlendFactor: 0.4,
			Friction:    0.8,
			StopEpsilon: 0.1,
			JumpForce:   -12,
			AttackTicks: 18, // 300ms at 60 TPS
		},
		Enemy: EnemyConfig{
			Width:               40,
			Height:              60,
			Health:              2,
			PatrolSpeed:         1,
			ProbeMargin:         5,
			AttackCooldownTicks: 60,
			ReachX:              1.5,
			ReachY:              1,
		},
		Hazard: HazardConfig{
			CooldownTicks: 0,
		},
	}
}

// LoadConfig loads simulation config from a YAML file.
// Keys missing from the file keep their defaults; a missing file yields
// the defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes YAML rules layered over the defaults and validates them
func ParseConfig(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the rules for values the simulation cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Physics.TileSize <= 0:
		return fmt.Errorf("%w: tile_size must be positive", ErrInvalidConfig)
	case c.Physics.Gravity < 0:
		return fmt.Errorf("%w: gravity must not be negative", ErrInvalidConfig)
	case c.Physics.MaxFallSpeed <= 0 || c.Physics.MaxFallSpeed >= c.Physics.TileSize:
		return fmt.Errorf("%w: max_fall_speed must be in (0, tile_size)", ErrInvalidConfig)
	case c.Timing.TicksPerSecond <= 0:
		return fmt.Errorf("%w: ticks_per_second must be positive", ErrInvalidConfig)
	case c.Timing.RestartDelayTicks < 0:
		return fmt.Errorf("%w: restart_delay_ticks must not be negative", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	case c.Enemy.Width <= 0 || c.Enemy.Height <= 0:
		return fmt.Errorf("%w: enemy size must be positive", ErrInvalidConfig)
	case c.Player.Health <= 0 || c.Enemy.Health <= 0:
		return fmt.Errorf("%w: health must be positive", ErrInvalidConfig)
	case c.Player.BlendFactor <= 0 || c.Player.BlendFactor > 1:
		return fmt.Errorf("%w: blend_factor must be in (0, 1]", ErrInvalidConfig)
	case c.Player.Friction < 0 || c.Player.Friction >= 1:
		return fmt.Errorf("%w: friction must be in [0, 1)", ErrInvalidConfig)
	case c.Player.Speed >= c.Physics.TileSize || c.Enemy.PatrolSpeed >= c.Physics.TileSize:
		return fmt.Errorf("%w: horizontal speeds must stay below tile_size", ErrInvalidConfig)
	case -c.Player.JumpForce >= c.Physics.TileSize:
		return fmt.Errorf("%w: jump_force must stay below tile_size", ErrInvalidConfig)
	case c.Player.AttackTicks < 0 ||
		c.Enemy.AttackCooldownTicks < 0 || c.Hazard.CooldownTicks < 0:
		return fmt.Errorf("%w: tick counts must not be negative", ErrInvalidConfig)
	}
	return nil
}

// TicksFor converts a wall-clock duration in milliseconds to whole ticks
func (c *Config) TicksFor(ms int) int {
	return ms * c.Timing.TicksPerSecond / 1000
}
