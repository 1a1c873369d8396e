package simulation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 64.0, cfg.Physics.TileSize)
	assert.Equal(t, 3, cfg.Player.Health)
	assert.Equal(t, 2, cfg.Enemy.Health)
	assert.Equal(t, cfg.TicksFor(300), cfg.Player.AttackTicks)
}

func TestParseConfigLayersOverDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
player:
  health: 5
hazard:
  cooldown_ticks: 30
`))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Player.Health)
	assert.Equal(t, 30, cfg.Hazard.CooldownTicks)
	assert.Equal(t, 0.5, cfg.Physics.Gravity, "untouched keys keep defaults")
	assert.Equal(t, 40.0, cfg.Player.Width, "untouched keys in a touched section keep defaults")
}

func TestParseConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"tile size", "physics: {tile_size: 0}"},
		{"fall speed reaches a tile", "physics: {max_fall_speed: 64}"},
		{"blend factor", "player: {blend_factor: 1.5}"},
		{"friction", "player: {friction: 1}"},
		{"health", "enemy: {health: 0}"},
		{"jump too strong", "player: {jump_force: -80}"},
		{"negative cooldown", "hazard: {cooldown_ticks: -1}"},
		{"tick rate", "timing: {ticks_per_second: 0}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParseConfigMalformed(t *testing.T) {
	_, err := ParseConfig([]byte("player: [unterminated"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enemy:\n  patrol_speed: 2\n"), 0o644))

	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.Enemy.PatrolSpeed)
}
