package lighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/dungeon/internal/world/level"
)

func TestLoadTorches(t *testing.T) {
	o, W, T := level.Empty, level.Wall, level.Torch
	g := level.MustNew([][]level.Tile{
		{W, W, W, W},
		{W, T, o, T},
	})

	m := NewManager()
	m.LoadTorches(g, 64)

	lights := m.GetAllLights()
	require.Len(t, lights, 2)
	assert.Equal(t, 96.0, lights[0].X)
	assert.Equal(t, 96.0, lights[0].Y)
	assert.Equal(t, 224.0, lights[1].X)
	assert.Equal(t, 128.0, lights[0].Radius)
	assert.Equal(t, TorchColor, lights[1].Color)

	// reloading replaces rather than appends
	m.LoadTorches(g, 64)
	assert.Len(t, m.GetAllLights(), 2)
}

func TestPlayerLight(t *testing.T) {
	m := NewManager()
	assert.Empty(t, m.GetAllLights())
	assert.False(t, m.IsPlayerLightOn())

	m.EnablePlayerLight(true)
	m.UpdatePlayerLightPosition(10, 20)

	lights := m.GetAllLights()
	require.Len(t, lights, 1)
	assert.Equal(t, 10.0, lights[0].X)
	assert.Equal(t, 20.0, lights[0].Y)

	m.SetAmbientLight(0.1)
	assert.Equal(t, 0.1, m.GetAmbientLight())
}
