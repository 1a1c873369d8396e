// Package lighting tracks the light sources of a level: torch tiles and
// the player's lantern.
package lighting

import (
	"image/color"

	"chosenoffset.com/dungeon/internal/world/level"
)

// LightSource represents a single light source in the game world
type LightSource struct {
	X         float64     // World X position (in pixels)
	Y         float64     // World Y position (in pixels)
	Radius    float64     // Light radius (in pixels)
	Intensity float64     // Light intensity (0.0 to 1.0)
	Color     color.NRGBA // Light color
}

// TorchColor is the warm glow of a wall torch
var TorchColor = color.NRGBA{255, 200, 100, 255}

// Manager handles all light sources in the game
type Manager struct {
	ambientLight  float64 // Global ambient light level (0.0 = pitch black, 1.0 = fully lit)
	torches       []LightSource
	playerLight   LightSource
	playerLightOn bool
}

// NewManager creates a new lighting manager
func NewManager() *Manager {
	return &Manager{
		ambientLight: 0.35,
		playerLight: LightSource{
			Radius:    160,
			Intensity: 0.6,
			Color:     color.NRGBA{255, 240, 200, 255},
		},
	}
}

// SetAmbientLight sets the global ambient light level
func (m *Manager) SetAmbientLight(level float64) {
	m.ambientLight = level
}

// GetAmbientLight returns the current ambient light level
func (m *Manager) GetAmbientLight() float64 {
	return m.ambientLight
}

// LoadTorches replaces the torch lights with one per torch tile of the grid
func (m *Manager) LoadTorches(g *level.Grid, tileSize float64) {
	m.torches = m.torches[:0]
	g.Each(func(row, col int, t level.Tile) {
		if t != level.Torch {
			return
		}
		m.torches = append(m.torches, LightSource{
			X:         float64(col)*tileSize + tileSize/2,
			Y:         float64(row)*tileSize + tileSize/2,
			Radius:    tileSize * 2,
			Intensity: 0.8,
			Color:     TorchColor,
		})
	})
}

// EnablePlayerLight turns on/off the player's light source
func (m *Manager) EnablePlayerLight(enabled bool) {
	m.playerLightOn = enabled
}

// IsPlayerLightOn returns whether the player's light is currently on
func (m *Manager) IsPlayerLightOn() bool {
	return m.playerLightOn
}

// UpdatePlayerLightPosition updates the player's light position (called each frame)
func (m *Manager) UpdatePlayerLightPosition(x, y float64) {
	m.playerLight.X = x
	m.playerLight.Y = y
}

// GetAllLights returns all active light sources
func (m *Manager) GetAllLights() []LightSource {
	lights := make([]LightSource, 0, len(m.torches)+1)

	if m.playerLightOn {
		lights = append(lights, m.playerLight)
	}
	lights = append(lights, m.torches...)

	return lights
}
