// Package hud provides the heads-up display: health hearts, the sword
// indicator and the restart countdown. It only holds what it was last told;
// the host pushes changes into it from the simulation callbacks.
package hud

import (
	"fmt"
	"image/color"
	"strings"

	"chosenoffset.com/dungeon/internal/render"
)

// HUDConfig defines what to display in the HUD
type HUDConfig struct {
	ShowHealth  bool    `yaml:"show_health"`  // Show hearts
	ShowSword   bool    `yaml:"show_sword"`   // Show the sword indicator
	ShowTick    bool    `yaml:"show_tick"`    // Show the tick counter
	Position    string  `yaml:"position"`     // "top-left", "top-right", "bottom-left", "bottom-right"
	Opacity     float64 `yaml:"opacity"`      // Background opacity (0-1)
	HeartSize   int     `yaml:"heart_size"`   // Heart width in pixels
	HeartMargin int     `yaml:"heart_margin"` // Gap between hearts in pixels
}

// DefaultConfig returns a sensible default HUD configuration
func DefaultConfig() *HUDConfig {
	return &HUDConfig{
		ShowHealth:  true,
		ShowSword:   true,
		ShowTick:    false,
		Position:    "top-left",
		Opacity:     0.7,
		HeartSize:   16,
		HeartMargin: 6,
	}
}

var (
	heartFull  = color.RGBA{220, 40, 60, 255}
	heartEmpty = color.RGBA{70, 30, 35, 255}
	swordColor = color.RGBA{200, 200, 220, 255}
	textColor  = color.RGBA{255, 255, 255, 255}
)

// HUD manages the heads-up display
type HUD struct {
	config       *HUDConfig
	screenWidth  int
	screenHeight int

	health    int
	maxHealth int
	hasSword  bool
	tick      int
	restartIn int

	// Cached layout
	panelWidth  int
	panelHeight int
}

// New creates a new HUD for a player with maxHealth hearts
func New(config *HUDConfig, maxHealth, screenWidth, screenHeight int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{
		config:       config,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		health:       maxHealth,
		maxHealth:    maxHealth,
		restartIn:    -1,
	}
}

// SetHealth redraws the hearts for a new health value.
// It is the health-change listener of the simulation.
func (h *HUD) SetHealth(health int) {
	if health < 0 {
		health = 0
	}
	if health > h.maxHealth {
		health = h.maxHealth
	}
	h.health = health
}

// Health returns the displayed health
func (h *HUD) Health() int {
	return h.health
}

// SetSword updates the sword indicator
func (h *HUD) SetSword(has bool) {
	h.hasSword = has
}

// SetTick updates the displayed tick number
func (h *HUD) SetTick(tick int) {
	h.tick = tick
}

// SetRestartIn updates the restart countdown in ticks; negative hides it
func (h *HUD) SetRestartIn(ticks int) {
	h.restartIn = ticks
}

// SetScreenSize updates the screen dimensions
func (h *HUD) SetScreenSize(width, height int) {
	h.screenWidth = width
	h.screenHeight = height
}

// Line renders the HUD as a single line of text for character displays
func (h *HUD) Line() string {
	var parts []string
	if h.config.ShowHealth {
		parts = append(parts, "HP "+strings.Repeat("♥", h.health)+strings.Repeat("♡", h.maxHealth-h.health))
	}
	if h.config.ShowSword && h.hasSword {
		parts = append(parts, "SWORD")
	}
	if h.config.ShowTick {
		parts = append(parts, fmt.Sprintf("T %d", h.tick))
	}
	if h.restartIn >= 0 {
		parts = append(parts, h.restartText())
	}
	return strings.Join(parts, "  ")
}

func (h *HUD) restartText() string {
	if h.restartIn == 0 {
		return "Press R to restart"
	}
	return fmt.Sprintf("Restarting in %d", h.restartIn)
}

// Draw renders the HUD to the screen
func (h *HUD) Draw(screen render.Image, r render.Renderer) {
	h.layout()
	x, y := h.calculatePosition()

	alpha := uint8(h.config.Opacity * 255)
	r.FillRect(screen, float32(x), float32(y), float32(h.panelWidth), float32(h.panelHeight), color.RGBA{20, 20, 30, alpha})
	r.StrokeRect(screen, float32(x), float32(y), float32(h.panelWidth), float32(h.panelHeight), 1, color.RGBA{60, 60, 80, alpha})

	currentX := x + 8
	currentY := y + 8

	if h.config.ShowHealth {
		size := h.config.HeartSize
		for i := 0; i < h.maxHealth; i++ {
			clr := heartEmpty
			if i < h.health {
				clr = heartFull
			}
			h.drawHeart(screen, r, currentX+i*(size+h.config.HeartMargin), currentY, size, clr)
		}
		currentX += h.maxHealth * (size + h.config.HeartMargin)
	}

	if h.config.ShowSword && h.hasSword {
		size := float32(h.config.HeartSize)
		// blade and guard
		r.FillRect(screen, float32(currentX)+size/2-1, float32(currentY), 3, size*0.8, swordColor)
		r.FillRect(screen, float32(currentX), float32(currentY)+size*0.6, size, 2, swordColor)
	}

	currentY += h.config.HeartSize + 6
	if h.config.ShowTick {
		r.DrawText(screen, fmt.Sprintf("Tick: %d", h.tick), x+8, currentY, textColor, 1)
		currentY += 16
	}
	if h.restartIn >= 0 {
		r.DrawText(screen, h.restartText(), x+8, currentY, textColor, 1)
	}
}

// drawHeart draws a heart as two lobes over a square
func (h *HUD) drawHeart(screen render.Image, r render.Renderer, x, y, size int, clr color.Color) {
	s := float32(size)
	lobe := s / 4
	r.FillCircle(screen, float32(x)+lobe, float32(y)+lobe, lobe, clr)
	r.FillCircle(screen, float32(x)+3*lobe, float32(y)+lobe, lobe, clr)
	r.FillRect(screen, float32(x)+s/8, float32(y)+lobe, s*3/4, s/2, clr)
}

// layout computes the panel size for the visible elements
func (h *HUD) layout() {
	width := 16
	if h.config.ShowHealth {
		width += h.maxHealth * (h.config.HeartSize + h.config.HeartMargin)
	}
	if h.config.ShowSword {
		width += h.config.HeartSize
	}
	if h.restartIn >= 0 && width < 150 {
		width = 150
	}

	height := 16 + h.config.HeartSize
	if h.config.ShowTick {
		height += 16
	}
	if h.restartIn >= 0 {
		height += 16
	}

	h.panelWidth = width
	h.panelHeight = height
}

// calculatePosition returns the top-left corner of the HUD panel
func (h *HUD) calculatePosition() (int, int) {
	padding := 10

	switch h.config.Position {
	case "top-right":
		return h.screenWidth - h.panelWidth - padding, padding
	case "bottom-left":
		return padding, h.screenHeight - h.panelHeight - padding
	case "bottom-right":
		return h.screenWidth - h.panelWidth - padding, h.screenHeight - h.panelHeight - padding
	default: // "top-left"
		return padding, padding
	}
}
