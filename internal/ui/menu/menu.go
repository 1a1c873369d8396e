package menu

import (
	"fmt"
	"image/color"

	"chosenoffset.com/dungeon/internal/gamescanner"
	"chosenoffset.com/dungeon/internal/render"
)

// GameState represents the current state of the game.
type GameState int

const (
	StateMainMenu GameState = iota
	StatePlaying
)

// Selection represents a level chosen from the menu.
// An empty Path selects the built-in dungeon.
type Selection struct {
	Name string
	Path string
}

// Builtin reports whether the selection is the compiled-in level
func (s Selection) Builtin() bool {
	return s.Path == ""
}

// BuiltinEntry is the menu entry for the compiled-in level
var BuiltinEntry = gamescanner.LevelEntry{Name: "dungeon (built-in)"}

// Layout of the level list
const (
	listX       = 50
	listY       = 100
	entryHeight = 30
	entryWidth  = 300
)

// MainMenu represents the level selection screen.
type MainMenu struct {
	levels         []gamescanner.LevelEntry
	selected       int
	renderer       render.Renderer
	input          render.InputManager
	screenWidth    int
	screenHeight   int
	lastMouseClick bool
}

// NewMainMenu creates a new main menu.
func NewMainMenu(levels []gamescanner.LevelEntry, r render.Renderer, input render.InputManager, width, height int) *MainMenu {
	return &MainMenu{
		levels:       levels,
		renderer:     r,
		input:        input,
		screenWidth:  width,
		screenHeight: height,
	}
}

// SetSize updates the screen dimensions
func (m *MainMenu) SetSize(width, height int) {
	m.screenWidth = width
	m.screenHeight = height
}

// Selected returns the index of the highlighted level
func (m *MainMenu) Selected() int {
	return m.selected
}

// Update updates the menu state based on user input.
// Returns true if a level was chosen, false otherwise.
func (m *MainMenu) Update() (selected bool, selection Selection) {
	if len(m.levels) == 0 {
		return false, Selection{}
	}

	mouseX, mouseY := m.input.GetCursorPosition()
	mousePressed := m.input.IsMouseButtonPressed(render.MouseButtonLeft)

	// Detect mouse click (button pressed this frame but not last frame)
	mouseClicked := mousePressed && !m.lastMouseClick
	m.lastMouseClick = mousePressed

	if mouseClicked {
		for i := range m.levels {
			r := rect{x: listX, y: listY + i*entryHeight, w: entryWidth, h: entryHeight - 5}
			if pointInRect(mouseX, mouseY, r) {
				m.selected = i
				return true, m.selection()
			}
		}
	}

	// Keyboard navigation
	if m.input.IsKeyJustPressed(render.KeyUp) || m.input.IsKeyJustPressed(render.KeyW) {
		m.selected = (m.selected - 1 + len(m.levels)) % len(m.levels)
	}
	if m.input.IsKeyJustPressed(render.KeyDown) || m.input.IsKeyJustPressed(render.KeyS) {
		m.selected = (m.selected + 1) % len(m.levels)
	}
	if m.input.IsKeyJustPressed(render.KeyEnter) || m.input.IsKeyJustPressed(render.KeySpace) {
		return true, m.selection()
	}

	return false, Selection{}
}

func (m *MainMenu) selection() Selection {
	entry := m.levels[m.selected]
	return Selection{Name: entry.Name, Path: entry.Path}
}

// Draw renders the menu to the screen.
func (m *MainMenu) Draw(screen render.Image) {
	// Clear screen with dark background
	screen.Fill(color.RGBA{20, 20, 30, 255})

	titleColor := color.RGBA{255, 255, 255, 255}
	m.renderer.DrawText(screen, "DUNGEON", listX, 30, titleColor, 3.0)
	m.renderer.DrawText(screen, "Select a Level", listX, 70, titleColor, 1.5)

	if len(m.levels) == 0 {
		noLevelsColor := color.RGBA{255, 100, 100, 255}
		m.renderer.DrawText(screen, "No levels found in data directory!", listX, 120, noLevelsColor, 1.2)
		return
	}

	for i, level := range m.levels {
		y := listY + i*entryHeight
		itemColor := color.RGBA{180, 180, 180, 255}
		if i == m.selected {
			itemColor = color.RGBA{255, 255, 100, 255}
			m.renderer.DrawText(screen, ">", listX-20, y, itemColor, 1.2)
		}
		m.renderer.DrawText(screen, fmt.Sprintf("  %s", level.Name), listX, y, itemColor, 1.2)
	}

	// Draw instructions
	instructionY := m.screenHeight - 60
	instructionColor := color.RGBA{150, 150, 150, 255}
	m.renderer.DrawText(screen, "Up/Down to choose, ENTER or click to start.", 20, instructionY, instructionColor, 1.0)
	m.renderer.DrawText(screen, "Arrows or WASD move, SPACE jumps, SHIFT attacks, ESC returns here.", 20, instructionY+20, instructionColor, 1.0)
}

// Helper types and functions

type rect struct {
	x, y, w, h int
}

func pointInRect(px, py int, r rect) bool {
	return px >= r.x && px <= r.x+r.w && py >= r.y && py <= r.y+r.h
}
