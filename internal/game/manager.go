package game

import (
	"fmt"
	"image/color"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/dungeon/internal/logger"
	"chosenoffset.com/dungeon/internal/render"
	"chosenoffset.com/dungeon/internal/simulation"
	"chosenoffset.com/dungeon/internal/ui/menu"
	"chosenoffset.com/dungeon/internal/world/maploader"
)

// Manager handles the overall game state, including menu and gameplay.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	State        menu.GameState
	MainMenu     *menu.MainMenu
	Game         *Game
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Rules        *simulation.Config

	// Error from the last failed level load, shown on the menu
	LoadError string

	log *logrus.Entry
}

// NewManager creates a new game manager.
func NewManager(r render.Renderer, input render.InputManager, rules *simulation.Config, width, height int) *Manager {
	return &Manager{
		ScreenWidth:  width,
		ScreenHeight: height,
		State:        menu.StateMainMenu,
		Renderer:     r,
		InputMgr:     input,
		Rules:        rules,
		log:          logger.Component("game"),
	}
}

// SetMainMenu sets the main menu.
func (m *Manager) SetMainMenu(mainMenu *menu.MainMenu) {
	m.MainMenu = mainMenu
}

// Update updates the game state.
func (m *Manager) Update() error {
	switch m.State {
	case menu.StateMainMenu:
		if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
			return render.ErrQuit
		}
		selected, selection := m.MainMenu.Update()
		if selected {
			if err := m.LoadGame(selection); err != nil {
				m.log.WithError(err).WithField("level", selection.Name).Error("failed to load level")
				m.LoadError = err.Error()
				return nil
			}
			m.LoadError = ""
			m.State = menu.StatePlaying
		}
	case menu.StatePlaying:
		if m.Game != nil {
			if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
				m.State = menu.StateMainMenu
				return nil
			}
			return m.Game.Update()
		}
	}
	return nil
}

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	switch m.State {
	case menu.StateMainMenu:
		m.MainMenu.Draw(screen)
		if m.LoadError != "" {
			m.Renderer.DrawText(screen, m.LoadError, 20, m.ScreenHeight-100, color.RGBA{255, 100, 100, 255}, 1.0)
		}
	case menu.StatePlaying:
		if m.Game != nil {
			m.Game.Draw(screen)
		}
	}
}

// Layout handles window resize.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != m.ScreenWidth || outsideHeight != m.ScreenHeight {
		m.ScreenWidth = outsideWidth
		m.ScreenHeight = outsideHeight
		if m.MainMenu != nil {
			m.MainMenu.SetSize(outsideWidth, outsideHeight)
		}
		if m.Game != nil {
			m.Game.Resize(outsideWidth, outsideHeight)
		}
	}
	return outsideWidth, outsideHeight
}

// LoadGame loads the selected level and starts a session on it.
func (m *Manager) LoadGame(selection menu.Selection) error {
	var lvl *maploader.Level
	if selection.Builtin() {
		tileSize := int(simulation.DefaultConfig().Physics.TileSize)
		if m.Rules != nil {
			tileSize = int(m.Rules.Physics.TileSize)
		}
		lvl = maploader.Builtin(tileSize)
	} else {
		var err error
		m.log.WithField("path", selection.Path).Info("loading level")
		lvl, err = maploader.LoadLevel(selection.Path)
		if err != nil {
			return fmt.Errorf("failed to load level: %w", err)
		}
	}

	g, err := NewGame(lvl, m.Rules, m.Renderer, m.InputMgr, m.ScreenWidth, m.ScreenHeight)
	if err != nil {
		return err
	}
	m.Game = g
	return nil
}
