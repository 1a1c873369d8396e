package game

import (
	"github.com/sirupsen/logrus"

	"chosenoffset.com/dungeon/internal/entity"
	"chosenoffset.com/dungeon/internal/entity/tick"
	"chosenoffset.com/dungeon/internal/input"
	"chosenoffset.com/dungeon/internal/logger"
	"chosenoffset.com/dungeon/internal/render"
	"chosenoffset.com/dungeon/internal/render/lighting"
	"chosenoffset.com/dungeon/internal/simulation"
	"chosenoffset.com/dungeon/internal/ui/hud"
	"chosenoffset.com/dungeon/internal/world/maploader"
)

// keyNames maps device keys onto the key names used by input bindings
var keyNames = map[render.Key]string{
	render.KeyLeft:  "ArrowLeft",
	render.KeyRight: "ArrowRight",
	render.KeyUp:    "ArrowUp",
	render.KeyDown:  "ArrowDown",
	render.KeyA:     "a",
	render.KeyD:     "d",
	render.KeyW:     "w",
	render.KeyS:     "s",
	render.KeySpace: " ",
	render.KeyShift: "Shift",
}

// Game holds all game state and logic.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Level        *maploader.Level
	Session      *tick.Manager
	Camera       Camera
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Bindings     input.Bindings

	LightingManager *lighting.Manager
	GameHUD         *hud.HUD

	// UI state
	Messages []Message
	hadSword bool

	log *logrus.Entry
}

// NewGame starts a session on lvl and wires its notifications into the
// HUD and the message log.
func NewGame(lvl *maploader.Level, rules *simulation.Config, r render.Renderer, in render.InputManager, width, height int) (*Game, error) {
	session, err := NewSession(lvl, rules)
	if err != nil {
		return nil, err
	}

	g := &Game{
		ScreenWidth:     width,
		ScreenHeight:    height,
		Level:           lvl,
		Session:         session,
		Renderer:        r,
		InputMgr:        in,
		Bindings:        input.DefaultBindings(),
		LightingManager: lighting.NewManager(),
		GameHUD:         hud.New(nil, session.Player().MaxHealth(), width, height),
		log:             logger.Component("game").WithField("level", lvl.Data.Name),
	}
	g.LightingManager.LoadTorches(session.Grid(), lvl.TileSize())

	session.OnHealthChange = g.GameHUD.SetHealth
	session.OnPlayerDeath = func() { g.ShowMessage("You died") }
	session.OnEnemyDeath = func(e *entity.Enemy) { g.ShowMessage("Guard defeated") }
	session.OnRestart = func() {
		g.hadSword = false
		g.ShowMessage("Back to the start")
	}

	g.UpdateCamera()
	g.log.WithFields(logrus.Fields{
		"guards":  len(session.Enemies()),
		"hazards": len(session.Hazards()),
		"torches": len(g.LightingManager.GetAllLights()),
	}).Info("level started")
	return g, nil
}

// Update handles game logic updates.
func (g *Game) Update() error {
	cfg := g.Session.Config()
	g.updateMessages(1.0 / float64(cfg.Timing.TicksPerSecond))

	// Toggle player light with L key
	if g.InputMgr.IsKeyJustPressed(render.KeyL) {
		wasOn := g.LightingManager.IsPlayerLightOn()
		g.LightingManager.EnablePlayerLight(!wasOn)
		if !wasOn {
			g.ShowMessage("Lantern lit")
		} else {
			g.ShowMessage("Lantern out")
		}
	}

	// Restart by hand once the player is dead
	if g.InputMgr.IsKeyJustPressed(render.KeyR) && !g.Session.Player().Alive() {
		g.Session.Restart()
	}

	g.Session.Step(g.Intent())

	p := g.Session.Player()
	if p.HasSword && !g.hadSword {
		g.ShowMessage("You found a sword")
	}
	g.hadSword = p.HasSword

	g.GameHUD.SetSword(p.HasSword)
	g.GameHUD.SetTick(g.Session.Tick())

	g.UpdateCamera()
	c := p.Center()
	g.LightingManager.UpdatePlayerLightPosition(c.X, c.Y)

	return nil
}

// Intent samples the held keys into this tick's input snapshot
func (g *Game) Intent() input.Intent {
	keys := make(input.Keys, len(keyNames))
	for key, name := range keyNames {
		if g.InputMgr.IsKeyPressed(key) {
			keys.Set(name, true)
		}
	}
	return keys.Intent(g.Bindings)
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

// Resize updates the viewport size
func (g *Game) Resize(width, height int) {
	g.ScreenWidth = width
	g.ScreenHeight = height
	g.GameHUD.SetScreenSize(width, height)
	g.UpdateCamera()
}

// UpdateCamera updates the camera to follow the player.
func (g *Game) UpdateCamera() {
	t := g.Level.TileSize()
	grid := g.Session.Grid()
	g.Camera.Follow(
		g.Session.Player().Center(),
		float64(g.ScreenWidth), float64(g.ScreenHeight),
		float64(grid.Cols())*t, float64(grid.Rows())*t,
	)
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: 3.0,
		MaxTime:  3.0,
	})

	g.log.WithField("tick", g.Session.Tick()).Info(text)
}
