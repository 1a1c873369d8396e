package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/dungeon/internal/core/geom"
	"chosenoffset.com/dungeon/internal/gamescanner"
	"chosenoffset.com/dungeon/internal/input"
	"chosenoffset.com/dungeon/internal/render"
	"chosenoffset.com/dungeon/internal/render/rendertest"
	"chosenoffset.com/dungeon/internal/simulation"
	"chosenoffset.com/dungeon/internal/ui/menu"
	"chosenoffset.com/dungeon/internal/world/maploader"
)

// spikePit spawns the player on a spike
const spikePit = `{
	"name": "pit",
	"width": 3, "height": 3, "tile_size": 64,
	"player_spawn": {"row": 1, "col": 1},
	"tiles": [[0,0,0],[0,7,0],[1,1,1]]
}`

// armory spawns the player on a sword next to a torch
const armory = `{
	"name": "armory",
	"width": 3, "height": 3, "tile_size": 64,
	"player_spawn": {"row": 1, "col": 1},
	"tiles": [[0,3,0],[0,5,0],[1,1,1]]
}`

func parse(t *testing.T, src string) *maploader.Level {
	t.Helper()
	lvl, err := maploader.ParseLevel([]byte(src))
	require.NoError(t, err)
	return lvl
}

func newGame(t *testing.T, src string) (*Game, *rendertest.Renderer, *rendertest.Input) {
	t.Helper()
	r := &rendertest.Renderer{}
	in := rendertest.NewInput()
	g, err := NewGame(parse(t, src), nil, r, in, 640, 480)
	require.NoError(t, err)
	return g, r, in
}

func TestCameraFollow(t *testing.T) {
	tests := []struct {
		name   string
		target geom.Point
		world  geom.Point
		want   Camera
	}{
		{"centered", geom.Point{X: 1000, Y: 800}, geom.Point{X: 3000, Y: 2000}, Camera{X: 600, Y: 500}},
		{"clamped at origin", geom.Point{X: 100, Y: 100}, geom.Point{X: 3000, Y: 2000}, Camera{X: 0, Y: 0}},
		{"clamped at far edge", geom.Point{X: 2950, Y: 1990}, geom.Point{X: 3000, Y: 2000}, Camera{X: 2200, Y: 1400}},
		{"small world pins to origin", geom.Point{X: 300, Y: 200}, geom.Point{X: 400, Y: 300}, Camera{X: 0, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Camera
			c.Follow(tt.target, 800, 600, tt.world.X, tt.world.Y)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestNewSessionUsesLevelTileSize(t *testing.T) {
	lvl := maploader.Builtin(48)
	rules := simulation.DefaultConfig()

	m, err := NewSession(lvl, rules)
	require.NoError(t, err)
	assert.Equal(t, 48.0, m.Config().Physics.TileSize)
	assert.Equal(t, 64.0, rules.Physics.TileSize, "caller's rules are not modified")

	assert.Equal(t, 2*48.0, m.Player().X)
	assert.Equal(t, 5*48.0, m.Player().Y)
}

func TestNewSessionRejectsSmallTiles(t *testing.T) {
	_, err := NewSession(maploader.Builtin(16), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, simulation.ErrInvalidConfig))
}

func TestIntentFromKeys(t *testing.T) {
	g, _, in := newGame(t, armory)

	assert.Equal(t, input.Intent{}, g.Intent())

	in.Press(render.KeyA)
	in.Press(render.KeyShift)
	assert.Equal(t, input.Intent{Left: true, Attack: true}, g.Intent())

	in.Release(render.KeyA)
	in.Release(render.KeyShift)
	in.Press(render.KeyUp)
	assert.Equal(t, input.Intent{Up: true, Jump: true}, g.Intent())

	in.Release(render.KeyUp)
	in.Press(render.KeySpace)
	in.Press(render.KeyS)
	assert.Equal(t, input.Intent{Down: true, Jump: true}, g.Intent())
}

func TestHUDFollowsHealth(t *testing.T) {
	g, _, _ := newGame(t, spikePit)
	require.Equal(t, 3, g.GameHUD.Health())

	for want := 2; want >= 0; want-- {
		require.NoError(t, g.Update())
		assert.Equal(t, want, g.GameHUD.Health())
	}

	assert.False(t, g.Session.Player().Alive())
	require.NotEmpty(t, g.Messages)
	assert.Equal(t, "You died", g.Messages[len(g.Messages)-1].Text)
}

func TestManualRestart(t *testing.T) {
	rules := simulation.DefaultConfig()
	rules.Timing.AutoRestart = false
	r := &rendertest.Renderer{}
	in := rendertest.NewInput()
	g, err := NewGame(parse(t, spikePit), rules, r, in, 640, 480)
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		require.NoError(t, g.Update())
	}
	require.False(t, g.Session.Player().Alive())

	g.Draw(r.NewImage(640, 480))
	assert.Contains(t, r.Texts(), "Press R to try again")

	in.Press(render.KeyR)
	require.NoError(t, g.Update())
	assert.True(t, g.Session.Player().Alive())
	assert.Equal(t, 2, g.GameHUD.Health(), "restart refills the hearts before the spike hits again")
}

func TestSwordMessageOnce(t *testing.T) {
	g, _, _ := newGame(t, armory)

	require.NoError(t, g.Update())
	require.NoError(t, g.Update())

	assert.Equal(t, []string{"You found a sword"}, messageTexts(g))
}

func TestLanternToggle(t *testing.T) {
	g, _, in := newGame(t, armory)
	require.Len(t, g.LightingManager.GetAllLights(), 1, "one torch")

	in.Press(render.KeyL)
	require.NoError(t, g.Update())
	in.EndFrame()
	require.NoError(t, g.Update())

	assert.True(t, g.LightingManager.IsPlayerLightOn())
	assert.Len(t, g.LightingManager.GetAllLights(), 2)
	assert.Contains(t, messageTexts(g), "Lantern lit")

	in.Press(render.KeyL)
	require.NoError(t, g.Update())
	assert.False(t, g.LightingManager.IsPlayerLightOn())
	assert.Contains(t, messageTexts(g), "Lantern out")
}

func messageTexts(g *Game) []string {
	var out []string
	for _, msg := range g.Messages {
		out = append(out, msg.Text)
	}
	return out
}

func TestMessagesFade(t *testing.T) {
	g, _, _ := newGame(t, armory)
	g.ShowMessage("hello")

	for i := 0; i < 179; i++ {
		g.updateMessages(1.0 / 60)
	}
	assert.Len(t, g.Messages, 1)

	g.updateMessages(1.0 / 60)
	g.updateMessages(1.0 / 60)
	assert.Empty(t, g.Messages)
}

func TestDrawPlayerAndFallenMarker(t *testing.T) {
	g, r, _ := newGame(t, spikePit)
	screen := r.NewImage(640, 480)

	g.Draw(screen)
	assert.Equal(t, 1, r.Count("rect", playerColor))
	assert.Zero(t, r.Count("rect", fallenColor))

	for i := 0; i < 3; i++ {
		require.NoError(t, g.Update())
	}
	r.Reset()
	g.Draw(screen)
	assert.Zero(t, r.Count("rect", playerColor))
	assert.Equal(t, 1, r.Count("rect", fallenColor))
}

func TestDeadGuardsAreNotDrawn(t *testing.T) {
	r := &rendertest.Renderer{}
	g, err := NewGame(maploader.Builtin(64), nil, r, rendertest.NewInput(), 2000, 600)
	require.NoError(t, err)
	screen := r.NewImage(2000, 600)

	g.Draw(screen)
	assert.Equal(t, 1, r.Count("rect", guardColor))

	guard := g.Session.Enemies()[0]
	guard.TakeDamage()
	guard.TakeDamage()
	require.False(t, guard.Alive())

	r.Reset()
	g.Draw(screen)
	assert.Zero(t, r.Count("rect", guardColor))
}

func TestManagerStates(t *testing.T) {
	r := &rendertest.Renderer{}
	in := rendertest.NewInput()
	m := NewManager(r, in, nil, 800, 600)
	m.SetMainMenu(menu.NewMainMenu([]gamescanner.LevelEntry{menu.BuiltinEntry}, r, in, 800, 600))

	in.Press(render.KeyEnter)
	require.NoError(t, m.Update())
	assert.Equal(t, menu.StatePlaying, m.State)
	require.NotNil(t, m.Game)
	assert.Equal(t, "dungeon", m.Game.Level.Data.Name)
	in.Release(render.KeyEnter)

	require.NoError(t, m.Update())
	assert.Equal(t, 1, m.Game.Session.Tick())

	in.Press(render.KeyEscape)
	require.NoError(t, m.Update())
	assert.Equal(t, menu.StateMainMenu, m.State)

	err := m.Update()
	assert.ErrorIs(t, err, render.ErrQuit)
}

func TestManagerReportsLoadError(t *testing.T) {
	r := &rendertest.Renderer{}
	in := rendertest.NewInput()
	m := NewManager(r, in, nil, 800, 600)
	m.SetMainMenu(menu.NewMainMenu([]gamescanner.LevelEntry{{Name: "missing", Path: "does/not/exist.json"}}, r, in, 800, 600))

	in.Press(render.KeyEnter)
	require.NoError(t, m.Update())
	assert.Equal(t, menu.StateMainMenu, m.State)
	assert.Contains(t, m.LoadError, "failed to load level")

	m.Draw(r.NewImage(800, 600))
	assert.Contains(t, r.Texts(), m.LoadError)
}

func TestManagerLayoutResizesGame(t *testing.T) {
	r := &rendertest.Renderer{}
	in := rendertest.NewInput()
	m := NewManager(r, in, nil, 800, 600)
	m.SetMainMenu(menu.NewMainMenu([]gamescanner.LevelEntry{menu.BuiltinEntry}, r, in, 800, 600))
	require.NoError(t, m.LoadGame(menu.Selection{Name: "dungeon"}))

	w, h := m.Layout(1024, 512)
	assert.Equal(t, 1024, w)
	assert.Equal(t, 512, h)
	assert.Equal(t, 1024, m.Game.ScreenWidth)
	assert.Equal(t, 512, m.Game.ScreenHeight)
}
