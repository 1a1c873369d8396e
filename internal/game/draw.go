package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/dungeon/internal/core/geom"
	"chosenoffset.com/dungeon/internal/entity/tick"
	"chosenoffset.com/dungeon/internal/render"
	"chosenoffset.com/dungeon/internal/world/level"
)

// Palette
var (
	backgroundColor = color.RGBA{24, 20, 28, 255}
	wallColor       = color.RGBA{92, 84, 100, 255}
	wallEdgeColor   = color.RGBA{60, 54, 66, 255}
	pillarColor     = color.RGBA{52, 46, 58, 255}
	doorColor       = color.RGBA{110, 70, 40, 255}
	torchColor      = color.RGBA{120, 80, 40, 255}
	flameColor      = color.RGBA{255, 180, 60, 255}
	swordColor      = color.RGBA{210, 210, 230, 255}
	spikeColor      = color.RGBA{170, 170, 180, 255}
	guardColor      = color.RGBA{180, 50, 50, 255}
	playerColor     = color.RGBA{70, 130, 220, 255}
	fallenColor     = color.RGBA{60, 80, 120, 255}
	swingColor      = color.RGBA{240, 240, 255, 200}
	eyeColor        = color.RGBA{255, 255, 255, 255}
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	snap := g.Session.Snapshot()

	screen.Fill(backgroundColor)
	g.drawTiles(screen, snap)
	g.drawHazards(screen, snap)
	g.drawLights(screen)

	for _, e := range snap.Enemies {
		// dead guards are not drawn
		if e.Alive {
			g.drawActor(screen, e, guardColor)
		}
	}
	g.drawPlayer(screen, snap.Player)

	g.drawUI(screen)
	g.GameHUD.Draw(screen, g.Renderer)
}

// toScreen converts world coordinates to screen coordinates
func (g *Game) toScreen(x, y float64) (float32, float32) {
	return float32(x - g.Camera.X), float32(y - g.Camera.Y)
}

// visible returns the cell range covered by the viewport
func (g *Game) visible(t float64, grid *level.Grid) (r0, r1, c0, c1 int) {
	c0 = max(int(g.Camera.X/t), 0)
	r0 = max(int(g.Camera.Y/t), 0)
	c1 = min(int((g.Camera.X+float64(g.ScreenWidth))/t)+1, grid.Cols())
	r1 = min(int((g.Camera.Y+float64(g.ScreenHeight))/t)+1, grid.Rows())
	return
}

func (g *Game) drawTiles(screen render.Image, snap tick.Snapshot) {
	t := snap.TileSize
	ts := float32(t)
	r0, r1, c0, c1 := g.visible(t, snap.Grid)

	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			x, y := g.toScreen(float64(col)*t, float64(row)*t)

			switch snap.Grid.TileAt(row, col) {
			case level.Wall:
				g.Renderer.FillRect(screen, x, y, ts, ts, wallColor)
				g.Renderer.StrokeRect(screen, x, y, ts, ts, 2, wallEdgeColor)
			case level.Pillar:
				g.Renderer.FillRect(screen, x+ts/4, y, ts/2, ts, pillarColor)
			case level.Torch:
				g.Renderer.FillRect(screen, x+ts*7/16, y+ts/3, ts/8, ts/3, torchColor)
				g.Renderer.FillCircle(screen, x+ts/2, y+ts/3, ts/10, flameColor)
			case level.Door:
				g.Renderer.FillRect(screen, x+ts/8, y, ts*3/4, ts, doorColor)
			case level.Sword:
				g.Renderer.FillRect(screen, x+ts/2-2, y+ts/4, 4, ts/2, swordColor)
				g.Renderer.FillRect(screen, x+ts/3, y+ts*5/8, ts/3, 3, swordColor)
			}
		}
	}
}

func (g *Game) drawHazards(screen render.Image, snap tick.Snapshot) {
	for _, h := range snap.Hazards {
		x, y := g.toScreen(h.X, h.Y)
		w, hh := float32(h.W), float32(h.H)

		// a row of teeth over a base plate
		teeth := 4
		tw := w / float32(teeth)
		for i := 0; i < teeth; i++ {
			g.Renderer.FillRect(screen, x+float32(i)*tw+tw/4, y, tw/2, hh, spikeColor)
		}
		g.Renderer.FillRect(screen, x, y+hh*3/4, w, hh/4, spikeColor)
	}
}

func (g *Game) drawLights(screen render.Image) {
	for _, l := range g.LightingManager.GetAllLights() {
		x, y := g.toScreen(l.X, l.Y)
		glow := l.Color
		glow.A = uint8(40 * l.Intensity)
		g.Renderer.FillCircle(screen, x, y, float32(l.Radius), glow)
		glow.A = uint8(60 * l.Intensity)
		g.Renderer.FillCircle(screen, x, y, float32(l.Radius/2), glow)
	}
}

func (g *Game) drawActor(screen render.Image, a tick.ActorView, clr color.Color) {
	x, y := g.toScreen(a.Rect.X, a.Rect.Y)
	w, h := float32(a.Rect.W), float32(a.Rect.H)
	g.Renderer.FillRect(screen, x, y, w, h, clr)

	// eye on the facing side
	eyeX := x + w*3/4
	if a.Facing < 0 {
		eyeX = x + w/4
	}
	g.Renderer.FillCircle(screen, eyeX, y+h/5, 3, eyeColor)
}

func (g *Game) drawPlayer(screen render.Image, p tick.ActorView) {
	if !p.Alive {
		// fallen marker: the body lying on the floor
		x, y := g.toScreen(p.Rect.X, p.Rect.Bottom())
		g.Renderer.FillRect(screen, x-float32(p.Rect.H-p.Rect.W)/2, y-float32(p.Rect.W)/2, float32(p.Rect.H), float32(p.Rect.W)/2, fallenColor)
		return
	}

	g.drawActor(screen, p, playerColor)

	if p.HasSword {
		g.drawSword(screen, p)
	}
}

// drawSword draws the blade held at the side, or extended while swinging
func (g *Game) drawSword(screen render.Image, p tick.ActorView) {
	c := p.Rect.Center()
	reach := p.Rect.W / 2
	clr := color.Color(swordColor)
	if p.Attacking {
		reach = p.Rect.W * 1.25
		clr = swingColor
	}

	var blade geom.Rect
	if p.Facing < 0 {
		blade = geom.Rect{X: c.X - p.Rect.W/2 - reach, Y: c.Y, W: reach, H: 4}
	} else {
		blade = geom.Rect{X: c.X + p.Rect.W/2, Y: c.Y, W: reach, H: 4}
	}
	x, y := g.toScreen(blade.X, blade.Y)
	g.Renderer.FillRect(screen, x, y, float32(blade.W), float32(blade.H), clr)
}

// drawUI draws fading messages
func (g *Game) drawUI(screen render.Image) {
	y := g.ScreenHeight - 40
	for i := len(g.Messages) - 1; i >= 0; i-- {
		msg := g.Messages[i]
		alpha := uint8(255 * msg.TimeLeft / msg.MaxTime)
		w, _ := g.Renderer.MeasureText(msg.Text, 1.5)
		g.Renderer.DrawText(screen, msg.Text, (g.ScreenWidth-w)/2, y, color.RGBA{255, 255, 255, alpha}, 1.5)
		y -= 24
	}

	if ri := g.Session.RestartIn(); ri == 0 && !g.Session.Config().Timing.AutoRestart {
		text := "Press R to try again"
		w, _ := g.Renderer.MeasureText(text, 2)
		g.Renderer.DrawText(screen, text, (g.ScreenWidth-w)/2, g.ScreenHeight/2, color.RGBA{255, 220, 220, 255}, 2)
	} else if ri > 0 {
		secs := float64(ri) / float64(g.Session.Config().Timing.TicksPerSecond)
		text := fmt.Sprintf("Restarting in %.1fs", secs)
		w, _ := g.Renderer.MeasureText(text, 2)
		g.Renderer.DrawText(screen, text, (g.ScreenWidth-w)/2, g.ScreenHeight/2, color.RGBA{255, 220, 220, 255}, 2)
	}
}
