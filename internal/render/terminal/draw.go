package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/dungeon/internal/core/geom"
	"chosenoffset.com/dungeon/internal/entity/tick"
	"chosenoffset.com/dungeon/internal/world/level"
)

// view maps world pixels onto screen cells
type view struct {
	cell       float64 // Pixels per character
	camX, camY int     // Top-left visible character in world characters
	w, h       int     // Map area in characters
}

// Draw renders the session and the status line, then shows the screen
func (h *Host) Draw() {
	snap := h.session.Snapshot()
	width, height := h.screen.Size()
	h.screen.Clear()

	v := h.follow(snap, width, height-1)
	h.drawTiles(snap, v)
	h.drawHazards(snap, v)
	for _, e := range snap.Enemies {
		if e.Alive {
			h.fill(v, e.Rect, 'G', guardStyle)
		}
	}
	h.drawPlayer(snap.Player, v)

	h.drawLine(0, height-1, width, h.hud.Line(), hudStyle)
	h.screen.Show()
}

// follow centers the view on the player, clamped to the level
func (h *Host) follow(snap tick.Snapshot, w, ht int) view {
	cell := snap.TileSize / CharsPerTile
	h.camera.Follow(
		h.session.Player().Center(),
		float64(w)*cell, float64(ht)*cell,
		float64(snap.Grid.Cols())*snap.TileSize, float64(snap.Grid.Rows())*snap.TileSize,
	)
	return view{
		cell: cell,
		camX: int(h.camera.X / cell),
		camY: int(h.camera.Y / cell),
		w:    w,
		h:    ht,
	}
}

// set draws one world character if it is inside the map area
func (h *Host) set(v view, cx, cy int, r rune, style tcell.Style) {
	x, y := cx-v.camX, cy-v.camY
	if x < 0 || y < 0 || x >= v.w || y >= v.h {
		return
	}
	h.screen.SetContent(x, y, r, nil, style)
}

// fill draws r over every character a world rectangle touches
func (h *Host) fill(v view, rect geom.Rect, r rune, style tcell.Style) {
	x0 := int(math.Floor(rect.X / v.cell))
	y0 := int(math.Floor(rect.Y / v.cell))
	x1 := int(math.Ceil(rect.Right()/v.cell)) - 1
	y1 := int(math.Ceil(rect.Bottom()/v.cell)) - 1
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			h.set(v, cx, cy, r, style)
		}
	}
}

func (h *Host) drawTiles(snap tick.Snapshot, v view) {
	snap.Grid.Each(func(row, col int, t level.Tile) {
		var r rune
		var style tcell.Style
		switch t {
		case level.Wall:
			r, style = '█', wallStyle
		case level.Pillar:
			r, style = '│', pillarStyle
		case level.Torch:
			r, style = '*', torchStyle
		case level.Door:
			r, style = '▒', doorStyle
		case level.Sword:
			r, style = '†', swordStyle
		default:
			return
		}
		for dy := 0; dy < CharsPerTile; dy++ {
			for dx := 0; dx < CharsPerTile; dx++ {
				h.set(v, col*CharsPerTile+dx, row*CharsPerTile+dy, r, style)
			}
		}
	})
}

func (h *Host) drawHazards(snap tick.Snapshot, v view) {
	for _, rect := range snap.Hazards {
		h.fill(v, rect, '^', spikeStyle)
	}
}

func (h *Host) drawPlayer(p tick.ActorView, v view) {
	if !p.Alive {
		// fallen marker on the bottom row of the body
		h.fill(v, geom.Rect{X: p.Rect.X, Y: p.Rect.Bottom() - 1, W: p.Rect.W, H: 1}, '_', fallenStyle)
		return
	}

	h.fill(v, p.Rect, '@', playerStyle)

	if p.Attacking {
		cy := int(p.Rect.Center().Y / v.cell)
		cx := int(math.Ceil(p.Rect.Right() / v.cell)) // first character past the body
		r := '>'
		if p.Facing < 0 {
			cx = int(math.Floor(p.Rect.X/v.cell)) - 1
			r = '<'
		}
		h.set(v, cx, cy, r, swordStyle)
	}
}

// drawLine writes text left-aligned on row y, padded to width
func (h *Host) drawLine(x, y, width int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		if col >= width {
			return
		}
		h.screen.SetContent(col, y, r, nil, style)
		col++
	}
	for ; col < width; col++ {
		h.screen.SetContent(col, y, ' ', nil, style)
	}
}
