// Package rendertest provides in-memory render backends for tests.
package rendertest

import (
	"image"
	"image/color"

	"chosenoffset.com/dungeon/internal/render"
)

// Op is one recorded draw call
type Op struct {
	Kind  string // "rect", "stroke", "circle", "ring", "text"
	X, Y  float32
	W, H  float32
	Text  string
	Color color.Color
}

// Renderer records draw calls instead of drawing
type Renderer struct {
	Ops []Op
}

// NewImage creates a blank image of the given size
func (r *Renderer) NewImage(width, height int) render.Image {
	return &Image{W: width, H: height}
}

func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "rect", X: x, Y: y, W: width, H: height, Color: clr})
}

func (r *Renderer) StrokeRect(dst render.Image, x, y, width, height float32, strokeWidth float32, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "stroke", X: x, Y: y, W: width, H: height, Color: clr})
}

func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "circle", X: x, Y: y, W: radius, H: radius, Color: clr})
}

func (r *Renderer) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "ring", X: x, Y: y, W: radius, H: radius, Color: clr})
}

func (r *Renderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	r.Ops = append(r.Ops, Op{Kind: "text", X: float32(x), Y: float32(y), Text: text, Color: clr})
}

func (r *Renderer) MeasureText(text string, scale float64) (width, height int) {
	return int(float64(len(text)) * 6 * scale), int(13 * scale)
}

// Texts returns the recorded text draws in order
func (r *Renderer) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// Count returns how many ops of kind were drawn with clr
func (r *Renderer) Count(kind string, clr color.Color) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind && op.Color == clr {
			n++
		}
	}
	return n
}

// Reset forgets all recorded ops
func (r *Renderer) Reset() {
	r.Ops = r.Ops[:0]
}

// Image is a sized surface that remembers its fill color
type Image struct {
	W, H     int
	Filled   color.Color
	Disposed bool
}

func (i *Image) Bounds() image.Rectangle   { return image.Rect(0, 0, i.W, i.H) }
func (i *Image) Size() (width, height int) { return i.W, i.H }
func (i *Image) Fill(clr color.Color)      { i.Filled = clr }
func (i *Image) Clear()                    { i.Filled = nil }
func (i *Image) Dispose()                  { i.Disposed = true }

// Input is a scripted InputManager. Keys in Held are pressed; keys in
// Just were pressed this frame.
type Input struct {
	Held   map[render.Key]bool
	Just   map[render.Key]bool
	X, Y   int
	Button bool
}

// NewInput creates an input with nothing pressed
func NewInput() *Input {
	return &Input{Held: map[render.Key]bool{}, Just: map[render.Key]bool{}}
}

// Press holds key and marks it as just pressed
func (in *Input) Press(key render.Key) {
	in.Held[key] = true
	in.Just[key] = true
}

// Release lets go of key
func (in *Input) Release(key render.Key) {
	delete(in.Held, key)
	delete(in.Just, key)
}

// EndFrame clears the just-pressed state, as a new frame would
func (in *Input) EndFrame() {
	in.Just = map[render.Key]bool{}
}

func (in *Input) IsKeyPressed(key render.Key) bool     { return in.Held[key] }
func (in *Input) IsKeyJustPressed(key render.Key) bool { return in.Just[key] }
func (in *Input) GetCursorPosition() (x, y int)        { return in.X, in.Y }

func (in *Input) IsMouseButtonPressed(button render.MouseButton) bool {
	return button == render.MouseButtonLeft && in.Button
}
