// Package rendertest provides in-memory render.Renderer and render.Image
// implementations that record draw calls, for tests that must not open a
// window.
package rendertest

import (
	"image"
	"image/color"

	"chosenoffset.com/spritemask/internal/render"
)

// TrianglesCall records one DrawTriangles submission.
type TrianglesCall struct {
	Vertices []render.Vertex
	Indices  []uint16
	Source   *Image
	Options  render.DrawTrianglesOptions
}

// Image is a recording render.Image.
type Image struct {
	Name   string
	W, H   int
	Pixels []byte

	FillColor color.Color
	Cleared   int
	Disposed  bool
	Triangles []TrianglesCall
	Images    []*Image
	ImageOpts []render.DrawImageOptions
}

// NewImage creates a named recording image.
func NewImage(name string, w, h int) *Image {
	return &Image{Name: name, W: w, H: h}
}

// Bounds returns the bounds of the image.
func (i *Image) Bounds() image.Rectangle { return image.Rect(0, 0, i.W, i.H) }

// Size returns the width and height of the image.
func (i *Image) Size() (int, int) { return i.W, i.H }

// WritePixels stores a copy of pix.
func (i *Image) WritePixels(pix []byte) {
	i.Pixels = append(i.Pixels[:0], pix...)
}

// Fill records the fill color.
func (i *Image) Fill(clr color.Color) { i.FillColor = clr }

// Clear counts clears.
func (i *Image) Clear() { i.Cleared++ }

// Dispose marks the image disposed.
func (i *Image) Dispose() { i.Disposed = true }

// DrawImage records the source image and options.
func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	i.Images = append(i.Images, src.(*Image))
	if opts != nil {
		i.ImageOpts = append(i.ImageOpts, *opts)
	} else {
		i.ImageOpts = append(i.ImageOpts, render.DrawImageOptions{})
	}
}

// DrawTriangles records the call with copies of the vertex and index data.
func (i *Image) DrawTriangles(vertices []render.Vertex, indices []uint16, img render.Image, opts *render.DrawTrianglesOptions) {
	call := TrianglesCall{
		Vertices: append([]render.Vertex(nil), vertices...),
		Indices:  append([]uint16(nil), indices...),
		Source:   img.(*Image),
	}
	if opts != nil {
		call.Options = *opts
	}
	i.Triangles = append(i.Triangles, call)
}

// Renderer is a recording render.Renderer.
type Renderer struct {
	Created []*Image
	Rects   int
	Lines   int
	Texts   []string
}

// NewImage creates and remembers a recording image.
func (r *Renderer) NewImage(width, height int) render.Image {
	img := NewImage("", width, height)
	r.Created = append(r.Created, img)
	return img
}

// FillRect counts rectangles.
func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	r.Rects++
}

// StrokeRect counts rectangles.
func (r *Renderer) StrokeRect(dst render.Image, x, y, width, height float32, strokeWidth float32, clr color.Color) {
	r.Rects++
}

// StrokeLine counts lines.
func (r *Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color) {
	r.Lines++
}

// DrawText records the text.
func (r *Renderer) DrawText(dst render.Image, text string, x, y int) {
	r.Texts = append(r.Texts, text)
}

// Input is a scripted render.InputManager.
type Input struct {
	Pressed     map[render.Key]bool
	JustPressed map[render.Key]bool
	Buttons     map[render.MouseButton]bool
	CursorX     int
	CursorY     int
}

// NewInput creates an input with nothing pressed.
func NewInput() *Input {
	return &Input{
		Pressed:     make(map[render.Key]bool),
		JustPressed: make(map[render.Key]bool),
		Buttons:     make(map[render.MouseButton]bool),
	}
}

// IsKeyPressed reports the scripted key state.
func (in *Input) IsKeyPressed(key render.Key) bool { return in.Pressed[key] }

// IsKeyJustPressed reports the scripted edge state.
func (in *Input) IsKeyJustPressed(key render.Key) bool { return in.JustPressed[key] }

// GetCursorPosition returns the scripted cursor.
func (in *Input) GetCursorPosition() (int, int) { return in.CursorX, in.CursorY }

// IsMouseButtonPressed reports the scripted button state.
func (in *Input) IsMouseButtonPressed(button render.MouseButton) bool { return in.Buttons[button] }

// GeoM is a no-op render.GeoM that tracks the accumulated transform.
type GeoM struct {
	TX, TY float64
	SX, SY float64
}

// NewGeoM returns an identity GeoM.
func NewGeoM() render.GeoM { return &GeoM{SX: 1, SY: 1} }

// Translate shifts the transform.
func (g *GeoM) Translate(tx, ty float64) { g.TX += tx; g.TY += ty }

// Scale scales the transform.
func (g *GeoM) Scale(sx, sy float64) {
	g.SX *= sx
	g.SY *= sy
	g.TX *= sx
	g.TY *= sy
}

// Reset resets to identity.
func (g *GeoM) Reset() { *g = GeoM{SX: 1, SY: 1} }
