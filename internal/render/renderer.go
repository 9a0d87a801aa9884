package render

import (
	"errors"
	"image"
	"image/color"
)

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. Demo code only talks to this interface so the compositor
// and games can be exercised without a window.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image

	// Vector operations (for drawing shapes)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	StrokeRect(dst Image, x, y, width, height float32, strokeWidth float32, clr color.Color)
	StrokeLine(dst Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int)
}

// Image represents a renderable image surface that can be drawn to or drawn from.
// It abstracts the underlying image implementation.
type Image interface {
	// Properties
	Bounds() image.Rectangle
	Size() (width, height int)

	// Pixel upload. pix is RGBA, 4 bytes per pixel, len(pix) == 4*w*h.
	WritePixels(pix []byte)

	// Fill operations
	Fill(clr color.Color)
	Clear()

	// Drawing operations
	DrawImage(src Image, opts *DrawImageOptions)
	DrawTriangles(vertices []Vertex, indices []uint16, img Image, opts *DrawTrianglesOptions)

	// Resource management
	Dispose()
}

// DrawImageOptions contains options for drawing an image.
type DrawImageOptions struct {
	GeoM  GeoM
	Blend BlendMode
}

// GeoM represents a geometric transformation matrix.
type GeoM interface {
	// Translate shifts the image by (tx, ty).
	Translate(tx, ty float64)

	// Scale scales the image by (sx, sy).
	Scale(sx, sy float64)

	// Reset resets the matrix to identity.
	Reset()
}

// NewGeoM creates a new geometric transformation matrix.
// This is implemented by the specific renderer backend.
var NewGeoM func() GeoM

// BlendMode selects how a draw call combines source and destination pixels.
type BlendMode int

const (
	// BlendSourceOver is regular alpha compositing.
	BlendSourceOver BlendMode = iota

	// BlendCopy replaces the destination (ONE, ZERO).
	BlendCopy

	// BlendAlphaOnly writes the source alpha into the destination alpha and
	// leaves the destination color channels untouched, the equivalent of a
	// color write mask of (0, 0, 0, 1) combined with (ONE, ZERO).
	BlendAlphaOnly

	// BlendDestinationAlpha weights the source by the destination alpha and
	// the destination by its inverse (DST_ALPHA, ONE_MINUS_DST_ALPHA) on all
	// channels.
	BlendDestinationAlpha
)

// String returns the blend mode name.
func (b BlendMode) String() string {
	switch b {
	case BlendSourceOver:
		return "source-over"
	case BlendCopy:
		return "copy"
	case BlendAlphaOnly:
		return "alpha-only"
	case BlendDestinationAlpha:
		return "destination-alpha"
	default:
		return "unknown"
	}
}

// Address selects how source coordinates outside the texture are sampled.
type Address int

const (
	// AddressClamp samples transparent black outside the source image.
	AddressClamp Address = iota

	// AddressRepeat wraps source coordinates so the texture tiles.
	AddressRepeat
)

// DrawTrianglesOptions contains options for drawing triangles.
type DrawTrianglesOptions struct {
	Blend     BlendMode
	Address   Address
	AntiAlias bool
}

// Vertex represents a vertex for triangle rendering. SrcX/SrcY are in
// source texels; colors are straight (non-premultiplied) and in [0, 1].
type Vertex struct {
	DstX   float32
	DstY   float32
	SrcX   float32
	SrcY   float32
	ColorR float32
	ColorG float32
	ColorB float32
	ColorA float32
}

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonPressed(button MouseButton) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the demos read
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyX
	KeyZ
	KeyM // Mask cycle key
	KeyH // Horizontal flip key
	KeyV // Vertical flip key
	KeyF // Distance field toggle key
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
)

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
)

// ErrQuit is returned from Game.Update to end the game loop normally.
var ErrQuit = errors.New("quit")

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	// Returning ErrQuit stops the loop without an error.
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// SetTPS sets the number of Update calls per second.
	SetTPS(tps int)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
