package game

import (
	"fmt"
	"image/color"
	"log"

	"chosenoffset.com/spritemask/internal/render"
	"chosenoffset.com/spritemask/internal/render/mask"
	"chosenoffset.com/spritemask/internal/simulation"
	"chosenoffset.com/spritemask/internal/sprite"
)

// canvasBackground is 30% grey with zero alpha, so only the mask pass
// makes the sprite visible.
var canvasBackground = color.RGBA{77, 77, 77, 0}

// SpriteDemo animates one masked sprite on a half-resolution canvas.
type SpriteDemo struct {
	ScreenWidth  int
	ScreenHeight int
	Renderer     render.Renderer
	InputMgr     render.InputManager

	Masks      *mask.Library
	Compositor *sprite.Compositor
	Animator   *sprite.Animator

	// Base draw parameters; toggles edit these in place.
	State sprite.DrawState

	// Canvas is drawn at half the window size with y up, then scaled
	// up and flipped onto the screen.
	Canvas render.Image

	TicksPerFrame int
	ticks         int
	uploadFailed  bool
}

// NewSpriteDemo wires the compositor for sheet using cfg.
func NewSpriteDemo(r render.Renderer, input render.InputManager, cfg *simulation.Config, sheet *sprite.Sheet) (*SpriteDemo, error) {
	kind, err := mask.ParseKind(cfg.Sprite.Mask)
	if err != nil {
		return nil, fmt.Errorf("failed to configure sprite demo: %w", err)
	}

	masks := mask.NewLibrary(r)
	tint := sprite.Tint{R: cfg.Sprite.Tint[0], G: cfg.Sprite.Tint[1], B: cfg.Sprite.Tint[2], A: cfg.Sprite.Tint[3]}

	return &SpriteDemo{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		Renderer:     r,
		InputMgr:     input,
		Masks:        masks,
		Compositor:   sprite.NewCompositor(r, masks, sheet.FrameWidth, sheet.FrameHeight),
		Animator:     sprite.NewAnimator(sheet),
		State: sprite.DrawState{
			X:       cfg.Sprite.PosX,
			Y:       cfg.Sprite.PosY,
			Width:   float32(sheet.FrameWidth),
			Height:  float32(sheet.FrameHeight),
			CenterX: cfg.Sprite.CenterX,
			CenterY: cfg.Sprite.CenterY,
			FlipX:   cfg.Sprite.FlipX,
			FlipY:   cfg.Sprite.FlipY,
			Mask:    kind,
			Tints:   sprite.UniformTints(tint),
		},
		TicksPerFrame: cfg.TicksPerFrame(),
	}, nil
}

// Update advances the animation and applies the toggles.
func (g *SpriteDemo) Update() error {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyM) {
		g.State.Mask = g.State.Mask.Next()
		log.Printf("Mask: %s", g.State.Mask)
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyH) {
		g.State.FlipX = !g.State.FlipX
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyV) {
		g.State.FlipY = !g.State.FlipY
	}

	g.ticks++
	if g.ticks >= g.TicksPerFrame {
		g.ticks = 0
		g.Animator.Advance()
	}
	return nil
}

// Draw uploads the current frame and composites it.
func (g *SpriteDemo) Draw(screen render.Image) {
	w, h := screen.Size()
	cw, ch := w/2, h/2
	if cw < 1 || ch < 1 {
		return
	}
	if g.Canvas == nil || needsResize(g.Canvas, cw, ch) {
		if g.Canvas != nil {
			g.Canvas.Dispose()
		}
		g.Canvas = g.Renderer.NewImage(cw, ch)
	}

	g.Canvas.Fill(canvasBackground)

	if err := g.Animator.Upload(g.Compositor.Texture()); err != nil && !g.uploadFailed {
		log.Printf("Warning: Failed to upload sprite frame %d: %v", g.Animator.Frame(), err)
		g.uploadFailed = true
	}
	if err := g.Compositor.Draw(g.Canvas, g.State); err != nil {
		log.Printf("Warning: %v", err)
	}

	// The canvas is y-up: row 0 lands at the bottom of the screen.
	geoM := render.NewGeoM()
	geoM.Scale(float64(w)/float64(cw), -float64(h)/float64(ch))
	geoM.Translate(0, float64(h))
	screen.DrawImage(g.Canvas, &render.DrawImageOptions{GeoM: geoM, Blend: render.BlendCopy})
}

// Layout returns the game's logical screen size.
func (g *SpriteDemo) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

func needsResize(img render.Image, w, h int) bool {
	bounds := img.Bounds()
	return bounds.Dx() != w || bounds.Dy() != h
}
