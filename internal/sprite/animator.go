package sprite

import "chosenoffset.com/spritemask/internal/render"

// Animator steps through the frames of a sheet.
type Animator struct {
	sheet *Sheet
	frame int
}

// NewAnimator starts at frame 0.
func NewAnimator(sheet *Sheet) *Animator {
	return &Animator{sheet: sheet}
}

// Frame returns the current frame index, always in [0, FrameCount).
func (a *Animator) Frame() int { return a.frame }

// Sheet returns the animated sheet.
func (a *Animator) Sheet() *Sheet { return a.sheet }

// Advance moves to the next frame, wrapping to 0 after the last.
func (a *Animator) Advance() {
	a.frame = (a.frame + 1) % a.sheet.FrameCount
}

// Upload copies the current frame into tex, which must be
// FrameWidth x FrameHeight.
func (a *Animator) Upload(tex render.Image) error {
	pix, err := a.sheet.Frame(a.frame)
	if err != nil {
		return err
	}
	tex.WritePixels(pix)
	return nil
}
