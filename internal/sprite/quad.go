package sprite

import "chosenoffset.com/spritemask/internal/render/mask"

// Tint is a straight-alpha vertex color in [0, 1].
type Tint struct {
	R, G, B, A float32
}

// White leaves the sprite colors unchanged.
var White = Tint{R: 1, G: 1, B: 1, A: 1}

// Corner indices into Quad.Corners, in triangle strip order.
const (
	TopLeft = iota
	TopRight
	BottomLeft
	BottomRight
)

// DrawState holds the per-draw parameters of one sprite.
type DrawState struct {
	X, Y             float32
	Width, Height    float32
	CenterX, CenterY float32
	FlipX, FlipY     bool
	Mask             mask.Kind
	Tints            [4]Tint // TL, TR, BL, BR
}

// Corner is one vertex of a sprite quad.
type Corner struct {
	X, Y         float32 // screen position
	U, V         float32 // color layer, normalized
	MaskU, MaskV float32 // mask layer, pattern repeats
	Tint         Tint
}

// Quad is the four corners of a sprite.
type Quad struct {
	Corners [4]Corner
}

// quadIndices splits the strip TL, TR, BL, BR into two triangles.
var quadIndices = []uint16{0, 1, 2, 1, 3, 2}

// BuildQuad assembles the corners for s, applying its flip flags.
func BuildQuad(s DrawState) Quad {
	baseX := s.X - s.CenterX
	baseY := s.Y - s.CenterY
	scale := mask.UVScale(s.Mask)

	offsets := [4][2]float32{
		{0, 0},
		{s.Width, 0},
		{0, s.Height},
		{s.Width, s.Height},
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

	var q Quad
	for i, off := range offsets {
		q.Corners[i] = Corner{
			X:     baseX + off[0],
			Y:     baseY + off[1],
			U:     uvs[i][0],
			V:     uvs[i][1],
			MaskU: off[0] * scale,
			MaskV: off[1] * scale,
			Tint:  s.Tints[i],
		}
	}

	if s.FlipX {
		q.FlipX()
	}
	if s.FlipY {
		q.FlipY()
	}
	return q
}

// FlipX swaps the color-layer U between the left and right corners.
func (q *Quad) FlipX() {
	c := &q.Corners
	c[TopLeft].U, c[TopRight].U = c[TopRight].U, c[TopLeft].U
	c[BottomLeft].U, c[BottomRight].U = c[BottomRight].U, c[BottomLeft].U
}

// FlipY swaps the color-layer V between the top and bottom corners.
func (q *Quad) FlipY() {
	c := &q.Corners
	c[TopLeft].V, c[BottomLeft].V = c[BottomLeft].V, c[TopLeft].V
	c[TopRight].V, c[BottomRight].V = c[BottomRight].V, c[TopRight].V
}

// UniformTints returns the same tint for all four corners.
func UniformTints(t Tint) [4]Tint {
	return [4]Tint{t, t, t, t}
}
