package sprite

import (
	"fmt"

	"chosenoffset.com/spritemask/internal/render"
	"chosenoffset.com/spritemask/internal/render/mask"
)

// Compositor draws sprites in two passes: a mask pass that writes only the
// destination alpha from a repeating pattern, then a color pass that blends
// the sprite in using that alpha as its weight.
type Compositor struct {
	masks   *mask.Library
	texture render.Image
	texW    float32
	texH    float32
}

// NewCompositor creates the live sprite texture for frames of the given
// size.
func NewCompositor(r render.Renderer, masks *mask.Library, frameWidth, frameHeight int) *Compositor {
	return &Compositor{
		masks:   masks,
		texture: r.NewImage(frameWidth, frameHeight),
		texW:    float32(frameWidth),
		texH:    float32(frameHeight),
	}
}

// Texture returns the live sprite texture that frames are uploaded into.
func (c *Compositor) Texture() render.Image { return c.texture }

// Draw renders one sprite onto dst.
func (c *Compositor) Draw(dst render.Image, s DrawState) error {
	maskTex, err := c.masks.Texture(s.Mask)
	if err != nil {
		return fmt.Errorf("failed to draw sprite: %w", err)
	}

	q := BuildQuad(s)

	dst.DrawTriangles(c.maskVertices(q, maskTex), quadIndices, maskTex, &render.DrawTrianglesOptions{
		Blend:   render.BlendAlphaOnly,
		Address: render.AddressRepeat,
	})
	dst.DrawTriangles(c.colorVertices(q), quadIndices, c.texture, &render.DrawTrianglesOptions{
		Blend:   render.BlendDestinationAlpha,
		Address: render.AddressClamp,
	})
	return nil
}

// maskVertices converts the mask-layer coordinates to pattern texels.
func (c *Compositor) maskVertices(q Quad, maskTex render.Image) []render.Vertex {
	pw, ph := maskTex.Size()
	vs := make([]render.Vertex, len(q.Corners))
	for i, corner := range q.Corners {
		vs[i] = render.Vertex{
			DstX:   corner.X,
			DstY:   corner.Y,
			SrcX:   corner.MaskU * float32(pw),
			SrcY:   corner.MaskV * float32(ph),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}
	return vs
}

// colorVertices converts the color-layer coordinates to sprite texels.
func (c *Compositor) colorVertices(q Quad) []render.Vertex {
	vs := make([]render.Vertex, len(q.Corners))
	for i, corner := range q.Corners {
		vs[i] = render.Vertex{
			DstX:   corner.X,
			DstY:   corner.Y,
			SrcX:   corner.U * c.texW,
			SrcY:   corner.V * c.texH,
			ColorR: corner.Tint.R,
			ColorG: corner.Tint.G,
			ColorB: corner.Tint.B,
			ColorA: corner.Tint.A,
		}
	}
	return vs
}

// Dispose releases the live texture.
func (c *Compositor) Dispose() {
	c.texture.Dispose()
}
