// Package spritegen draws the demo sprite sheet procedurally, so the sprite
// demo has an asset to load without any art pipeline.
package spritegen

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/draw"

	"chosenoffset.com/spritemask/internal/sprite"
)

// Default sheet layout loaded by the sprite demo.
const (
	DefaultFrames = 42
	DefaultWidth  = 9
	DefaultHeight = 9
)

// Diamond builds a sheet of a diamond that grows and shrinks over the
// animation while its color drifts from yellow to magenta.
func Diamond(frames, width, height int) (*sprite.Sheet, error) {
	if frames <= 0 || width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid sheet layout: %d frames of %dx%d", frames, width, height)
	}

	stride := width * height * sprite.BytesPerPixel
	pix := make([]byte, stride*frames)

	cx := float64(width-1) / 2
	cy := float64(height-1) / 2
	maxR := math.Min(cx, cy)
	minR := math.Min(1, maxR)

	for f := 0; f < frames; f++ {
		phase := float64(f) / float64(frames)
		r := minR + (maxR-minR)*(0.5-0.5*math.Cos(2*math.Pi*phase))
		fill := color.RGBA{255, uint8(255 * (1 - phase)), uint8(255 * phase), 255}
		outline := Darken(fill, 0.6)

		frame := pix[f*stride : (f+1)*stride]
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				d := math.Abs(float64(x)-cx) + math.Abs(float64(y)-cy)
				if d > r {
					continue
				}
				c := fill
				if d > r-1 {
					c = outline
				}
				i := (y*width + x) * sprite.BytesPerPixel
				frame[i+0] = c.R
				frame[i+1] = c.G
				frame[i+2] = c.B
				frame[i+3] = c.A
			}
		}
	}

	return sprite.NewSheet(pix, width, height, frames)
}

// SaveRaw writes the sheet as a headerless run of RGBA frames.
func SaveRaw(path string, sheet *sprite.Sheet) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	for i := 0; i < sheet.FrameCount; i++ {
		frame, err := sheet.Frame(i)
		if err != nil {
			return err
		}
		if _, err := file.Write(frame); err != nil {
			return fmt.Errorf("failed to write frame %d: %w", i, err)
		}
	}
	return file.Close()
}

// ContactSheet lays every frame out on a near-square grid and upscales the
// result by scale with nearest-neighbour sampling.
func ContactSheet(sheet *sprite.Sheet, scale int) (*image.RGBA, error) {
	if scale < 1 {
		return nil, fmt.Errorf("invalid scale: %d", scale)
	}

	columns := int(math.Ceil(math.Sqrt(float64(sheet.FrameCount))))
	rows := (sheet.FrameCount + columns - 1) / columns
	fw, fh := sheet.FrameWidth, sheet.FrameHeight

	atlas := image.NewRGBA(image.Rect(0, 0, columns*fw, rows*fh))
	for i := 0; i < sheet.FrameCount; i++ {
		frame, err := sheet.Frame(i)
		if err != nil {
			return nil, err
		}
		src := &image.RGBA{Pix: frame, Stride: fw * sprite.BytesPerPixel, Rect: image.Rect(0, 0, fw, fh)}

		x := (i % columns) * fw
		y := (i / columns) * fh
		draw.Draw(atlas, image.Rect(x, y, x+fw, y+fh), src, image.Point{}, draw.Src)
	}

	if scale == 1 {
		return atlas, nil
	}
	out := image.NewRGBA(image.Rect(0, 0, atlas.Rect.Dx()*scale, atlas.Rect.Dy()*scale))
	draw.NearestNeighbor.Scale(out, out.Bounds(), atlas, atlas.Bounds(), draw.Src, nil)
	return out, nil
}

// SaveContactSheet writes a PNG preview of the sheet.
func SaveContactSheet(path string, sheet *sprite.Sheet, scale int) error {
	img, err := ContactSheet(sheet, scale)
	if err != nil {
		return err
	}
	return SavePNG(img, path)
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
