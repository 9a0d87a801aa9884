package collision

import (
	"image"
	"image/color"
	"math"

	"chosenoffset.com/spritemask/internal/core/geom"
	"chosenoffset.com/spritemask/internal/world/tilegrid"
)

// Defaults used by the collision demo.
const (
	DefaultRadius = 0.4
	DefaultSlop   = 0.005
)

// tileHalf is the half extent of a unit tile.
var tileHalf = geom.Point{X: 0.5, Y: 0.5}

// Resolver pushes a point out of every solid tile of a grid, treating each
// tile as a rounded box.
type Resolver struct {
	Grid   *tilegrid.Grid
	Radius float64 // rounding added around each tile
	Slop   float64 // margin added to each distance before testing
}

// NewResolver creates a resolver with the default radius and slop.
func NewResolver(grid *tilegrid.Grid) *Resolver {
	return &Resolver{Grid: grid, Radius: DefaultRadius, Slop: DefaultSlop}
}

// TileDistance returns the rounded-box trace from p to the tile at c.
func (r *Resolver) TileDistance(c geom.Coord, p geom.Point) Trace {
	center := geom.Point{X: float64(c.X) + 0.5, Y: float64(c.Y) + 0.5}
	return RoundedBoxDistance(tileHalf, r.Radius, p.Sub(center))
}

// TryMove returns where a mover at pos ends up after attempting move.
//
// Solid tiles are visited in row-major order and each penetration is
// corrected immediately, so later tiles see the already corrected
// position. There is no combined solve across tiles.
func (r *Resolver) TryMove(pos, move geom.Point) geom.Point {
	next := pos.Add(move)

	r.Grid.EachSolid(func(c geom.Coord) {
		tr := r.TileDistance(c, next)
		tr.Distance += r.Slop
		if tr.Distance > 0 {
			return
		}
		next = next.Add(tr.Normal.Scale(-tr.Distance))
	})

	return next
}

// FieldDistance returns the smallest tile distance at p, or +Inf when the
// grid has no solid tiles.
func (r *Resolver) FieldDistance(p geom.Point) float64 {
	d := math.Inf(1)
	r.Grid.EachSolid(func(c geom.Coord) {
		d = math.Min(d, r.TileDistance(c, p).Distance)
	})
	return d
}

// Gradient estimates the gradient of FieldDistance at p with central
// differences of step h.
func (r *Resolver) Gradient(p geom.Point, h float64) geom.Point {
	dx := (r.FieldDistance(geom.Point{X: p.X + h, Y: p.Y}) - r.FieldDistance(geom.Point{X: p.X - h, Y: p.Y})) / (2 * h)
	dy := (r.FieldDistance(geom.Point{X: p.X, Y: p.Y + h}) - r.FieldDistance(geom.Point{X: p.X, Y: p.Y - h})) / (2 * h)
	return geom.Point{X: dx, Y: dy}
}

// FieldImage renders the distance field over the whole grid into a w x h
// image. Image row 0 samples world y = 0. Outside is tinted red, inside
// blue, saturating one unit away from the surface.
func (r *Resolver) FieldImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	gw := float64(r.Grid.Width())
	gh := float64(r.Grid.Height())

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := geom.Point{
				X: float64(x) / float64(w) * gw,
				Y: float64(y) / float64(h) * gh,
			}
			d := math.Max(-1, math.Min(r.FieldDistance(p), 1)) * 32
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(math.Max(0, d) + 50),
				G: 0,
				B: uint8(math.Max(0, -d) + 50),
				A: 255,
			})
		}
	}
	return img
}
