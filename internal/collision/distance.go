// Package collision computes signed distances to boxes and rounded boxes
// and uses them to push a point mover out of a static tile grid.
package collision

import (
	"math"

	"chosenoffset.com/spritemask/internal/core/geom"
)

// Trace is the result of a distance query: the signed distance to the
// surface (negative inside) and the surface normal at the nearest feature.
type Trace struct {
	Distance float64
	Normal   geom.Point
}

// CircleDistance returns the signed distance from p to a circle of radius r
// centered at the origin.
func CircleDistance(p geom.Point, r float64) float64 {
	return p.Len() - r
}

// BoxDistance returns the signed distance from p to a box with the given
// half extents centered at the origin. The normal is the axis of the larger
// penetration or separation, zero when both axes tie.
func BoxDistance(half, p geom.Point) Trace {
	d := p.Abs().Sub(half)

	outside := geom.Point{X: math.Max(d.X, 0), Y: math.Max(d.Y, 0)}
	tr := Trace{
		Distance: math.Min(math.Max(d.X, d.Y), 0) + outside.Len(),
		Normal:   dominantAxis(d),
	}
	tr.Normal = matchQuadrant(tr.Normal, p)
	return tr
}

// RoundedBoxDistance returns the signed distance from p to a box with half
// extents half whose surface is pushed out by radius r. p is in the box's
// local frame.
//
// In the corner region (outside both extents) the normal points from the
// box corner to p. Elsewhere it is the unit axis of the larger component of
// d; when the components are equal the normal is zero and no correction
// results.
func RoundedBoxDistance(half geom.Point, r float64, p geom.Point) Trace {
	d := p.Abs().Sub(half)

	var tr Trace
	if d.X >= 0 && d.Y >= 0 {
		tr.Distance = d.Len() - r
		// Exactly on the box corner there is no direction; leave the
		// normal zero rather than NaN.
		if d.X != 0 || d.Y != 0 {
			tr.Normal = d.Normalize()
		}
	} else {
		outside := geom.Point{X: math.Max(d.X-r, 0), Y: math.Max(d.Y-r, 0)}
		tr.Distance = math.Min(math.Max(d.X-r, d.Y-r), 0) + outside.Len()
		tr.Normal = dominantAxis(d)
	}

	tr.Normal = matchQuadrant(tr.Normal, p)
	return tr
}

// dominantAxis returns the one-hot axis of the larger component of d.
func dominantAxis(d geom.Point) geom.Point {
	var n geom.Point
	if d.X > d.Y {
		n.X = 1
	}
	if d.Y > d.X {
		n.Y = 1
	}
	return n
}

// matchQuadrant mirrors n into the quadrant p lies in.
func matchQuadrant(n, p geom.Point) geom.Point {
	if p.X < 0 {
		n.X = -n.X
	}
	if p.Y < 0 {
		n.Y = -n.Y
	}
	return n
}
