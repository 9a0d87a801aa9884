package geom

import "math"

// Point represents a 2D point or vector in world space.
type Point struct {
	X, Y float64
}

// Coord represents a tile coordinate
type Coord struct {
	X, Y int
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns p * s.
func (p Point) Scale(s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }

// Len returns the euclidean length of p.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Normalize returns p scaled to unit length. The zero vector yields NaN
// components, as a plain divide by length would.
func (p Point) Normalize() Point {
	inv := 1 / p.Len()
	return Point{X: p.X * inv, Y: p.Y * inv}
}

// Abs returns p with both components made non-negative.
func (p Point) Abs() Point { return Point{X: math.Abs(p.X), Y: math.Abs(p.Y)} }
