// Package geo2 holds the small geometric value types shared across the
// triangulation core: 2D parametric points, 3D surface points, and the
// tolerance/bounding-box helpers built on top of them.
package geo2

import "math"

// Point2 is a position in the surface's (u,v) parameter domain.
type Point2 struct {
	U float64
	V float64
}

// Point3 is a position in the surface's 3D embedding space.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// Sub returns a-b.
func (a Point2) Sub(b Point2) Point2 {
	return Point2{U: a.U - b.U, V: a.V - b.V}
}

// Add returns a+b.
func (a Point2) Add(b Point2) Point2 {
	return Point2{U: a.U + b.U, V: a.V + b.V}
}

// Scale returns a scaled by s.
func (a Point2) Scale(s float64) Point2 {
	return Point2{U: a.U * s, V: a.V * s}
}

// Dot returns the dot product of a and b.
func (a Point2) Dot(b Point2) float64 {
	return a.U*b.U + a.V*b.V
}

// Perp returns the 2D perpendicular of a (rotated +90 degrees).
func (a Point2) Perp() Point2 {
	return Point2{U: -a.V, V: a.U}
}

// Lerp returns the point a fraction t of the way from a to b.
func (a Point2) Lerp(b Point2, t float64) Point2 {
	return Point2{
		U: a.U + (b.U-a.U)*t,
		V: a.V + (b.V-a.V)*t,
	}
}

// Sub returns a-b in 3D.
func (a Point3) Sub(b Point3) Point3 {
	return Point3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// Dist returns the Euclidean distance between a and b in 3D.
func (a Point3) Dist(b Point3) float64 {
	d := a.Sub(b)
	return math.Sqrt(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
}
