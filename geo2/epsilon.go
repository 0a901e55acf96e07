package geo2

import "math"

// Epsilon stores absolute and relative tolerances for geometric operations.
//
// The combined tolerance for a coordinate with magnitude |v| is computed as:
//
//	tol(v) = Abs + Rel * |v|
type Epsilon struct {
	Abs float64
	Rel float64
}

// DefaultEpsilon returns a conservative default tolerance.
func DefaultEpsilon() Epsilon {
	return Epsilon{Abs: 1e-9, Rel: 1e-12}
}

// Value computes the combined tolerance for the supplied coordinate magnitude.
func (e Epsilon) Value(mag float64) float64 {
	return math.Abs(e.Abs) + math.Abs(e.Rel)*mag
}

// MergeDistance reports the tolerance used for snapping/merging two points.
func (e Epsilon) MergeDistance(a, b Point2) float64 {
	maxMag := math.Max(maxAbs(a.U, a.V), maxAbs(b.U, b.V))
	return e.Value(maxMag)
}

func maxAbs(values ...float64) float64 {
	m := 0.0
	for _, v := range values {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

// AABB is an axis-aligned bounding box in the (u,v) parameter domain.
type AABB struct {
	Min Point2
	Max Point2
}

// Width returns the box's extent along U.
func (b AABB) Width() float64 { return b.Max.U - b.Min.U }

// Height returns the box's extent along V.
func (b AABB) Height() float64 { return b.Max.V - b.Min.V }

// Inflate returns a copy of b expanded by fraction margin on every side.
func (b AABB) Inflate(margin float64) AABB {
	dx := b.Width()
	dy := b.Height()
	if dx == 0 {
		dx = 1
	}
	if dy == 0 {
		dy = 1
	}
	span := math.Max(dx, dy)
	expand := span * margin
	return AABB{
		Min: Point2{U: b.Min.U - expand, V: b.Min.V - expand},
		Max: Point2{U: b.Max.U + expand, V: b.Max.V + expand},
	}
}

// Contains reports whether p lies within b (inclusive).
func (b AABB) Contains(p Point2) bool {
	return p.U >= b.Min.U && p.U <= b.Max.U && p.V >= b.Min.V && p.V <= b.Max.V
}

// BoundingBox computes the AABB of the supplied points.
func BoundingBox(pts []Point2) AABB {
	if len(pts) == 0 {
		return AABB{Min: Point2{U: -1, V: -1}, Max: Point2{U: 1, V: 1}}
	}
	minU, minV := pts[0].U, pts[0].V
	maxU, maxV := pts[0].U, pts[0].V
	for _, p := range pts[1:] {
		if p.U < minU {
			minU = p.U
		}
		if p.U > maxU {
			maxU = p.U
		}
		if p.V < minV {
			minV = p.V
		}
		if p.V > maxV {
			maxV = p.V
		}
	}
	return AABB{Min: Point2{U: minU, V: minV}, Max: Point2{U: maxU, V: maxV}}
}
