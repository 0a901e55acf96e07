// Package polygon provides signed-area, winding, and point-in-polygon
// queries over loops of geo2.Point2.
package polygon

import (
	"math"

	"github.com/meshforge/frontal/geo2"
	"github.com/meshforge/frontal/predicates"
)

// InResult categorizes the result of a point-in-polygon query.
type InResult int

const (
	Outside InResult = iota
	OnEdge
	Inside
)

// SignedArea computes the signed area of a simple polygon in the (u,v) domain.
func SignedArea(poly []geo2.Point2) float64 {
	if len(poly) < 3 {
		return 0
	}

	area := 0.0
	for i := 0; i < len(poly); i++ {
		j := (i + 1) % len(poly)
		area += poly[i].U*poly[j].V - poly[j].U*poly[i].V
	}
	return area / 2
}

// IsCCW reports whether the loop has counter-clockwise orientation.
func IsCCW(poly []geo2.Point2) bool {
	return SignedArea(poly) > 0
}

// ReverseIfNeeded returns a copy of poly matching the requested orientation.
func ReverseIfNeeded(poly []geo2.Point2, wantCCW bool) []geo2.Point2 {
	if len(poly) == 0 {
		return nil
	}

	area := SignedArea(poly)
	isCCW := area > 0
	if (isCCW && wantCCW) || (!isCCW && !wantCCW) || area == 0 {
		out := make([]geo2.Point2, len(poly))
		copy(out, poly)
		return out
	}

	out := make([]geo2.Point2, len(poly))
	for i := 0; i < len(poly); i++ {
		out[i] = poly[len(poly)-1-i]
	}
	return out
}

// PointOnSegment reports whether p lies on the closed segment [a,b].
func PointOnSegment(p, a, b geo2.Point2) bool {
	if predicates.Orient2D(a, b, p) != 0 {
		return false
	}
	const tol = 1e-12
	minU := math.Min(a.U, b.U) - tol
	maxU := math.Max(a.U, b.U) + tol
	minV := math.Min(a.V, b.V) - tol
	maxV := math.Max(a.V, b.V) + tol
	return p.U >= minU && p.U <= maxU && p.V >= minV && p.V <= maxV
}

// DistanceToSegment computes the shortest distance between p and segment [a,b].
func DistanceToSegment(p, a, b geo2.Point2) float64 {
	au := b.U - a.U
	av := b.V - a.V
	length2 := au*au + av*av
	if length2 == 0 {
		return math.Hypot(p.U-a.U, p.V-a.V)
	}

	t := ((p.U-a.U)*au + (p.V-a.V)*av) / length2
	switch {
	case t <= 0:
		return math.Hypot(p.U-a.U, p.V-a.V)
	case t >= 1:
		return math.Hypot(p.U-b.U, p.V-b.V)
	default:
		proj := geo2.Point2{U: a.U + t*au, V: a.V + t*av}
		return math.Hypot(p.U-proj.U, p.V-proj.V)
	}
}

// Centroid returns the centroid of triangle (a,b,c) in the parameter domain.
func Centroid(a, b, c geo2.Point2) geo2.Point2 {
	return geo2.Point2{U: (a.U + b.U + c.U) / 3, V: (a.V + b.V + c.V) / 3}
}

// PointInPolygon evaluates the position of p relative to the loop poly.
func PointInPolygon(p geo2.Point2, poly []geo2.Point2) InResult {
	n := len(poly)
	if n < 3 {
		return Outside
	}

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if PointOnSegment(p, poly[i], poly[j]) {
			return OnEdge
		}
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi := poly[i]
		pj := poly[j]
		if ((pi.V > p.V) != (pj.V > p.V)) &&
			(p.U < (pj.U-pi.U)*(p.V-pi.V)/(pj.V-pi.V)+pi.U) {
			inside = !inside
		}
	}

	if inside {
		return Inside
	}
	return Outside
}
