package polygon

import (
	"testing"

	"github.com/meshforge/frontal/geo2"
)

func square() []geo2.Point2 {
	return []geo2.Point2{
		{U: 0, V: 0}, {U: 4, V: 0}, {U: 4, V: 4}, {U: 0, V: 4},
	}
}

func TestSignedAreaAndCCW(t *testing.T) {
	sq := square()
	if area := SignedArea(sq); area != 16 {
		t.Errorf("expected area 16, got %v", area)
	}
	if !IsCCW(sq) {
		t.Error("expected square to be CCW")
	}

	rev := []geo2.Point2{sq[3], sq[2], sq[1], sq[0]}
	if IsCCW(rev) {
		t.Error("expected reversed loop to be CW")
	}
}

func TestReverseIfNeeded(t *testing.T) {
	sq := square()
	cw := ReverseIfNeeded(sq, false)
	if IsCCW(cw) {
		t.Error("expected ReverseIfNeeded(false) to produce a CW loop")
	}
	ccwAgain := ReverseIfNeeded(cw, true)
	if !IsCCW(ccwAgain) {
		t.Error("expected ReverseIfNeeded(true) to restore CCW")
	}
}

func TestPointOnSegment(t *testing.T) {
	a := geo2.Point2{U: 0, V: 0}
	b := geo2.Point2{U: 10, V: 0}
	if !PointOnSegment(geo2.Point2{U: 5, V: 0}, a, b) {
		t.Error("expected midpoint to be on segment")
	}
	if PointOnSegment(geo2.Point2{U: 5, V: 1}, a, b) {
		t.Error("expected off-segment point to report false")
	}
	if PointOnSegment(geo2.Point2{U: 11, V: 0}, a, b) {
		t.Error("expected point past the endpoint to report false")
	}
}

func TestDistanceToSegment(t *testing.T) {
	a := geo2.Point2{U: 0, V: 0}
	b := geo2.Point2{U: 10, V: 0}
	if d := DistanceToSegment(geo2.Point2{U: 5, V: 3}, a, b); d != 3 {
		t.Errorf("expected perpendicular distance 3, got %v", d)
	}
	if d := DistanceToSegment(geo2.Point2{U: -3, V: 0}, a, b); d != 3 {
		t.Errorf("expected distance to endpoint 3, got %v", d)
	}
}

func TestCentroid(t *testing.T) {
	c := Centroid(geo2.Point2{U: 0, V: 0}, geo2.Point2{U: 3, V: 0}, geo2.Point2{U: 0, V: 3})
	if c != (geo2.Point2{U: 1, V: 1}) {
		t.Errorf("expected centroid (1,1), got %v", c)
	}
}

func TestPointInPolygon(t *testing.T) {
	sq := square()
	if PointInPolygon(geo2.Point2{U: 2, V: 2}, sq) != Inside {
		t.Error("expected center point to be inside")
	}
	if PointInPolygon(geo2.Point2{U: 10, V: 10}, sq) != Outside {
		t.Error("expected far point to be outside")
	}
	if PointInPolygon(geo2.Point2{U: 0, V: 2}, sq) != OnEdge {
		t.Error("expected point on boundary to report OnEdge")
	}
}

func TestPointInPolygonDegenerate(t *testing.T) {
	if PointInPolygon(geo2.Point2{U: 0, V: 0}, []geo2.Point2{{U: 0, V: 0}, {U: 1, V: 1}}) != Outside {
		t.Error("expected degenerate (< 3 vertex) polygon to report Outside")
	}
}
